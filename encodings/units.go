package encodings

import "fmt"

// SetUnit clears the selector field of dim in U and sets it to unit. The low
// PBits bits of unit are used; all declared unit selectors fit by
// construction.
func (e *Encoding) SetUnit(U uint64, dim, unit uint) uint64 {
	e.checkDim(dim)
	return (U &^ (e.PMask << (dim * e.PBits))) |
		(uint64(unit)&e.PMask)<<(dim*e.PBits)
}

// MkUnit returns a unit vector with the selector of dim set to unit and all
// other fields zero.
func (e *Encoding) MkUnit(dim, unit uint) uint64 {
	return e.SetUnit(0, dim, unit)
}

// UnifyUnits resolves the unit vector of the product or quotient of two
// operands (E, U) and (F, V). Per dimension: if both exponents are zero the
// dimension is absent and the selector is reset; if exactly one is non-zero
// that side's selector wins; if both are non-zero the two selectors must
// agree, and UnifyUnits panics with ErrUnification when they do not —
// combining quantities that disagree on a shared dimension's unit is not
// well-defined without an explicit conversion.
func (e *Encoding) UnifyUnits(E, F, U, V uint64) uint64 {
	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		ef := e.Field(E, dim)
		ff := e.Field(F, dim)
		uf := e.Field(U, dim)
		vf := e.Field(V, dim)

		var unified uint64
		switch {
		case ef == 0 && ff == 0:
			// Both operands are dimension-less here, so the unit is reset:
			unified = 0
		case ef == 0:
			unified = vf
		case ff == 0:
			unified = uf
		case uf == vf:
			unified = uf
		default:
			panic(fmt.Errorf("%w: dim %d, units %d vs %d",
				ErrUnification, dim, uf, vf))
		}
		res |= e.putField(unified, dim)
	}
	return res
}

// UnitsOK reports whether, for every dimension where E's exponent is non-zero,
// the unit vectors U and V agree. It gates addition, subtraction and
// comparison: same dimension, already expressed in the same concrete unit.
func (e *Encoding) UnitsOK(E, U, V uint64) bool {
	for dim := uint(0); dim < e.MaxDims; dim++ {
		if e.Field(E, dim) != 0 && e.Field(U, dim) != e.Field(V, dim) {
			return false
		}
	}
	return true
}

// CleanUpUnits resets to 0 the selector of every dimension whose exponent in E
// is zero, producing the canonical form in which two semantically equal
// vectors compare equal bit-for-bit. It must be applied after any operation
// that can zero out an exponent field (e.g. multiplying an operand by its own
// reciprocal), otherwise stale selectors would survive.
func (e *Encoding) CleanUpUnits(E, U uint64) uint64 {
	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		if e.Field(E, dim) != 0 {
			res |= e.putField(e.Field(U, dim), dim)
		}
	}
	return res
}
