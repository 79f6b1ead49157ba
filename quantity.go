package dimtypes

import (
	"fmt"
	"strings"

	"github.com/LMerkin/DimTypes/encodings"
	"github.com/LMerkin/DimTypes/fracpow"
)

// A Quantity is a magnitude statically bound (at construction time) to an
// exponent vector and a unit vector. Quantities are immutable values: every
// operation returns a new one.
type Quantity struct {
	mag   float64
	dims  uint64 // packed exponent vector
	units uint64 // packed unit-selector vector
	sys   *System
}

// Magnitude returns the value expressed in the quantity's current units. The
// magnitude is by itself dimension-less.
func (q Quantity) Magnitude() float64 { return q.mag }

// DimsCode returns the packed exponent vector (primarily for testing).
func (q Quantity) DimsCode() uint64 { return q.dims }

// UnitsCode returns the packed unit vector (primarily for testing).
func (q Quantity) UnitsCode() uint64 { return q.units }

// IsDimless reports whether the quantity carries no dimension at all.
func (q Quantity) IsDimless() bool { return q.dims == 0 }

// UnitOf returns a similar quantity with unitary magnitude.
func (q Quantity) UnitOf() Quantity {
	q.mag = 1.0
	return q
}

// Float converts a dimension-less quantity to its bare magnitude; it panics
// on a dimensioned one.
func (q Quantity) Float() float64 {
	if !q.IsDimless() {
		panic(fmt.Errorf("%w: not dimension-less", ErrDimensionMismatch))
	}
	return q.mag
}

func (q Quantity) sameSystem(r Quantity) *System {
	if q.sys != r.sys {
		panic(ErrSystemMismatch)
	}
	return q.sys
}

// compatible gates Add, Sub and comparisons: same exponent vector, and for
// every non-trivial dimension the same concrete unit.
func (q Quantity) compatible(r Quantity) {
	q.sameSystem(r)
	if q.dims != r.dims {
		panic(fmt.Errorf("%w: %#x vs %#x", ErrDimensionMismatch, q.dims, r.dims))
	}
	if !q.sys.enc.UnitsOK(q.dims, q.units, r.units) {
		panic(fmt.Errorf("%w: %#x vs %#x", encodings.ErrUnitMismatch, q.units, r.units))
	}
}

// Scale multiplies the magnitude by a dimension-less factor.
func (q Quantity) Scale(k float64) Quantity {
	q.mag *= k
	return q
}

// Neg returns the quantity with the magnitude negated.
func (q Quantity) Neg() Quantity {
	q.mag = -q.mag
	return q
}

// Abs returns the quantity with the magnitude's absolute value.
func (q Quantity) Abs() Quantity {
	if q.mag < 0 {
		q.mag = -q.mag
	}
	return q
}

// Add returns q + r. Both operands must have the same dimension and be
// expressed in the same units.
func (q Quantity) Add(r Quantity) Quantity {
	q.compatible(r)
	q.mag += r.mag
	return q
}

// Sub returns q - r under the same compatibility gate as Add.
func (q Quantity) Sub(r Quantity) Quantity {
	q.compatible(r)
	q.mag -= r.mag
	return q
}

// Cmp compares the magnitudes of two compatible quantities, returning -1, 0
// or 1.
func (q Quantity) Cmp(r Quantity) int {
	q.compatible(r)
	switch {
	case q.mag < r.mag:
		return -1
	case q.mag > r.mag:
		return 1
	}
	return 0
}

// Mul returns q * r. The units of the two operands are unified per dimension;
// a dimension carried by both sides in different units panics with
// ErrUnification.
func (q Quantity) Mul(r Quantity) Quantity {
	s := q.sameSystem(r)
	e := s.enc
	dims := e.AddExp(q.dims, r.dims)
	units := e.CleanUpUnits(dims, e.UnifyUnits(q.dims, r.dims, q.units, r.units))
	return Quantity{mag: q.mag * r.mag, dims: dims, units: units, sys: s}
}

// Div returns q / r under the same unification rules as Mul.
func (q Quantity) Div(r Quantity) Quantity {
	s := q.sameSystem(r)
	e := s.enc
	dims := e.SubExp(q.dims, r.dims)
	units := e.CleanUpUnits(dims, e.UnifyUnits(q.dims, r.dims, q.units, r.units))
	return Quantity{mag: q.mag / r.mag, dims: dims, units: units, sys: s}
}

// Inv returns the reciprocal quantity.
func (q Quantity) Inv() Quantity {
	return q.sys.Dimless(1.0).Div(q)
}

// IPow returns q raised to the integer power m.
// CleanUpUnits is required in case m == 0.
func (q Quantity) IPow(m int) Quantity {
	e := q.sys.enc
	dims := e.MultExp(q.dims, m)
	return Quantity{
		mag:   fracpow.IntPow(q.mag, m),
		dims:  dims,
		units: e.CleanUpUnits(dims, q.units),
		sys:   q.sys,
	}
}

// RPow returns q raised to the rational power m/n.
func (q Quantity) RPow(m int, n uint) Quantity {
	e := q.sys.enc
	dims := e.DivExp(e.MultExp(q.dims, m), n)
	return Quantity{
		mag:   fracpow.FracPow(q.mag, m, n),
		dims:  dims,
		units: e.CleanUpUnits(dims, q.units),
		sys:   q.sys,
	}
}

// SqRt is a shortcut for RPow(1, 2).
func (q Quantity) SqRt() Quantity { return q.RPow(1, 2) }

// CbRt is a shortcut for RPow(1, 3).
func (q Quantity) CbRt() Quantity { return q.RPow(1, 3) }

// ConvertTo re-expresses the given dimension of the quantity in another of
// its declared units: the magnitude is rescaled by
// (oldScale/newScale)^(numer/denom) where numer/denom is the dimension's
// decoded rational exponent, and the unit selector is replaced. Converting a
// dimension the quantity does not carry is the identity.
func (q Quantity) ConvertTo(dim Dim, unit Unit) Quantity {
	s := q.sys
	e := s.enc
	s.checkUnit(dim, unit)

	rep := e.Field(q.dims, uint(dim))
	if rep == 0 {
		return q
	}
	numer, denom := e.NumerAndDenom(rep)
	oldUnit := Unit(e.Field(q.units, uint(dim)))
	ratio := s.unitScale(dim, oldUnit) / s.unitScale(dim, unit)

	q.mag *= fracpow.FracPow(ratio, numer, denom)
	q.units = e.SetUnit(q.units, uint(dim), uint(unit))
	return q
}

// String renders the magnitude in full float64 precision followed by the
// per-dimension unit names and rational exponents, e.g.
// "2.9979245800000000e+05 km sec^-1".
func (q Quantity) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%.16e", q.mag)

	e := q.sys.enc
	for dim := uint(0); dim < e.MaxDims; dim++ {
		rep := e.Field(q.dims, dim)
		if rep == 0 {
			continue
		}
		numer, denom := e.NumerAndDenom(rep)
		name := q.sys.unitName(Dim(dim), Unit(e.Field(q.units, dim)))

		sb.WriteByte(' ')
		sb.WriteString(name)
		switch {
		case numer == 1 && denom == 1:
			// exponent 1 is implicit
		case denom == 1:
			fmt.Fprintf(&sb, "^%d", numer)
		default:
			fmt.Fprintf(&sb, "^%d/%d", numer, denom)
		}
	}
	return sb.String()
}
