// Package encodings implements the Zp representation of rational dimension
// exponents and the companion unit-selector vectors.
//
// Dimension exponents are monomials over up to MaxDims fundamental dimensions
// with rational powers. An exponent vector is a uint64 split into MaxDims bit
// fields of PBits bits each; a field holds the rational power of the
// corresponding dimension encoded as a residue modulo PMod, the largest prime
// below 2^PBits. Multiplication and division of dimensioned quantities then
// become field-wise modular addition and subtraction, and integer powers and
// roots become field-wise modular multiplication and division, without ever
// materializing an explicit rational per dimension.
//
// The supported configurations are
//
//	MaxDims = 7: PBits = 9, PMod = 509
//	MaxDims = 8: PBits = 8, PMod = 251
//	MaxDims = 9: PBits = 7, PMod = 127
//
// A unit-selector vector has the same packing shape; each field holds a small
// opaque integer identifying which concrete unit of that dimension is in play.
// A selector is only meaningful where the exponent field is non-zero;
// CleanUpUnits forces the remaining selectors to zero so that semantically
// equal vectors compare equal bit-for-bit.
//
// All operations are pure functions over immutable packed words and are safe
// for concurrent use without coordination.
package encodings

import (
	"fmt"

	"github.com/LMerkin/DimTypes/debug"
	"github.com/LMerkin/DimTypes/logger"
)

// DefaultMaxDims is the configuration used when the caller expresses no
// preference.
const DefaultMaxDims = 8

// An Encoding fixes the packing geometry for one supported configuration.
// Encodings are immutable once constructed; the package-level Dims7, Dims8 and
// Dims9 values are shared and safe for concurrent use.
type Encoding struct {
	MaxDims uint   // number of independent dimensions: 7, 8 or 9
	PBits   uint   // bit width of one packed field
	PMod    uint64 // largest prime below 1<<PBits
	PMask   uint64 // (1<<PBits)-1

	maxHeight uint // derived by findMaxHeight, see decode.go
}

// The three supported configurations, built once at package init. MaxHeight is
// re-derived for each rather than hardcoded: it differs across (MaxDims, PMod)
// pairs.
var (
	Dims7 = MustNew(7)
	Dims8 = MustNew(8)
	Dims9 = MustNew(9)
)

// New returns the Encoding for the given number of independent dimensions.
// Only 7, 8 and 9 are supported: these are the counts for which fields wide
// enough for a useful prime still fit into a single uint64.
func New(maxDims uint) (*Encoding, error) {
	var (
		pBits uint
		pMod  uint64
	)
	switch maxDims {
	case 7:
		pBits, pMod = 9, 509
	case 8:
		pBits, pMod = 8, 251
	case 9:
		pBits, pMod = 7, 127
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadConfig, maxDims)
	}

	e := &Encoding{
		MaxDims: maxDims,
		PBits:   pBits,
		PMod:    pMod,
		PMask:   (1 << pBits) - 1,
	}
	e.maxHeight = e.findMaxHeight()

	log := logger.Logger()
	log.Debug().
		Uint("maxDims", maxDims).
		Uint64("pMod", pMod).
		Uint("maxHeight", e.maxHeight).
		Msg("derived decode height bound")
	return e, nil
}

// MustNew is like New but panics on an unsupported dimension count.
func MustNew(maxDims uint) *Encoding {
	e, err := New(maxDims)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Encoding) checkDim(dim uint) {
	if dim >= e.MaxDims {
		panic(fmt.Errorf("%w: %d (MaxDims=%d)", ErrBadDim, dim, e.MaxDims))
	}
}

// Field extracts the packed field for the given dimension: the selected bits
// are moved to the right and all others zeroed out.
func (e *Encoding) Field(word uint64, dim uint) uint64 {
	e.checkDim(dim)
	return (word >> (dim * e.PBits)) & e.PMask
}

// putField places the low PBits bits of val at the field position of dim, all
// other bits zero. Callers combine the results with bitwise or.
func (e *Encoding) putField(val uint64, dim uint) uint64 {
	debug.Assert(dim < e.MaxDims)
	return (val & e.PMask) << (dim * e.PBits)
}

// DimExp returns the exponent vector of a fundamental dimension: exponent 1
// for dim, 0 everywhere else.
func (e *Encoding) DimExp(dim uint) uint64 {
	e.checkDim(dim)
	return 1 << (dim * e.PBits)
}

// Normalise maps any signed integer to its residue in [0, PMod-1].
func (e *Encoding) Normalise(x int) uint64 {
	p := int64(e.PMod)
	res := int64(x) % p
	if res < 0 {
		res += p
	}
	return uint64(res)
}

// InverseModP computes the inverse of n modulo PMod by the extended Euclid
// algorithm: the coefficient c such that 1 = GCD(n, PMod) = c*n + d*PMod.
// Since PMod is prime the inverse exists for every n not divisible by PMod;
// InverseModP panics with ErrUninvertible otherwise.
func (e *Encoding) InverseModP(n int) uint64 {
	p := int64(e.PMod)
	if int64(n)%p == 0 {
		panic(fmt.Errorf("%w: %d (PMod=%d)", ErrUninvertible, n, e.PMod))
	}

	x := int64(e.Normalise(n))
	y := p
	a, b := int64(1), int64(0)
	c, d := int64(0), int64(1)
	debug.Assert(0 <= x && x < y)

	for x != 0 {
		q, r := y/x, y%x
		y, x = x, r
		debug.Assert(0 <= x && x < y)
		a, c = c-q*a, a
		b, d = d-q*b, b
	}

	res := c % p
	if res < 0 {
		res += p
	}
	return uint64(res)
}

// AddExp adds up the fields of the exponent vectors E and F modulo PMod.
// This models the multiplication of two dimensioned quantities.
func (e *Encoding) AddExp(E, F uint64) uint64 {
	if E == 0 {
		return F
	}
	if F == 0 {
		return E
	}

	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		res |= e.putField((e.Field(E, dim)+e.Field(F, dim))%e.PMod, dim)
	}
	return res
}

// SubExp subtracts the fields of F from those of E modulo PMod.
// This models the division of two dimensioned quantities.
func (e *Encoding) SubExp(E, F uint64) uint64 {
	if F == 0 {
		return E
	}

	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		// PMod is added to the LHS first to avoid negative values:
		res |= e.putField((e.PMod+e.Field(E, dim)-e.Field(F, dim))%e.PMod, dim)
	}
	return res
}

// MultExp multiplies the fields of E by m modulo PMod.
// This models raising a dimensioned quantity to the integer power m.
func (e *Encoding) MultExp(E uint64, m int) uint64 {
	if m == 1 {
		return E
	}

	mn := e.Normalise(m)
	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		res |= e.putField((e.Field(E, dim)*mn)%e.PMod, dim)
	}
	return res
}

// DivExp divides the fields of E by n modulo PMod.
// This models taking the n-th root of a dimensioned quantity.
func (e *Encoding) DivExp(E uint64, n uint) uint64 {
	if n == 0 {
		panic(fmt.Errorf("%w: 0", ErrUninvertible))
	}
	if n == 1 {
		return E
	}

	inv := e.InverseModP(int(n))
	var res uint64
	for dim := uint(0); dim < e.MaxDims; dim++ {
		res |= e.putField((e.Field(E, dim)*inv)%e.PMod, dim)
	}
	return res
}
