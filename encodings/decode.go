package encodings

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/LMerkin/DimTypes/debug"
	"github.com/LMerkin/DimTypes/internal/utils"
)

// MaxHeight is the largest height (|numer| + denom of a reduced rational) for
// which the rational -> residue mapping is provably injective under this
// configuration. It turns out to be much smaller than PMod.
func (e *Encoding) MaxHeight() uint {
	return e.maxHeight
}

// findMaxHeight walks all reduced rationals in increasing height order,
// marking the residues of both the positive numerator and its negative
// complement; the first height at which a residue is already taken is one past
// the bound. The result depends on (MaxDims, PMod), so it is derived here for
// every configuration rather than hardcoded.
func (e *Encoding) findMaxHeight() uint {
	taken := bitset.New(uint(e.PMod))

	for height := uint64(2); height < e.PMod; height++ {
		for denom := uint64(1); denom < height; denom++ {
			numerP := height - denom // positive numer
			if utils.GCD(int64(numerP), int64(denom)) != 1 {
				continue
			}
			invDenom := e.InverseModP(int(denom))
			numerC := e.PMod - numerP // complement of negative numer
			debug.Assert(numerP > 0 && numerC > 0)

			repP := uint(numerP * invDenom % e.PMod)
			repC := uint(numerC * invDenom % e.PMod)

			if taken.Test(repP) || taken.Test(repC) {
				// Clash encountered at "height":
				return uint(height - 1)
			}
			taken.Set(repP)
			taken.Set(repC)
		}
	}
	// Not really reachable: a clash always occurs well before PMod.
	return uint(e.PMod - 1)
}

// NumerAndDenom recovers the unique reduced rational of minimal height whose
// residue modulo PMod is rep. The enumeration order (height-major from 2,
// denominator-minor from 1, positive numerator before the negative
// complement) is what defines the minimal-height tie-breaking and must not be
// changed: an alternative order is not verified collision-free.
//
// Decode is O(MaxHeight^2) in the worst case; it is only invoked for
// formatting and for computing conversion scale-factor exponents, never on the
// quantity-arithmetic hot path.
//
// NumerAndDenom panics with ErrDecodeExhausted if no rational of height up to
// MaxHeight matches: such a residue can only come from an exponent vector
// produced outside the encoding's valid operating range.
func (e *Encoding) NumerAndDenom(rep uint64) (numer int, denom uint) {
	if rep == 0 {
		return 0, 1
	}

	// Traverse all heights; typically the result is nearby.
	// height == |numer| + denom, where denom >= 1 and numer != 0:
	for height := uint64(2); height <= uint64(e.maxHeight); height++ {
		for d := uint64(1); d < height; d++ {
			numerP := height - d
			if utils.GCD(int64(numerP), int64(d)) != 1 {
				continue
			}
			invDenom := e.InverseModP(int(d))
			numerC := e.PMod - numerP
			debug.Assert(numerP > 0 && numerC > 0)

			if numerP*invDenom%e.PMod == rep {
				return int(numerP), uint(d)
			}
			if numerC*invDenom%e.PMod == rep {
				return -int(numerP), uint(d)
			}
		}
	}
	panic(fmt.Errorf("%w: %d (MaxDims=%d, PMod=%d, MaxHeight=%d)",
		ErrDecodeExhausted, rep, e.MaxDims, e.PMod, e.maxHeight))
}

// Exponent decodes the rational exponent of one dimension of an exponent
// vector.
func (e *Encoding) Exponent(E uint64, dim uint) (numer int, denom uint) {
	return e.NumerAndDenom(e.Field(E, dim))
}

// EncodeFrac returns the residue of the rational numer/denom modulo PMod.
// The fraction need not be reduced; denom must not be a multiple of PMod.
func (e *Encoding) EncodeFrac(numer int, denom uint) uint64 {
	return e.Normalise(numer) * e.InverseModP(int(denom)) % e.PMod
}
