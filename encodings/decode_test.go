package encodings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/LMerkin/DimTypes/internal/utils"
)

type rational struct {
	Numer int
	Denom uint
}

func TestMaxHeightDerived(t *testing.T) {
	// Regression values for the three configurations; the implementation must
	// derive them by the collision search, never assume them.
	assert.Equal(t, uint(24), Dims7.MaxHeight())
	assert.Equal(t, uint(18), Dims8.MaxHeight())
	assert.Equal(t, uint(13), Dims9.MaxHeight())
}

func TestDecodeZero(t *testing.T) {
	for _, e := range allConfigs {
		numer, denom := e.NumerAndDenom(0)
		assert.Equal(t, 0, numer)
		assert.Equal(t, uint(1), denom)
	}
}

// TestRoundTripExhaustive checks that every reduced rational of height up to
// MaxHeight survives an encode/decode round trip, for all three
// configurations.
func TestRoundTripExhaustive(t *testing.T) {
	var g errgroup.Group
	for _, e := range allConfigs {
		e := e
		g.Go(func() error {
			for height := uint64(2); height <= uint64(e.MaxHeight()); height++ {
				for denom := uint64(1); denom < height; denom++ {
					numer := int(height - denom)
					if utils.GCD(int64(numer), int64(denom)) != 1 {
						continue
					}
					for _, want := range []rational{
						{Numer: numer, Denom: uint(denom)},
						{Numer: -numer, Denom: uint(denom)},
					} {
						rep := e.EncodeFrac(want.Numer, want.Denom)
						var got rational
						got.Numer, got.Denom = e.NumerAndDenom(rep)
						if diff := cmp.Diff(want, got); diff != "" {
							t.Errorf("PMod=%d rep=%d: round trip mismatch (-want +got):\n%s",
								e.PMod, rep, diff)
						}
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDecodeExhausted(t *testing.T) {
	// Residues unreachable from any rational of height <= MaxHeight; produced
	// only by driving an exponent vector outside the valid operating range.
	for _, tc := range []struct {
		e   *Encoding
		rep uint64
	}{
		{Dims7, 24},
		{Dims8, 20},
		{Dims9, 15},
	} {
		assertPanicsErrorIs(t, ErrDecodeExhausted, func() { tc.e.NumerAndDenom(tc.rep) })
	}
}

// TestDecodeSearchOrder pins the minimal-height tie-breaking: the decoder
// must prefer the smallest height, and within a height the smallest
// denominator, and the positive numerator before the negative one.
func TestDecodeSearchOrder(t *testing.T) {
	e := Dims9

	// 1/1 (height 2) before anything taller:
	numer, denom := e.NumerAndDenom(e.EncodeFrac(1, 1))
	assert.Equal(t, 1, numer)
	assert.Equal(t, uint(1), denom)

	// -1/1 decodes via the negative branch of height 2:
	numer, denom = e.NumerAndDenom(e.Normalise(-1))
	assert.Equal(t, -1, numer)
	assert.Equal(t, uint(1), denom)

	// 2/1 and 1/2 share height 3; distinct residues, distinct decodes:
	numer, denom = e.NumerAndDenom(e.EncodeFrac(2, 1))
	assert.Equal(t, 2, numer)
	assert.Equal(t, uint(1), denom)
	numer, denom = e.NumerAndDenom(e.EncodeFrac(1, 2))
	assert.Equal(t, 1, numer)
	assert.Equal(t, uint(2), denom)
}

func TestEncodeFracUnreduced(t *testing.T) {
	// 2/4 and 1/2 are the same rational, so the same residue:
	for _, e := range allConfigs {
		assert.Equal(t, e.EncodeFrac(1, 2), e.EncodeFrac(2, 4))
		assert.Equal(t, e.EncodeFrac(-3, 2), e.EncodeFrac(-6, 4))
	}
}
