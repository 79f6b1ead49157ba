// Package dimtypes provides dimensioned physical quantities that carry their
// dimension exponents and concrete units in bit-packed vectors, so that
// dimensionally inconsistent arithmetic is rejected the moment it is
// attempted.
//
// A Quantity is a float64 magnitude plus two packed uint64 words: an exponent
// vector holding one rational exponent per dimension (encoded modulo a prime,
// see the encodings package) and a unit vector holding, per dimension, a
// selector for the concrete unit in use. Dimensions and their units are
// declared on a System; quantities minted by the same System combine with
// Mul/Div/Add/Sub/IPow/RPow and convert between declared units of one
// dimension via ConvertTo.
//
// Up to nine independent dimensions are supported:
//   - 7 dimensions: 9-bit fields, exponents modulo 509
//   - 8 dimensions: 8-bit fields, exponents modulo 251
//   - 9 dimensions: 7-bit fields, exponents modulo 127
//
// Mixing incompatible units or dimensions is a programmer error, not a
// runtime condition: the offending operation panics with a typed error at the
// earliest point it is attempted, never silently producing a wrong dimension
// or unit.
package dimtypes

import (
	"github.com/blang/semver/v4"

	"github.com/LMerkin/DimTypes/encodings"
)

var Version = semver.MustParse("0.1.0")

// Configs returns the supported packing configurations.
func Configs() []*encodings.Encoding {
	return []*encodings.Encoding{
		encodings.Dims7,
		encodings.Dims8,
		encodings.Dims9,
	}
}
