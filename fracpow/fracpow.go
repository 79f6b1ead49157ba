// Package fracpow reduces exponentiation by a rational power to a chain of
// integer powers and square/cube roots where possible, falling back to a
// generic real power only when necessary.
//
// Unit-conversion scale factors are frequently simple fractional powers (1/2,
// 1/3, 2/3, 3/2 for area and volume conversions); computing them via repeated
// exact square and cube roots avoids the precision loss and the
// positive-base restriction of a generic exp(log(x)*p) evaluation.
package fracpow

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/LMerkin/DimTypes/internal/utils"
)

// ErrZeroDenominator signals a fractional power with denominator 0.
var ErrZeroDenominator = errors.New("fracpow: zero denominator")

// IntPow raises x to the integer power m by repeated squaring. A negative m
// yields the reciprocal of the positive power; m == 0 yields 1.
func IntPow[T constraints.Float](x T, m int) T {
	if m < 0 {
		return 1 / IntPow(x, -m)
	}
	switch m {
	case 0:
		return 1
	case 1:
		return x
	}
	half := IntPow(x, m/2)
	half2 := half * half
	if m%2 == 1 {
		return half2 * x
	}
	return half2
}

// only2and3 reports whether repeatedly dividing n by 2 and/or 3 reaches 1.
func only2and3(n uint) bool {
	for n > 1 {
		switch {
		case n%2 == 0:
			n /= 2
		case n%3 == 0:
			n /= 3
		default:
			return false
		}
	}
	return true
}

// fracPow23 computes x^(m/n) for n consisting solely of factors 2 and 3, by
// peeling those factors off with square and cube roots.
func fracPow23[T constraints.Float](x T, m int, n uint) T {
	for n > 1 {
		if n%2 == 0 {
			x = T(math.Sqrt(float64(x)))
			n /= 2
		} else {
			x = T(math.Cbrt(float64(x)))
			n /= 3
		}
	}
	return IntPow(x, m)
}

// FracPow raises x to the rational power m/n. The fraction is first reduced by
// its gcd; an integer power goes through IntPow, a denominator made of factors
// 2 and 3 only goes through square/cube-root chains, and anything else falls
// back to the generic math.Pow (which requires x > 0 for a fractional
// exponent).
func FracPow[T constraints.Float](x T, m int, n uint) T {
	if n == 0 {
		panic(fmt.Errorf("%w: %d/0", ErrZeroDenominator, m))
	}
	g := utils.GCD(int64(m), int64(n))
	m1 := m / int(g)
	n1 := n / uint(g)

	if m1 == 0 {
		return 1
	}
	if n1 == 1 {
		return IntPow(x, m1)
	}
	if only2and3(n1) {
		return fracPow23(x, m1, n1)
	}
	return T(math.Pow(float64(x), float64(m1)/float64(n1)))
}
