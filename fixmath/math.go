// SPDX-License-Identifier: MIT

// Package fixmath: order helpers and interpolation. Everything here is a
// thin, total composition over fixed primitives; the transcendental
// functions live in sqrt.go, log.go, exp.go and pow.go.
package fixmath

import (
	"math/bits"

	"github.com/lockstep-sim/fix64/fixed"
)

// Min returns the smaller of a and b.
func Min(a, b fixed.Fixed) fixed.Fixed {
	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max(a, b fixed.Fixed) fixed.Fixed {
	if b > a {
		return b
	}

	return a
}

// Clamp limits v to [lo, hi]. When lo > hi the bounds are nonsensical;
// the function returns lo (documented, consistent, never panics).
//
// Complexity: O(1).
func Clamp(v, lo, hi fixed.Fixed) fixed.Fixed {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v fixed.Fixed) fixed.Fixed {
	return Clamp(v, fixed.Zero, fixed.One)
}

// Lerp interpolates linearly from a to b by t, with t clamped to [0, 1]:
// Lerp(a, b, 0) == a and Lerp(a, b, 1) == b exactly.
//
// Complexity: O(1).
func Lerp(a, b, t fixed.Fixed) fixed.Fixed {
	return LerpUnclamped(a, b, Clamp01(t))
}

// LerpUnclamped interpolates a + (b−a)·t without clamping t, so it
// extrapolates beyond the endpoints. Saturating arithmetic applies.
func LerpUnclamped(a, b, t fixed.Fixed) fixed.Fixed {
	return a.Add(b.Sub(a).Mul(t))
}

// MoveTowards advances current toward target by at most maxDelta (an
// absolute distance; its sign is normalized away). When target is within
// one step the result snaps to target exactly.
//
// Complexity: O(1).
func MoveTowards(current, target, maxDelta fixed.Fixed) fixed.Fixed {
	maxDelta = maxDelta.Abs()
	delta := target.Sub(current)
	if delta.Abs() <= maxDelta {
		return target
	}
	if delta > 0 {
		return current.Add(maxDelta)
	}

	return current.Sub(maxDelta)
}

// maxPrecisionDigits bounds RoundToPrecision: 10⁹ is the largest decimal
// scale whose double-rounding intermediates stay inside 128 bits.
const maxPrecisionDigits = 9

// pow10 holds the decimal scales for RoundToPrecision.
var pow10 = [maxPrecisionDigits + 1]uint64{
	1, 10, 100, 1000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// RoundToPrecision rounds v to the given number of decimal digits by
// scaling into the decimal domain, rounding to the nearest raw unit
// (ties away from zero) and rescaling. digits is clamped to
// [0, maxPrecisionDigits]; digits == 0 rounds to the nearest integer.
//
// Both roundings run in 128-bit intermediates, so no operand magnitude
// loses precision or saturates prematurely.
//
// Complexity: O(1).
func RoundToPrecision(v fixed.Fixed, digits int) fixed.Fixed {
	if digits <= 0 {
		return v.Round()
	}
	if digits > maxPrecisionDigits {
		digits = maxPrecisionDigits
	}
	p10 := pow10[digits]
	negative := v < 0

	// Scale: t = round(|v|·10ᵈ) in raw-integer units.
	hi, lo := bits.Mul64(rawMagnitude(v), p10)
	lo, carry := bits.Add64(lo, 1<<(fixed.FracBits-1), 0)
	hi += carry
	t := hi<<fixed.FracBits | lo>>fixed.FracBits

	// Rescale: round(t·2³²/10ᵈ). t>>32 < 10ᵈ holds for every |v| ≤ 2⁶³,
	// so the 128-by-64 division cannot trap.
	quo, rem := bits.Div64(t>>(64-fixed.FracBits), t<<fixed.FracBits, p10)
	if 2*rem >= p10 {
		quo++
	}

	return signedFromMagnitude(quo, negative)
}
