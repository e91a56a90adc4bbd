// SPDX-License-Identifier: MIT

// Package fixed: saturating arithmetic over the raw representation.
//
// Overflow policy (deliberate): Add/Sub/Mul saturate to MaxValue or
// MinValue. Silent wraparound would corrupt a simulation and raising on
// every bulk arithmetic call would make numeric code fragile; a clamped
// value stays valid and order-consistent. Division by zero is the one
// detectable error: it returns ErrDivideByZero, never a saturated stand-in.
package fixed

import (
	"math"
	"math/bits"
)

// Add returns f+o, saturating on overflow.
//
// Complexity: O(1).
func (f Fixed) Add(o Fixed) Fixed {
	sum := f + o
	if f >= 0 && o >= 0 && sum < 0 {
		return MaxValue
	}
	if f < 0 && o < 0 && sum >= 0 {
		return MinValue
	}

	return sum
}

// Sub returns f−o, saturating on overflow.
//
// Complexity: O(1).
func (f Fixed) Sub(o Fixed) Fixed {
	diff := f - o
	if f >= 0 && o < 0 && diff < 0 {
		return MaxValue
	}
	if f < 0 && o >= 0 && diff >= 0 {
		return MinValue
	}

	return diff
}

// Mul returns f·o computed in a 128-bit intermediate, rescaled by the
// fractional width with round-half-away-from-zero, saturating on
// overflow.
//
// Complexity: O(1).
func (f Fixed) Mul(o Fixed) Fixed {
	if f == 0 || o == 0 {
		return Zero
	}
	negative := (f < 0) != (o < 0)

	hi, lo := bits.Mul64(absRaw(int64(f)), absRaw(int64(o)))
	// Rescale product>>FracBits with rounding; the carry may ripple into hi.
	lo, carry := bits.Add64(lo, 1<<(FracBits-1), 0)
	hi += carry
	if hi >= 1<<FracBits {
		// Rescaled magnitude exceeds 64 bits outright.
		if negative {
			return MinValue
		}

		return MaxValue
	}

	return clampMagnitude(hi<<FracBits|lo>>FracBits, negative)
}

// Div returns f/o rounded to the nearest raw unit (ties away from zero).
// The dividend is rescaled into a 128-bit intermediate before integer
// division, so precision never depends on operand magnitude.
//
// Returns ErrDivideByZero when o is exactly zero. Magnitude overflow
// (e.g. MaxValue/Epsilon) saturates and is NOT an error.
//
// Complexity: O(1).
func (f Fixed) Div(o Fixed) (Fixed, error) {
	if o == 0 {
		return Zero, ErrDivideByZero
	}
	negative := (f < 0) != (o < 0)

	return clampMagnitude(divRound128(absRaw(int64(f)), absRaw(int64(o))), negative), nil
}

// Neg returns −f, saturating at MinValue (whose true negation is not
// representable).
func (f Fixed) Neg() Fixed {
	if f == MinValue {
		return MaxValue
	}

	return -f
}

// Abs returns |f|, saturating at MinValue.
func (f Fixed) Abs() Fixed {
	if f >= 0 {
		return f
	}

	return f.Neg()
}

// absRaw returns |i| as an unsigned magnitude; math.MinInt64 maps to 2⁶³
// without overflow.
func absRaw(i int64) uint64 {
	if i < 0 {
		return uint64(-i)
	}

	return uint64(i)
}

// divRound128 computes round((n<<FracBits)/d) for unsigned magnitudes,
// ties away from zero. Quotients that do not fit 64 bits collapse to
// MaxUint64; clampMagnitude saturates them.
func divRound128(n, d uint64) uint64 {
	hi, lo := n>>(64-FracBits), n<<FracBits
	if hi >= d {
		return math.MaxUint64
	}

	quo, rem := bits.Div64(hi, lo, d)
	if 2*rem >= d && quo != math.MaxUint64 {
		quo++
	}

	return quo
}

// clampMagnitude converts an unsigned magnitude and sign into Fixed,
// saturating outside the signed range. A magnitude of exactly 2⁶³ with a
// negative sign is MinValue itself, not an overflow.
func clampMagnitude(mag uint64, negative bool) Fixed {
	if negative {
		if mag >= 1<<63 {
			return MinValue
		}

		return Fixed(-int64(mag))
	}
	if mag > math.MaxInt64 {
		return MaxValue
	}

	return Fixed(int64(mag))
}
