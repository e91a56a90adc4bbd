// SPDX-License-Identifier: MIT

package fixmath

import (
	"math/bits"

	"github.com/lockstep-sim/fix64/fixed"
)

// Log2 returns the base-2 logarithm of v.
//
// Algorithm (integer-only, no table):
//  1. The integer part is the bit position of the most significant raw
//     bit relative to the binary point.
//  2. The mantissa is normalized into Q2.62 on [1, 2) and squared once
//     per fractional bit: each squaring doubles the exponent, and the
//     overflow past 2 is exactly the next bit of the fraction.
//
// Exactness: powers of two are exact (Log2(1) == 0, Log2(8) == 3,
// Log2(1/2) == −1); other inputs are correct to the last raw unit or so.
//
// Errors: ErrDomain when v <= 0.
//
// Complexity: O(FracBits) squarings, O(1) space.
func Log2(v fixed.Fixed) (fixed.Fixed, error) {
	if v <= 0 {
		return fixed.Zero, ErrDomain
	}

	raw := uint64(v.Raw())
	msb := bits.Len64(raw) - 1
	intPart := int64(msb - fixed.FracBits)

	// Normalize to Q2.62 in [1, 2); msb <= 62 for any positive raw.
	z := raw << (62 - uint(msb))

	var frac uint64
	for i := 0; i < fixed.FracBits; i++ {
		z = squareQ62(z) // stays in [1, 4)
		frac <<= 1
		if z >= 1<<63 { // z >= 2: emit a fraction bit, renormalize
			z >>= 1
			frac |= 1
		}
	}

	return fixed.FromRaw(intPart<<fixed.FracBits + int64(frac)), nil
}

// Ln returns the natural logarithm as Log2(v)·ln(2): one constant
// multiply instead of a second algorithm, which keeps Log2 and Ln
// mutually consistent by construction.
//
// Errors: ErrDomain when v <= 0.
func Ln(v fixed.Fixed) (fixed.Fixed, error) {
	l2, err := Log2(v)
	if err != nil {
		return fixed.Zero, err
	}

	return l2.Mul(fixed.Ln2), nil
}

// squareQ62 squares a Q2.62 value in [1, 2), truncating below 2⁻⁶².
// Truncation (rather than rounding) keeps the result strictly below 4
// so the [1, 4) invariant of the Log2 loop cannot overflow.
func squareQ62(z uint64) uint64 {
	hi, lo := bits.Mul64(z, z)

	return hi<<2 | lo>>62
}
