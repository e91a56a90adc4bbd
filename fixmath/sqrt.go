// SPDX-License-Identifier: MIT

package fixmath

import "github.com/lockstep-sim/fix64/fixed"

// Sqrt returns the square root of v, computed as a bit-by-bit integer
// square root of the raw value rescaled into a 128-bit intermediate,
// with round-to-nearest on the last bit.
//
// Exactness: Sqrt(0) == 0 and every perfect square of an integer or
// power-of-two fraction is exact (Sqrt(4) == 2, Sqrt(1/4) == 1/2).
//
// Errors: ErrDomain when v < 0; a negative radicand has no
// deterministic representation and is never silently clamped.
//
// Complexity: O(64) iterations, O(1) space.
func Sqrt(v fixed.Fixed) (fixed.Fixed, error) {
	if v < 0 {
		return fixed.Zero, ErrDomain
	}
	if v == 0 {
		return fixed.Zero, nil
	}

	// The root of raw·2³² is the root of the value in raw units.
	raw := uint64(v.Raw())

	return fixed.FromRaw(int64(isqrt128(raw>>(64-fixed.FracBits), raw<<fixed.FracBits))), nil
}

// isqrt128 computes round(√(hi·2⁶⁴+lo)) by the classic two-bits-per-step
// restoring method. The caller guarantees hi < 2³¹ (raw values are
// 63-bit magnitudes), which keeps the running remainder well inside
// 64 bits and the root inside 48 bits.
func isqrt128(hi, lo uint64) uint64 {
	var root, rem uint64
	for i := 0; i < 64; i++ {
		// Shift the next two radicand bits into the remainder.
		rem = rem<<2 | hi>>62
		hi = hi<<2 | lo>>62
		lo <<= 2

		root <<= 1
		if d := 2*root + 1; rem >= d {
			rem -= d
			root++
		}
	}
	// Round to nearest: the true root exceeds root+1/2 iff rem > root.
	if rem > root {
		root++
	}

	return root
}
