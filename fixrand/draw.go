// SPDX-License-Identifier: MIT

package fixrand

import (
	"math/bits"

	"github.com/lockstep-sim/fix64/fixed"
)

// NextInt draws a uniformly distributed integer in [lo, hi) by the
// multiply-high range mapping: one 64×64 multiply, no rejection loop, so
// every draw consumes exactly one Uint64 and replay stays aligned. The
// mapping bias is below 2⁻⁶⁴·span, unobservable at simulation scale.
//
// hi > lo is a contract precondition and is not checked.
//
// Complexity: O(1).
func (s *Stream) NextInt(lo, hi int64) int64 {
	span := uint64(hi - lo)
	h, _ := bits.Mul64(s.Uint64(), span)

	return lo + int64(h)
}

// NextFixed draws a uniformly distributed value in [0, 1) at full raw
// granularity: every representable fraction is a possible outcome.
//
// Complexity: O(1).
func (s *Stream) NextFixed() fixed.Fixed {
	return fixed.FromRaw(int64(s.Uint64() >> (64 - fixed.FracBits)))
}

// NextFixedMax draws a uniformly distributed value in [0, max) by the
// same multiply-high mapping over raw units. max must be positive;
// NextFixedMax(Zero) returns Zero after consuming one draw.
//
// Complexity: O(1).
func (s *Stream) NextFixedMax(max fixed.Fixed) fixed.Fixed {
	h, _ := bits.Mul64(s.Uint64(), uint64(max.Raw()))

	return fixed.FromRaw(int64(h))
}

// NextFixedRange draws a uniformly distributed value in [lo, hi).
// hi > lo is a contract precondition and is not checked.
//
// Complexity: O(1).
func (s *Stream) NextFixedRange(lo, hi fixed.Fixed) fixed.Fixed {
	return lo.Add(s.NextFixedMax(hi.Sub(lo)))
}
