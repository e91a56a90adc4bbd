// SPDX-License-Identifier: MIT

package fixmath

import (
	"sync"

	"github.com/lockstep-sim/fix64/fixed"
)

// exp2Roots holds the square-root chain 2^(2⁻¹), 2^(2⁻²), … 2^(2⁻³²).
// It is built exactly once, lazily, from Sqrt itself (never from host
// floats), so Exp2 inherits Sqrt's cross-platform determinism. After
// exp2Once completes the array is immutable and safe for unsynchronized
// concurrent reads.
var (
	exp2Once  sync.Once
	exp2Roots [fixed.FracBits]fixed.Fixed
)

func exp2Table() *[fixed.FracBits]fixed.Fixed {
	exp2Once.Do(func() {
		c, _ := Sqrt(fixed.FromInt(2)) // 2 is in domain; error impossible
		for k := 0; k < fixed.FracBits; k++ {
			exp2Roots[k] = c
			c, _ = Sqrt(c)
		}
	})

	return &exp2Roots
}

// Exp2 returns 2^x.
//
// The fractional part selects square-root-chain constants (one per set
// bit), multiplied together in [1, 2); the integer part is a final
// binary shift. Exp2 is total: magnitude overflow saturates to MaxValue
// and extreme negative exponents underflow to Zero; neither is an
// error, matching the saturation policy of the core arithmetic.
//
// Exactness: integer x gives exact powers of two until saturation
// (Exp2(3) == 8, Exp2(−1) == 1/2).
//
// Complexity: O(FracBits) multiplies, O(1) space.
func Exp2(x fixed.Fixed) fixed.Fixed {
	floor := x.Floor()
	n := floor.Int()
	frac := uint64(x.Sub(floor).Raw()) // in [0, 2³²), exact

	r := fixed.One
	roots := exp2Table()
	for k := 0; k < fixed.FracBits; k++ {
		if frac&(1<<uint(fixed.FracBits-1-k)) != 0 {
			r = r.Mul(roots[k])
		}
	}

	switch {
	case n >= 31:
		// r >= 1, so any shift of 31+ exceeds the representable range.
		return fixed.MaxValue
	case n >= 0:
		// r < 2 keeps raw<<n inside 63 bits for n <= 30.
		return fixed.FromRaw(r.Raw() << uint(n))
	default:
		k := uint64(-n)
		if k >= 64 {
			return fixed.Zero
		}

		// Halving with round-to-nearest on the dropped bit.
		return fixed.FromRaw(int64((uint64(r.Raw()) + 1<<(k-1)) >> k))
	}
}

// Exp returns e^x as Exp2(x·log₂e), the same constant-multiply layering
// used by Ln, so Exp and Exp2 cannot drift apart.
func Exp(x fixed.Fixed) fixed.Fixed {
	return Exp2(x.Mul(fixed.Log2E))
}
