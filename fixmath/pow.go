// SPDX-License-Identifier: MIT

package fixmath

import "github.com/lockstep-sim/fix64/fixed"

// Pow returns base^exp.
//
// Dispatch:
//   - exp == 0        ⇒ One for every finite base, including base == 0,
//     by convention.
//   - integer exp     ⇒ repeated squaring: fast and exact until
//     saturation, valid for negative bases.
//   - fractional exp  ⇒ Exp2(exp·Log2(base)), requiring base > 0.
//
// Errors:
//   - ErrDomain when base == 0 and exp < 0 (the result is undefined, not
//     "infinity").
//   - ErrDomain when base < 0 and exp is fractional (no real result).
//
// Complexity: O(log |exp|) multiplies on the integer path, O(FracBits)
// otherwise.
func Pow(base, exp fixed.Fixed) (fixed.Fixed, error) {
	if exp == 0 {
		return fixed.One, nil
	}
	if base == 0 {
		if exp < 0 {
			return fixed.Zero, ErrDomain
		}

		return fixed.Zero, nil
	}
	if exp.Frac() == 0 {
		return powInt(base, exp.Int()), nil
	}
	if base < 0 {
		return fixed.Zero, ErrDomain
	}

	l2, _ := Log2(base) // base > 0 here; error impossible

	return Exp2(exp.Mul(l2)), nil
}

// powInt raises a nonzero base to an integer power by repeated squaring.
// Negative powers invert the positive result; if that result underflowed
// to zero, the true reciprocal magnitude exceeds the range and the
// function saturates with the mathematically correct sign.
func powInt(base fixed.Fixed, n int64) fixed.Fixed {
	negative := n < 0
	if negative {
		n = -n
	}
	oddPower := n&1 == 1

	result := fixed.One
	acc := base
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(acc)
		}
		n >>= 1
		if n > 0 {
			acc = acc.Mul(acc)
		}
	}

	if !negative {
		return result
	}

	inv, err := fixed.One.Div(result)
	if err != nil {
		// result underflowed to zero: saturate per the sign of base^n.
		if base < 0 && oddPower {
			return fixed.MinValue
		}

		return fixed.MaxValue
	}

	return inv
}
