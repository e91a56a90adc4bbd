// SPDX-License-Identifier: MIT

package fixtrig

import (
	"github.com/lockstep-sim/fix64/fixed"
	"github.com/lockstep-sim/fix64/fixmath"
)

// quarterPiQ62 is round(π/4·2⁶²), the pivot of the arctangent range
// reduction.
const quarterPiQ62 uint64 = 3622009729038561421

// tanEighthPi is tan(π/8) = √2−1 in raw units: inputs at or below it go
// straight to the series; larger ones are reduced first.
const tanEighthPi fixed.Fixed = 1779033704

// atanTerms is the fixed series length. At |x| <= tan(π/8) the first
// dropped term is below 2⁻³³ of full scale, under half a raw unit.
const atanTerms = 12

// Atan returns the arctangent of v, in (−HalfPi, HalfPi) for every
// finite input including saturated magnitudes.
//
// Range reduction (standard identities, applied to |v|):
//
//	v > 1        ⇒ π/2 − atan(1/v)
//	v > tan(π/8) ⇒ π/4 + atan((v−1)/(v+1))
//
// leaving a series argument within [0, tan(π/8)], where the odd Taylor
// series converges to below one raw unit in twelve terms.
//
// Complexity: O(atanTerms).
func Atan(v fixed.Fixed) fixed.Fixed {
	if v == 0 {
		return fixed.Zero
	}

	return fixedFromQ62(atanAbs(v.Abs()), v < 0)
}

// Atan2 returns the four-quadrant arctangent of y/x in (−Pi, Pi].
//
// Axis cases are exact by definition, not by approximation:
//
//	Atan2(0, +x) == Zero    Atan2(+y, 0) == HalfPi
//	Atan2(0, −x) == Pi      Atan2(−y, 0) == −HalfPi
//
// Atan2(0, 0) returns Zero (documented convention). Elsewhere the result
// is Atan(y/x) adjusted by quadrant; the division saturates for extreme
// ratios, which Atan absorbs gracefully.
//
// Complexity: O(1).
func Atan2(y, x fixed.Fixed) fixed.Fixed {
	switch {
	case y == 0:
		if x < 0 {
			return fixed.Pi
		}

		return fixed.Zero
	case x == 0:
		if y > 0 {
			return fixed.HalfPi
		}

		return fixed.HalfPi.Neg()
	}

	z, _ := y.Div(x) // both operands nonzero here
	a := Atan(z)
	switch {
	case x > 0:
		return a
	case y > 0:
		return a.Add(fixed.Pi)
	default:
		return a.Sub(fixed.Pi)
	}
}

// Asin returns the arcsine of v in [−HalfPi, HalfPi], computed as
// atan(v/√(1−v²)) with the endpoints handled exactly.
//
// Errors: fixmath.ErrDomain when |v| > 1; out-of-domain input is
// rejected, never clamped. Asin and Acos share this one error kind.
//
// Complexity: O(1).
func Asin(v fixed.Fixed) (fixed.Fixed, error) {
	if v.Abs() > fixed.One {
		return fixed.Zero, fixmath.ErrDomain
	}
	if v == fixed.One {
		return fixed.HalfPi, nil
	}
	if v == -fixed.One {
		return fixed.HalfPi.Neg(), nil
	}

	// |v| < 1 keeps 1−v² at least one raw unit, so c > 0.
	c, _ := SinToCos(v)
	w, _ := v.Div(c)

	return Atan(w), nil
}

// Acos returns the arccosine of v in [0, Pi] as HalfPi − Asin(v), which
// makes Acos(One) == Zero and Acos(−One) == Pi exact.
//
// Errors: fixmath.ErrDomain when |v| > 1, the same kind as Asin.
func Acos(v fixed.Fixed) (fixed.Fixed, error) {
	a, err := Asin(v)
	if err != nil {
		return fixed.Zero, err
	}

	return fixed.HalfPi.Sub(a), nil
}

// atanAbs computes atan(v) for v >= 0 in Q2.62 via the two reductions.
func atanAbs(v fixed.Fixed) uint64 {
	if v > fixed.One {
		inv, _ := fixed.One.Div(v) // v > 1: in (0, 1), never zero for raw v <= 2⁶³

		return halfPiQ62 - atanAbs(inv)
	}
	if v > tanEighthPi {
		num := fixed.One.Sub(v) // fold (v−1)/(v+1) as −(1−v)/(1+v) >= 0
		den := fixed.One.Add(v)
		w, _ := num.Div(den)

		return quarterPiQ62 - atanPolyQ62(q62FromUnit(w))
	}

	return atanPolyQ62(q62FromUnit(v))
}

// atanPolyQ62 evaluates the odd series x − x³/3 + x⁵/5 − … for
// x in [0, tan(π/8)], Q2.62 in and out.
func atanPolyQ62(x uint64) uint64 {
	x2 := mulQ62(x, x)
	sum := x
	term := x
	for k := 1; k < atanTerms; k++ {
		term = mulQ62(term, x2)
		t := term / uint64(2*k+1)
		if k&1 == 1 {
			sum -= t
		} else {
			sum += t
		}
	}

	return sum
}

// q62FromUnit widens a Fixed in [0, 1] into Q2.62.
func q62FromUnit(v fixed.Fixed) uint64 {
	return uint64(v.Raw()) << (62 - fixed.FracBits)
}

// fixedFromQ62 narrows a non-negative Q2.62 angle back to raw units with
// round-to-nearest, applying the sign.
func fixedFromQ62(q uint64, negative bool) fixed.Fixed {
	r := int64((q + 1<<(62-fixed.FracBits-1)) >> (62 - fixed.FracBits))
	if negative {
		return fixed.FromRaw(-r)
	}

	return fixed.FromRaw(r)
}
