// SPDX-License-Identifier: MIT

// Package fixed: the Q31.32 number type, its constants and conversions.
// Arithmetic lives in arithmetic.go, rounding in rounding.go, comparison
// in compare.go.
package fixed

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Fixed is a fixed-point number stored as a signed 64-bit raw integer
// interpreted as value·2⁻³² (Q31.32).
//
// Fixed is an ordinary value type: ==, <, <=, >, >= compare raw values
// and therefore compare numeric values exactly. A Fixed literal such as
// Fixed(5) denotes FIVE RAW UNITS (5·2⁻³²), not the integer five; use
// FromInt or FromFraction to construct numbers.
type Fixed int64

// FracBits is the compile-time fractional-bit count (F). It is a build
// constant and is never serialized; see Raw for the persistence contract.
const FracBits = 32

// Representation constants — single source of truth for the raw layout.
const (
	// Zero is the additive identity.
	Zero Fixed = 0

	// One is the multiplicative identity: 1<<FracBits raw units.
	One Fixed = 1 << FracBits

	// Half is exactly one half.
	Half Fixed = 1 << (FracBits - 1)

	// Epsilon is the smallest positive representable increment (one raw
	// unit, 2⁻³² ≈ 2.33e-10).
	Epsilon Fixed = 1

	// MaxValue is the largest representable value (≈ 2.15e9). Saturating
	// operations clamp here instead of wrapping.
	MaxValue Fixed = math.MaxInt64

	// MinValue is the smallest representable value (≈ −2.15e9).
	MinValue Fixed = math.MinInt64

	// maxInt/minInt bound FromInt inputs that survive the <<FracBits shift.
	maxInt int64 = math.MaxInt32
	minInt int64 = math.MinInt32

	// fracMask isolates the fractional raw bits.
	fracMask uint64 = 1<<FracBits - 1
)

// Mathematical constants, pre-scaled into the raw domain.
//
// HalfPi is round(π/2·2³²). Pi and TwoPi are defined as exact multiples
// of HalfPi (one raw ulp below independently rounded π·2³²) so that
// quadrant reduction in fixtrig is exact at every axis: Sin(HalfPi),
// Cos(Pi) and friends hit table endpoints with zero remainder.
const (
	// HalfPi is π/2.
	HalfPi Fixed = 6746518852
	// Pi is π, exactly 2·HalfPi.
	Pi Fixed = 2 * HalfPi
	// TwoPi is 2π, exactly 4·HalfPi.
	TwoPi Fixed = 4 * HalfPi
	// QuarterPi is π/4, exactly HalfPi/2.
	QuarterPi Fixed = HalfPi / 2

	// E is Euler's number e.
	E Fixed = 11674931555
	// Ln2 is ln(2); Ln is computed as Log2·Ln2.
	Ln2 Fixed = 2977044472
	// Log2E is log₂(e) = 1/ln(2); Exp is computed as Exp2(x·Log2E).
	Log2E Fixed = 6196328019
	// Sqrt2 is √2.
	Sqrt2 Fixed = 6074001000

	// Rad2Deg is 180/π for exact constant-multiply angle conversion.
	Rad2Deg Fixed = 246083499208
	// Deg2Rad is π/180.
	Deg2Rad Fixed = 74961321
)

// rawScale is the float magnitude of One, for tooling conversions only.
const rawScale = 1 << FracBits

// FromInt converts a host integer to Fixed, saturating to
// MaxValue/MinValue when i falls outside the representable ±2³¹ range.
//
// Complexity: O(1).
func FromInt(i int64) Fixed {
	if i > maxInt {
		return MaxValue
	}
	if i < minInt {
		return MinValue
	}

	return Fixed(i << FracBits)
}

// FromFraction constructs the value n/d rounded to the nearest raw unit
// (ties away from zero). The quotient is computed in a 128-bit
// intermediate, so any int64 numerator/denominator pair is accepted.
//
// Returns ErrDivideByZero when d == 0. Magnitude overflow saturates.
//
// Complexity: O(1).
func FromFraction(n, d int64) (Fixed, error) {
	if d == 0 {
		return Zero, ErrDivideByZero
	}

	negative := (n < 0) != (d < 0)
	q := divRound128(absRaw(n), absRaw(d))

	return clampMagnitude(q, negative), nil
}

// FromRaw reinterprets a raw int64 as Fixed. Together with Raw it forms
// the serialization contract: persisting the raw value round-trips the
// number exactly on every platform.
func FromRaw(raw int64) Fixed { return Fixed(raw) }

// Raw returns the underlying scaled integer. This is the only externally
// persisted form of a Fixed value.
func (f Fixed) Raw() int64 { return int64(f) }

// Int returns the integer part, truncated toward zero.
//
// Complexity: O(1).
func (f Fixed) Int() int64 { return int64(f) / rawScale }

// FromFloat converts a host float to Fixed: multiply by the fractional
// scale, round to nearest, truncate to the raw integer, clamping to the
// representable range. NaN converts to Zero.
//
// Tooling/test convenience ONLY — never use in a determinism-sensitive
// runtime path.
func FromFloat[T constraints.Float](v T) Fixed {
	d := float64(v)
	if d != d { // NaN
		return Zero
	}
	r := math.Round(d * rawScale)
	if r >= float64(math.MaxInt64) {
		return MaxValue
	}
	if r <= float64(math.MinInt64) {
		return MinValue
	}

	return Fixed(int64(r))
}

// Float converts a Fixed to a host float. Tooling/test convenience ONLY.
func Float[T constraints.Float](f Fixed) T {
	return T(float64(f) / rawScale)
}

// Float64 is shorthand for Float[float64]. Tooling/test convenience ONLY.
func (f Fixed) Float64() float64 { return Float[float64](f) }

// String renders the value in decimal with up to ten fractional digits
// (trailing zeros trimmed). Diagnostic output only: the decimal form is
// NOT a round-trip format — persist Raw instead.
func (f Fixed) String() string {
	u := absRaw(int64(f))
	sign := ""
	if f < 0 {
		sign = "-"
	}

	ip := u >> FracBits
	fr := u & fracMask
	if fr == 0 {
		return fmt.Sprintf("%s%d", sign, ip)
	}

	// Scale the 32 fractional bits to ten decimal digits with rounding.
	hi, lo := bits.Mul64(fr, 1e10)
	lo, carry := bits.Add64(lo, 1<<(FracBits-1), 0)
	hi += carry
	dec := hi<<FracBits | lo>>FracBits

	digits := fmt.Sprintf("%010d", dec)
	end := len(digits)
	for end > 1 && digits[end-1] == '0' {
		end--
	}

	return fmt.Sprintf("%s%d.%s", sign, ip, digits[:end])
}
