package fixed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockstep-sim/fix64/fixed"
)

// TestFromInt_Exact verifies that small integers convert exactly and
// round-trip through Int().
func TestFromInt_Exact(t *testing.T) {
	for _, i := range []int64{0, 1, -1, 2, 42, -1000, 1 << 20, -(1 << 20)} {
		v := fixed.FromInt(i)
		assert.Equal(t, i, v.Int(), "FromInt(%d) must round-trip", i)
		assert.Equal(t, i<<fixed.FracBits, v.Raw(), "raw layout of %d", i)
	}
}

// TestFromInt_Saturates verifies that integers outside ±2³¹ clamp to the
// representable extremes instead of wrapping.
func TestFromInt_Saturates(t *testing.T) {
	assert.Equal(t, fixed.MaxValue, fixed.FromInt(1<<40), "huge positive saturates")
	assert.Equal(t, fixed.MinValue, fixed.FromInt(-(1 << 40)), "huge negative saturates")
	// The boundary values themselves are representable.
	assert.Equal(t, int64(1<<31-1), fixed.FromInt(1<<31-1).Int())
	assert.Equal(t, int64(-(1 << 31)), fixed.FromInt(-(1<<31)).Int())
}

// TestFromFraction_ZeroDenominator verifies the divide-by-zero sentinel.
func TestFromFraction_ZeroDenominator(t *testing.T) {
	_, err := fixed.FromFraction(1, 0)
	assert.ErrorIs(t, err, fixed.ErrDivideByZero)
	_, err = fixed.FromFraction(0, 0)
	assert.ErrorIs(t, err, fixed.ErrDivideByZero)
}

// TestFromFraction_RoundTrip verifies that FromFraction(n, d) multiplied
// back by d reconstructs n within one raw unit per the rounding bound.
func TestFromFraction_RoundTrip(t *testing.T) {
	cases := [][2]int64{
		{1, 2}, {1, 3}, {2, 3}, {-1, 3}, {1, -3}, {-7, -9},
		{22, 7}, {355, 113}, {1, 1<<31 - 1}, {123456789, 97},
	}
	for _, c := range cases {
		n, d := c[0], c[1]
		v, err := fixed.FromFraction(n, d)
		require.NoError(t, err, "FromFraction(%d,%d)", n, d)

		back := v.Mul(fixed.FromInt(d))
		// One raw unit of quotient rounding scales to at most |d| raw units.
		eps := fixed.FromRaw(d)
		if d < 0 {
			eps = eps.Neg()
		}
		assert.True(t, back.ApproxEqualAbs(fixed.FromInt(n), eps),
			"(%d/%d)·%d = %v, want %v", n, d, d, back, fixed.FromInt(n))
	}
}

// TestFromFraction_ExactHalves verifies exactly representable rationals.
func TestFromFraction_ExactHalves(t *testing.T) {
	half, err := fixed.FromFraction(1, 2)
	require.NoError(t, err)
	assert.Equal(t, fixed.Half, half)

	quarter, err := fixed.FromFraction(1, 4)
	require.NoError(t, err)
	assert.Equal(t, fixed.Half/2, quarter)

	neg, err := fixed.FromFraction(-3, 2)
	require.NoError(t, err)
	assert.Equal(t, fixed.One.Add(fixed.Half).Neg(), neg)
}

// TestFloatConversion_Clamps verifies the tooling float path: multiply,
// round, truncate, clamp, plus NaN mapping to zero.
func TestFloatConversion_Clamps(t *testing.T) {
	assert.Equal(t, fixed.One, fixed.FromFloat(1.0))
	assert.Equal(t, fixed.Half, fixed.FromFloat(0.5))
	assert.Equal(t, fixed.MaxValue, fixed.FromFloat(1e30), "overflow clamps high")
	assert.Equal(t, fixed.MinValue, fixed.FromFloat(-1e30), "overflow clamps low")

	nan := 0.0
	nan /= nan
	assert.Equal(t, fixed.Zero, fixed.FromFloat(nan), "NaN converts to zero")

	assert.InDelta(t, 2.75, fixed.FromFloat(2.75).Float64(), 1e-9)
	assert.InDelta(t, -0.125, fixed.FromFloat(float32(-0.125)).Float64(), 1e-6)
}

// TestRaw_RoundTrip verifies the serialization contract: the raw int64 is
// the value.
func TestRaw_RoundTrip(t *testing.T) {
	for _, v := range []fixed.Fixed{
		fixed.Zero, fixed.One, fixed.Pi, fixed.MinValue, fixed.MaxValue,
		fixed.Epsilon, fixed.FromInt(-12345).Add(fixed.Half),
	} {
		assert.Equal(t, v, fixed.FromRaw(v.Raw()))
	}
}

// TestString_Rendering spot-checks the diagnostic decimal form.
func TestString_Rendering(t *testing.T) {
	assert.Equal(t, "0", fixed.Zero.String())
	assert.Equal(t, "1", fixed.One.String())
	assert.Equal(t, "-2", fixed.FromInt(-2).String())
	assert.Equal(t, "0.5", fixed.Half.String())
	assert.Equal(t, "-1.25", fixed.One.Add(fixed.Half/2).Neg().String())
}

// TestConstants_Consistency verifies the documented relationships between
// the pre-scaled constants.
func TestConstants_Consistency(t *testing.T) {
	assert.Equal(t, fixed.Pi, fixed.HalfPi+fixed.HalfPi, "Pi is exactly 2·HalfPi")
	assert.Equal(t, fixed.TwoPi, fixed.Pi+fixed.Pi, "TwoPi is exactly 2·Pi")
	assert.Equal(t, fixed.QuarterPi, fixed.HalfPi/2, "QuarterPi is exactly HalfPi/2")
	assert.InDelta(t, 3.14159265358979, fixed.Pi.Float64(), 1e-9)
	assert.InDelta(t, 0.69314718055995, fixed.Ln2.Float64(), 1e-9)
	assert.InDelta(t, 1.44269504088896, fixed.Log2E.Float64(), 1e-9)
	assert.InDelta(t, 2.71828182845905, fixed.E.Float64(), 1e-9)
	assert.InDelta(t, 1.41421356237310, fixed.Sqrt2.Float64(), 1e-9)
	assert.InDelta(t, 57.2957795130823, fixed.Rad2Deg.Float64(), 1e-7)
	assert.InDelta(t, 0.01745329251994, fixed.Deg2Rad.Float64(), 1e-9)
}
