package fixtrig_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockstep-sim/fix64/fixed"
	"github.com/lockstep-sim/fix64/fixmath"
	"github.com/lockstep-sim/fix64/fixtrig"
)

// tableTol bounds the lookup error observable through the public API:
// interpolation on a 4096-step table stays below 2e-7 of full scale.
const tableTol = 2e-7

// TestSin_ExactAxes verifies the axis values hit the table endpoints with
// zero remainder, since TwoPi is exactly 4·HalfPi.
func TestSin_ExactAxes(t *testing.T) {
	cases := []struct {
		name string
		in   fixed.Fixed
		want fixed.Fixed
	}{
		{"zero", fixed.Zero, fixed.Zero},
		{"half_pi", fixed.HalfPi, fixed.One},
		{"pi", fixed.Pi, fixed.Zero},
		{"three_half_pi", fixed.Pi.Add(fixed.HalfPi), fixed.One.Neg()},
		{"two_pi", fixed.TwoPi, fixed.Zero},
		{"neg_half_pi", fixed.HalfPi.Neg(), fixed.One.Neg()},
		{"five_half_pi", fixed.TwoPi.Add(fixed.HalfPi), fixed.One},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, fixtrig.Sin(c.in))
		})
	}
}

// TestCos_ExactAxes mirrors the sine axis check through the π/2 phase
// shift.
func TestCos_ExactAxes(t *testing.T) {
	cases := []struct {
		name string
		in   fixed.Fixed
		want fixed.Fixed
	}{
		{"zero", fixed.Zero, fixed.One},
		{"half_pi", fixed.HalfPi, fixed.Zero},
		{"pi", fixed.Pi, fixed.One.Neg()},
		{"three_half_pi", fixed.Pi.Add(fixed.HalfPi), fixed.Zero},
		{"two_pi", fixed.TwoPi, fixed.One},
		{"neg_pi", fixed.Pi.Neg(), fixed.One.Neg()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, fixtrig.Cos(c.in))
		})
	}
}

// TestSin_FloatSweep cross-checks a dense sweep over several periods
// against the float oracle, evaluated at the exactly represented angle.
func TestSin_FloatSweep(t *testing.T) {
	for raw := -3 * int64(fixed.TwoPi); raw <= 3*int64(fixed.TwoPi); raw += int64(fixed.TwoPi) / 257 {
		a := fixed.FromRaw(raw)
		af := a.Float64()
		assert.InDelta(t, math.Sin(af), fixtrig.Sin(a).Float64(), tableTol, "Sin(%v)", a)
		assert.InDelta(t, math.Cos(af), fixtrig.Cos(a).Float64(), tableTol, "Cos(%v)", a)
	}
}

// TestSin_Periodicity verifies bit-exact agreement one period apart:
// reduction is an integer remainder, not an approximation.
func TestSin_Periodicity(t *testing.T) {
	for _, a := range []fixed.Fixed{fixed.Zero, fixed.QuarterPi, fixed.FromInt(1), fixed.FromRaw(12345678901)} {
		assert.Equal(t, fixtrig.Sin(a), fixtrig.Sin(a.Add(fixed.TwoPi)), "period +2π at %v", a)
		assert.Equal(t, fixtrig.Sin(a), fixtrig.Sin(a.Sub(fixed.TwoPi)), "period −2π at %v", a)
	}
}

// TestSin_OddSymmetry verifies Sin(−a) tracks −Sin(a) within the
// quantization of the quadrant position (a few raw units).
func TestSin_OddSymmetry(t *testing.T) {
	for _, a := range []fixed.Fixed{fixed.QuarterPi, fixed.One, fixed.FromRaw(987654321)} {
		got := fixtrig.Sin(a.Neg())
		want := fixtrig.Sin(a).Neg()
		assert.True(t, got.ApproxEqualAbs(want, 16), "Sin(−%v) = %v, want ≈ %v", a, got, want)
	}
}

// TestSin_PythagoreanIdentity checks sin²+cos² == 1 within lookup error
// across a sweep.
func TestSin_PythagoreanIdentity(t *testing.T) {
	tol := fixed.FromFloat(3 * tableTol)
	for raw := int64(0); raw < int64(fixed.TwoPi); raw += int64(fixed.TwoPi) / 101 {
		a := fixed.FromRaw(raw)
		s, c := fixtrig.Sin(a), fixtrig.Cos(a)
		sum := s.Mul(s).Add(c.Mul(c))
		assert.True(t, sum.ApproxEqualAbs(fixed.One, tol), "sin²+cos² at %v = %v", a, sum)
	}
}

// TestTan_Poles verifies the cosine zeros surface as ErrDivideByZero
// rather than a saturated stand-in.
func TestTan_Poles(t *testing.T) {
	for _, a := range []fixed.Fixed{
		fixed.HalfPi,
		fixed.HalfPi.Neg(),
		fixed.HalfPi.Add(fixed.Pi),
		fixed.HalfPi.Add(fixed.TwoPi),
	} {
		got, err := fixtrig.Tan(a)
		assert.ErrorIs(t, err, fixed.ErrDivideByZero, "Tan(%v)", a)
		assert.Equal(t, fixed.Zero, got)
	}
}

// TestTan_Values checks ordinary points against the float oracle. The
// quotient amplifies table error near the poles, so the sweep stays away
// from them.
func TestTan_Values(t *testing.T) {
	for _, f := range []float64{-1.0, -0.5, 0.0, 0.25, 0.5, 0.785, 1.0, 1.3} {
		a := fixed.FromFloat(f)
		got, err := fixtrig.Tan(a)
		require.NoError(t, err, "Tan(%v)", a)
		assert.InDelta(t, math.Tan(a.Float64()), got.Float64(), 1e-5, "Tan(%v)", a)
	}
}

// TestSinToCos verifies the identity conversion: exact endpoints, the
// float oracle in between, and domain rejection beyond |1|.
func TestSinToCos(t *testing.T) {
	got, err := fixtrig.SinToCos(fixed.One)
	require.NoError(t, err)
	assert.Equal(t, fixed.Zero, got)

	got, err = fixtrig.SinToCos(fixed.Zero)
	require.NoError(t, err)
	assert.Equal(t, fixed.One, got)

	got, err = fixtrig.SinToCos(fixed.Half)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(0.75), got.Float64(), 1e-9)

	_, err = fixtrig.SinToCos(fixed.One.Add(fixed.Epsilon))
	assert.ErrorIs(t, err, fixmath.ErrDomain)
	_, err = fixtrig.SinToCos(fixed.FromInt(-2))
	assert.ErrorIs(t, err, fixmath.ErrDomain)
}

// TestAngleConversion checks the pre-scaled constant conversions round
// cleanly in both directions.
func TestAngleConversion(t *testing.T) {
	assert.Equal(t, fixed.FromInt(180), fixtrig.RadToDeg(fixed.Pi).Round())
	assert.Equal(t, fixed.FromInt(90), fixtrig.RadToDeg(fixed.HalfPi).Round())

	rad := fixtrig.DegToRad(fixed.FromInt(180))
	assert.True(t, rad.ApproxEqualAbs(fixed.Pi, 128), "DegToRad(180) = %v", rad)
	assert.InDelta(t, math.Pi/4, fixtrig.DegToRad(fixed.FromInt(45)).Float64(), 1e-7)
}
