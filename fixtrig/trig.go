// SPDX-License-Identifier: MIT

package fixtrig

import (
	"github.com/lockstep-sim/fix64/fixed"
	"github.com/lockstep-sim/fix64/fixmath"
)

// Sin returns the sine of an angle in radians.
//
// The angle is reduced modulo 2π into [0, 2π), folded into [0, π/2] by
// quadrant symmetry, and looked up with linear interpolation. Because
// fixed.TwoPi is exactly 4·HalfPi, every multiple of HalfPi reduces with
// zero remainder: Sin(HalfPi) == One and Sin(Pi) == Zero exactly.
//
// Complexity: O(1).
func Sin(a fixed.Fixed) fixed.Fixed {
	return sinReduced(reduce(a))
}

// Cos returns the cosine of an angle in radians, computed as the sine
// phase-shifted by π/2 inside the already-reduced domain (no saturation
// hazard near the extremes, no second table, and Sin/Cos stay mutually
// consistent by construction).
//
// Complexity: O(1).
func Cos(a fixed.Fixed) fixed.Fixed {
	m := reduce(a) + int64(fixed.HalfPi)
	if m >= int64(fixed.TwoPi) {
		m -= int64(fixed.TwoPi)
	}

	return sinReduced(m)
}

// Tan returns sin/cos for an angle in radians.
//
// Errors: fixed.ErrDivideByZero when Cos(a) is exactly zero (the poles
// at ±π/2 modulo π), the same detectable condition as dividing by a
// zero Fixed, never an "infinite" stand-in.
//
// Complexity: O(1).
func Tan(a fixed.Fixed) (fixed.Fixed, error) {
	c := Cos(a)
	if c == 0 {
		return fixed.Zero, fixed.ErrDivideByZero
	}

	return Sin(a).Div(c)
}

// SinToCos converts a sine value into the corresponding non-negative
// cosine magnitude via the Pythagorean identity √(1−s²).
//
// Exactness: SinToCos(One) == Zero and SinToCos(Zero) == One.
//
// Errors: fixmath.ErrDomain when |s| > 1.
func SinToCos(s fixed.Fixed) (fixed.Fixed, error) {
	if s.Abs() > fixed.One {
		return fixed.Zero, fixmath.ErrDomain
	}

	return fixmath.Sqrt(fixed.One.Sub(s.Mul(s)))
}

// RadToDeg converts radians to degrees by the pre-scaled constant 180/π.
func RadToDeg(a fixed.Fixed) fixed.Fixed {
	return a.Mul(fixed.Rad2Deg)
}

// DegToRad converts degrees to radians by the pre-scaled constant π/180.
func DegToRad(a fixed.Fixed) fixed.Fixed {
	return a.Mul(fixed.Deg2Rad)
}

// reduce maps any angle onto [0, 2π) in raw units. Plain integer
// remainder: no saturation, no precision loss.
func reduce(a fixed.Fixed) int64 {
	m := a.Raw() % int64(fixed.TwoPi)
	if m < 0 {
		m += int64(fixed.TwoPi)
	}

	return m
}

// sinReduced evaluates sine for a raw angle already in [0, 2π): split
// into quadrant and offset, then apply the reflection/negation
// symmetries against the quarter-wave table.
func sinReduced(m int64) fixed.Fixed {
	quadrant := m / int64(fixed.HalfPi)
	u := m % int64(fixed.HalfPi)
	pos := (u << posBits) / int64(fixed.HalfPi)

	switch quadrant {
	case 0:
		return lookup(pos)
	case 1:
		return lookup(1<<posBits - pos)
	case 2:
		return lookup(pos).Neg()
	default:
		return lookup(1<<posBits - pos).Neg()
	}
}

// lookup interpolates the table at a quadrant position in [0, 2^posBits].
func lookup(pos int64) fixed.Fixed {
	table := sineTable()
	idx := pos >> interpBits
	if idx >= tableSize {
		return table[tableSize]
	}
	frac := pos & (1<<interpBits - 1)
	s0 := table[idx]
	step := int64(table[idx+1] - s0)

	return s0 + fixed.Fixed((step*frac+1<<(interpBits-1))>>interpBits)
}
