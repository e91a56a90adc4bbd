package fixed

// Floor returns the largest integer-valued Fixed not greater than f.
// Arithmetic shift keeps the operation exact for negative values.
func (f Fixed) Floor() Fixed {
	return f >> FracBits << FracBits
}

// Ceil returns the smallest integer-valued Fixed not less than f,
// saturating at MaxValue when the true ceiling is unrepresentable.
func (f Fixed) Ceil() Fixed {
	if uint64(f)&fracMask == 0 {
		return f
	}

	return f.Floor().Add(One)
}

// Trunc discards the fractional part, rounding toward zero.
func (f Fixed) Trunc() Fixed {
	return clampMagnitude(absRaw(int64(f))&^fracMask, f < 0)
}

// Round rounds to the nearest integer-valued Fixed, ties away from zero,
// saturating near MaxValue/MinValue.
func (f Fixed) Round() Fixed {
	mag := absRaw(int64(f)) + 1<<(FracBits-1)

	return clampMagnitude(mag&^fracMask, f < 0)
}

// Frac returns the fractional part f − Trunc(f); its sign follows f.
func (f Fixed) Frac() Fixed {
	return f.Sub(f.Trunc())
}
