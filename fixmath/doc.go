// Package fixmath provides stateless numeric functions over fixed.Fixed:
// clamping, interpolation, precision rounding, and the integer-only
// transcendental family Sqrt, Log2/Ln, Exp2/Exp and Pow.
//
// ✨ Key properties:
//   - Built ONLY from fixed primitives and integer bit manipulation —
//     no hardware floating point in any code path, so every result is
//     bit-identical across platforms and architectures.
//   - Sqrt is an exact bit-by-bit 128-bit integer square root with
//     round-to-nearest: Sqrt(0) == 0 and perfect squares are exact.
//   - Log2 produces the exact integer part and 32 fractional bits by
//     repeated squaring; Ln is a single constant multiply on top of it.
//   - Exp2 multiplies square-root-chain constants 2^(2⁻ᵏ) derived from
//     Sqrt itself at first use (sync.Once), never from a float table.
//   - Pow is exact for integer-valued exponents (repeated squaring) and
//     uses Exp2(exp·Log2(base)) otherwise.
//
// ⚠️ Errors:
//
//	Out-of-domain inputs (Sqrt of a negative, Log2/Ln of a non-positive,
//	Pow(0, negative), Pow(negative, fractional)) return ErrDomain — the
//	single domain-error kind shared with fixtrig. Nothing is clamped,
//	logged or approximated on a domain violation.
//
// Usage:
//
//	r, err := fixmath.Sqrt(fixed.FromInt(2))
//	v := fixmath.Clamp(x, fixed.Zero, fixed.One)
//	p, err := fixmath.Pow(fixed.FromInt(2), fixed.FromInt(3)) // exactly 8
package fixmath
