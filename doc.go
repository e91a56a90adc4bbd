// Package fix64 is a deterministic fixed-point arithmetic core for
// simulations and lockstep systems that cannot tolerate floating-point
// drift across platforms, compilers, or CPU architectures.
//
// 🚀 What is fix64?
//
//	A pure-Go numeric engine built entirely on scaled 64-bit integers:
//		• fixed/   — the Q31.32 number type: saturating arithmetic,
//		             exact and fuzzy comparison, conversions
//		• fixmath/ — clamp, interpolation, rounding, Sqrt, Log2/Ln,
//		             Exp2/Exp, Pow — integer-only algorithms
//		• fixtrig/ — table-driven Sin/Cos/Tan with exact axis values,
//		             Asin/Acos/Atan/Atan2, angle conversions
//		• fixrand/ — counter-based seedable streams with independent
//		             feature-derived sub-streams
//
// ✨ Why choose fix64?
//
//   - Bit-identical results on every target — no hardware floating point
//     anywhere in a runtime path
//   - Saturating arithmetic — overflow clamps to MinValue/MaxValue,
//     never wraps
//   - Explicit, catchable domain errors — division by zero and
//     out-of-domain inputs are sentinel errors, never silent clamps
//   - Pure Go — no cgo; everything is safe for unsynchronized concurrent
//     reads once the one-time trig table init has completed
//
// Quick taste:
//
//	a := fixed.FromInt(2)
//	b := fixed.FromInt(3)
//	sum := a.Add(b)                    // exactly 5
//	s := fixtrig.Sin(fixed.HalfPi)     // exactly fixed.One
//	rng := fixrand.FromFeature(42, "forest/oak", 0)
//	h := rng.NextFixedRange(fixed.Zero, fixed.FromInt(10))
//
// Vectors, matrices, quaternions and bounding volumes are deliberately
// out of scope: they are plain compositions over this core and inherit
// its determinism for free.
package fix64
