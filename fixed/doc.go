// Package fixed implements a deterministic Q31.32 fixed-point number:
// a signed 64-bit integer interpreted as value·2⁻³².
//
// 🚀 What is fixed?
//
//	The scaled-integer foundation every other fix64 package builds on:
//	  • Saturating Add/Sub/Mul — overflow clamps to MinValue/MaxValue,
//	    never wraps and never panics
//	  • Div with an explicit, catchable ErrDivideByZero
//	  • Exact comparison via native ==, <, > (raw-value order)
//	  • Fuzzy comparison as separate, explicit operations
//	    (ApproxEqualAbs / ApproxEqualRel)
//	  • Conversions to and from integers, rationals and host floats
//
// ✨ Determinism contract:
//
//   - Every operation is a pure function of raw int64 state; results are
//     bit-identical on every platform, compiler and architecture.
//   - FromFloat/Float64 exist for tests and tooling only. Never use
//     them in a determinism-sensitive runtime path; construct values
//     from integers or FromFraction instead.
//   - The raw value (Raw/FromRaw) is the only serialized form. Any
//     format that round-trips the raw int64 round-trips the number
//     exactly; the fractional width is a compile-time constant.
//
// Usage:
//
//	v := fixed.FromInt(3)
//	half, _ := fixed.FromFraction(1, 2)
//	q, err := v.Mul(half).Div(fixed.FromInt(7))
//	if err != nil {
//	  // only ErrDivideByZero is possible here
//	}
//
// All values are immutable; sharing across goroutines is always safe.
package fixed
