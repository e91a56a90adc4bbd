// Package fixtrig provides deterministic trigonometry over fixed.Fixed:
// Sin/Cos/Tan, their inverses, and angle conversions.
//
// 🚀 How it works:
//
//	A single sine quarter-wave table — 4096 uniform steps over [0, π/2]
//	plus the endpoint — is built once at first use by an integer-only
//	Taylor evaluation in Q2.62 (error far below one raw unit). Every
//	angle is reduced modulo 2π and folded into the first quadrant by the
//	standard symmetries; sub-step precision comes from linear
//	interpolation between adjacent samples. Cosine is the same table
//	phase-shifted by π/2, so sine and cosine can never drift apart and
//	the table memory is half of a full-wave design.
//
// ✨ Exactness guarantees (with the fixed package's Pi = 2·HalfPi):
//   - Sin(0), Sin(Pi), Sin(TwoPi) == 0; Sin(HalfPi) == 1;
//     Sin(−HalfPi) == −1
//   - Cos(0) == 1; Cos(Pi) == −1; Cos(HalfPi) == 0
//   - SinToCos(One) == Zero
//   - Atan2 axis cases: Atan2(0, +x) == 0, Atan2(0, −x) == Pi,
//     Atan2(+y, 0) == HalfPi, Atan2(−y, 0) == −HalfPi
//
// ⚠️ Errors:
//
//	Tan at a cosine pole returns fixed.ErrDivideByZero; Asin/Acos of an
//	input beyond [−1, 1] and SinToCos beyond [−1, 1] return
//	fixmath.ErrDomain. Out-of-domain input is rejected, never clamped.
//
// Concurrency: the table is guarded by a one-time init barrier
// (sync.Once) and immutable afterwards — unsynchronized concurrent reads
// are safe.
package fixtrig
