package fixed

// Comparison semantics:
//
//   - Exact ordering needs no methods: ==, !=, <, <=, >, >= compare raw
//     values directly, which IS exact numeric comparison for Fixed.
//   - Fuzzy equality is a separate, explicit choice. Callers pick either
//     an absolute threshold (ApproxEqualAbs) or a relative one
//     (ApproxEqualRel); neither participates in ==.

// DefaultRelTol is the library-wide default relative tolerance (≈ 1e-5)
// for ApproxEqualRel.
const DefaultRelTol Fixed = 42950

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than o.
func (f Fixed) Cmp(o Fixed) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

// ApproxEqualAbs reports |f−o| <= eps. eps is interpreted as a magnitude;
// callers pass a non-negative tolerance.
//
// Complexity: O(1).
func (f Fixed) ApproxEqualAbs(o, eps Fixed) bool {
	return f.Sub(o).Abs() <= eps
}

// ApproxEqualRel reports whether f and o agree within a relative
// tolerance: |f−o| <= tol·max(|f|,|o|). Two exact zeros always agree.
// Use DefaultRelTol when no domain-specific tolerance applies.
//
// Complexity: O(1).
func (f Fixed) ApproxEqualRel(o, tol Fixed) bool {
	diff := f.Sub(o).Abs()
	larger := f.Abs()
	if ob := o.Abs(); ob > larger {
		larger = ob
	}

	return diff <= larger.Mul(tol)
}
