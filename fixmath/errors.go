package fixmath

import "errors"

// ErrDomain reports an argument outside a function's mathematical domain
// (negative Sqrt input, non-positive logarithm input, zero base with a
// negative exponent, negative base with a fractional exponent). fixtrig
// reuses the same sentinel for Asin/Acos inputs beyond [−1, 1], so
// callers handle one domain-error kind across the whole library.
var ErrDomain = errors.New("fixmath: argument outside function domain")
