package fixed

import "errors"

// ErrDivideByZero reports a zero divisor. It is a distinct, catchable
// condition (never a saturation case): a defined "infinite" result has
// no meaningful deterministic representation. fixtrig.Tan surfaces the
// same sentinel at cosine poles.
var ErrDivideByZero = errors.New("fixed: division by zero")
