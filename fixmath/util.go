package fixmath

import (
	"math"

	"github.com/lockstep-sim/fix64/fixed"
)

// rawMagnitude returns |v| as an unsigned raw magnitude; MinValue maps
// to 2⁶³ without overflow.
func rawMagnitude(v fixed.Fixed) uint64 {
	r := v.Raw()
	if r < 0 {
		return uint64(-r)
	}

	return uint64(r)
}

// signedFromMagnitude rebuilds a Fixed from an unsigned magnitude and a
// sign, saturating outside the signed range.
func signedFromMagnitude(mag uint64, negative bool) fixed.Fixed {
	if negative {
		if mag >= 1<<63 {
			return fixed.MinValue
		}

		return fixed.FromRaw(-int64(mag))
	}
	if mag > math.MaxInt64 {
		return fixed.MaxValue
	}

	return fixed.FromRaw(int64(mag))
}
