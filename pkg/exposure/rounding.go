package exposure

import "math"

// RoundHalfAwayFromZero rounds x to the nearest integer, with halves
// rounded away from zero: 2.5 becomes 3 and -2.5 becomes -3.
//
// The result is computed by truncating x + copysign(0.5, x) toward
// zero, so non-halfway values round to their nearest integer in both
// directions (-2.4 rounds to -2, not -3). Input must be finite and
// within the int range.
func RoundHalfAwayFromZero(x float64) int {
	return int(math.Trunc(x + math.Copysign(0.5, x)))
}
