package mathutil

import "github.com/chewxy/math32"

// Epsilon is the single-precision tolerance used by the geometric predicates.
const Epsilon float32 = 1e-6

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
