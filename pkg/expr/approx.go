package expr

import "math"

// Epsilon is the tolerance used to decide that a computed value equals the
// target. It is float32 machine epsilon: wide enough to absorb rounding from a
// few chained divisions on small integers, narrow enough to keep distinct
// small integers apart.
const Epsilon = 1.1920929e-07

// ApproxEqual reports whether |a-b| < Epsilon. NaN and infinities never
// compare equal to a finite value.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
