package render

import mandel "github.com/marben/mandelgrid"

// EscapeRadius is the magnitude past which an orbit counts as escaped.
const EscapeRadius = 2.0

// EscapeTime iterates z = z² + z0 starting at z0 and returns the number of
// completed iterations before |z| exceeded EscapeRadius, or max if it never did.
// The magnitude is tested before each update, so |z0| > 2 yields 0.
func EscapeTime(z0 mandel.Complex, max int) int {
	z := z0
	for i := 0; i < max; i++ {
		if z.Abs() > EscapeRadius {
			return i
		}
		z = z.Mul(z).Add(z0)
	}
	return max
}
