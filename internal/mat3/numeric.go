// Package mat3 provides the fixed-size 3-vector and 3x3 matrix types used by
// the color statistics and linear algebra code.
//
// All operations are written out element by element. They run inside
// per-pixel loops, so there are no generic loops or heap allocations on the
// hot paths.
package mat3

import "math"

// Square returns x*x.
func Square(x float64) float64 {
	return x * x
}

// Cube returns x*x*x.
func Cube(x float64) float64 {
	return x * x * x
}

// cbrtIterations is the number of Newton steps taken by Cbrt. The initial
// guess is within 6% of the root on [1,8), so six steps reach full precision.
const cbrtIterations = 6

// Cbrt returns the real cube root of x.
//
// The argument is range-reduced into [1,8) using its binary exponent, the
// root of the reduced value is refined with Newton's method starting from the
// chord between (1,1) and (8,2), and the exponent is restored. The sign of x
// is preserved.
func Cbrt(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	neg := x < 0
	if neg {
		x = -x
	}

	// x = frac * 2^exp, frac in [0.5, 1).
	frac, exp := math.Frexp(x)
	q := exp / 3
	rem := exp - 3*q
	if rem < 0 {
		rem += 3
		q--
	}
	m := math.Ldexp(frac, rem) // [0.5, 4)
	if m < 1 {
		m *= 8
		q--
	}

	y := 1 + (m-1)/7
	for range cbrtIterations {
		y = (2*y + m/(y*y)) / 3
	}

	y = math.Ldexp(y, q)
	if neg {
		return -y
	}
	return y
}

// RoundToZero returns 0 when |x| < eps and x otherwise.
// Snapping tiny residues to an exact zero keeps later square roots and
// divisions from amplifying rounding noise.
func RoundToZero(x, eps float64) float64 {
	if math.Abs(x) < eps {
		return 0
	}
	return x
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Comparer decides whether two scalars are equal.
type Comparer func(a, b float64) bool

// Exact compares with ==.
func Exact() Comparer {
	return func(a, b float64) bool { return a == b }
}

// Epsilon compares with an absolute tolerance: |a-b| < eps.
func Epsilon(eps float64) Comparer {
	return func(a, b float64) bool { return math.Abs(a-b) < eps }
}

// Relative compares with a relative tolerance: |a-b|/|a| < err.
// When a is zero the comparison falls back to |b| < err.
func Relative(err float64) Comparer {
	return func(a, b float64) bool {
		if a == b {
			return true
		}
		if a == 0 {
			return math.Abs(b) < err
		}
		return math.Abs(a-b)/math.Abs(a) < err
	}
}
