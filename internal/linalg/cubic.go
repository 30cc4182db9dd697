package linalg

import (
	"math"

	"github.com/gogpu/colortransfer/internal/mat3"
)

// SolveCubic returns the real roots of x³ + ax² + bx + c = 0.
//
// With q = (a²-3b)/9 and r = (2a³-9ab+27c)/54, three real roots are
// produced by the trigonometric method whenever r² <= q³ + Epsilon, in the
// order
//
//	-2√q·cos(θ/3) - a/3, -2√q·cos((θ+2π)/3) - a/3, -2√q·cos((θ-2π)/3) - a/3
//
// where θ = acos(r/√q³). Repeated roots are returned repeatedly. Otherwise
// Cardano's formula gives one real root, plus the real part of the
// conjugate pair when its imaginary part is below √Epsilon (the pair has
// collapsed into a double root).
//
// Every root is passed through mat3.RoundToZero.
func SolveCubic(a, b, c float64) []float64 {
	shift := a / 3
	q := (mat3.Square(a) - 3*b) / 9
	r := (2*mat3.Cube(a) - 9*a*b + 27*c) / 54
	q3 := mat3.Cube(q)
	r2 := mat3.Square(r)

	if r2 <= q3+Epsilon {
		if q3 <= 0 {
			// Triple root.
			x := mat3.RoundToZero(-shift, Epsilon)
			return []float64{x, x, x}
		}

		ratio := r / math.Sqrt(q3)
		// Rounding can push |ratio| just past 1 at a double root.
		ratio = math.Max(-1, math.Min(1, ratio))
		theta := math.Acos(ratio)
		k := -2 * math.Sqrt(q)

		return []float64{
			mat3.RoundToZero(k*math.Cos(theta/3)-shift, Epsilon),
			mat3.RoundToZero(k*math.Cos((theta+2*math.Pi)/3)-shift, Epsilon),
			mat3.RoundToZero(k*math.Cos((theta-2*math.Pi)/3)-shift, Epsilon),
		}
	}

	// r² - q³ > Epsilon here, so u is never zero.
	u := -math.Copysign(mat3.Cbrt(math.Abs(r)+math.Sqrt(r2-q3)), r)
	v := q / u

	x1 := mat3.RoundToZero(u+v-shift, Epsilon)
	im := math.Sqrt(3) / 2 * (u - v)
	if math.Abs(im) < math.Sqrt(Epsilon) {
		x2 := mat3.RoundToZero(-(u+v)/2-shift, Epsilon)
		return []float64{x1, x2}
	}
	return []float64{x1}
}
