package linalg

import (
	"math"

	"github.com/gogpu/colortransfer/internal/mat3"
)

// Epsilon is the absolute threshold below which determinants, radicands and
// polynomial roots are snapped to zero.
const Epsilon = 1e-12

// Cholesky factors a symmetric positive-definite matrix as a = L·Lᵗ with L
// lower triangular.
//
// ok is false as soon as a diagonal radicand is not strictly positive, which
// happens exactly when a is not positive-definite. L is meaningless when ok
// is false.
func Cholesky(a mat3.Matrix) (l mat3.Matrix, ok bool) {
	d0 := mat3.RoundToZero(a[0], Epsilon)
	if d0 <= 0 {
		return l, false
	}
	l00 := math.Sqrt(d0)
	l10 := a[3] / l00
	l20 := a[6] / l00

	d1 := mat3.RoundToZero(a[4]-mat3.Square(l10), Epsilon)
	if d1 <= 0 {
		return l, false
	}
	l11 := math.Sqrt(d1)
	l21 := (a[7] - l20*l10) / l11

	d2 := mat3.RoundToZero(a[8]-mat3.Square(l20)-mat3.Square(l21), Epsilon)
	if d2 <= 0 {
		return l, false
	}
	l22 := math.Sqrt(d2)

	return mat3.Matrix{
		l00, 0, 0,
		l10, l11, 0,
		l20, l21, l22,
	}, true
}

// Invert returns the inverse of a computed as adj(a)/det(a).
// ok is false when the determinant rounds to zero.
func Invert(a mat3.Matrix) (inv mat3.Matrix, ok bool) {
	c00 := a[4]*a[8] - a[5]*a[7]
	c01 := -(a[3]*a[8] - a[5]*a[6])
	c02 := a[3]*a[7] - a[4]*a[6]

	det := mat3.RoundToZero(a[0]*c00+a[1]*c01+a[2]*c02, Epsilon)
	if det == 0 {
		return inv, false
	}

	c10 := -(a[1]*a[8] - a[2]*a[7])
	c11 := a[0]*a[8] - a[2]*a[6]
	c12 := -(a[0]*a[7] - a[1]*a[6])

	c20 := a[1]*a[5] - a[2]*a[4]
	c21 := -(a[0]*a[5] - a[2]*a[3])
	c22 := a[0]*a[4] - a[1]*a[3]

	inv = mat3.Matrix{
		c00, c10, c20,
		c01, c11, c21,
		c02, c12, c22,
	}
	return inv.Div(det), true
}

// Poly returns the coefficients of the characteristic polynomial
// λ³ + aλ² + bλ + c of m.
//
// The quadratic coefficient comes from the traces of m and m·m, which avoids
// expanding det(m - λI) symbolically.
func Poly(m mat3.Matrix) (a, b, c float64) {
	tr := m.Trace()
	tr2 := m.Mul(m).Trace()
	a = -tr
	b = (mat3.Square(tr) - tr2) / 2
	c = -m.Det()
	return a, b, c
}
