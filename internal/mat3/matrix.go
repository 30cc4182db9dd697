package mat3

import (
	"fmt"
	"log/slog"
)

// Matrix is a 3x3 matrix stored in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// Matrix is a value type; arithmetic returns new matrices. Row and Col
// return views that alias the receiver's storage.
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal returns the diagonal matrix diag(a, b, c).
func Diagonal(a, b, c float64) Matrix {
	return Matrix{
		a, 0, 0,
		0, b, 0,
		0, 0, c,
	}
}

// FromRows builds a matrix from three rows.
func FromRows(r0, r1, r2 [3]float64) Matrix {
	return Matrix{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}
}

// FromColumns builds a matrix whose columns are c0, c1 and c2.
func FromColumns(c0, c1, c2 Vector) Matrix {
	x0, y0, z0 := c0.XYZ()
	x1, y1, z1 := c1.XYZ()
	x2, y2, z2 := c2.XYZ()
	return Matrix{
		x0, x1, x2,
		y0, y1, y2,
		z0, z1, z2,
	}
}

// Outer returns the outer product v·vᵗ of (a, b, c).
func Outer(a, b, c float64) Matrix {
	ab, ac, bc := a*b, a*c, b*c
	return Matrix{
		a * a, ab, ac,
		ab, b * b, bc,
		ac, bc, c * c,
	}
}

// FromVector sets m to the outer product v·vᵗ of (a, b, c).
func (m *Matrix) FromVector(a, b, c float64) {
	*m = Outer(a, b, c)
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m[3*i+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m[3*i+j] = v
}

// Row returns a view of row i. Writes through the view modify m.
func (m *Matrix) Row(i int) Vector {
	return newView(m[:], 3*i, 1)
}

// Col returns a view of column j. Writes through the view modify m.
func (m *Matrix) Col(j int) Vector {
	return newView(m[:], j, 3)
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) Matrix {
	return Matrix{
		m[0] + o[0], m[1] + o[1], m[2] + o[2],
		m[3] + o[3], m[4] + o[4], m[5] + o[5],
		m[6] + o[6], m[7] + o[7], m[8] + o[8],
	}
}

// Sub returns m - o.
func (m Matrix) Sub(o Matrix) Matrix {
	return Matrix{
		m[0] - o[0], m[1] - o[1], m[2] - o[2],
		m[3] - o[3], m[4] - o[4], m[5] - o[5],
		m[6] - o[6], m[7] - o[7], m[8] - o[8],
	}
}

// Scale returns s·m.
func (m Matrix) Scale(s float64) Matrix {
	return Matrix{
		m[0] * s, m[1] * s, m[2] * s,
		m[3] * s, m[4] * s, m[5] * s,
		m[6] * s, m[7] * s, m[8] * s,
	}
}

// Div returns m / s.
func (m Matrix) Div(s float64) Matrix {
	return Matrix{
		m[0] / s, m[1] / s, m[2] / s,
		m[3] / s, m[4] / s, m[5] / s,
		m[6] / s, m[7] / s, m[8] / s,
	}
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[3] + m[2]*o[6],
		m[0]*o[1] + m[1]*o[4] + m[2]*o[7],
		m[0]*o[2] + m[1]*o[5] + m[2]*o[8],

		m[3]*o[0] + m[4]*o[3] + m[5]*o[6],
		m[3]*o[1] + m[4]*o[4] + m[5]*o[7],
		m[3]*o[2] + m[4]*o[5] + m[5]*o[8],

		m[6]*o[0] + m[7]*o[3] + m[8]*o[6],
		m[6]*o[1] + m[7]*o[4] + m[8]*o[7],
		m[6]*o[2] + m[7]*o[5] + m[8]*o[8],
	}
}

// Transform returns m·(x, y, z).
func (m *Matrix) Transform(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[1]*y + m[2]*z,
		m[3]*x + m[4]*y + m[5]*z,
		m[6]*x + m[7]*y + m[8]*z
}

// MulVec returns m·v as an owned vector.
func (m Matrix) MulVec(v Vector) Vector {
	return NewVector(m.Transform(v.XYZ()))
}

// Transpose returns mᵗ.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal.
func (m Matrix) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix) Det() float64 {
	d0 := m[4]*m[8] - m[5]*m[7]
	d1 := m[3]*m[8] - m[5]*m[6]
	d2 := m[3]*m[7] - m[4]*m[6]
	return m[0]*d0 - m[1]*d1 + m[2]*d2
}

// IsFinite reports whether every element is finite.
func (m Matrix) IsFinite() bool {
	for _, v := range m {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// Equal compares m and o element-wise using eq.
func (m Matrix) Equal(o Matrix, eq Comparer) bool {
	for i := range m {
		if !eq(m[i], o[i]) {
			return false
		}
	}
	return true
}

// String formats m as three bracketed rows.
func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g %g] [%g %g %g] [%g %g %g]]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// LogValue formats m lazily for slog.
func (m Matrix) LogValue() slog.Value {
	return slog.StringValue(m.String())
}
