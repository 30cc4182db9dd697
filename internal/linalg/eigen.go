package linalg

import (
	"fmt"
	"math"

	"github.com/gogpu/colortransfer/internal/mat3"
)

// Thresholds used by Eigenvectors, relative to the largest magnitude in the
// matrix and its eigenvalues.
const (
	// clusterTolerance merges eigenvalues into one repeated eigenvalue. Roots
	// of a cubic near a double root are only accurate to about the square
	// root of machine precision, so this sits well above that.
	clusterTolerance = 1e-5

	// residualTolerance bounds the part of m - λI that is treated as zero
	// when its null space is taken. It is larger than clusterTolerance so a
	// merged pair of close eigenvalues still has a null space.
	residualTolerance = 1e-4
)

// Eigenvalues returns the real eigenvalues of m, with multiplicity, as
// roots of its characteristic polynomial.
func Eigenvalues(m mat3.Matrix) []float64 {
	return SolveCubic(Poly(m))
}

// Eigenvectors computes unit eigenvectors of m for the given eigenvalues.
//
// Eigenvalues closer than clusterTolerance are merged into one repeated
// eigenvalue, their mean, whose multiplicity k is the number of values
// merged. For each such λ the matrix m - λI is reduced with complete
// pivoting to rank 3-k, and every free column contributes one eigenvector,
// obtained by setting that variable to 1, the other free variables to 0,
// and back-substituting. A double eigenvalue therefore yields the two basis
// choices (1,0) and (0,1) in its free-parameter plane; they are not
// orthogonalised.
//
// When fewer than three eigenvalues are given (a double root reported
// once), the missing multiplicity goes to the first eigenvalue whose null
// space can hold it.
//
// The returned vecs has the eigenvectors as columns and vals is the diagonal
// matrix of their eigenvalues, column for column. ok is false when the
// eigenvalues do not produce exactly three eigenvectors, or when m - λI is
// not close enough to rank 3-k for some λ.
func Eigenvectors(m mat3.Matrix, eigenvalues []float64) (vecs, vals mat3.Matrix, ok bool) {
	scale := maxAbs(m)
	for _, l := range eigenvalues {
		scale = math.Max(scale, math.Abs(l))
	}
	rtol := residualTolerance * scale

	groups := cluster(eigenvalues, clusterTolerance*scale)
	total := 0
	for _, g := range groups {
		total += g.count
	}
	if total > 3 {
		return vecs, vals, false
	}
	for i := range groups {
		for total < 3 && groups[i].count < 3 {
			if _, ok := nullVectors(shift(m, groups[i].value), groups[i].count+1, rtol); !ok {
				break
			}
			groups[i].count++
			total++
		}
	}
	if total < 3 {
		return vecs, vals, false
	}

	var (
		cols    [3]mat3.Vector
		lambdas [3]float64
		n       int
	)
	for _, g := range groups {
		vs, ok := nullVectors(shift(m, g.value), g.count, rtol)
		if !ok {
			return vecs, vals, false
		}
		for _, v := range vs {
			cols[n] = v
			lambdas[n] = g.value
			n++
		}
	}

	vecs = mat3.FromColumns(cols[0], cols[1], cols[2])
	vals = mat3.Diagonal(lambdas[0], lambdas[1], lambdas[2])
	return vecs, vals, true
}

// ApplyFunction returns V·diag(f(λ))·V⁻¹ for the eigen decomposition of the
// symmetric matrix m.
//
// The error wraps ErrDegenerate when m has no complete eigenbasis. It wraps
// ErrUnreachable when an eigenbasis was found but cannot be inverted, which
// valid input never produces.
func ApplyFunction(m mat3.Matrix, f func(float64) float64) (mat3.Matrix, error) {
	vecs, vals, ok := Eigenvectors(m, Eigenvalues(m))
	if !ok {
		return mat3.Matrix{}, ErrDegenerate
	}

	inv, ok := Invert(vecs)
	if !ok {
		return mat3.Matrix{}, fmt.Errorf("%w: eigenbasis %v of %v is singular", ErrUnreachable, vecs, m)
	}

	d := mat3.Diagonal(f(vals[0]), f(vals[4]), f(vals[8]))
	return vecs.Mul(d).Mul(inv), nil
}

type eigenGroup struct {
	value float64
	count int
}

// cluster groups values lying within tol of any member of a group, in
// order of first occurrence. Each group's value is the mean of its members.
func cluster(values []float64, tol float64) []eigenGroup {
	var members [][]float64
outer:
	for _, v := range values {
		for i, g := range members {
			for _, u := range g {
				if math.Abs(u-v) <= tol {
					members[i] = append(g, v)
					continue outer
				}
			}
		}
		members = append(members, []float64{v})
	}

	groups := make([]eigenGroup, len(members))
	for i, g := range members {
		groups[i] = eigenGroup{value: g[0], count: len(g)}
		if len(g) > 1 {
			var sum float64
			for _, u := range g {
				sum += u
			}
			groups[i].value = sum / float64(len(g))
		}
	}
	return groups
}

func shift(m mat3.Matrix, l float64) mat3.Matrix {
	return m.Sub(mat3.Identity().Scale(l))
}

// nullVectors returns k unit vectors spanning the null space of a, taking a
// to have rank 3-k. Elimination uses complete pivoting, so the block left
// over after 3-k steps holds the smallest entries; ok is false when any of
// them exceeds tol.
func nullVectors(a mat3.Matrix, k int, tol float64) ([]mat3.Vector, bool) {
	rank := 3 - k
	var (
		pivotCol [3]int
		isPivot  [3]bool
	)

	for r := range rank {
		pr, pc := -1, -1
		best := 0.0
		for i := r; i < 3; i++ {
			for j := range 3 {
				if isPivot[j] {
					continue
				}
				if v := math.Abs(a.At(i, j)); v > best {
					best, pr, pc = v, i, j
				}
			}
		}
		if pr < 0 {
			// Rank below 3-k: the null space is larger than k.
			return nil, false
		}
		if pr != r {
			a.Row(pr).Swap(a.Row(r))
		}

		pivot := a.At(r, pc)
		for i := r + 1; i < 3; i++ {
			f := a.At(i, pc) / pivot
			for j := range 3 {
				a.Set(i, j, a.At(i, j)-f*a.At(r, j))
			}
			a.Set(i, pc, 0)
		}
		pivotCol[r] = pc
		isPivot[pc] = true
	}

	for i := rank; i < 3; i++ {
		for j := range 3 {
			if !isPivot[j] && math.Abs(a.At(i, j)) > tol {
				return nil, false
			}
		}
	}

	basis := make([]mat3.Vector, 0, k)
	for free := range 3 {
		if isPivot[free] {
			continue
		}
		var x [3]float64
		x[free] = 1
		for r := rank - 1; r >= 0; r-- {
			pc := pivotCol[r]
			var s float64
			for j := range 3 {
				if j != pc {
					s += a.At(r, j) * x[j]
				}
			}
			x[pc] = -s / a.At(r, pc)
		}
		v := mat3.NewVector(x[0], x[1], x[2])
		v.Normalize()
		basis = append(basis, v)
	}
	return basis, true
}

func maxAbs(m mat3.Matrix) float64 {
	var mx float64
	for _, v := range m {
		mx = math.Max(mx, math.Abs(v))
	}
	return mx
}
