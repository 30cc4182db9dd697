package pixelops

import (
	"math"

	"github.com/gogpu/colortransfer/internal/mat3"
	"github.com/gogpu/colortransfer/internal/parallel"
)

// Mean returns the per-channel mean color of b.
func Mean(p *parallel.WorkerPool, b Buffer) mat3.Vector {
	var total [3]float64
	ch := b.Channels
	pix := b.Pix

	parallel.Aggregate(p, len(pix), ch, [3]float64{},
		func(acc *[3]float64, begin, end int) {
			for i := begin; i < end; i += ch {
				acc[0] += float64(pix[i])
				acc[1] += float64(pix[i+1])
				acc[2] += float64(pix[i+2])
			}
		},
		func(part [3]float64) {
			total[0] += part[0]
			total[1] += part[1]
			total[2] += part[2]
		},
	)

	n := float64(b.Pixels())
	return mat3.NewVector(total[0]/n, total[1]/n, total[2]/n)
}

// Covariance returns the population covariance matrix of the colors of b
// around mean, (1/N)·Σ(x-µ)(x-µ)ᵗ. The result is symmetric.
func Covariance(p *parallel.WorkerPool, b Buffer, mean mat3.Vector) mat3.Matrix {
	var total mat3.Matrix
	mr, mg, mb := mean.XYZ()
	ch := b.Channels
	pix := b.Pix

	parallel.Aggregate(p, len(pix), ch, mat3.Matrix{},
		func(acc *mat3.Matrix, begin, end int) {
			var outer mat3.Matrix
			for i := begin; i < end; i += ch {
				outer.FromVector(
					float64(pix[i])-mr,
					float64(pix[i+1])-mg,
					float64(pix[i+2])-mb,
				)
				*acc = acc.Add(outer)
			}
		},
		func(part mat3.Matrix) {
			total = total.Add(part)
		},
	)

	return total.Div(float64(b.Pixels()))
}

// StdDev returns the per-channel population standard deviation of b around
// mean.
func StdDev(p *parallel.WorkerPool, b Buffer, mean mat3.Vector) mat3.Vector {
	var total [3]float64
	mr, mg, mb := mean.XYZ()
	ch := b.Channels
	pix := b.Pix

	parallel.Aggregate(p, len(pix), ch, [3]float64{},
		func(acc *[3]float64, begin, end int) {
			for i := begin; i < end; i += ch {
				acc[0] += mat3.Square(float64(pix[i]) - mr)
				acc[1] += mat3.Square(float64(pix[i+1]) - mg)
				acc[2] += mat3.Square(float64(pix[i+2]) - mb)
			}
		},
		func(part [3]float64) {
			total[0] += part[0]
			total[1] += part[1]
			total[2] += part[2]
		},
	)

	n := float64(b.Pixels())
	return mat3.NewVector(
		math.Sqrt(total[0]/n),
		math.Sqrt(total[1]/n),
		math.Sqrt(total[2]/n),
	)
}
