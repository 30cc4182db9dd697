package colortransfer

import (
	"github.com/gogpu/colortransfer/internal/mat3"
	"github.com/gogpu/colortransfer/internal/pixelops"
)

// Stats are the color statistics of an image, as used by linear transfers.
type Stats struct {
	// Mean is the average color.
	Mean [3]float64
	// Covariance is the population covariance of the colors around Mean.
	Covariance [3][3]float64
	// StdDev is the per-channel standard deviation around Mean.
	StdDev [3]float64
}

// ComputeStats returns the color statistics of img. WithLinearLight
// computes them on linear-light values.
func ComputeStats(img *Image, opts ...Option) (Stats, error) {
	if err := validateImage("image", img); err != nil {
		return Stats{}, err
	}
	o := newOptions(opts)
	pool, release := o.pool()
	defer release()

	buf := img.buffer()
	if o.linearLight {
		buf = linearized(pool, buf)
	}

	mean := pixelops.Mean(pool, buf)
	cov := pixelops.Covariance(pool, buf, mean)
	sd := pixelops.StdDev(pool, buf, mean)

	return Stats{
		Mean:       mean.Array(),
		Covariance: rows(cov),
		StdDev:     sd.Array(),
	}, nil
}

func rows(m mat3.Matrix) [3][3]float64 {
	return [3][3]float64{
		{m[0], m[1], m[2]},
		{m[3], m[4], m[5]},
		{m[6], m[7], m[8]},
	}
}
