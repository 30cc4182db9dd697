package colortransfer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	img := mustImage(t, 2, 1, 4)
	require.NoError(t, img.Set(0, 0, 0.2, 0.4, 0.6, 1))
	require.NoError(t, img.Set(1, 0, 0.6, 0.4, 0.2, 0))

	s, err := ComputeStats(img)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.4, 0.4, 0.4}, s.Mean[:], 1e-6)
	// Red and blue move in opposite directions; green is constant.
	want := [3][3]float64{
		{0.04, 0, -0.04},
		{0, 0, 0},
		{-0.04, 0, 0.04},
	}
	for i := range 3 {
		assert.InDeltaSlice(t, want[i][:], s.Covariance[i][:], 1e-6, "row %d", i)
	}
	assert.InDeltaSlice(t, []float64{0.2, 0, 0.2}, s.StdDev[:], 1e-6)
}

func TestComputeStats_WorkersAgree(t *testing.T) {
	img := noiseImage(t, 9, 64, 48, 3)

	seq, err := ComputeStats(img, WithWorkers(1))
	require.NoError(t, err)
	par, err := ComputeStats(img, WithWorkers(4))
	require.NoError(t, err)

	assert.InDeltaSlice(t, seq.Mean[:], par.Mean[:], 1e-9)
	for i := range 3 {
		assert.InDeltaSlice(t, seq.Covariance[i][:], par.Covariance[i][:], 1e-9)
	}
}

func TestComputeStats_LinearLight(t *testing.T) {
	img := flatImage(t, 4, 4, 3, 0.5, 0.5, 0.5)

	s, err := ComputeStats(img, WithLinearLight(true))
	require.NoError(t, err)

	want := math.Pow((0.5+0.055)/1.055, 2.4)
	for c := range 3 {
		assert.InDelta(t, want, s.Mean[c], 1e-4)
		assert.InDelta(t, 0, s.StdDev[c], 1e-9)
	}
}

func TestComputeStats_Invalid(t *testing.T) {
	_, err := ComputeStats(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeStats(&Image{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
