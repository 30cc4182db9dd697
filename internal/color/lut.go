package color

import "math"

// lutSize is the number of samples over [0,1] in each transfer-curve table.
// With linear interpolation the error stays below 1e-4 over the whole curve.
const lutSize = 4096

var (
	sRGBToLinearLUT [lutSize + 1]float32
	linearToSRGBLUT [lutSize + 1]float32
)

func init() {
	for i := range lutSize {
		x := float64(i) / (lutSize - 1)

		var linear float64
		if x <= 0.04045 {
			linear = x / 12.92
		} else {
			linear = math.Pow((x+0.055)/1.055, 2.4)
		}
		sRGBToLinearLUT[i] = float32(linear)

		var s float64
		if x <= 0.0031308 {
			s = x * 12.92
		} else {
			s = 1.055*math.Pow(x, 1.0/2.4) - 0.055
		}
		linearToSRGBLUT[i] = float32(s)
	}
	// Guard entry: float32 rounding just below 1 can land on the last index.
	sRGBToLinearLUT[lutSize] = sRGBToLinearLUT[lutSize-1]
	linearToSRGBLUT[lutSize] = linearToSRGBLUT[lutSize-1]
}

func lookup(tbl *[lutSize + 1]float32, x float32) float32 {
	if !(x > 0) {
		return tbl[0]
	}
	if x >= 1 {
		return tbl[lutSize-1]
	}
	p := x * (lutSize - 1)
	i := int(p)
	f := p - float32(i)
	return tbl[i] + (tbl[i+1]-tbl[i])*f
}

// SRGBToLinearFast converts an sRGB component to linear using an
// interpolated lookup table. Input is clamped to [0,1].
//
// Used on whole images in linear-light mode, where calling math.Pow per
// sample dominates the transfer time.
func SRGBToLinearFast(s float32) float32 {
	return lookup(&sRGBToLinearLUT, s)
}

// LinearToSRGBFast converts a linear component to sRGB using an
// interpolated lookup table. Input is clamped to [0,1].
func LinearToSRGBFast(l float32) float32 {
	return lookup(&linearToSRGBLUT, l)
}
