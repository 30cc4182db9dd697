// Package color provides the per-pixel color conversions used by the
// statistics and transfer code: BT.601 luma and YUV, and the sRGB transfer
// curve.
package color

// BT.601 luma weights.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns the BT.601 luma of a normalized RGB triple.
func Luma(r, g, b float64) float64 {
	return LumaR*r + LumaG*g + LumaB*b
}

// RGBToYUV converts normalized RGB to analog BT.601 YUV.
// Y is in [0,1]; U is in about ±0.436 and V in about ±0.615.
func RGBToYUV(r, g, b float64) (y, u, v float64) {
	y = Luma(r, g, b)
	u = -0.14713*r - 0.28886*g + 0.436*b
	v = 0.615*r - 0.51499*g - 0.10001*b
	return y, u, v
}

// YUVToRGB converts BT.601 YUV back to RGB. Luma from one image combined
// with chroma from another can leave the RGB cube, so each component is
// clamped to [0,1].
func YUVToRGB(y, u, v float64) (r, g, b float64) {
	r = Clamp01(y + 1.13983*v)
	g = Clamp01(y - 0.39465*u - 0.58060*v)
	b = Clamp01(y + 2.03211*u)
	return r, g, b
}

// Clamp01 clamps x to [0,1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
