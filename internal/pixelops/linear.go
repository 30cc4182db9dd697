package pixelops

import (
	"github.com/gogpu/colortransfer/internal/color"
	"github.com/gogpu/colortransfer/internal/parallel"
)

// ToLinear decodes the color channels of in from sRGB to linear light into
// out. Other channels are copied. in and out may be the same buffer.
func ToLinear(p *parallel.WorkerPool, in, out Buffer) {
	mapColor(p, in, out, color.SRGBToLinearFast)
}

// ToSRGB encodes the color channels of in from linear light to sRGB into
// out. Other channels are copied. Values are clamped to [0,1].
func ToSRGB(p *parallel.WorkerPool, in, out Buffer) {
	mapColor(p, in, out, color.LinearToSRGBFast)
}

func mapColor(p *parallel.WorkerPool, in, out Buffer, f func(float32) float32) {
	ch := in.Channels
	parallel.ForRows(p, in.Height, func(y int) {
		src := in.Row(y)
		dst := out.Row(y)
		for i := 0; i < len(src); i += ch {
			copy(dst[i+3:i+ch], src[i+3:i+ch])
			dst[i] = f(src[i])
			dst[i+1] = f(src[i+1])
			dst[i+2] = f(src[i+2])
		}
	})
}
