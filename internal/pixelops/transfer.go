package pixelops

import (
	"github.com/gogpu/colortransfer/internal/color"
	"github.com/gogpu/colortransfer/internal/mat3"
	"github.com/gogpu/colortransfer/internal/parallel"
)

// LinearTransfer writes out = a·in + off for the color of every pixel and
// copies the remaining channels of in unchanged. in and out must have the
// same shape; they may be the same buffer.
//
// Results are not clamped.
func LinearTransfer(p *parallel.WorkerPool, a mat3.Matrix, off mat3.Vector, in, out Buffer) {
	ox, oy, oz := off.XYZ()
	ch := in.Channels

	parallel.ForRows(p, in.Height, func(y int) {
		src := in.Row(y)
		dst := out.Row(y)
		for i := 0; i < len(src); i += ch {
			r, g, b := a.Transform(float64(src[i]), float64(src[i+1]), float64(src[i+2]))
			copy(dst[i+3:i+ch], src[i+3:i+ch])
			dst[i] = float32(r + ox)
			dst[i+1] = float32(g + oy)
			dst[i+2] = float32(b + oz)
		}
	})
}

// LuminanceTransfer gives every pixel of target the BT.601 luma of the
// source pixel at the same normalized position and keeps the target's
// chroma. The source is sampled nearest-neighbour with independent
// horizontal and vertical scale factors, so the two images may differ in
// size. Non-color channels of target are copied to out.
//
// out must have the shape of target and may alias it; it must not alias
// source.
func LuminanceTransfer(p *parallel.WorkerPool, source, target, out Buffer) {
	sch, tch := source.Channels, target.Channels

	parallel.ForRows(p, target.Height, func(y int) {
		srcRow := source.Row(nearest(y, target.Height, source.Height))
		tgt := target.Row(y)
		dst := out.Row(y)

		for x := range target.Width {
			s := srcRow[nearest(x, target.Width, source.Width)*sch:]
			t := tgt[x*tch : (x+1)*tch]
			d := dst[x*tch : (x+1)*tch]

			luma := color.Luma(float64(s[0]), float64(s[1]), float64(s[2]))
			_, u, v := color.RGBToYUV(float64(t[0]), float64(t[1]), float64(t[2]))
			r, g, b := color.YUVToRGB(luma, u, v)

			copy(d[3:], t[3:])
			d[0] = float32(r)
			d[1] = float32(g)
			d[2] = float32(b)
		}
	})
}
