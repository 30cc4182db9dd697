// Package pixelops implements the parallel per-pixel kernels of color
// transfer: color statistics (mean, covariance, standard deviation), the
// affine color map, luminance transfer and sRGB linearization.
//
// Every kernel works on a Buffer of interleaved float32 samples. Only the
// first three channels are treated as color; any further channels are
// copied through untouched by the kernels that write output.
package pixelops

// ColorChannels is the number of leading channels interpreted as RGB.
const ColorChannels = 3

// Buffer is a view of an interleaved, row-major float32 image.
// Sample (x, y, c) lives at Pix[(y*Width+x)*Channels+c].
type Buffer struct {
	Pix      []float32
	Width    int
	Height   int
	Channels int
}

// Pixels returns the number of pixels in the buffer.
func (b Buffer) Pixels() int {
	return b.Width * b.Height
}

// Valid reports whether the dimensions are positive, there are at least
// three channels, and Pix holds exactly Width*Height*Channels samples.
func (b Buffer) Valid() bool {
	return b.Width > 0 && b.Height > 0 && b.Channels >= ColorChannels &&
		len(b.Pix) == b.Width*b.Height*b.Channels
}

// SameShape reports whether b and o have identical dimensions and channel
// counts.
func (b Buffer) SameShape(o Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height && b.Channels == o.Channels
}

// Row returns the samples of row y.
func (b Buffer) Row(y int) []float32 {
	n := b.Width * b.Channels
	return b.Pix[y*n : (y+1)*n : (y+1)*n]
}

// nearest maps a destination index onto a source axis of a different length
// by nearest-neighbour sampling at the same normalized coordinate, without
// half-pixel centering: floor(i * src / dst).
func nearest(i, dst, src int) int {
	return min(i*src/dst, src-1)
}
