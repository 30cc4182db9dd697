package colortransfer

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/colortransfer/internal/color"
	"github.com/gogpu/colortransfer/internal/pixelops"
)

// Image is an interleaved, row-major float32 image with values normalized
// to [0,1].
//
// The first three channels are red, green and blue. Any further channels
// (alpha, masks) are never read by a transfer and are copied to the output
// unchanged.
//
// Thread safety: Image is safe for concurrent reads. Writes require
// external synchronization.
type Image struct {
	pix      []float32
	width    int
	height   int
	channels int
}

// NewImage allocates a zeroed image.
func NewImage(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels < pixelops.ColorChannels {
		return nil, fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidDimensions, width, height, channels)
	}
	return &Image{
		pix:      make([]float32, width*height*channels),
		width:    width,
		height:   height,
		channels: channels,
	}, nil
}

// NewImageFromData wraps an existing sample slice without copying.
// len(pix) must equal width*height*channels.
func NewImageFromData(pix []float32, width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 || channels < pixelops.ColorChannels {
		return nil, fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidDimensions, width, height, channels)
	}
	if want := width * height * channels; len(pix) != want {
		return nil, fmt.Errorf("%w: have %d samples, need %d", ErrInvalidDimensions, len(pix), want)
	}
	return &Image{pix: pix, width: width, height: height, channels: channels}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Channels returns the number of samples per pixel.
func (img *Image) Channels() int { return img.channels }

// Bounds returns the width and height.
func (img *Image) Bounds() (int, int) { return img.width, img.height }

// Pix returns the underlying samples. Modifying them modifies the image.
func (img *Image) Pix() []float32 { return img.pix }

// At returns the samples of pixel (x, y), aliasing the image storage.
// It returns nil for coordinates outside the image.
func (img *Image) At(x, y int) []float32 {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return nil
	}
	i := (y*img.width + x) * img.channels
	return img.pix[i : i+img.channels : i+img.channels]
}

// Set writes values into pixel (x, y), starting at channel 0. Extra values
// beyond the channel count are ignored.
func (img *Image) Set(x, y int, values ...float32) error {
	px := img.At(x, y)
	if px == nil {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, img.width, img.height)
	}
	copy(px, values)
	return nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	c := *img
	c.pix = make([]float32, len(img.pix))
	copy(c.pix, img.pix)
	return &c
}

// CopyFrom overwrites the image with the samples of src, which must have
// the same shape.
func (img *Image) CopyFrom(src *Image) error {
	if src == nil || !img.sameShape(src) {
		return fmt.Errorf("%w: copy between different shapes", ErrInvalidArgument)
	}
	copy(img.pix, src.pix)
	return nil
}

func (img *Image) sameShape(o *Image) bool {
	return img.width == o.width && img.height == o.height && img.channels == o.channels
}

func (img *Image) buffer() pixelops.Buffer {
	return pixelops.Buffer{Pix: img.pix, Width: img.width, Height: img.height, Channels: img.channels}
}

// FromStdImage converts a standard library image to a 4-channel RGBA Image
// with straight (non-premultiplied) alpha, keeping 16-bit precision.
func FromStdImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	img := &Image{pix: make([]float32, w*h*4), width: w, height: h, channels: 4}

	// 8-bit NRGBA is what the PNG decoder returns for images with alpha;
	// reading it directly avoids a premultiply round trip.
	if n, ok := src.(*image.NRGBA); ok {
		for y := range h {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			row := n.Pix[off : off+w*4]
			dst := img.pix[y*w*4 : (y+1)*w*4]
			for i, v := range row {
				dst[i] = float32(v) / 255
			}
		}
		return img
	}

	n, ok := src.(*image.NRGBA64)
	if !ok {
		n = image.NewNRGBA64(image.Rect(0, 0, w, h))
		draw.Draw(n, n.Bounds(), src, b.Min, draw.Src)
		b = n.Rect
	}
	for y := range h {
		off := n.PixOffset(b.Min.X, b.Min.Y+y)
		row := n.Pix[off : off+w*8]
		dst := img.pix[y*w*4 : (y+1)*w*4]
		for i := range w * 4 {
			v := uint16(row[i*2])<<8 | uint16(row[i*2+1])
			dst[i] = float32(v) / 65535
		}
	}
	return img
}

// ToStdImage converts the image to an 8-bit *image.NRGBA. Channel 3 is used
// as alpha when present; otherwise the result is opaque. Samples are
// clamped to [0,1].
func (img *Image) ToStdImage() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		row := out.Pix[y*out.Stride:]
		for x := range img.width {
			px := img.At(x, y)
			d := row[x*4 : x*4+4]
			d[0] = color.Quantize8(px[0])
			d[1] = color.Quantize8(px[1])
			d[2] = color.Quantize8(px[2])
			d[3] = 255
			if img.channels > 3 {
				d[3] = color.Quantize8(px[3])
			}
		}
	}
	return out
}

// ToStdImage16 is like ToStdImage but keeps 16 bits per channel.
func (img *Image) ToStdImage16() *image.NRGBA64 {
	out := image.NewNRGBA64(image.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		row := out.Pix[y*out.Stride:]
		for x := range img.width {
			px := img.At(x, y)
			d := row[x*8 : x*8+8]
			alpha := uint16(65535)
			if img.channels > 3 {
				alpha = color.Quantize16(px[3])
			}
			for c, v := range [4]uint16{color.Quantize16(px[0]), color.Quantize16(px[1]), color.Quantize16(px[2]), alpha} {
				d[c*2] = uint8(v >> 8)
				d[c*2+1] = uint8(v)
			}
		}
	}
	return out
}
