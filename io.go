package colortransfer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for DecodeImage only.
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality is used when a JPEG quality outside [1,100] is given.
const DefaultJPEGQuality = 95

// LoadImage reads and decodes an image file. PNG, JPEG, GIF, BMP, TIFF and
// WebP are recognized from the file contents.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("colortransfer: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeImage(f)
}

// LoadImageFromBytes decodes an image held in memory.
func LoadImageFromBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeImage(bytes.NewReader(data))
}

// DecodeImage decodes an image from r, auto-detecting the format.
// The result has four channels (RGBA).
func DecodeImage(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("colortransfer: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// Save encodes the image to path, choosing the format from the file
// extension: .png, .jpg/.jpeg, .bmp or .tif/.tiff. quality only applies to
// JPEG.
func (img *Image) Save(path string, quality int) error {
	return img.saveAs(path, strings.TrimPrefix(filepath.Ext(path), "."), quality)
}

// SavePNG saves the image as an 8-bit PNG file.
func (img *Image) SavePNG(path string) error {
	return img.saveAs(path, "png", 0)
}

// SaveJPEG saves the image as a JPEG file with the given quality (1-100).
func (img *Image) SaveJPEG(path string, quality int) error {
	return img.saveAs(path, "jpeg", quality)
}

func (img *Image) saveAs(path, format string, quality int) error {
	// Fail before creating the file.
	if _, err := normalizeFormat(format); err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("colortransfer: create file: %w", err)
	}
	if err := img.Encode(f, format, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the image to w in the named format ("png", "jpeg", "jpg",
// "bmp", "tiff" or "tif").
func (img *Image) Encode(w io.Writer, format string, quality int) error {
	f, err := normalizeFormat(format)
	if err != nil {
		return err
	}

	switch f {
	case "png":
		err = png.Encode(w, img.ToStdImage())
	case "jpeg":
		if quality < 1 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(w, img.ToStdImage(), &jpeg.Options{Quality: quality})
	case "bmp":
		err = bmp.Encode(w, img.ToStdImage())
	case "tiff":
		err = tiff.Encode(w, img.ToStdImage16(), &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("colortransfer: encode %s: %w", f, err)
	}
	return nil
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return "png", nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "bmp":
		return "bmp", nil
	case "tif", "tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
