package colortransfer

import "errors"

var (
	// ErrInvalidArgument is returned when a transfer is called with nil,
	// empty or mismatched images. It is reported before any work is done.
	ErrInvalidArgument = errors.New("colortransfer: invalid argument")

	// ErrInvalidDimensions is returned when width, height or channel count
	// is out of range.
	ErrInvalidDimensions = errors.New("colortransfer: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside the image.
	ErrOutOfBounds = errors.New("colortransfer: coordinates out of bounds")

	// ErrUnknownMethod is returned when no transfer method has the requested name.
	ErrUnknownMethod = errors.New("colortransfer: unknown method")

	// ErrUnsupportedFormat is returned when an image format cannot be encoded.
	ErrUnsupportedFormat = errors.New("colortransfer: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("colortransfer: empty data")
)
