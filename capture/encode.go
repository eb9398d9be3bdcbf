package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Format is an output image encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
)

var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat parses a format name. Empty selects PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	return string(f)
}

// MIMEType returns the media type of the encoding.
func (f Format) MIMEType() string {
	return "image/" + string(f)
}

// Encode writes the image in the format.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	switch f {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return nil
}
