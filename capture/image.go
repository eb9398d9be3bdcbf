package capture

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var ErrEmptyImage = errors.New("empty image")

// FromPixels wraps top-down RGBA pixels, as returned by a 2D canvas, into
// an image.
func FromPixels(pix []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("pixel buffer size %d does not match %dx%d", len(pix), w, h)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

// Crop copies the region of the image into a new image starting at the
// origin.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, ErrEmptyImage
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, img, r, draw.Src, nil)
	return dst, nil
}

// Scale resizes the image with premultiplied alpha so that transparent
// backgrounds do not bleed dark fringes into the phone edge.
func Scale(img *image.NRGBA, w, h int) (*image.NRGBA, error) {
	b := img.Bounds()
	if w <= 0 || h <= 0 || b.Empty() {
		return nil, ErrEmptyImage
	}
	if b.Dx() == w && b.Dy() == h {
		return img, nil
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}
	return result, nil
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
