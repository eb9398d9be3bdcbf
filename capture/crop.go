// Package capture exports still images and recordings of the mockup.
package capture

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

// PaddingPixels is the margin around the cropped phone in CSS pixels.
const PaddingPixels = 20

// ScreenshotPixelRatio is the device pixel ratio used to render stills.
const ScreenshotPixelRatio = 3

// CropRegion projects the corners with the model-view-projection matrix and
// returns the pixel rectangle covering them on a w x h canvas, grown by
// padding and clamped to the canvas.
// false is returned if any corner is behind the camera or the region is
// empty.
func CropRegion(corners [8]mat.Vec3, mvp mat.Mat4, w, h int, padding float32) (image.Rectangle, bool) {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	m := mgl32.Mat4(mvp)
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, c := range corners {
		v := m.Mul4x1(mgl32.Vec4{c[0], c[1], c[2], 1})
		if v[3] <= 0 {
			return image.Rectangle{}, false
		}
		x := (v[0]/v[3] + 1) * 0.5 * float32(w)
		y := (1 - v[1]/v[3]) * 0.5 * float32(h)
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}

	minX = max(0, minX-padding)
	minY = max(0, minY-padding)
	maxX = min(float32(w), maxX+padding)
	maxY = min(float32(h), maxY+padding)
	if maxX <= minX || maxY <= minY {
		return image.Rectangle{}, false
	}

	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}
