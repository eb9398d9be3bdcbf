package main

import (
	"bytes"
	"image"
	"syscall/js"
	"time"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/blob"
	"github.com/seqsense/phonemockup/capture"
	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/rig"
)

// readPixels copies the current canvas image as straight alpha RGBA.
// It must be called in the same task as the draw call.
func (r *renderer) readPixels() (*image.NRGBA, error) {
	cv := js.Global().Get("document").Call("createElement", "canvas")
	cv.Set("width", r.width)
	cv.Set("height", r.height)
	ctx := cv.Call("getContext", "2d")
	ctx.Call("drawImage", r.canvas, 0, 0)
	data := ctx.Call("getImageData", 0, 0, r.width, r.height).Get("data")

	pix := make([]byte, data.Get("length").Int())
	js.CopyBytesToGo(pix, js.Global().Get("Uint8Array").New(data.Get("buffer")))
	return capture.FromPixels(pix, r.width, r.height)
}

// screenshot renders the frame at capture.ScreenshotPixelRatio, crops it
// to the phone and downloads it. Non-zero maxWidth downscales wider
// images.
func (r *renderer) screenshot(c *config.Config, f rig.Frame, view mat.Mat4, format capture.Format, maxWidth int, now time.Time) (string, error) {
	aspect, err := config.ParseAspectRatio(c.AspectRatio)
	if err != nil {
		return "", err
	}
	ratio0 := r.pixelRatio
	r.resize(aspect, capture.ScreenshotPixelRatio)
	defer r.resize(aspect, ratio0)

	if err := r.draw(c, f, view); err != nil {
		return "", err
	}
	img, err := r.readPixels()
	if err != nil {
		return "", err
	}

	corners, err := r.phone.Corners()
	if err != nil {
		return "", err
	}
	rect, ok := capture.CropRegion(
		corners, r.mvp(f, view), r.width, r.height,
		capture.PaddingPixels*capture.ScreenshotPixelRatio,
	)
	if ok {
		if img, err = capture.Crop(img, rect); err != nil {
			return "", err
		}
	}
	if b := img.Bounds(); maxWidth > 0 && b.Dx() > maxWidth {
		if img, err = capture.Scale(img, maxWidth, b.Dy()*maxWidth/b.Dx()); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := capture.Encode(&buf, img, format); err != nil {
		return "", err
	}
	name := capture.FileName(capture.ScreenshotPrefix, now, format.Ext())
	blob.New(buf.Bytes(), format.MIMEType()).Download(name)
	return name, nil
}
