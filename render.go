package main

import (
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/capture"
	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/rig"
)

const (
	// Spacing of the sampled phone surface in millimeters.
	pointStep = 0.6

	nearClip = 1.0
	farClip  = 2000.0

	// Points are drawn this much larger than their spacing to close gaps.
	pointOverlap = 1.5
)

func modelViewProjection(projection, view, model mat.Mat4) mat.Mat4 {
	return mat.Mat4(mgl32.Mat4(projection).Mul4(mgl32.Mat4(view)).Mul4(mgl32.Mat4(model)))
}

// pointSizeBase returns the point size in pixels of a point at unit
// distance, for a viewport of the given height in pixels.
func pointSizeBase(height int) float32 {
	focal := float64(height) / 2 / math.Tan(float64(mgl32.DegToRad(rig.DefaultFOV))/2)
	return float32(pointOverlap * pointStep * focal)
}

func rgb(c colorful.Color) mat.Vec3 {
	return mat.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

type lighting struct {
	direction mat.Vec3
	color     mat.Vec3
	ambient   float32
}

func lightingOf(name string) (lighting, error) {
	l, ok := config.FindLighting(name)
	if !ok {
		return lighting{}, fmt.Errorf("%w: %q", config.ErrUnknownLighting, name)
	}
	c, err := config.ParseColor(l.Color)
	if err != nil {
		return lighting{}, err
	}
	return lighting{
		direction: mat.Vec3(l.Direction).Normalized(),
		color:     rgb(c),
		ambient:   l.Ambient,
	}, nil
}

// gradientUniforms returns the start and end colors and the direction
// vector of the background shader. The third element of the direction is
// the half extent of the gradient line.
func gradientUniforms(g config.Gradient) (mat.Vec3, mat.Vec3, mat.Vec3) {
	dx, dy := g.Direction()
	half := (float32(math.Abs(float64(dx))) + float32(math.Abs(float64(dy)))) / 2
	return rgb(g.Start), rgb(g.End), mat.Vec3{dx, dy, half}
}

// hitPhone returns true if (x, y) is inside the projected bounding box of
// the phone on a w x h viewport.
func hitPhone(corners [8]mat.Vec3, mvp mat.Mat4, w, h, x, y int) bool {
	r, ok := capture.CropRegion(corners, mvp, w, h, 0)
	return ok && image.Pt(x, y).In(r)
}

// normalizedPointer maps a canvas position to [-1, 1] with Y pointing up.
func normalizedPointer(x, y, w, h int) (float32, float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return 2*float32(x)/float32(w) - 1, 1 - 2*float32(y)/float32(h)
}

// canvasSize returns the CSS size of the canvas fitting the container with
// the aspect ratio, and the drawing buffer size at the pixel ratio.
func canvasSize(a config.AspectRatio, cw, ch int, ratio float64) (int, int, int, int) {
	w, h := a.Fit(cw, ch)
	if ratio <= 0 {
		ratio = 1
	}
	return w, h, int(math.Round(float64(w) * ratio)), int(math.Round(float64(h) * ratio))
}
