package config

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rgb or #rrggbb hex color.
func ParseColor(s string) (colorful.Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// RGBA returns the color as a float32 vector for shader uniforms.
func RGBA(c colorful.Color, alpha float32) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), alpha}
}

// ScreenColor returns the screen base color darkened by the emissive
// intensity. Full intensity or above renders the screen unlit black.
func ScreenColor(base colorful.Color, emissive float32) colorful.Color {
	k := math.Max(0, 1-float64(emissive))
	return colorful.Color{R: base.R * k, G: base.G * k, B: base.B * k}
}

// Gradient is a linear background gradient.
type Gradient struct {
	Start, End colorful.Color
	// Angle in degrees, CSS convention: 0 points up, 90 points right.
	Angle float32
}

// Gradient returns the background gradient of the configuration.
func (c *Config) Gradient() (Gradient, error) {
	s, err := ParseColor(c.BackgroundGradientStart)
	if err != nil {
		return Gradient{}, err
	}
	e, err := ParseColor(c.BackgroundGradientEnd)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{Start: s, End: e, Angle: c.BackgroundGradientAngle}, nil
}

// Direction returns the unit vector the gradient runs along in UV space,
// with V pointing down.
func (g Gradient) Direction() (float32, float32) {
	rad := float64(g.Angle) * math.Pi / 180
	return float32(math.Sin(rad)), float32(-math.Cos(rad))
}

// At returns the gradient color at the normalized image position (u, v),
// where (0, 0) is the top left corner.
func (g Gradient) At(u, v float32) colorful.Color {
	dx, dy := g.Direction()
	// Project onto the gradient line through the center.
	t := (u-0.5)*dx + (v-0.5)*dy
	half := float32(math.Abs(float64(dx))+math.Abs(float64(dy))) / 2
	if half > 0 {
		t = t/(2*half) + 0.5
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.Start.BlendRgb(g.End, float64(t)).Clamped()
}

// Image fills a w x h image with the gradient.
func (g Gradient) Image(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := g.At((float32(x)+0.5)/float32(w), (float32(y)+0.5)/float32(h))
			r, gg, b := c.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gg, B: b, A: 0xFF})
		}
	}
	return img
}

// Background returns the clear color of the configuration. Transparent and
// gradient backgrounds clear to transparent black; gradients are drawn as a
// full screen quad.
func (c *Config) Background() ([4]float32, error) {
	switch c.BackgroundType {
	case BackgroundSolid:
		col, err := ParseColor(c.BackgroundColor)
		if err != nil {
			return [4]float32{}, err
		}
		return RGBA(col, 1), nil
	case BackgroundTransparent, BackgroundGradient:
		return [4]float32{}, nil
	}
	return [4]float32{}, fmt.Errorf("%w: %q", ErrUnknownBackground, c.BackgroundType)
}
