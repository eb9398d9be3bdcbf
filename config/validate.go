package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/motion"
)

var (
	ErrUnknownMode       = motion.ErrUnknownMode
	ErrUnknownBackground = errors.New("unknown background type")
	ErrUnknownAspect     = errors.New("unknown aspect ratio")
	ErrUnknownLighting   = errors.New("unknown lighting preset")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidNumber     = errors.New("invalid number")
)

type bound struct {
	v        *float32
	min, max float32
}

// Finite returns true if v is neither NaN nor infinite.
func Finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v mat.Vec3) bool {
	return Finite(v[0]) && Finite(v[1]) && Finite(v[2])
}

// clamp leaves non-finite values for Validate to reject.
func clamp(v, min, max float32) float32 {
	switch {
	case !Finite(v):
		return v
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}

// Normalize clamps numeric fields to the ranges offered by the panel.
func (c *Config) Normalize() {
	for _, b := range c.bounds() {
		*b.v = clamp(*b.v, b.min, b.max)
	}
}

func (c *Config) bounds() []bound {
	return []bound{
		{&c.RotationSpeed, 0.1, 5},
		{&c.BounceSpeed, 0.1, 5},
		{&c.BounceHeight, 0, 5},
		{&c.WiggleSpeed, 0.1, 5},
		{&c.WiggleIntensity, 0, 3},
		{&c.ScreenRoughness, 0, 1},
		{&c.ScreenEmissive, 0, 2},
		{&c.BackgroundGradientAngle, 0, 360},
		{&c.ShadowOpacity, 0, 1},
	}
}

// Validate checks enumerations, colors and that all numbers are finite.
func (c *Config) Validate() error {
	for _, b := range c.bounds() {
		if !Finite(*b.v) {
			return fmt.Errorf("%w: %v", ErrInvalidNumber, *b.v)
		}
	}
	if p := c.DefaultModelOrientation; p != nil {
		if !finiteVec(p.Position) || !finiteVec(p.Rotation) {
			return fmt.Errorf("%w: defaultModelOrientation", ErrInvalidNumber)
		}
	}
	if p := c.DefaultCameraPosition; p != nil {
		if !finiteVec(p.Position) || !finiteVec(p.Target) {
			return fmt.Errorf("%w: defaultCameraPosition", ErrInvalidNumber)
		}
	}
	if _, err := motion.ParseMode(c.MovementType); err != nil {
		return err
	}
	switch c.BackgroundType {
	case BackgroundTransparent, BackgroundSolid, BackgroundGradient:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackground, c.BackgroundType)
	}
	if _, err := ParseAspectRatio(c.AspectRatio); err != nil {
		return err
	}
	if !isLightingPreset(c.LightingPreset) {
		return fmt.Errorf("%w: %q", ErrUnknownLighting, c.LightingPreset)
	}
	for name, col := range map[string]string{
		"color":                   c.Color,
		"backgroundColor":         c.BackgroundColor,
		"backgroundGradientStart": c.BackgroundGradientStart,
		"backgroundGradientEnd":   c.BackgroundGradientEnd,
	} {
		if _, err := ParseColor(col); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
