// Package motion provides the procedural animations applied to the phone
// model and the clock driving them.
package motion

import (
	"errors"
	"fmt"
)

// Mode is a movement type of the model.
type Mode int

const (
	Static Mode = iota
	AutoRotate
	BounceWiggle
	Parallax
)

// ErrUnknownMode is returned when parsing an unsupported movement type name.
var ErrUnknownMode = errors.New("unknown movement type")

var modeNames = map[Mode]string{
	Static:       "static",
	AutoRotate:   "autoRotate",
	BounceWiggle: "bounceWiggle",
	Parallax:     "parallax",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// Smoothed returns true if the model chases the mode's target pose with
// exponential smoothing instead of adding the offset to the base pose.
func (m Mode) Smoothed() bool {
	return m == Parallax
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return Static, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes returns all movement types in declaration order.
func Modes() []Mode {
	return []Mode{Static, AutoRotate, BounceWiggle, Parallax}
}

// Params holds the per-mode tuning values.
type Params struct {
	RotationSpeed   float32
	BounceSpeed     float32
	BounceHeight    float32
	WiggleSpeed     float32
	WiggleIntensity float32
}

// DefaultParams returns the parameters of a fresh session.
func DefaultParams() Params {
	return Params{
		RotationSpeed:   0.5,
		BounceSpeed:     1.5,
		BounceHeight:    1.5,
		WiggleSpeed:     1.0,
		WiggleIntensity: 1.0,
	}
}
