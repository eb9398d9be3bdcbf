package motion

import (
	"errors"
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func vecNear(a, b mat.Vec3, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d < -tol || tol < d {
			return false
		}
	}
	return true
}

func TestOffset(t *testing.T) {
	p := DefaultParams()
	p.BounceHeight = 1.5
	p.BounceSpeed = 2

	testCases := map[string]struct {
		mode     Mode
		t        float64
		params   Params
		expected Transform
	}{
		"Static": {
			mode:   Static,
			t:      12.3,
			params: p,
		},
		"AutoRotate": {
			mode:   AutoRotate,
			t:      10,
			params: Params{RotationSpeed: 0.5},
			expected: Transform{
				Rotation: mat.Vec3{0, 5, 0},
			},
		},
		"AutoRotateLongSession": {
			mode:   AutoRotate,
			t:      1e5,
			params: Params{RotationSpeed: 1},
			expected: Transform{
				Rotation: mat.Vec3{0, 3.1058362, 0},
			},
		},
		"BounceAtZero": {
			mode:   BounceWiggle,
			t:      0,
			params: p,
		},
		"BounceAtPeak": {
			mode:   BounceWiggle,
			t:      math.Pi / (2 * 2),
			params: Params{BounceSpeed: 2, BounceHeight: 1.5},
			expected: Transform{
				Position: mat.Vec3{0, 1.5, 0},
			},
		},
		"ParallaxHasNoTimeOffset": {
			mode:   Parallax,
			t:      3,
			params: p,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			o := Offset(tt.mode, tt.t, tt.params)
			if !vecNear(tt.expected.Position, o.Position, 1e-5) {
				t.Errorf("Expected position: %v, got: %v", tt.expected.Position, o.Position)
			}
			if !vecNear(tt.expected.Rotation, o.Rotation, 1e-5) {
				t.Errorf("Expected rotation: %v, got: %v", tt.expected.Rotation, o.Rotation)
			}
		})
	}
}

func TestOffset_Wiggle(t *testing.T) {
	p := Params{WiggleSpeed: 1, WiggleIntensity: 2}
	tm := 0.7
	o := Offset(BounceWiggle, tm, p)
	expected := mat.Vec3{
		float32(math.Sin(tm) * 0.02 * 2),
		float32(math.Sin(tm*0.8) * 0.05 * 2),
		float32(math.Sin(tm*1.2) * 0.03 * 2),
	}
	if !vecNear(expected, o.Rotation, 1e-6) {
		t.Errorf("Expected wiggle rotation: %v, got: %v", expected, o.Rotation)
	}

	if o := Offset(BounceWiggle, tm, Params{WiggleSpeed: 1}); !vecNear(mat.Vec3{}, o.Rotation, 0) {
		t.Errorf("Zero intensity must not wiggle, got: %v", o.Rotation)
	}
}

func TestParallaxTarget(t *testing.T) {
	o := ParallaxTarget(1, -0.5)
	if !vecNear(mat.Vec3{2, -1, 0}, o.Position, 1e-6) {
		t.Errorf("Unexpected position: %v", o.Position)
	}
	if !vecNear(mat.Vec3{0.1, 0.4, 0.1}, o.Rotation, 1e-6) {
		t.Errorf("Unexpected rotation: %v", o.Rotation)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		parsed, err := ParseMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != m {
			t.Errorf("Expected %v, got %v", m, parsed)
		}
	}
	if _, err := ParseMode("spin"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Expected ErrUnknownMode, got %v", err)
	}
	if !Parallax.Smoothed() || AutoRotate.Smoothed() {
		t.Error("Only parallax must be smoothed")
	}
}
