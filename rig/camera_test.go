package rig

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func isNaN(v mat.Vec3) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) {
			return true
		}
	}
	return false
}

func TestCameraRig_SnapBackDistance(t *testing.T) {
	testCases := map[string]struct {
		current CameraPose
		def     CameraPose
	}{
		"SameDirection": {
			current: CameraPose{Position: mat.Vec3{0, 0, 100}},
			def:     CameraPose{Position: mat.Vec3{0, 0, 50}},
		},
		"Perpendicular": {
			current: CameraPose{Position: mat.Vec3{0, 0, 100}},
			def:     CameraPose{Position: mat.Vec3{50, 0, 0}},
		},
		"Opposite": {
			current: CameraPose{Position: mat.Vec3{0, 0, 100}},
			def:     CameraPose{Position: mat.Vec3{0, 0, -50}},
		},
		"OffsetTarget": {
			current: CameraPose{Position: mat.Vec3{10, 0, 100}, Target: mat.Vec3{10, 0, 0}},
			def:     CameraPose{Position: mat.Vec3{10, 50, 0}, Target: mat.Vec3{10, 0, 0}},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewCameraRig(WithCameraPose(tt.current))

			if !c.Update(1, true, &tt.def) {
				t.Fatal("Snap-back must run when idle after the settle delay")
			}
			d := c.Distance()
			if d <= 90 || d >= 100 {
				t.Fatalf("Distance after one step must be in (90, 100), got %f", d)
			}
			if isNaN(c.Pose().Position) {
				t.Fatalf("Position must not be NaN: %v", c.Pose().Position)
			}

			prev := d
			for i := 0; i < 300; i++ {
				c.Update(1+float64(i)/60, true, &tt.def)
				d := c.Distance()
				if d > prev+1e-3 {
					t.Fatalf("Distance must approach 50 monotonically: %f -> %f", prev, d)
				}
				if d < 50-1e-3 {
					t.Fatalf("Distance must not dip below 50, got %f", d)
				}
				prev = d
			}
			if math.Abs(float64(prev-50)) > 1e-2 {
				t.Errorf("Distance must converge to 50, got %f", prev)
			}
			want := tt.def.Position.Sub(tt.def.Target).Normalized()
			got := c.Pose().Position.Sub(c.Pose().Target).Normalized()
			if want.Sub(got).Norm() > 1e-2 {
				t.Errorf("Direction must converge to %v, got %v", want, got)
			}
		})
	}
}

func TestCameraRig_SlerpKeepsDistanceOnArc(t *testing.T) {
	// With equal lengths, lerping the position would cut through the chord.
	c := NewCameraRig(WithCameraPose(CameraPose{Position: mat.Vec3{0, 0, 100}}))
	def := CameraPose{Position: mat.Vec3{100, 0, 0}}
	for i := 0; i < 60; i++ {
		c.Update(1+float64(i)/60, true, &def)
		if d := c.Distance(); math.Abs(float64(d-100)) > 1e-2 {
			t.Fatalf("Distance must stay 100 on the arc, got %f at step %d", d, i)
		}
	}
}

func TestCameraRig_UpdateConditions(t *testing.T) {
	def := CameraPose{Position: mat.Vec3{0, 0, 50}}
	start := CameraPose{Position: mat.Vec3{0, 0, 100}}

	testCases := map[string]struct {
		snapBack bool
		def      *CameraPose
		prepare  func(c *CameraRig)
		elapsed  float64
		expected bool
	}{
		"Idle": {
			snapBack: true, def: &def, elapsed: 1, expected: true,
		},
		"Disabled": {
			snapBack: false, def: &def, elapsed: 1, expected: false,
		},
		"NoDefault": {
			snapBack: true, def: nil, elapsed: 1, expected: false,
		},
		"Interacting": {
			snapBack: true, def: &def, elapsed: 1, expected: false,
			prepare: func(c *CameraRig) { c.BeginInteraction() },
		},
		"Settling": {
			snapBack: true, def: &def, elapsed: 1.1, expected: false,
			prepare: func(c *CameraRig) {
				c.BeginInteraction()
				c.EndInteraction(1)
			},
		},
		"Settled": {
			snapBack: true, def: &def, elapsed: 1.2, expected: true,
			prepare: func(c *CameraRig) {
				c.BeginInteraction()
				c.EndInteraction(1)
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewCameraRig(WithCameraPose(start))
			if tt.prepare != nil {
				tt.prepare(c)
			}
			if got := c.Update(tt.elapsed, tt.snapBack, tt.def); got != tt.expected {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			if !tt.expected && c.Pose() != start {
				t.Errorf("Camera must not move, got %v", c.Pose())
			}
		})
	}
}

func TestCameraRig_Degenerate(t *testing.T) {
	testCases := map[string]struct {
		current CameraPose
		def     CameraPose
	}{
		"ZeroCurrent": {
			current: CameraPose{Position: mat.Vec3{1, 2, 3}, Target: mat.Vec3{1, 2, 3}},
			def:     CameraPose{Position: mat.Vec3{0, 0, 50}},
		},
		"ZeroDefault": {
			current: CameraPose{Position: mat.Vec3{0, 0, 100}},
			def:     CameraPose{Position: mat.Vec3{5, 5, 5}, Target: mat.Vec3{5, 5, 5}},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewCameraRig(WithCameraPose(tt.current))
			for i := 0; i < 100; i++ {
				c.Update(1+float64(i), true, &tt.def)
				p := c.Pose()
				if isNaN(p.Position) || isNaN(p.Target) {
					t.Fatalf("Pose must not be NaN: %v", p)
				}
			}
		})
	}
}

func TestCameraRig_Zoom(t *testing.T) {
	testCases := map[string]struct {
		scale    float32
		expected float32
	}{
		"In":        {scale: 0.5, expected: 137.5},
		"Out":       {scale: 1.5, expected: 412.5},
		"ClampNear": {scale: 0.01, expected: DefaultMinDistance},
		"ClampFar":  {scale: 10, expected: DefaultMaxDistance},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := NewCameraRig()
			c.Zoom(tt.scale)
			if d := c.Distance(); math.Abs(float64(d-tt.expected)) > 1e-3 {
				t.Errorf("Expected distance %f, got %f", tt.expected, d)
			}
			if c.Pose().Target != (mat.Vec3{}) {
				t.Errorf("Zoom must not move the target, got %v", c.Pose().Target)
			}
		})
	}
}

func TestCameraRig_ViewMatrix(t *testing.T) {
	c := NewCameraRig()
	v := c.ViewMatrix()

	// The target is in front of the camera at the default distance.
	p := v.Transform(mat.Vec3{})
	if math.Abs(float64(p[2]+275)) > 1e-3 || math.Abs(float64(p[0])) > 1e-3 || math.Abs(float64(p[1])) > 1e-3 {
		t.Errorf("Expected target at (0, 0, -275) in view space, got %v", p)
	}
}
