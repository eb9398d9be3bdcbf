package rig

import (
	"math"
	"testing"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/motion"
)

func TestBlender_Additive(t *testing.T) {
	base := Pose{
		Position: mat.Vec3{1, 2, 3},
		Rotation: mat.Vec3{0.1, 0.2, 0.3},
	}
	user := UserRotation{X: 0.5, Y: -0.5}
	p := motion.DefaultParams()

	testCases := map[string]struct {
		mode     motion.Mode
		t        float64
		expected Pose
	}{
		"Static": {
			mode: motion.Static,
			expected: Pose{
				Position: mat.Vec3{1, 2, 3},
				Rotation: mat.Vec3{0.6, -0.3, 0.3},
			},
		},
		"AutoRotate": {
			mode: motion.AutoRotate,
			t:    10,
			expected: Pose{
				Position: mat.Vec3{1, 2, 3},
				Rotation: mat.Vec3{0.6, 4.7, 0.3},
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			b := &Blender{}
			got := b.Blend(tt.mode, tt.t, p, base, user, 0, 0)
			if !got.Position.Equal(tt.expected.Position) {
				t.Errorf("Expected position %v, got %v", tt.expected.Position, got.Position)
			}
			if got.Rotation.Sub(tt.expected.Rotation).Norm() > 1e-5 {
				t.Errorf("Expected rotation %v, got %v", tt.expected.Rotation, got.Rotation)
			}
			if b.Current() != got {
				t.Errorf("Current must return the last blended pose")
			}
		})
	}
}

func TestBlender_Parallax(t *testing.T) {
	base := Pose{Position: mat.Vec3{0, 0, 7}}
	b := &Blender{}

	first := b.Blend(motion.Parallax, 0, motion.Params{}, base, UserRotation{}, 1, 0)
	if math.Abs(float64(first.Position[0]-0.2)) > 1e-6 {
		t.Errorf("Expected first step x 0.2, got %f", first.Position[0])
	}
	if first.Position[2] != 7 {
		t.Errorf("Position z must follow the base, got %f", first.Position[2])
	}
	if math.Abs(float64(first.Rotation[1]-0.04)) > 1e-6 {
		t.Errorf("Expected first step yaw 0.04, got %f", first.Rotation[1])
	}

	var last Pose
	for i := 0; i < 500; i++ {
		last = b.Blend(motion.Parallax, 0, motion.Params{}, base, UserRotation{}, 1, 0)
	}
	target := mat.Vec3{2, 0, 7}
	if last.Position.Sub(target).Norm() > 1e-4 {
		t.Errorf("Expected position to converge to %v, got %v", target, last.Position)
	}
	rot := mat.Vec3{0, 0.4, 0.1}
	if last.Rotation.Sub(rot).Norm() > 1e-4 {
		t.Errorf("Expected rotation to converge to %v, got %v", rot, last.Rotation)
	}
}
