package rig

import (
	"math"
	"testing"
)

func TestDragTracker(t *testing.T) {
	t.Run("Accumulate", func(t *testing.T) {
		d := &DragTracker{}
		if !d.PointerDown(100, 100, true) {
			t.Fatal("PointerDown must start dragging when interaction is enabled")
		}
		d.PointerMove(110, 105)

		r := d.Rotation()
		if math.Abs(float64(r.Y-0.05)) > 1e-6 {
			t.Errorf("Expected yaw 0.05, got %f", r.Y)
		}
		if math.Abs(float64(r.X-0.025)) > 1e-6 {
			t.Errorf("Expected pitch 0.025, got %f", r.X)
		}

		d.PointerMove(100, 100)
		r = d.Rotation()
		if math.Abs(float64(r.X)) > 1e-6 || math.Abs(float64(r.Y)) > 1e-6 {
			t.Errorf("Moving back must cancel the rotation, got %v", r)
		}
	})
	t.Run("Disabled", func(t *testing.T) {
		d := &DragTracker{}
		if d.PointerDown(100, 100, false) {
			t.Fatal("PointerDown must be ignored when interaction is disabled")
		}
		d.PointerMove(200, 200)
		if d.Dragging() || d.Rotation() != (UserRotation{}) {
			t.Errorf("Rotation must not change, got %v", d.Rotation())
		}
	})
	t.Run("MoveWithoutDrag", func(t *testing.T) {
		d := &DragTracker{}
		d.PointerMove(200, 200)
		if d.Rotation() != (UserRotation{}) {
			t.Errorf("Rotation must not change, got %v", d.Rotation())
		}
	})
	t.Run("Release", func(t *testing.T) {
		d := &DragTracker{}
		d.PointerDown(0, 0, true)
		d.PointerUp(2.5)
		if d.Dragging() {
			t.Fatal("PointerUp must stop dragging")
		}
		if d.LastInteractionEnd() != 2.5 {
			t.Errorf("Expected interaction end 2.5, got %f", d.LastInteractionEnd())
		}

		// Second release is a no-op.
		d.PointerLeave(3)
		d.PointerUp(4)
		if d.LastInteractionEnd() != 2.5 {
			t.Errorf("Repeated release must not restamp, got %f", d.LastInteractionEnd())
		}

		d.PointerMove(10, 10)
		if d.Rotation() != (UserRotation{}) {
			t.Errorf("Rotation must not change after release, got %v", d.Rotation())
		}
	})
	t.Run("Unclamped", func(t *testing.T) {
		d := &DragTracker{}
		d.PointerDown(0, 0, true)
		d.PointerMove(10000, 0)
		if r := d.Rotation(); math.Abs(float64(r.Y-50)) > 1e-3 {
			t.Errorf("Expected yaw 50, got %f", r.Y)
		}
	})
}

func TestUserRotation_Decayed(t *testing.T) {
	testCases := map[string]UserRotation{
		"Positive": {X: 1, Y: 2},
		"Negative": {X: -0.5, Y: -3},
		"Mixed":    {X: 0.3, Y: -0.7},
		"Zero":     {},
	}

	for name, r := range testCases {
		r := r
		t.Run(name, func(t *testing.T) {
			prev := r
			for i := 0; i < 1000; i++ {
				next := prev.Decayed()
				if next.Norm() > prev.Norm() {
					t.Fatalf("Norm must not increase: %v -> %v", prev, next)
				}
				if next.X*prev.X < 0 || next.Y*prev.Y < 0 {
					t.Fatalf("Sign must not flip: %v -> %v", prev, next)
				}
				prev = next
			}
			if prev != (UserRotation{}) {
				t.Errorf("Rotation must converge to exactly zero, got %v", prev)
			}
		})
	}

	t.Run("Step", func(t *testing.T) {
		r := UserRotation{X: 1, Y: -1}.Decayed()
		if math.Abs(float64(r.X-0.92)) > 1e-6 || math.Abs(float64(r.Y+0.92)) > 1e-6 {
			t.Errorf("Expected {0.92, -0.92}, got %v", r)
		}
	})
}
