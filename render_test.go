package main

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/mockup"
	"github.com/seqsense/phonemockup/rig"
)

func TestHitPhone(t *testing.T) {
	phone, err := mockup.NewPhone(mockup.DefaultDimensions, 4)
	if err != nil {
		t.Fatal(err)
	}
	corners, err := phone.Corners()
	if err != nil {
		t.Fatal(err)
	}
	cam := rig.NewCameraRig()
	mvp := modelViewProjection(
		rig.ProjectionMatrix(1, nearClip, farClip),
		cam.ViewMatrix(),
		mockup.ModelMatrix(rig.Pose{}),
	)

	testCases := map[string]struct {
		x, y     int
		expected bool
	}{
		"Center":      {x: 200, y: 200, expected: true},
		"Corner":      {x: 5, y: 5, expected: false},
		"Side":        {x: 200, y: 390, expected: false},
		"InsideUpper": {x: 200, y: 100, expected: true},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if got := hitPhone(corners, mvp, 400, 400, tt.x, tt.y); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestModelViewProjection(t *testing.T) {
	m := mockup.ModelMatrix(rig.Pose{Position: mat.Vec3{1, 2, 3}})
	got := modelViewProjection(mat.Translate(0, 0, -3), mat.Mat4(mgl32.Scale3D(2, 2, 2)), m).
		Transform(mat.Vec3{0, 0, 0})
	if got.Sub(mat.Vec3{2, 4, 3}).Norm() > 1e-5 {
		t.Errorf("Expected model, view then projection, got %v", got)
	}
}

func TestPointSizeBase(t *testing.T) {
	a, b := pointSizeBase(500), pointSizeBase(1000)
	if a <= 0 {
		t.Fatalf("Point size must be positive, got %f", a)
	}
	if math.Abs(float64(b/a-2)) > 1e-5 {
		t.Errorf("Point size must scale with the viewport height, got %f and %f", a, b)
	}
	// One point at the default camera distance covers a few pixels.
	if px := a / rig.DefaultCameraPose.Position[2]; px < 1 || px > 8 {
		t.Errorf("Unexpected point size %f px", px)
	}
}

func TestLightingOf(t *testing.T) {
	for _, p := range config.LightingPresets {
		l, err := lightingOf(p.Name)
		if err != nil {
			t.Fatal(err)
		}
		if n := l.direction.Norm(); math.Abs(float64(n-1)) > 1e-5 {
			t.Errorf("%s: light direction must be normalized, got %v", p.Name, l.direction)
		}
		if l.ambient != p.Ambient {
			t.Errorf("%s: expected ambient %f, got %f", p.Name, p.Ambient, l.ambient)
		}
	}
	if _, err := lightingOf("moon"); !errors.Is(err, config.ErrUnknownLighting) {
		t.Errorf("Expected ErrUnknownLighting, got %v", err)
	}
}

func TestGradientUniforms(t *testing.T) {
	c := config.Default()
	if !c.ApplyGradient("Cherry") {
		t.Fatal("Failed to apply preset")
	}
	g, err := c.Gradient()
	if err != nil {
		t.Fatal(err)
	}
	start, end, dir := gradientUniforms(g)
	if start[0] < 0.9 || end[0] < 0.9 {
		t.Errorf("Unexpected colors %v %v", start, end)
	}
	if math.Abs(float64(dir[0]-1)) > 1e-5 || math.Abs(float64(dir[1])) > 1e-5 || math.Abs(float64(dir[2]-0.5)) > 1e-5 {
		t.Errorf("Expected rightward gradient, got %v", dir)
	}

	// The shader formula must match the CPU gradient.
	for _, uv := range [][2]float32{{0, 0.5}, {0.25, 0.1}, {1, 1}} {
		tt := (uv[0]-0.5)*dir[0] + (uv[1]-0.5)*dir[1]
		tt = tt/(2*dir[2]) + 0.5
		tt = float32(math.Max(0, math.Min(1, float64(tt))))
		expected := g.At(uv[0], uv[1])
		got := float64(start[1] + (end[1]-start[1])*tt)
		if math.Abs(got-expected.G) > 1e-3 {
			t.Errorf("At %v: expected %f, got %f", uv, expected.G, got)
		}
	}
}

func TestNormalizedPointer(t *testing.T) {
	testCases := map[string]struct {
		x, y, w, h int
		nx, ny     float32
	}{
		"TopLeft":     {x: 0, y: 0, w: 200, h: 100, nx: -1, ny: 1},
		"Center":      {x: 100, y: 50, w: 200, h: 100, nx: 0, ny: 0},
		"BottomRight": {x: 200, y: 100, w: 200, h: 100, nx: 1, ny: -1},
		"Empty":       {x: 10, y: 10, w: 0, h: 0, nx: 0, ny: 0},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if nx, ny := normalizedPointer(tt.x, tt.y, tt.w, tt.h); nx != tt.nx || ny != tt.ny {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.nx, tt.ny, nx, ny)
			}
		})
	}
}

func TestCanvasSize(t *testing.T) {
	w, h, bw, bh := canvasSize(config.AspectRatio{W: 9, H: 16}, 800, 800, 2)
	if w != 450 || h != 800 || bw != 900 || bh != 1600 {
		t.Errorf("Unexpected size %dx%d (%dx%d)", w, h, bw, bh)
	}
	w, h, bw, bh = canvasSize(config.AspectRatio{}, 640, 480, 0)
	if w != 640 || h != 480 || bw != 640 || bh != 480 {
		t.Errorf("Unexpected size %dx%d (%dx%d)", w, h, bw, bh)
	}
}

func TestCursorFor(t *testing.T) {
	testCases := map[string]struct {
		interaction, dragging, hover bool
		expected                     cursor
	}{
		"Disabled": {interaction: false, dragging: true, hover: true, expected: cursorAuto},
		"Dragging": {interaction: true, dragging: true, expected: cursorGrabbing},
		"Hover":    {interaction: true, hover: true, expected: cursorGrab},
		"Outside":  {interaction: true, expected: cursorAuto},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if c := cursorFor(tt.interaction, tt.dragging, tt.hover); c != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, c)
			}
		})
	}
}

func TestLogWriter(t *testing.T) {
	var lines []string
	w := &logWriter{sinks: []func(string){
		func(s string) { lines = append(lines, s) },
	}}
	if n, err := w.Write([]byte("a\nb\n")); err != nil || n != 4 {
		t.Fatalf("Unexpected result %d, %v", n, err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("Unexpected lines %v", lines)
	}
}
