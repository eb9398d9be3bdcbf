package main

import (
	"errors"
	"testing"

	"github.com/seqsense/phonemockup/config"
)

func newTestConsole(t *testing.T) *console {
	t.Helper()
	cmd, err := newCommandContext(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &console{cmd: cmd}
}

func TestConsole(t *testing.T) {
	testCases := map[string]struct {
		lines    []string
		expected string
		err      error
		anyErr   bool
	}{
		"Empty":          {lines: []string{""}, expected: ""},
		"Unknown":        {lines: []string{"spin"}, err: errInvalidCommand},
		"Mode":           {lines: []string{"mode"}, expected: "static"},
		"SetMode":        {lines: []string{"mode bounceWiggle"}, expected: "bounceWiggle"},
		"InvalidMode":    {lines: []string{"mode spin"}, err: config.ErrUnknownMode},
		"RotationSpeed":  {lines: []string{"rotation_speed 1.5"}, expected: "1.500"},
		"RotationClamp":  {lines: []string{"rotation_speed 10"}, expected: "5.000"},
		"Bounce":         {lines: []string{"bounce 2 0.5"}, expected: "2.000 0.500"},
		"BounceArgs":     {lines: []string{"bounce 2"}, err: errArgumentNumber},
		"Wiggle":         {lines: []string{"wiggle"}, expected: "1.000 1.000"},
		"Interaction":    {lines: []string{"interaction 0"}, expected: "0"},
		"SnapBack":       {lines: []string{"snap_back 1"}, expected: "1"},
		"Color":          {lines: []string{"color Sierra Blue"}, expected: "#9BB5CE"},
		"ColorHex":       {lines: []string{"color #123456"}, expected: "#123456"},
		"InvalidColor":   {lines: []string{"color pink"}, err: config.ErrInvalidColor},
		"Background":     {lines: []string{"background"}, expected: "solid #e5e7eb"},
		"Transparent":    {lines: []string{"background transparent"}, expected: "transparent"},
		"GradientPreset": {lines: []string{"background gradient Sunset"}, expected: "gradient #fa709a #fee140 45.000"},
		"BadBackground":  {lines: []string{"background video"}, err: config.ErrUnknownBackground},
		"Aspect":         {lines: []string{"aspect 9:16"}, expected: "9:16"},
		"Lighting":       {lines: []string{"lighting sunset"}, expected: "sunset"},
		"Pose":           {lines: []string{"pose"}, expected: "0.000 0.000 0.000\n0.000 0.000 0.000"},
		"Camera":         {lines: []string{"camera"}, expected: "0.000 0.000 275.000\n0.000 0.000 0.000"},
		"SetCamera":      {lines: []string{"camera 0 10 100 0 1 0"}, expected: "0.000 10.000 100.000\n0.000 1.000 0.000"},
		"CameraArgs":     {lines: []string{"camera 1 2"}, err: errArgumentNumber},
		"Undo":           {lines: []string{"rotation_speed 2", "undo", "rotation_speed"}, expected: "0.500"},
		"NothingToUndo":  {lines: []string{"undo"}, err: errNothingToUndo},
		"MaxHistory":     {lines: []string{"max_history 3"}, expected: "3"},
		"NotANumber":     {lines: []string{"rotation_speed fast"}, anyErr: true},
		"NaN":            {lines: []string{"rotation_speed NaN"}, err: config.ErrInvalidNumber},
		"Inf":            {lines: []string{"bounce Inf 1"}, err: config.ErrInvalidNumber},
		"NaNKeepsValue":  {lines: []string{"rotation_speed 2", "rotation_speed NaN", "rotation_speed"}, expected: "2.000"},
		"CameraNaN":      {lines: []string{"camera 0 0 NaN 0 0 0"}, err: config.ErrInvalidNumber},
		"CameraNaNKeeps": {lines: []string{"camera 0 0 NaN 0 0 0", "camera"}, expected: "0.000 0.000 275.000\n0.000 0.000 0.000"},
		"Reset":          {lines: []string{"reset", "user_rotation"}, expected: "0.000 0.000"},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c := newTestConsole(t)
			var out string
			var err error
			for _, l := range tt.lines {
				out, err = c.Run(l)
			}
			if tt.anyErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if out != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out)
			}
		})
	}
}

func TestConsole_Capture(t *testing.T) {
	c := newTestConsole(t)
	s := c.cmd.Session()
	s.PointerDown(0, 0)
	s.PointerMove(20, 0)
	s.PointerUp()
	s.Frame(0.1, 0, 0)

	out, err := c.Run("capture")
	if err != nil {
		t.Fatal(err)
	}
	expected := "0.000 0.000 0.000\n0.000 0.100 0.000\n0.000 0.000 275.000\n0.000 0.000 0.000"
	if out != expected {
		t.Errorf("Expected %q, got %q", expected, out)
	}
	if r := s.UserRotation(); r.Y != 0 {
		t.Errorf("User rotation must be zeroed after capture, got %v", r)
	}
	if _, err := c.Run("undo"); err != nil {
		t.Fatal(err)
	}
	if c.cmd.Config().DefaultModelOrientation != nil {
		t.Error("Undo must drop the captured orientation")
	}
}
