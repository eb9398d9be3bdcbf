package config

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio is a width to height ratio of the canvas. Zero means the
// canvas fills its container.
type AspectRatio struct {
	W, H int
}

// Native reports whether the canvas keeps the container shape.
func (a AspectRatio) Native() bool {
	return a.W == 0 || a.H == 0
}

func (a AspectRatio) String() string {
	if a.Native() {
		return "native"
	}
	return fmt.Sprintf("%d:%d", a.W, a.H)
}

var AspectRatios = []string{"native", "9:16", "16:9", "4:3", "1:1"}

// ParseAspectRatio parses one of AspectRatios.
func ParseAspectRatio(s string) (AspectRatio, error) {
	if s == "native" {
		return AspectRatio{}, nil
	}
	supported := false
	for _, r := range AspectRatios {
		if r == s {
			supported = true
			break
		}
	}
	if !supported {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
	}
	ws, hs, _ := strings.Cut(s, ":")
	w, err := strconv.Atoi(ws)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrUnknownAspect, s)
	}
	return AspectRatio{W: w, H: h}, nil
}

// Fit returns the largest size with the ratio fitting in the container.
func (a AspectRatio) Fit(w, h int) (int, int) {
	if a.Native() || w <= 0 || h <= 0 {
		return w, h
	}
	if w*a.H > h*a.W {
		return h * a.W / a.H, h
	}
	return w, w * a.H / a.W
}
