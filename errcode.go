package main

import (
	"errors"

	"github.com/seqsense/phonemockup/capture"
	"github.com/seqsense/phonemockup/config"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{config.ErrUnknownMode, "unknownMode"},
	{config.ErrUnknownBackground, "unknownBackground"},
	{config.ErrUnknownAspect, "unknownAspect"},
	{config.ErrUnknownLighting, "unknownLighting"},
	{config.ErrInvalidColor, "invalidColor"},
	{config.ErrInvalidNumber, "invalidNumber"},
	{capture.ErrUnknownFormat, "unknownFormat"},
	{capture.ErrRecording, "recording"},
	{errArgumentNumber, "argumentNumber"},
	{errInvalidCommand, "invalidCommand"},
	{errNothingToUndo, "nothingToUndo"},
}

// errorCode returns the code exposed to scripts for err, or an empty
// string for unclassified errors.
func errorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
