package main

import (
	"strings"
)

// logWriter passes each line written by the log package to the sinks.
type logWriter struct {
	sinks []func(string)
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		for _, s := range w.sinks {
			s(line)
		}
	}
	return len(p), nil
}
