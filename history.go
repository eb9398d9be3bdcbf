package main

import (
	"github.com/seqsense/phonemockup/config"
)

// history keeps applied configurations for undo. The last entry is the
// current configuration.
type history struct {
	configs    []*config.Config
	maxHistory int
}

func newHistory(n int) *history {
	return &history{maxHistory: n}
}

func (h *history) MaxHistory() int {
	return h.maxHistory
}

func (h *history) SetMaxHistory(m int) {
	if m < 0 {
		m = 0
	}
	h.maxHistory = m
	h.trim()
}

func (h *history) trim() {
	if n := len(h.configs) - (h.maxHistory + 1); n > 0 {
		for i := 0; i < n; i++ {
			h.configs[i] = nil
		}
		h.configs = h.configs[n:]
	}
}

func (h *history) push(c *config.Config) *config.Config {
	h.configs = append(h.configs, c)
	h.trim()
	return c
}

func (h *history) undo() (*config.Config, bool) {
	if n := len(h.configs); n > 1 {
		h.configs[n-1] = nil
		h.configs = h.configs[:n-1]
		return h.configs[n-2], true
	}
	return nil, false
}
