package capture

import (
	"errors"
	"math"
	"sync"
	"time"
)

// DefaultRecordDuration is the length of a recording if none is given.
const DefaultRecordDuration = 5 * time.Second

var ErrRecording = errors.New("recording in progress")

// Recorder tracks a fixed length recording. The media itself is captured
// by the browser; Recorder decides when to stop and what the countdown
// shows.
type Recorder struct {
	mu       sync.Mutex
	start    time.Time
	duration time.Duration
	active   bool
}

// Start begins a recording at now. Non-positive duration selects
// DefaultRecordDuration.
func (r *Recorder) Start(now time.Time, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active {
		return ErrRecording
	}
	if d <= 0 {
		d = DefaultRecordDuration
	}
	r.start = now
	r.duration = d
	r.active = true
	return nil
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Remaining returns the time left at now.
func (r *Recorder) Remaining(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return 0
	}
	rem := r.duration - now.Sub(r.start)
	if rem < 0 {
		return 0
	}
	return rem
}

// Countdown returns the whole seconds left, rounded up, for the badge.
func (r *Recorder) Countdown(now time.Time) int {
	return int(math.Ceil(r.Remaining(now).Seconds()))
}

// Stop ends the recording if its duration has passed at now. It returns
// true once per recording.
func (r *Recorder) Stop(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active || now.Sub(r.start) < r.duration {
		return false
	}
	r.active = false
	return true
}
