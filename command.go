package main

import (
	"errors"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/mockup"
	"github.com/seqsense/phonemockup/rig"
)

const defaultMaxHistory = 20

var errNothingToUndo = errors.New("nothing to undo")

// commandContext owns the configuration and keeps the orientation session
// and the phone model in sync with it.
type commandContext struct {
	cfg     *config.Config
	session *rig.Session
	model   *mockup.State
	history *history

	captureToken uint64
}

func cameraOptions(c *config.Config) []rig.CameraRigOption {
	if p := c.DefaultCameraPosition; p != nil {
		return []rig.CameraRigOption{
			rig.WithCameraPose(rig.CameraPose{Position: p.Position, Target: p.Target}),
		}
	}
	return nil
}

func newCommandContext(c *config.Config) (*commandContext, error) {
	if c == nil {
		c = config.Default()
	}
	c = c.Clone()
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	cc := &commandContext{
		cfg:     c,
		session: rig.NewSession(c.Settings(), cameraOptions(c)...),
		model:   &mockup.State{},
		history: newHistory(defaultMaxHistory),
	}
	if err := mockup.Apply(cc.model, c); err != nil {
		return nil, err
	}
	cc.history.push(c.Clone())
	return cc, nil
}

// Config returns a copy of the current configuration.
func (c *commandContext) Config() *config.Config {
	return c.cfg.Clone()
}

func (c *commandContext) Session() *rig.Session {
	return c.session
}

func (c *commandContext) Model() *mockup.State {
	return c.model
}

func (c *commandContext) apply(next *config.Config) error {
	if err := mockup.Apply(c.model, next); err != nil {
		return err
	}
	c.cfg = next
	c.session.Apply(next.Settings())
	return nil
}

// SetConfig installs a configuration and records it for undo.
func (c *commandContext) SetConfig(next *config.Config) error {
	next = next.Clone()
	next.Normalize()
	if err := next.Validate(); err != nil {
		return err
	}
	if err := c.apply(next); err != nil {
		return err
	}
	c.history.push(next.Clone())
	return nil
}

// Update applies fn to a copy of the configuration and installs the
// result. The configuration is left untouched if fn fails.
func (c *commandContext) Update(fn func(*config.Config) error) error {
	next := c.cfg.Clone()
	if err := fn(next); err != nil {
		return err
	}
	return c.SetConfig(next)
}

// Undo restores the previous configuration.
func (c *commandContext) Undo() bool {
	prev, ok := c.history.undo()
	if !ok {
		return false
	}
	if err := c.apply(prev.Clone()); err != nil {
		return false
	}
	return true
}

func (c *commandContext) MaxHistory() int {
	return c.history.MaxHistory()
}

func (c *commandContext) SetMaxHistory(m int) bool {
	if m < 0 {
		return false
	}
	c.history.SetMaxHistory(m)
	return true
}

// ResetOrientation drops the user rotation and restarts the animation.
func (c *commandContext) ResetOrientation() {
	c.session.ResetOrientation()
}

// CaptureDefault stores the live model and camera poses as the default
// orientation.
func (c *commandContext) CaptureDefault() (rig.Pose, rig.CameraPose, error) {
	c.captureToken++
	pose, cam, ok := c.session.Capture(c.captureToken)
	if !ok {
		return rig.Pose{}, rig.CameraPose{}, errors.New("capture was not triggered")
	}
	err := c.Update(func(next *config.Config) error {
		next.SetModelPose(pose)
		next.SetCameraPose(cam)
		return nil
	})
	if err != nil {
		return rig.Pose{}, rig.CameraPose{}, err
	}
	return pose, cam, nil
}
