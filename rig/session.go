package rig

import (
	"sync"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/motion"
)

// Settings is the part of the configuration the rig reacts to.
type Settings struct {
	Mode        motion.Mode
	Params      motion.Params
	Interaction bool
	SnapBack    bool

	// ModelPose is the captured default model pose. nil means zero pose.
	ModelPose *Pose
	// CameraPose is the captured default camera pose. nil disables camera
	// snap-back.
	CameraPose *CameraPose
}

// Frame is the result of a frame update.
type Frame struct {
	Model         Pose
	Camera        CameraPose
	AnimationTime float64
}

// Session owns the orientation and camera state of one viewer.
type Session struct {
	mu *sync.Mutex

	settings Settings
	clock    motion.Clock
	drag     DragTracker
	blender  Blender
	camera   *CameraRig
	trigger  Trigger
}

// NewSession creates a Session with the given settings.
func NewSession(s Settings, options ...CameraRigOption) *Session {
	s.ModelPose = copyPose(s.ModelPose)
	s.CameraPose = copyCameraPose(s.CameraPose)
	return &Session{
		mu:       &sync.Mutex{},
		settings: s,
		camera:   NewCameraRig(options...),
	}
}

// Apply installs new settings.
// Switching the mode restarts the animation time but keeps the user
// rotation. Installing a different default model pose zeroes the user
// rotation, as the pose already contains it.
func (s *Session) Apply(next Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if next.Mode != s.settings.Mode {
		s.clock.Restart()
	}
	if !samePose(next.ModelPose, s.settings.ModelPose) {
		s.drag.Reset()
	}
	next.ModelPose = copyPose(next.ModelPose)
	next.CameraPose = copyCameraPose(next.CameraPose)
	s.settings = next
}

// Settings returns the installed settings.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.settings
	st.ModelPose = copyPose(st.ModelPose)
	st.CameraPose = copyCameraPose(st.CameraPose)
	return st
}

// PointerDown starts a drag. It returns true if the host should capture
// the pointer.
func (s *Session) PointerDown(x, y float32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.PointerDown(x, y, s.settings.Interaction)
}

func (s *Session) PointerMove(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerMove(x, y)
}

func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerUp(s.clock.Elapsed())
}

func (s *Session) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.PointerLeave(s.clock.Elapsed())
}

// Dragging returns true while the user is dragging the model.
func (s *Session) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Dragging()
}

// BeginOrbit marks the start of a camera interaction.
func (s *Session) BeginOrbit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.BeginInteraction()
}

// EndOrbit marks the end of a camera interaction at the last frame time.
func (s *Session) EndOrbit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.EndInteraction(s.clock.Elapsed())
}

// Zoom scales the camera distance.
func (s *Session) Zoom(scale float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.Zoom(scale)
}

// Frame advances the session to elapsed seconds and returns the poses to
// render. (px, py) is the normalized pointer position in [-1, 1].
//
// The model transform is computed from the user rotation before this
// frame's snap-back step is applied.
func (s *Session) Frame(elapsed float64, px, py float32) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock.Tick(elapsed)
	t := s.clock.Time()

	var base Pose
	if s.settings.ModelPose != nil {
		base = *s.settings.ModelPose
	}
	model := s.blender.Blend(s.settings.Mode, t, s.settings.Params, base, s.drag.Rotation(), px, py)

	if s.settings.SnapBack && !s.drag.Dragging() {
		s.drag.SetRotation(s.drag.Rotation().Decayed())
	}
	s.camera.Update(elapsed, s.settings.SnapBack, s.settings.CameraPose)

	return Frame{
		Model:         model,
		Camera:        s.camera.Pose(),
		AnimationTime: t,
	}
}

// ResetOrientation zeroes the user rotation and restarts the animation.
func (s *Session) ResetOrientation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Reset()
	s.clock.Restart()
}

// CaptureOrientation returns the model transform of the last frame.
func (s *Session) CaptureOrientation() Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blender.Current()
}

// SetCamera moves the camera. Snap-back continues from the new pose.
func (s *Session) SetCamera(p CameraPose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.camera.SetPose(p)
}

// CaptureCamera returns the current camera pose.
func (s *Session) CaptureCamera() CameraPose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.Pose()
}

// Capture returns the live model and camera poses if token requests a new
// capture.
func (s *Session) Capture(token uint64) (Pose, CameraPose, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.trigger.Fire(token) {
		return Pose{}, CameraPose{}, false
	}
	return s.blender.Current(), s.camera.Pose(), true
}

// UserRotation returns the accumulated drag rotation.
func (s *Session) UserRotation() UserRotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Rotation()
}

// AnimationTime returns the animation time of the last frame.
func (s *Session) AnimationTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Time()
}

// ViewMatrix returns the view transform of the current camera pose.
func (s *Session) ViewMatrix() mat.Mat4 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.camera.ViewMatrix()
}
