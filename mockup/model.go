package mockup

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/rig"
)

// Body material, shared by every chassis color.
const (
	BodyRoughness = 0.4
	BodyMetalness = 0.6

	ScreenMetalness = 0.1
)

// ScreenMaterial describes the display surface.
type ScreenMaterial struct {
	Roughness float32
	Emissive  float32
	// Texture is the URL of the screen image. Empty leaves the screen dark.
	Texture string
}

// Model is the renderable phone as seen by the configurator.
type Model interface {
	SetBaseColor(c colorful.Color)
	SetScreenMaterial(m ScreenMaterial)
	SetTransform(p rig.Pose)
}

// State is a Model which records the applied values for the renderer.
type State struct {
	BaseColor colorful.Color
	Screen    ScreenMaterial
	Transform rig.Pose

	dirty bool
}

func (s *State) SetBaseColor(c colorful.Color) {
	if s.BaseColor != c {
		s.BaseColor = c
		s.dirty = true
	}
}

func (s *State) SetScreenMaterial(m ScreenMaterial) {
	if s.Screen != m {
		s.Screen = m
		s.dirty = true
	}
}

func (s *State) SetTransform(p rig.Pose) {
	s.Transform = p
}

// TakeDirty returns true once after the material has been changed.
func (s *State) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// ScreenColor returns the diffuse factor of the screen. The screen image is
// multiplied by it and added again scaled by the emissive intensity.
func (s *State) ScreenColor() colorful.Color {
	return config.ScreenColor(colorful.Color{R: 1, G: 1, B: 1}, s.Screen.Emissive)
}

// ModelMatrix returns the transform of the pose. Rotation is applied
// about Z first, then X, then Y.
func ModelMatrix(p rig.Pose) mat.Mat4 {
	m := mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2]).
		Mul4(mgl32.HomogRotate3DY(p.Rotation[1])).
		Mul4(mgl32.HomogRotate3DX(p.Rotation[0])).
		Mul4(mgl32.HomogRotate3DZ(p.Rotation[2]))
	return mat.Mat4(m)
}

// ModelMatrix returns the transform of the current pose.
func (s *State) ModelMatrix() mat.Mat4 {
	return ModelMatrix(s.Transform)
}

// Apply sets the material of the model from the configuration.
func Apply(m Model, c *config.Config) error {
	col, err := config.ParseColor(c.Color)
	if err != nil {
		return err
	}
	m.SetBaseColor(col)
	m.SetScreenMaterial(ScreenMaterial{
		Roughness: c.ScreenRoughness,
		Emissive:  c.ScreenEmissive,
		Texture:   c.TextureURL,
	})
	return nil
}
