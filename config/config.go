// Package config holds the configurator settings shared by the viewer,
// the console and the embed generator.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/motion"
	"github.com/seqsense/phonemockup/rig"
)

type BackgroundType string

const (
	BackgroundTransparent BackgroundType = "transparent"
	BackgroundSolid       BackgroundType = "solid"
	BackgroundGradient    BackgroundType = "gradient"
)

// Pose is a captured model transform.
type Pose struct {
	Position mat.Vec3 `yaml:"position,flow" json:"position"`
	Rotation mat.Vec3 `yaml:"rotation,flow" json:"rotation"`
}

// CameraPose is a captured camera placement.
type CameraPose struct {
	Position mat.Vec3 `yaml:"position,flow" json:"position"`
	Target   mat.Vec3 `yaml:"target,flow" json:"target"`
}

// Config is the configurator state.
type Config struct {
	Color      string `yaml:"color"`
	TextureURL string `yaml:"textureUrl,omitempty"`

	MovementType    string  `yaml:"movementType"`
	RotationSpeed   float32 `yaml:"rotationSpeed"`
	BounceSpeed     float32 `yaml:"bounceSpeed"`
	BounceHeight    float32 `yaml:"bounceHeight"`
	WiggleSpeed     float32 `yaml:"wiggleSpeed"`
	WiggleIntensity float32 `yaml:"wiggleIntensity"`

	UserInteraction bool `yaml:"userInteraction"`
	AutoSnapBack    bool `yaml:"autoSnapBack"`

	DefaultModelOrientation *Pose       `yaml:"defaultModelOrientation,omitempty"`
	DefaultCameraPosition   *CameraPose `yaml:"defaultCameraPosition,omitempty"`

	BackgroundType          BackgroundType `yaml:"backgroundType"`
	BackgroundColor         string         `yaml:"backgroundColor"`
	BackgroundGradientStart string         `yaml:"backgroundGradientStart"`
	BackgroundGradientEnd   string         `yaml:"backgroundGradientEnd"`
	BackgroundGradientAngle float32        `yaml:"backgroundGradientAngle"`

	AspectRatio     string  `yaml:"aspectRatio"`
	LightingPreset  string  `yaml:"lightingPreset"`
	ScreenRoughness float32 `yaml:"screenRoughness"`
	ScreenEmissive  float32 `yaml:"screenEmissive"`
	ShadowOpacity   float32 `yaml:"shadowOpacity"`
}

// Default returns the configuration a new session starts with.
func Default() *Config {
	p := motion.DefaultParams()
	return &Config{
		Color:                   ChassisColors[0].Value,
		MovementType:            motion.Static.String(),
		RotationSpeed:           p.RotationSpeed,
		BounceSpeed:             p.BounceSpeed,
		BounceHeight:            p.BounceHeight,
		WiggleSpeed:             p.WiggleSpeed,
		WiggleIntensity:         p.WiggleIntensity,
		UserInteraction:         true,
		BackgroundType:          BackgroundSolid,
		BackgroundColor:         "#e5e7eb",
		BackgroundGradientStart: "#ffffff",
		BackgroundGradientEnd:   "#e5e7eb",
		BackgroundGradientAngle: 45,
		AspectRatio:             "native",
		LightingPreset:          "city",
		ScreenRoughness:         0.2,
		ScreenEmissive:          0,
		ShadowOpacity:           0.6,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cc := *c
	if c.DefaultModelOrientation != nil {
		p := *c.DefaultModelOrientation
		cc.DefaultModelOrientation = &p
	}
	if c.DefaultCameraPosition != nil {
		p := *c.DefaultCameraPosition
		cc.DefaultCameraPosition = &p
	}
	return &cc
}

// Load reads a YAML configuration over the defaults, then normalizes and
// validates it.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse is Load from a byte slice.
func Parse(b []byte) (*Config, error) {
	return Load(bytes.NewReader(b))
}

// LoadFile reads a YAML configuration file.
func LoadFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Mode returns the movement mode. Unknown names fall back to Static.
func (c *Config) Mode() motion.Mode {
	m, err := motion.ParseMode(c.MovementType)
	if err != nil {
		return motion.Static
	}
	return m
}

// Params returns the animation parameters.
func (c *Config) Params() motion.Params {
	return motion.Params{
		RotationSpeed:   c.RotationSpeed,
		BounceSpeed:     c.BounceSpeed,
		BounceHeight:    c.BounceHeight,
		WiggleSpeed:     c.WiggleSpeed,
		WiggleIntensity: c.WiggleIntensity,
	}
}

// Settings converts the configuration to rig settings.
func (c *Config) Settings() rig.Settings {
	s := rig.Settings{
		Mode:        c.Mode(),
		Params:      c.Params(),
		Interaction: c.UserInteraction,
		SnapBack:    c.AutoSnapBack,
	}
	if p := c.DefaultModelOrientation; p != nil {
		s.ModelPose = &rig.Pose{Position: p.Position, Rotation: p.Rotation}
	}
	if p := c.DefaultCameraPosition; p != nil {
		s.CameraPose = &rig.CameraPose{Position: p.Position, Target: p.Target}
	}
	return s
}

// SetModelPose stores a captured model pose as the default orientation.
func (c *Config) SetModelPose(p rig.Pose) {
	c.DefaultModelOrientation = &Pose{Position: p.Position, Rotation: p.Rotation}
}

// SetCameraPose stores a captured camera pose as the default camera.
func (c *Config) SetCameraPose(p rig.CameraPose) {
	c.DefaultCameraPosition = &CameraPose{Position: p.Position, Target: p.Target}
}
