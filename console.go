package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/config"
	"github.com/seqsense/phonemockup/rig"
)

type console struct {
	cmd *commandContext
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		if !config.Finite(float32(f)) {
			return nil, fmt.Errorf("%w: %s", config.ErrInvalidNumber, a)
		}
		out = append(out, float32(f))
	}
	return out, nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "0", "false", "off":
		return false, nil
	case "1", "true", "on":
		return true, nil
	}
	return false, errors.New("expected 0 or 1")
}

func formatFloats(vv ...float32) string {
	s := make([]string, 0, len(vv))
	for _, v := range vv {
		s = append(s, strconv.FormatFloat(float64(v), 'f', 3, 32))
	}
	return strings.Join(s, " ")
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// floatCommand returns a command reading or writing the float fields of
// the configuration.
func floatCommand(fields func(c *config.Config) []*float32) func(*commandContext, []string) ([]string, error) {
	return func(cmd *commandContext, args []string) ([]string, error) {
		n := len(fields(cmd.cfg))
		switch len(args) {
		case 0:
		case n:
			vv, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			err = cmd.Update(func(c *config.Config) error {
				for i, f := range fields(c) {
					*f = vv[i]
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		var out []float32
		for _, f := range fields(cmd.cfg) {
			out = append(out, *f)
		}
		return []string{formatFloats(out...)}, nil
	}
}

// boolCommand returns a command reading or writing a flag of the
// configuration.
func boolCommand(field func(c *config.Config) *bool) func(*commandContext, []string) ([]string, error) {
	return func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			b, err := parseBool(args[0])
			if err != nil {
				return nil, err
			}
			err = cmd.Update(func(c *config.Config) error {
				*field(c) = b
				return nil
			})
			if err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return []string{formatBool(*field(cmd.cfg))}, nil
	}
}

// stringCommand returns a command reading or writing a named setting.
// Arguments are joined by spaces to allow preset names.
func stringCommand(get func(c *config.Config) string, set func(c *config.Config, v string) error) func(*commandContext, []string) ([]string, error) {
	return func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) > 0 {
			v := strings.Join(args, " ")
			if err := cmd.Update(func(c *config.Config) error {
				return set(c, v)
			}); err != nil {
				return nil, err
			}
		}
		return []string{get(cmd.cfg)}, nil
	}
}

func formatPose(p rig.Pose) []string {
	return []string{
		formatFloats(p.Position[:]...),
		formatFloats(p.Rotation[:]...),
	}
}

func formatCameraPose(p rig.CameraPose) []string {
	return []string{
		formatFloats(p.Position[:]...),
		formatFloats(p.Target[:]...),
	}
}

var consoleCommands = map[string]func(cmd *commandContext, args []string) ([]string, error){
	"mode": stringCommand(
		func(c *config.Config) string { return c.MovementType },
		func(c *config.Config, v string) error {
			c.MovementType = v
			return nil
		},
	),
	"rotation_speed": floatCommand(func(c *config.Config) []*float32 {
		return []*float32{&c.RotationSpeed}
	}),
	"bounce": floatCommand(func(c *config.Config) []*float32 {
		return []*float32{&c.BounceSpeed, &c.BounceHeight}
	}),
	"wiggle": floatCommand(func(c *config.Config) []*float32 {
		return []*float32{&c.WiggleSpeed, &c.WiggleIntensity}
	}),
	"screen": floatCommand(func(c *config.Config) []*float32 {
		return []*float32{&c.ScreenRoughness, &c.ScreenEmissive}
	}),
	"shadow": floatCommand(func(c *config.Config) []*float32 {
		return []*float32{&c.ShadowOpacity}
	}),
	"interaction": boolCommand(func(c *config.Config) *bool {
		return &c.UserInteraction
	}),
	"snap_back": boolCommand(func(c *config.Config) *bool {
		return &c.AutoSnapBack
	}),
	"color": stringCommand(
		func(c *config.Config) string { return c.Color },
		func(c *config.Config, v string) error { return c.ApplyChassisColor(v) },
	),
	"aspect": stringCommand(
		func(c *config.Config) string { return c.AspectRatio },
		func(c *config.Config, v string) error {
			c.AspectRatio = v
			return nil
		},
	),
	"lighting": stringCommand(
		func(c *config.Config) string { return c.LightingPreset },
		func(c *config.Config, v string) error {
			c.LightingPreset = v
			return nil
		},
	),
	"texture": stringCommand(
		func(c *config.Config) string { return c.TextureURL },
		func(c *config.Config, v string) error {
			c.TextureURL = v
			return nil
		},
	),
	"background": func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			if err := cmd.Update(func(c *config.Config) error {
				c.BackgroundType = config.BackgroundType(args[0])
				return nil
			}); err != nil {
				return nil, err
			}
		default:
			// background gradient <preset name>
			if config.BackgroundType(args[0]) != config.BackgroundGradient {
				return nil, errArgumentNumber
			}
			name := strings.Join(args[1:], " ")
			if err := cmd.Update(func(c *config.Config) error {
				if !c.ApplyGradient(name) {
					return errors.New("unknown gradient preset " + strconv.Quote(name))
				}
				c.BackgroundType = config.BackgroundGradient
				return nil
			}); err != nil {
				return nil, err
			}
		}
		c := cmd.cfg
		switch c.BackgroundType {
		case config.BackgroundSolid:
			return []string{string(c.BackgroundType) + " " + c.BackgroundColor}, nil
		case config.BackgroundGradient:
			return []string{string(c.BackgroundType) + " " + c.BackgroundGradientStart + " " +
				c.BackgroundGradientEnd + " " + formatFloats(c.BackgroundGradientAngle)}, nil
		}
		return []string{string(c.BackgroundType)}, nil
	},
	"reset": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		cmd.ResetOrientation()
		return nil, nil
	},
	"capture": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		p, cam, err := cmd.CaptureDefault()
		if err != nil {
			return nil, err
		}
		return append(formatPose(p), formatCameraPose(cam)...), nil
	},
	"pose": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return formatPose(cmd.session.CaptureOrientation()), nil
	},
	"user_rotation": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		r := cmd.session.UserRotation()
		return []string{formatFloats(r.X, r.Y)}, nil
	},
	"camera": func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 6:
			vv, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			cmd.session.SetCamera(rig.CameraPose{
				Position: mat.Vec3{vv[0], vv[1], vv[2]},
				Target:   mat.Vec3{vv[3], vv[4], vv[5]},
			})
		default:
			return nil, errArgumentNumber
		}
		return formatCameraPose(cmd.session.CaptureCamera()), nil
	},
	"undo": func(cmd *commandContext, args []string) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		if !cmd.Undo() {
			return nil, errNothingToUndo
		}
		return nil, nil
	},
	"max_history": func(cmd *commandContext, args []string) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, err
			}
			if !cmd.SetMaxHistory(n) {
				return nil, errors.New("invalid history length")
			}
		default:
			return nil, errArgumentNumber
		}
		return []string{strconv.Itoa(cmd.MaxHistory())}, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	res, err := fn(c.cmd, args[1:])
	if err != nil {
		return "", err
	}
	return strings.Join(res, "\n"), nil
}
