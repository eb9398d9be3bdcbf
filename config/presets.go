package config

// NamedColor is a chassis color preset.
type NamedColor struct {
	Name  string
	Value string
}

var ChassisColors = []NamedColor{
	{Name: "Space Black", Value: "#343434"},
	{Name: "Silver", Value: "#e2e4e1"},
	{Name: "Gold", Value: "#fae7cf"},
	{Name: "Deep Purple", Value: "#594f63"},
	{Name: "Sierra Blue", Value: "#9BB5CE"},
}

// GradientPreset is a named background gradient.
type GradientPreset struct {
	Name       string
	Start, End string
	Angle      float32
}

var GradientPresets = []GradientPreset{
	{Name: "Sweet", Start: "#ff9a9e", End: "#fecfef", Angle: 0},
	{Name: "Lavender", Start: "#a18cd1", End: "#fbc2eb", Angle: 120},
	{Name: "Ocean", Start: "#84fab0", End: "#8fd3f4", Angle: 120},
	{Name: "Sunset", Start: "#fa709a", End: "#fee140", Angle: 45},
	{Name: "Cool", Start: "#2193b0", End: "#6dd5ed", Angle: 135},
	{Name: "Deep", Start: "#2b5876", End: "#4e4376", Angle: 160},
	{Name: "Cherry", Start: "#eb3349", End: "#f45c43", Angle: 90},
	{Name: "Midnight", Start: "#09203f", End: "#537895", Angle: 135},
}

// LightingPreset is an environment lighting setup. The renderer uses a
// single directional light plus an ambient term.
type LightingPreset struct {
	Name      string
	Label     string
	Direction [3]float32
	Color     string
	Ambient   float32
}

var LightingPresets = []LightingPreset{
	{Name: "city", Label: "Studio (City)", Direction: [3]float32{0.5, 1, 1}, Color: "#ffffff", Ambient: 0.45},
	{Name: "warehouse", Label: "Industrial", Direction: [3]float32{-0.3, 1, 0.6}, Color: "#fff4e0", Ambient: 0.35},
	{Name: "sunset", Label: "Sunset", Direction: [3]float32{1, 0.3, 0.8}, Color: "#ffb37a", Ambient: 0.3},
	{Name: "park", Label: "Natural (Park)", Direction: [3]float32{0.2, 1, 0.5}, Color: "#f2ffe8", Ambient: 0.5},
	{Name: "night", Label: "Night", Direction: [3]float32{-0.5, 0.8, 1}, Color: "#9fb4ff", Ambient: 0.15},
}

func isLightingPreset(name string) bool {
	_, ok := FindLighting(name)
	return ok
}

// FindLighting returns the lighting preset called name.
func FindLighting(name string) (LightingPreset, bool) {
	for _, l := range LightingPresets {
		if l.Name == name {
			return l, true
		}
	}
	return LightingPreset{}, false
}

// ApplyGradient sets the background to the gradient preset called name.
func (c *Config) ApplyGradient(name string) bool {
	for _, g := range GradientPresets {
		if g.Name == name {
			c.BackgroundType = BackgroundGradient
			c.BackgroundGradientStart = g.Start
			c.BackgroundGradientEnd = g.End
			c.BackgroundGradientAngle = g.Angle
			return true
		}
	}
	return false
}

// ApplyChassisColor sets the chassis color by preset name or hex value.
func (c *Config) ApplyChassisColor(s string) error {
	for _, n := range ChassisColors {
		if n.Name == s {
			c.Color = n.Value
			return nil
		}
	}
	if _, err := ParseColor(s); err != nil {
		return err
	}
	c.Color = s
	return nil
}
