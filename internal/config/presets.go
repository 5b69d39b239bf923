package config

import "sort"

// Presets are named tunings per layout. A preset carries only the fields it
// changes; GetPreset fills the rest from DefaultConfig.
var Presets = map[string]map[string]*Config{
	"classic": {
		"arcade": {Layout: "classic"},
		"lossless": {Layout: "classic", Elasticity: 1, Reflection: "mirror"},
	},
	"grid": {
		"pachinko": {Layout: "grid", Elasticity: 0.6, Scan: "earliest"},
		"dense": {
			Layout: "grid",
			Grid:   GridConfig{Rows: 10, Cols: 20, SpacingX: 60, SpacingY: 55, OffsetY: 180, Radius: 5, Stagger: true},
		},
		"bouncy": {Layout: "grid", Elasticity: 0.98, Reflection: "mirror"},
	},
	"pyramid": {
		"tall": {
			Layout: "pyramid",
			Grid:   GridConfig{Rows: 12, Cols: 14, SpacingX: 70, SpacingY: 45, OffsetY: 150, Radius: 6},
		},
		"low_gravity": {Layout: "pyramid", Gravity: VecConfig{Y: 150}},
	},
	"ring": {
		"orbit":    {Layout: "ring", Elasticity: 0.95, Scan: "earliest"},
		"heavy":    {Layout: "ring", Gravity: VecConfig{Y: 900}, BallRadius: 10},
		"sideways": {Layout: "ring", Gravity: VecConfig{X: 120, Y: 400}},
	},
}

// GetPreset returns a fresh config for layout/preset, or nil when either is
// unknown.
func GetPreset(layout, preset string) *Config {
	layoutPresets, ok := Presets[layout]
	if !ok {
		return nil
	}
	cfg, ok := layoutPresets[preset]
	if !ok {
		return nil
	}
	return cfg.over(DefaultConfig())
}

func ListPresets(layout string) []string {
	layoutPresets, ok := Presets[layout]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(layoutPresets))
	for name := range layoutPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// over copies the non-zero fields of c onto base.
func (c *Config) over(base *Config) *Config {
	if c.Layout != "" {
		base.Layout = c.Layout
	}
	if c.Playfield.Width > 0 && c.Playfield.Height > 0 {
		base.Playfield = c.Playfield
	}
	if c.Gravity != (VecConfig{}) {
		base.Gravity = c.Gravity
	}
	if c.BallRadius > 0 {
		base.BallRadius = c.BallRadius
	}
	if c.Elasticity > 0 {
		base.Elasticity = c.Elasticity
	}
	if c.Reflection != "" {
		base.Reflection = c.Reflection
	}
	if c.Scan != "" {
		base.Scan = c.Scan
	}
	if c.LaunchScale > 0 {
		base.LaunchScale = c.LaunchScale
	}
	if c.Grid.Rows > 0 {
		base.Grid = c.Grid
	}
	if len(c.Pegs) > 0 {
		base.Pegs = append([]PegConfig(nil), c.Pegs...)
	}
	return base
}
