package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/layout"
	"github.com/san-kum/poggle/internal/pinball"
)

const (
	DefaultLayout           = "classic"
	DefaultUpdatesPerSecond = 120
	DefaultFramesPerSecond  = 60
	DefaultLaunchScale      = 2.0

	// CustomLayout selects the pegs listed in the config file.
	CustomLayout = "custom"
)

type Config struct {
	Layout           string          `yaml:"layout"`
	Playfield        PlayfieldConfig `yaml:"playfield"`
	Gravity          VecConfig       `yaml:"gravity"`
	BallRadius       float32         `yaml:"ball_radius"`
	Elasticity       float32         `yaml:"elasticity"`
	Reflection       string          `yaml:"reflection"`
	Scan             string          `yaml:"scan"`
	UpdatesPerSecond int             `yaml:"updates_per_second"`
	FramesPerSecond  int             `yaml:"frames_per_second"`
	LaunchScale      float32         `yaml:"launch_scale"`
	Pegs             []PegConfig     `yaml:"pegs,omitempty"`
	Grid             GridConfig      `yaml:"grid"`
}

type PlayfieldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type VecConfig struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

type PegConfig struct {
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	Radius  float32 `yaml:"radius"`
	Type    string  `yaml:"type"`
	PowerUp string  `yaml:"power_up,omitempty"`
}

type GridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	SpacingX float32 `yaml:"spacing_x"`
	SpacingY float32 `yaml:"spacing_y"`
	OffsetY  float32 `yaml:"offset_y"`
	Radius   float32 `yaml:"radius"`
	Stagger  bool    `yaml:"stagger"`
}

func DefaultConfig() *Config {
	g := layout.DefaultGrid()
	return &Config{
		Layout: DefaultLayout,
		Playfield: PlayfieldConfig{
			Width:  pinball.DefaultWidth,
			Height: pinball.DefaultHeight,
		},
		Gravity:          VecConfig{Y: pinball.DefaultGravity},
		BallRadius:       pinball.DefaultBallRadius,
		Elasticity:       pinball.DefaultElasticity,
		Reflection:       pinball.ReflectLegacy.String(),
		Scan:             pinball.ScanFirst.String(),
		UpdatesPerSecond: DefaultUpdatesPerSecond,
		FramesPerSecond:  DefaultFramesPerSecond,
		LaunchScale:      DefaultLaunchScale,
		Grid: GridConfig{
			Rows:     g.Rows,
			Cols:     g.Cols,
			SpacingX: g.SpacingX,
			SpacingY: g.SpacingY,
			OffsetY:  g.OffsetY,
			Radius:   g.Radius,
			Stagger:  g.Stagger,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the physical constants onto the board's parameter set.
func (c *Config) Params() (pinball.Params, error) {
	reflection, err := pinball.ParseReflectionMode(c.Reflection)
	if err != nil {
		return pinball.Params{}, err
	}
	scan, err := pinball.ParseScanMode(c.Scan)
	if err != nil {
		return pinball.Params{}, err
	}
	return pinball.Params{
		Width:      c.Playfield.Width,
		Height:     c.Playfield.Height,
		Gravity:    geom.Vec{X: c.Gravity.X, Y: c.Gravity.Y},
		BallRadius: c.BallRadius,
		Elasticity: c.Elasticity,
		Reflection: reflection,
		Scan:       scan,
	}, nil
}

func (c *Config) LayoutSpec() layout.Spec {
	return layout.Spec{
		Width:  c.Playfield.Width,
		Height: c.Playfield.Height,
		Grid: layout.Grid{
			Rows:     c.Grid.Rows,
			Cols:     c.Grid.Cols,
			SpacingX: c.Grid.SpacingX,
			SpacingY: c.Grid.SpacingY,
			OffsetY:  c.Grid.OffsetY,
			Radius:   c.Grid.Radius,
			Stagger:  c.Grid.Stagger,
		},
	}
}

// BuildPegs returns the configured peg field: the listed pegs for the
// custom layout, a generated preset otherwise.
func (c *Config) BuildPegs() ([]pinball.Peg, error) {
	if c.Layout != CustomLayout {
		return layout.Build(c.Layout, c.LayoutSpec())
	}

	pegs := make([]pinball.Peg, 0, len(c.Pegs))
	for i, pc := range c.Pegs {
		typ, err := pinball.ParsePegType(pc.Type)
		if err != nil {
			return nil, fmt.Errorf("peg %d: %w", i, err)
		}
		peg := pinball.NewPeg(geom.Vec{X: pc.X, Y: pc.Y}, pc.Radius, typ)
		if typ == pinball.PowerUp {
			if peg.PowerUp, err = pinball.ParsePowerUp(pc.PowerUp); err != nil {
				return nil, fmt.Errorf("peg %d: %w", i, err)
			}
		}
		pegs = append(pegs, peg)
	}
	return pegs, nil
}

// Validate checks everything a host needs before building a board.
func (c *Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.UpdatesPerSecond <= 0 {
		return fmt.Errorf("%w: updates_per_second must be positive, got %d", pinball.ErrInvalidParams, c.UpdatesPerSecond)
	}
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("%w: frames_per_second must be positive, got %d", pinball.ErrInvalidParams, c.FramesPerSecond)
	}
	if c.LaunchScale <= 0 {
		return fmt.Errorf("%w: launch_scale must be positive, got %g", pinball.ErrInvalidParams, c.LaunchScale)
	}
	if c.Layout == CustomLayout && len(c.Pegs) == 0 {
		return fmt.Errorf("%w: custom layout without pegs", pinball.ErrInvalidParams)
	}
	for i, pc := range c.Pegs {
		if pc.Radius <= 0 {
			return fmt.Errorf("%w: peg %d radius must be positive, got %g", pinball.ErrInvalidParams, i, pc.Radius)
		}
	}
	_, err = c.BuildPegs()
	return err
}
