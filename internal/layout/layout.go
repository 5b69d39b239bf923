package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

// Grid parameterizes the generated layouts. Not every generator uses
// every field.
type Grid struct {
	Rows     int
	Cols     int
	SpacingX float32
	SpacingY float32
	OffsetY  float32
	Radius   float32
	Stagger  bool
}

func DefaultGrid() Grid {
	return Grid{
		Rows:     8,
		Cols:     14,
		SpacingX: 80,
		SpacingY: 70,
		OffsetY:  200,
		Radius:   6,
		Stagger:  true,
	}
}

// Spec is everything a generator needs to place pegs.
type Spec struct {
	Width  float32
	Height float32
	Grid   Grid
}

func (s Spec) validate() error {
	g := s.Grid
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: playfield %gx%g", pinball.ErrInvalidParams, s.Width, s.Height)
	case g.Rows <= 0 || g.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d", pinball.ErrInvalidParams, g.Rows, g.Cols)
	case g.SpacingX <= 0 || g.SpacingY <= 0:
		return fmt.Errorf("%w: grid spacing %gx%g", pinball.ErrInvalidParams, g.SpacingX, g.SpacingY)
	case g.Radius <= 0:
		return fmt.Errorf("%w: peg radius %g", pinball.ErrInvalidParams, g.Radius)
	}
	return nil
}

type generator struct {
	description string
	build       func(Spec) []pinball.Peg
}

var generators = map[string]generator{
	"classic": {"four pegs, one of each type", func(Spec) []pinball.Peg { return Classic() }},
	"grid":    {"rows of pegs, odd rows shifted when staggered", Staggered},
	"pyramid": {"rows widening towards the floor", Pyramid},
	"ring":    {"concentric rings around the playfield centre", Ring},
}

// Build generates the named layout.
func Build(name string, s Spec) ([]pinball.Peg, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", pinball.ErrUnknownLayout, name)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", name, err)
	}
	return g.build(s), nil
}

// Names lists the preset layouts in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Describe(name string) string {
	return generators[name].description
}

// Classic is the four-peg demo board, one peg of each type.
func Classic() []pinball.Peg {
	pegs := []pinball.Peg{
		pinball.NewPeg(geom.Vec{X: 100, Y: 150}, 5, pinball.Standard),
		pinball.NewPeg(geom.Vec{X: 150, Y: 150}, 5, pinball.Target),
		pinball.NewPeg(geom.Vec{X: 200, Y: 150}, 5, pinball.PowerUp),
		pinball.NewPeg(geom.Vec{X: 250, Y: 150}, 5, pinball.PointBoost),
	}
	pegs[2].PowerUp = pinball.SuperGuide
	return pegs
}

// Staggered lays out Rows x Cols pegs centred horizontally. With Stagger
// set, odd rows shift by half a column and carry one peg fewer.
func Staggered(s Spec) []pinball.Peg {
	g := s.Grid
	pegs := make([]pinball.Peg, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		n := g.Cols
		if g.Stagger && r%2 == 1 {
			n--
		}
		y := g.OffsetY + float32(r)*g.SpacingY
		pegs = appendRow(pegs, s, y, n)
	}
	return assign(pegs)
}

// Pyramid starts with three pegs and adds one per row.
func Pyramid(s Spec) []pinball.Peg {
	g := s.Grid
	pegs := make([]pinball.Peg, 0)
	for r := 0; r < g.Rows; r++ {
		y := g.OffsetY + float32(r)*g.SpacingY
		pegs = appendRow(pegs, s, y, r+3)
	}
	return assign(pegs)
}

// Ring places Rows/2 concentric rings SpacingY apart, ring k carrying
// Cols*(k+1)/2 evenly spaced pegs.
func Ring(s Spec) []pinball.Peg {
	g := s.Grid
	rings := g.Rows / 2
	if rings < 1 {
		rings = 1
	}
	centre := geom.Vec{X: s.Width / 2, Y: g.OffsetY + float32(rings)*g.SpacingY}

	pegs := make([]pinball.Peg, 0)
	for k := 0; k < rings; k++ {
		n := g.Cols * (k + 1) / 2
		if n < 1 {
			n = 1
		}
		radius := float32(k+1) * g.SpacingY
		for i := 0; i < n; i++ {
			a := float32(2*math.Pi) * float32(i) / float32(n)
			pos := centre.Add(geom.NewPolar(a, radius).Point())
			if fits(s, pos) {
				pegs = append(pegs, pinball.NewPeg(pos, g.Radius, pinball.Standard))
			}
		}
	}
	return assign(pegs)
}

func appendRow(pegs []pinball.Peg, s Spec, y float32, n int) []pinball.Peg {
	g := s.Grid
	x0 := (s.Width - float32(n-1)*g.SpacingX) / 2
	for c := 0; c < n; c++ {
		pos := geom.Vec{X: x0 + float32(c)*g.SpacingX, Y: y}
		if fits(s, pos) {
			pegs = append(pegs, pinball.NewPeg(pos, g.Radius, pinball.Standard))
		}
	}
	return pegs
}

// fits keeps pegs fully inside the playfield.
func fits(s Spec, pos geom.Vec) bool {
	r := s.Grid.Radius
	return pos.X-r >= 0 && pos.X+r <= s.Width && pos.Y-r >= 0 && pos.Y+r <= s.Height
}

// assign sprinkles special pegs over a generated field by index.
func assign(pegs []pinball.Peg) []pinball.Peg {
	powerUps := 0
	for i := range pegs {
		switch {
		case i%9 == 4:
			pegs[i].Type = pinball.Target
		case i%17 == 8:
			pegs[i].Type = pinball.PointBoost
		case i%23 == 11:
			pegs[i].Type = pinball.PowerUp
			pegs[i].PowerUp = pinball.PowerUpKind(powerUps % pinball.NumPowerUps)
			powerUps++
		}
	}
	return pegs
}
