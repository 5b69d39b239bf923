package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/poggle/internal/pinball"
)

func defaultSpec() Spec {
	return Spec{Width: 1280, Height: 800, Grid: DefaultGrid()}
}

func TestClassic(t *testing.T) {
	pegs := Classic()
	if len(pegs) != 4 {
		t.Fatalf("expected 4 pegs, got %d", len(pegs))
	}

	want := []pinball.PegType{pinball.Standard, pinball.Target, pinball.PowerUp, pinball.PointBoost}
	for i, p := range pegs {
		if p.Type != want[i] {
			t.Errorf("peg %d: type %v, want %v", i, p.Type, want[i])
		}
		if p.Pos().Y != 150 || p.Pos().X != float32(100+50*i) {
			t.Errorf("peg %d at %+v", i, p.Pos())
		}
		if p.Body.Radius() != 5 {
			t.Errorf("peg %d: radius %f, want 5", i, p.Body.Radius())
		}
	}
	if pegs[2].PowerUp != pinball.SuperGuide {
		t.Errorf("expected super guide, got %v", pegs[2].PowerUp)
	}
}

func TestBuildCounts(t *testing.T) {
	flat := defaultSpec()
	flat.Grid.Stagger = false

	tests := []struct {
		name   string
		layout string
		spec   Spec
		want   int
	}{
		{"classic", "classic", defaultSpec(), 4},
		{"staggered grid", "grid", defaultSpec(), 8*14 - 4},
		{"flat grid", "grid", flat, 8 * 14},
		{"pyramid", "pyramid", defaultSpec(), 3 + 4 + 5 + 6 + 7 + 8 + 9 + 10},
		{"ring", "ring", defaultSpec(), 7 + 14 + 21 + 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pegs, err := Build(tt.layout, tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if len(pegs) != tt.want {
				t.Errorf("expected %d pegs, got %d", tt.want, len(pegs))
			}
		})
	}
}

func TestPegsInsidePlayfield(t *testing.T) {
	s := defaultSpec()
	for _, name := range Names() {
		pegs, err := Build(name, s)
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range pegs {
			r := p.Body.Radius()
			pos := p.Pos()
			if pos.X-r < 0 || pos.X+r > s.Width || pos.Y-r < 0 || pos.Y+r > s.Height {
				t.Errorf("%s: peg %d at %+v leaves the playfield", name, i, pos)
			}
		}
	}
}

func TestNarrowPlayfieldDropsPegs(t *testing.T) {
	s := defaultSpec()
	s.Width = 400
	pegs, err := Build("grid", s)
	if err != nil {
		t.Fatal(err)
	}
	if len(pegs) >= 8*14-4 {
		t.Errorf("expected clipped grid, got %d pegs", len(pegs))
	}
}

func TestDeterministic(t *testing.T) {
	for _, name := range Names() {
		a, _ := Build(name, defaultSpec())
		b, _ := Build(name, defaultSpec())
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: peg %d differs between builds", name, i)
			}
		}
	}
}

func TestAssignMixesTypes(t *testing.T) {
	pegs, _ := Build("grid", defaultSpec())
	counts := map[pinball.PegType]int{}
	for _, p := range pegs {
		counts[p.Type]++
	}
	for _, typ := range []pinball.PegType{pinball.Standard, pinball.Target, pinball.PointBoost, pinball.PowerUp} {
		if counts[typ] == 0 {
			t.Errorf("no %v pegs among %d", typ, len(pegs))
		}
	}
	if pegs[4].Type != pinball.Target || pegs[8].Type != pinball.PointBoost || pegs[11].Type != pinball.PowerUp {
		t.Errorf("unexpected type assignment: %v %v %v", pegs[4].Type, pegs[8].Type, pegs[11].Type)
	}
}

func TestRingRadii(t *testing.T) {
	s := defaultSpec()
	pegs, _ := Build("ring", s)
	cx, cy := float64(s.Width/2), float64(s.Grid.OffsetY+4*s.Grid.SpacingY)
	// First ring is the innermost.
	for _, p := range pegs[:7] {
		d := math.Hypot(float64(p.Pos().X)-cx, float64(p.Pos().Y)-cy)
		if math.Abs(d-float64(s.Grid.SpacingY)) > 1e-3 {
			t.Errorf("inner ring peg at distance %f", d)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build("maze", defaultSpec()); !errors.Is(err, pinball.ErrUnknownLayout) {
		t.Errorf("expected ErrUnknownLayout, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"zero rows", func(s *Spec) { s.Grid.Rows = 0 }},
		{"negative spacing", func(s *Spec) { s.Grid.SpacingX = -1 }},
		{"zero radius", func(s *Spec) { s.Grid.Radius = 0 }},
		{"empty playfield", func(s *Spec) { s.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSpec()
			tt.mutate(&s)
			if _, err := Build("grid", s); !errors.Is(err, pinball.ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"classic", "grid", "pyramid", "ring"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
		if Describe(names[i]) == "" {
			t.Errorf("%s has no description", names[i])
		}
	}
}
