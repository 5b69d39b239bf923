package export

import (
	"strings"
	"testing"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

func snapshot() pinball.Snapshot {
	p := pinball.DefaultParams()
	hit := pinball.NewPeg(geom.Vec{X: 150, Y: 150}, 5, pinball.Target)
	hit.IsHit = true
	return pinball.Snapshot{
		Tick:   3,
		Params: p,
		Pegs: []pinball.Peg{
			pinball.NewPeg(geom.Vec{X: 100, Y: 150}, 5, pinball.Standard),
			hit,
		},
		Balls:     []pinball.Ball{pinball.NewBall(geom.Vec{X: 100, Y: 100}, geom.Vec{})},
		Anomalous: []bool{true},
	}
}

func TestBoardToSVG(t *testing.T) {
	svg := BoardToSVG(snapshot(), []geom.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}})

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if !strings.Contains(svg, `width="1280" height="800"`) {
		t.Error("expected playfield size")
	}

	tests := []struct {
		name string
		want string
	}{
		{"standard peg", `<circle cx="100.0" cy="150.0" r="5.0" fill="#0000ff" fill-opacity="1.0"/>`},
		{"hit target peg", `<circle cx="150.0" cy="150.0" r="5.0" fill="#ff0000" fill-opacity="0.3"/>`},
		{"anomalous ball", `<circle cx="100.0" cy="100.0" r="8.0" fill="none" stroke="#ff0000"`},
		{"trail point", `<circle cx="3.0" cy="4.0" r="1"/>`},
	}
	for _, tt := range tests {
		if !strings.Contains(svg, tt.want) {
			t.Errorf("%s: missing %s", tt.name, tt.want)
		}
	}
}

func TestBoardToSVGNoTrail(t *testing.T) {
	svg := BoardToSVG(snapshot(), nil)
	if strings.Contains(svg, `r="1"/>`) {
		t.Error("expected no trail group")
	}
}

func TestTrail(t *testing.T) {
	tr := &Trail{Every: 2}
	s := snapshot()
	for tick := uint64(1); tick <= 4; tick++ {
		s.Tick = tick
		tr.OnStep(s)
	}

	if len(tr.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(tr.Points))
	}
	if tr.Last.Tick != 4 {
		t.Errorf("expected last tick 4, got %d", tr.Last.Tick)
	}
}
