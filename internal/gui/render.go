package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

// circleSegments is the polyline resolution of ball outlines.
const circleSegments = 20

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColBall    = rl.NewColor(255, 255, 255, 255)
	ColGuide   = rl.NewColor(255, 220, 0, 255)
)

var pegColors = map[pinball.PegType]rl.Color{
	pinball.Standard:   rl.Blue,
	pinball.Target:     rl.Red,
	pinball.PointBoost: rl.Magenta,
	pinball.PowerUp:    rl.Green,
}

func vec(v geom.Vec) rl.Vector2 { return rl.NewVector2(v.X, v.Y) }

func pegColor(p pinball.Peg) rl.Color {
	c, ok := pegColors[p.Type]
	if !ok {
		c = rl.Gray
	}
	if p.IsHit {
		return rl.ColorAlpha(c, 0.3)
	}
	return c
}

func drawPegs(s pinball.Snapshot) {
	for _, p := range s.Pegs {
		rl.DrawCircleV(vec(p.Pos()), p.Body.Radius(), pegColor(p))
	}
}

// drawBalls outlines each ball, red when it carries more energy than it was
// launched with.
func drawBalls(s pinball.Snapshot) {
	for i, b := range s.Balls {
		col := ColBall
		if s.Anomalous[i] {
			col = rl.Red
		}
		drawOutline(b.Pos, s.Params.BallRadius, col)
	}
}

func drawOutline(centre geom.Vec, r float32, col rl.Color) {
	pts := geom.Outline(centre, r, circleSegments)
	for i := range pts {
		rl.DrawLineV(vec(pts[i]), vec(pts[(i+1)%len(pts)]), col)
	}
}

func drawGuide(start, end geom.Vec) {
	rl.DrawLineV(vec(start), vec(end), ColGuide)
	rl.DrawCircleLines(int32(start.X), int32(start.Y), 4, ColGuide)
}
