package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

var pegFill = map[pinball.PegType]string{
	pinball.Standard:   "#0000ff",
	pinball.Target:     "#ff0000",
	pinball.PointBoost: "#ff00ff",
	pinball.PowerUp:    "#00ff00",
}

const (
	background = "#0a0a0a"
	ballFill   = "#ffffff"
	trailFill  = "#ffff00"
)

// BoardToSVG draws a snapshot in playfield coordinates. Hit pegs are drawn
// at reduced opacity and anomalous balls in red. Trail points are drawn as
// small dots beneath the balls.
func BoardToSVG(s pinball.Snapshot, trail []geom.Vec) string {
	w, h := s.Params.Width, s.Params.Height

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, background))

	sb.WriteString("<g>\n")
	for _, p := range s.Pegs {
		fill, ok := pegFill[p.Type]
		if !ok {
			fill = pegFill[pinball.Standard]
		}
		opacity := 1.0
		if p.IsHit {
			opacity = 0.3
		}
		pos := p.Pos()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.1f"/>
`, pos.X, pos.Y, p.Body.Radius(), fill, opacity))
	}
	sb.WriteString("</g>\n")

	if len(trail) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="%s" fill-opacity="0.4">
`, trailFill))
		for _, p := range trail {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1"/>
`, p.X, p.Y))
		}
		sb.WriteString("</g>\n")
	}

	r := s.Params.BallRadius
	sb.WriteString("<g>\n")
	for i, b := range s.Balls {
		fill := ballFill
		if i < len(s.Anomalous) && s.Anomalous[i] {
			fill = "#ff0000"
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>
`, b.Pos.X, b.Pos.Y, r, fill))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Trail collects ball positions from a running board, one point per ball
// every Every ticks.
type Trail struct {
	Every  uint64
	Points []geom.Vec
	Last   pinball.Snapshot
}

func (t *Trail) OnStep(s pinball.Snapshot) {
	t.Last = s
	if t.Every > 1 && s.Tick%t.Every != 0 {
		return
	}
	for _, b := range s.Balls {
		t.Points = append(t.Points, b.Pos)
	}
}
