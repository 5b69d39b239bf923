package collision

import (
	"math"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/pinball"
)

// Response holds the bounce constants applied by Resolve.
type Response struct {
	Elasticity float32
	Mode       pinball.ReflectionMode
}

func ResponseFor(p pinball.Params) Response {
	return Response{Elasticity: p.Elasticity, Mode: p.Reflection}
}

// Resolve bounces ball off peg at impact, a point previously returned by
// Predict for the same ball and dt, and marks the peg hit. It must run at
// most once per predicted collision.
func Resolve(ball *pinball.Ball, peg *pinball.Peg, impact geom.Vec, dt float32, r Response) {
	v := ball.Velocity
	speed := v.Length()
	n := peg.Body.Pos.To(impact).Normalize()

	var bounced geom.Vec
	switch r.Mode {
	case pinball.ReflectMirror:
		bounced = v.Sub(n.Mul(float32(2 * v.Dot(n))))
	default:
		bounced = v.Add(n.Mul(float32(math.Abs(n.Dot(v)) * 2)))
	}
	bounced = bounced.WithLength(speed * float64(r.Elasticity))

	remaining := speed*float64(dt) - ball.Pos.Distance(impact)
	ball.Pos = impact.Add(bounced.Normalize().Mul(float32(remaining)))
	ball.Velocity = bounced
	peg.IsHit = true
}
