package collision

import (
	"math"

	"github.com/san-kum/poggle/internal/geom"
	"github.com/san-kum/poggle/internal/shape"
)

const (
	// minTravel is the swept distance below which a ball is treated as
	// stationary for the tick.
	minTravel = 1e-6
	// verticalSlope is the |movement.x| below which the path is solved
	// with x held constant.
	verticalSlope = 1e-4
)

// Impact is a predicted first contact.
type Impact struct {
	Point geom.Vec
	// Distance is how far the ball centre travels from its current
	// position to Point.
	Distance float64
}

// Predict returns the world-space point where a ball at pos moving with
// velocity first touches peg during the next dt seconds. The peg must be a
// circle; any other shape panics.
func Predict(pos, velocity geom.Vec, ballRadius float32, peg shape.Body, dt float32) (geom.Vec, bool) {
	hit, ok := Sweep(pos, velocity, ballRadius, peg, dt)
	return hit.Point, ok
}

// Sweep is Predict with the travelled distance to contact attached.
func Sweep(pos, velocity geom.Vec, ballRadius float32, peg shape.Body, dt float32) (Impact, bool) {
	circle, ok := peg.Shape.(shape.Circle)
	if !ok {
		shape.Unsupported("collision", peg.Shape)
	}

	movement := velocity.Mul(dt)
	travel := movement.Length()
	if travel < minTravel {
		return Impact{}, false
	}

	radiusSum := float64(ballRadius) + float64(circle.Radius)
	if pos.Distance(peg.Pos) > radiusSum+travel {
		return Impact{}, false
	}

	x0, y0 := float64(pos.X), float64(pos.Y)
	mx, my := float64(movement.X), float64(movement.Y)
	p, q := float64(peg.Pos.X), float64(peg.Pos.Y)
	r2 := radiusSum * radiusSum

	var cx, cy float64
	if math.Abs(mx) < verticalSlope {
		// x fixed: (x0-p)^2 + (y-q)^2 = R^2
		dx := x0 - p
		root, ok := nearestRoot(1, -2*q, q*q+dx*dx-r2, y0)
		if !ok {
			return Impact{}, false
		}
		cx, cy = x0, root
	} else {
		m := my / mx
		k := y0 - m*x0
		a := m*m + 1
		b := 2 * (m*k - m*q - p)
		c := q*q - r2 + p*p - 2*k*q + k*k
		root, ok := nearestRoot(a, b, c, x0)
		if !ok {
			return Impact{}, false
		}
		cx, cy = root, m*root+k
	}

	// Moving away from the candidate: it is behind the ball.
	ox, oy := cx-x0, cy-y0
	if ox*mx+oy*my < 0 {
		return Impact{}, false
	}

	dist := math.Hypot(ox, oy)
	if dist > travel {
		return Impact{}, false
	}

	return Impact{Point: geom.Vec{X: float32(cx), Y: float32(cy)}, Distance: dist}, true
}

// nearestRoot solves a*t^2 + b*t + c = 0 and returns the real root closest
// to ref.
func nearestRoot(a, b, c, ref float64) (float64, bool) {
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if math.Abs(t1-ref) <= math.Abs(t2-ref) {
		return t1, true
	}
	return t2, true
}
