package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any ordered numeric type a Point can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

type Point[T Number] struct {
	X, Y T
}

// Vec is the physics-domain vector.
type Vec = Point[float32]

func NewPoint[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func Zero[T Number]() Point[T] {
	return Point[T]{}
}

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }
func (p Point[T]) Mul(s T) Point[T]        { return Point[T]{p.X * s, p.Y * s} }
func (p Point[T]) Div(s T) Point[T]        { return Point[T]{p.X / s, p.Y / s} }

func (p Point[T]) Dot(q Point[T]) float64 {
	return float64(p.X)*float64(q.X) + float64(p.Y)*float64(q.Y)
}

func (p Point[T]) LengthSquared() float64 {
	x, y := float64(p.X), float64(p.Y)
	return x*x + y*y
}

func (p Point[T]) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// Distance is |q - p|. Unsigned types wrap on subtraction; use it on
// signed or floating points only.
func (p Point[T]) Distance(q Point[T]) float64 {
	return q.Sub(p).Length()
}

// Normalize returns the unit vector of p, or the zero vector when p has no
// length.
func (p Point[T]) Normalize() Point[T] {
	l := p.Length()
	if l == 0 {
		return Point[T]{}
	}
	return Point[T]{T(float64(p.X) / l), T(float64(p.Y) / l)}
}

// WithLength rescales p to length l keeping its direction.
func (p Point[T]) WithLength(l float64) Point[T] {
	n := p.Length()
	if n == 0 {
		return Point[T]{}
	}
	k := l / n
	return Point[T]{T(float64(p.X) * k), T(float64(p.Y) * k)}
}

// To returns the vector pointing from p to q.
func (p Point[T]) To(q Point[T]) Point[T] {
	return q.Sub(p)
}

// PointsTowards reports whether p and dir share a direction (positive dot
// product). Perpendicular or zero vectors do not.
func (p Point[T]) PointsTowards(dir Point[T]) bool {
	return p.Dot(dir) > 0
}

func (p Point[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsFinite reports whether neither component is NaN or Inf. Integer points
// are always finite.
func (p Point[T]) IsFinite() bool {
	x, y := float64(p.X), float64(p.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
