package shape

import "github.com/san-kum/poggle/internal/geom"

// Region answers point-containment queries.
type Region interface {
	Contains(p geom.Vec) bool
}

// Body is a shape anchored at a world position.
type Body struct {
	Pos   geom.Vec
	Shape Shape
}

func NewCircle(pos geom.Vec, radius float32) Body {
	return Body{Pos: pos, Shape: Circle{Radius: radius}}
}

// Contains reports whether p lies inside or on the boundary of b.
func (b Body) Contains(p geom.Vec) bool {
	switch s := b.Shape.(type) {
	case Circle:
		r := float64(s.Radius)
		return b.Pos.Sub(p).LengthSquared() <= r*r
	default:
		Unsupported("contains", b.Shape)
		return false
	}
}

// Radius returns the circle radius of b.
func (b Body) Radius() float32 {
	c, ok := b.Shape.(Circle)
	if !ok {
		Unsupported("radius", b.Shape)
	}
	return c.Radius
}
