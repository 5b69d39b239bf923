package shape

import (
	"errors"
	"fmt"

	"github.com/san-kum/poggle/internal/geom"
)

// ErrUnsupported is raised (as a panic value) when code that only knows
// circles meets any other shape.
var ErrUnsupported = errors.New("shape: operation not supported for this shape")

// UnsupportedError carries the operation and the offending shape kind.
type UnsupportedError struct {
	Op   string
	Kind string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("shape: %s not implemented for %s", e.Op, e.Kind)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Unsupported panics with an *UnsupportedError for op on s.
func Unsupported(op string, s Shape) {
	panic(&UnsupportedError{Op: op, Kind: s.Kind()})
}

// Shape is a closed set of geometric primitives. Only Circle has collision
// and containment semantics.
type Shape interface {
	Kind() string
	isShape()
}

type Circle struct {
	Radius float32
}

type Rectangle struct {
	Width, Height float32
	Rotation      float32
}

type Polygon struct {
	Points   []geom.Vec
	Rotation float32
}

func (Circle) Kind() string    { return "circle" }
func (Rectangle) Kind() string { return "rectangle" }
func (Polygon) Kind() string   { return "polygon" }

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Polygon) isShape()   {}
