package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/poggle/internal/geom"
)

func TestBody_ContainsGrid(t *testing.T) {
	center := geom.Vec{X: 100, Y: 50}
	const radius = 10
	b := NewCircle(center, radius)

	for dx := float32(-15); dx <= 15; dx += 0.5 {
		for dy := float32(-15); dy <= 15; dy += 0.5 {
			p := geom.Vec{X: center.X + dx, Y: center.Y + dy}
			want := center.Distance(p) <= radius
			if got := b.Contains(p); got != want {
				t.Errorf("Contains(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestBody_ContainsBoundary(t *testing.T) {
	b := NewCircle(geom.Vec{}, 10)

	if !b.Contains(geom.Vec{X: 10}) {
		t.Error("point exactly on the radius should be contained")
	}

	for _, angle := range []float64{0, 0.7, math.Pi / 2, 2.5, math.Pi, 4} {
		p := geom.NewPolar(float32(angle), 10+1e-3).Point()
		if b.Contains(p) {
			t.Errorf("point at radius+eps (angle %.2f) reported inside", angle)
		}
	}
}

func TestBody_Radius(t *testing.T) {
	if r := NewCircle(geom.Vec{}, 7).Radius(); r != 7 {
		t.Errorf("Radius = %v, want 7", r)
	}
}

func TestBody_UnsupportedShapesPanic(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		call  func(Body)
	}{
		{"polygon contains", Polygon{Points: []geom.Vec{{}, {X: 1}, {Y: 1}}}, func(b Body) { b.Contains(geom.Vec{}) }},
		{"rectangle contains", Rectangle{Width: 2, Height: 2}, func(b Body) { b.Contains(geom.Vec{}) }},
		{"polygon radius", Polygon{}, func(b Body) { b.Radius() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic, got none")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrUnsupported) {
					t.Fatalf("panic value %v does not wrap ErrUnsupported", r)
				}
				var ue *UnsupportedError
				if !errors.As(err, &ue) || ue.Kind != tt.shape.Kind() {
					t.Errorf("panic value %v does not name kind %s", r, tt.shape.Kind())
				}
			}()
			tt.call(Body{Shape: tt.shape})
		})
	}
}
