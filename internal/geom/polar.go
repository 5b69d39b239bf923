package geom

import "math"

// PolarPoint is a vector expressed as an angle in radians and a magnitude.
type PolarPoint struct {
	Angle     float32
	Magnitude float32
}

func NewPolar(angle, magnitude float32) PolarPoint {
	return PolarPoint{Angle: angle, Magnitude: magnitude}
}

// Polar converts v to angle/magnitude form. The angle is in (-pi, pi].
func Polar(v Vec) PolarPoint {
	return PolarPoint{
		Angle:     float32(math.Atan2(float64(v.Y), float64(v.X))),
		Magnitude: float32(math.Hypot(float64(v.X), float64(v.Y))),
	}
}

func (pp PolarPoint) Point() Vec {
	sin, cos := math.Sincos(float64(pp.Angle))
	return Vec{X: float32(cos), Y: float32(sin)}.Mul(pp.Magnitude)
}

// Outline returns n points evenly spaced on the circle of radius r around
// centre, starting on the +x axis.
func Outline(centre Vec, r float32, n int) []Vec {
	if n <= 0 {
		return nil
	}
	pts := make([]Vec, n)
	for i := range pts {
		a := float32(2*math.Pi) * float32(i) / float32(n)
		pts[i] = centre.Add(NewPolar(a, r).Point())
	}
	return pts
}
