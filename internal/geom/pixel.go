package geom

import "math"

// Pixel is a screen coordinate. Offset is a signed displacement between
// pixels.
type (
	Pixel  = Point[uint32]
	Offset = Point[int32]
)

// AddSigned moves px by off, saturating at 0 and MaxUint32 instead of
// wrapping.
func AddSigned(px Pixel, off Offset) Pixel {
	return Pixel{X: saturatingAdd(px.X, off.X), Y: saturatingAdd(px.Y, off.Y)}
}

func saturatingAdd(v uint32, d int32) uint32 {
	if d < 0 {
		m := uint32(-int64(d))
		if m > v {
			return 0
		}
		return v - m
	}
	if uint32(d) > math.MaxUint32-v {
		return math.MaxUint32
	}
	return v + uint32(d)
}

// ToPixel truncates v to the pixel grid, clamping negative and
// non-finite components to 0.
func ToPixel(v Vec) Pixel {
	return Pixel{X: clampPixel(v.X), Y: clampPixel(v.Y)}
}

func clampPixel(f float32) uint32 {
	x := float64(f)
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(x)
}

// ToVec lifts a pixel back into physics space.
func ToVec(px Pixel) Vec {
	return Vec{X: float32(px.X), Y: float32(px.Y)}
}
