// Package geom provides the 2D vector algebra shared by the board and its
// renderers.
//
// [Point] is generic over any integer or floating type. Physics code works
// in [Vec] (float32); rasterization helpers work in [Pixel] and [Offset],
// which never mix with physics values without an explicit conversion:
//
//	v := geom.NewPoint[float32](3, 4)
//	v.Length()          // 5
//	geom.ToPixel(v)     // Pixel{3, 4}
//
// [PolarPoint] converts to and from [Vec] for angle/magnitude input such as
// launch gestures.
package geom
