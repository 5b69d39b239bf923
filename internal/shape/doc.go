// Package shape models the geometric primitives bodies on the board are
// made of.
//
// [Shape] is a sealed sum type: [Circle], [Rectangle] and [Polygon]. Only
// circles are operational. Any containment or collision query reaching
// another variant panics with an [*UnsupportedError] wrapping
// [ErrUnsupported]; there is no partial fallback.
package shape
