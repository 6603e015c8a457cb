// Package geom provides 2D geometry primitives for hit-testing and
// bounding-box accumulation: axis-aligned rectangles, circles, lines,
// and points.
//
// Rectangles are stored as a top-left corner plus a size, not as the
// Min/Max pair that image.Rectangle uses, and a rectangle with a zero
// or negative size is valid but degenerate. Queries on degenerate
// shapes return well-defined results rather than failing.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// PointLike is anything with a position.
type PointLike[T Scalar] interface {
	XY() (x, y T)
}

// RectLike is anything with an axis-aligned rectangular extent given
// as a top-left corner and a size.
type RectLike[T Scalar] interface {
	XYWH() (x, y, w, h T)
}

// CircleLike is anything with a circular extent.
type CircleLike[T Scalar] interface {
	CXYR() (cx, cy, r T)
}

// DistSq returns the squared Euclidean distance between (x1, y1) and
// (x2, y2).
func DistSq[T Scalar](x1, y1, x2, y2 T) T {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}
