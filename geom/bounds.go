package geom

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// BoundingBox returns the smallest rectangle enclosing every point
// yielded by points. The returned bool is false if points yields
// nothing, in which case the rectangle is meaningless.
func BoundingBox[T Scalar](points iter.Seq[Point[T]]) (bb Rect[T], ok bool) {
	for i, p := range xiter.Enumerate(points) {
		if i == 0 {
			bb, ok = Rt(p.X, p.Y, 0, 0), true
		}
		bb.AddPoint(p)
	}
	return bb, ok
}

// BoundingBoxOf is the same as [BoundingBox] but takes the points as
// arguments.
func BoundingBoxOf[T Scalar](points ...Point[T]) (Rect[T], bool) {
	return BoundingBox(slices.Values(points))
}

// BoundingBoxOfRects returns the smallest rectangle enclosing every
// rectangle yielded by rects, or false if there were none.
func BoundingBoxOfRects[T Scalar](rects iter.Seq[Rect[T]]) (bb Rect[T], ok bool) {
	for r := range rects {
		if !ok {
			bb, ok = r, true
			continue
		}
		bb.Add(r)
	}
	return bb, ok
}
