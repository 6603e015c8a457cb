// Package xgeom converts between geom's shapes and the standard
// library's image types so that hit-testing results can be handed to
// code that renders with package image.
package xgeom

import (
	"image"

	"deedles.dev/xgeom/geom"
)

// ImageRect converts r to an image.Rectangle. A rectangle with a
// negative size comes out with Min and Max swapped, which
// image.Rectangle treats as empty.
func ImageRect(r geom.Rect[int]) image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(r.X, r.Y),
		Max: image.Pt(r.X2(), r.Y2()),
	}
}

// FromImageRect converts r to a geom.Rect. r is canonicalized first.
func FromImageRect(r image.Rectangle) geom.Rect[int] {
	r = r.Canon()
	return geom.Rt(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

// ImagePoint converts p to an image.Point.
func ImagePoint(p geom.Point[int]) image.Point {
	return image.Pt(p.X, p.Y)
}

// FromImagePoint converts p to a geom.Point.
func FromImagePoint(p image.Point) geom.Point[int] {
	return geom.Pt(p.X, p.Y)
}

// Bounds returns the bounding box of a set of image points as an
// image.Rectangle. Since image.Rectangle excludes its Max edge, the
// result is one larger in each direction than the geom.Rect would be,
// so that every point satisfies image.Point.In. The bool is false if
// there were no points.
func Bounds(points ...image.Point) (image.Rectangle, bool) {
	gp := make([]geom.Point[int], 0, len(points))
	for _, p := range points {
		gp = append(gp, FromImagePoint(p))
	}

	bb, ok := geom.BoundingBoxOf(gp...)
	if !ok {
		return image.Rectangle{}, false
	}

	bb.Width++
	bb.Height++
	return ImageRect(bb), true
}
