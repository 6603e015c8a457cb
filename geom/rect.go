package geom

import "fmt"

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
// Width and Height may be zero or negative, in which case the
// rectangle is degenerate: it has no area, intersects nothing, and
// every point is outside of it on the degenerate axis.
type Rect[T Scalar] struct {
	X, Y          T
	Width, Height T
}

// Rt is shorthand for Rect[T]{X: x, Y: y, Width: w, Height: h}.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: w, Height: h}
}

// RectFrom copies the extent of r.
func RectFrom[T Scalar](r RectLike[T]) Rect[T] {
	x, y, w, h := r.XYWH()
	return Rt(x, y, w, h)
}

// XYWH returns the top-left corner and size of r.
func (r Rect[T]) XYWH() (x, y, w, h T) { return r.X, r.Y, r.Width, r.Height }

// CXYR returns the center of r and half of its longer side, allowing
// r to stand in for a circle that contains it on its longer axis.
func (r Rect[T]) CXYR() (cx, cy, radius T) { return r.CX(), r.CY(), r.Radius() }

// X2 returns the right edge of r.
func (r Rect[T]) X2() T { return r.X + r.Width }

// Y2 returns the bottom edge of r.
func (r Rect[T]) Y2() T { return r.Y + r.Height }

// CX returns the horizontal center of r.
func (r Rect[T]) CX() T { return r.X + r.Width/2 }

// CY returns the vertical center of r.
func (r Rect[T]) CY() T { return r.Y + r.Height/2 }

// Radius returns half of the longer side of r.
func (r Rect[T]) Radius() T { return max(r.Width, r.Height) / 2 }

// Area returns Width*Height, which is not positive for a degenerate
// rectangle.
func (r Rect[T]) Area() T { return r.Width * r.Height }

// Center returns the point at the center of r.
func (r Rect[T]) Center() Point[T] { return Pt(r.CX(), r.CY()) }

// Equals reports whether r and r2 have exactly the same extent.
func (r Rect[T]) Equals(r2 RectLike[T]) bool {
	x, y, w, h := r2.XYWH()
	return r.X == x && r.Y == y && r.Width == w && r.Height == h
}

// Clone returns a copy of r. Since Rect is a value type this is the
// same as assignment, but it reads better at call sites that go on to
// mutate the result.
func (r Rect[T]) Clone() Rect[T] { return r }

// Add grows r in place to the smallest rectangle enclosing both r and
// r2.
func (r *Rect[T]) Add(r2 RectLike[T]) {
	x, y, w, h := r2.XYWH()
	r.union(x, y, x+w, y+h)
}

// AddPoint grows r in place to the smallest rectangle enclosing both r
// and p.
func (r *Rect[T]) AddPoint(p PointLike[T]) {
	x, y := p.XY()
	r.union(x, y, x, y)
}

func (r *Rect[T]) union(x, y, x2, y2 T) {
	nx, ny := min(r.X, x), min(r.Y, y)
	nx2, ny2 := max(r.X2(), x2), max(r.Y2(), y2)
	*r = Rt(nx, ny, nx2-nx, ny2-ny)
}

// Union returns the smallest rectangle enclosing both r and r2
// without modifying either.
func (r Rect[T]) Union(r2 RectLike[T]) Rect[T] {
	r.Add(r2)
	return r
}

// String formats r as Rectangle[x=<x>, y=<y>, w=<w>, h=<h>].
func (r Rect[T]) String() string {
	return fmt.Sprintf("Rectangle[x=%v, y=%v, w=%v, h=%v]", r.X, r.Y, r.Width, r.Height)
}

// ContainsPt reports whether (px, py) is in r, edges included.
func (r Rect[T]) ContainsPt(px, py T) bool {
	return px >= r.X && px <= r.X2() && py >= r.Y && py <= r.Y2()
}

// ContainsRect reports whether r2 lies entirely within r, edges
// included.
func (r Rect[T]) ContainsRect(r2 RectLike[T]) bool {
	x, y, w, h := r2.XYWH()
	return r.ContainsPt(x, y) && r.ContainsPt(x+w, y+h)
}

// Intersects reports whether r and r2 overlap. Rectangles that only
// share an edge do not intersect, and neither does anything with a
// degenerate rectangle.
func (r Rect[T]) Intersects(r2 RectLike[T]) bool {
	x, y, w, h := r2.XYWH()
	if r.Area() <= 0 || w <= 0 || h <= 0 {
		return false
	}
	return x+w > r.X && y+h > r.Y && x < r.X2() && y < r.Y2()
}

// Outcode classifies (px, py) against the half-planes bounding r. If
// r is degenerate on an axis, both of that axis's bits are set.
func (r Rect[T]) Outcode(px, py T) Outcode {
	var out Outcode
	switch {
	case r.Width <= 0:
		out |= OutLeft | OutRight
	case px < r.X:
		out |= OutLeft
	case px > r.X2():
		out |= OutRight
	}
	switch {
	case r.Height <= 0:
		out |= OutTop | OutBottom
	case py < r.Y:
		out |= OutTop
	case py > r.Y2():
		out |= OutBottom
	}
	return out
}

// IntersectsLine reports whether the segment l touches r. Clipping is
// done in float64 regardless of T.
func (r Rect[T]) IntersectsLine(l Line[T]) bool {
	fr := Rt(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	x1, y1 := float64(l.X1), float64(l.Y1)
	x2, y2 := float64(l.X2), float64(l.Y2)

	out2 := fr.Outcode(x2, y2)
	if out2 == OutNone {
		return true
	}

	// Each pass moves (x1, y1) onto the boundary it violates. Both
	// endpoints sharing a violated half-plane ends the loop before a
	// division by a zero span can happen.
	out1 := fr.Outcode(x1, y1)
	for out1 != OutNone {
		if out1&out2 != OutNone {
			return false
		}

		if out1&(OutLeft|OutRight) != OutNone {
			x := fr.X
			if out1.Has(OutRight) {
				x = fr.X2()
			}
			y1 += (x - x1) * (y2 - y1) / (x2 - x1)
			x1 = x
		} else {
			y := fr.Y
			if out1.Has(OutBottom) {
				y = fr.Y2()
			}
			x1 += (y - y1) * (x2 - x1) / (y2 - y1)
			y1 = y
		}
		out1 = fr.Outcode(x1, y1)
	}

	return true
}

// DistSq returns the squared distance from (px, py) to the nearest
// point of r, or 0 if r contains it.
func (r Rect[T]) DistSq(px, py T) T {
	if r.ContainsPt(px, py) {
		return 0
	}

	sq := func(v T) T { return v * v }

	out := r.Outcode(px, py)
	switch {
	case out.Has(OutTop | OutLeft):
		return DistSq(px, py, r.X, r.Y)
	case out.Has(OutTop | OutRight):
		return DistSq(px, py, r.X2(), r.Y)
	case out.Has(OutTop):
		return sq(r.Y - py)
	case out.Has(OutBottom | OutLeft):
		return DistSq(px, py, r.X, r.Y2())
	case out.Has(OutBottom | OutRight):
		return DistSq(px, py, r.X2(), r.Y2())
	case out.Has(OutBottom):
		return sq(py - r.Y2())
	case out.Has(OutLeft):
		return sq(r.X - px)
	case out.Has(OutRight):
		return sq(px - r.X2())
	}

	// Unreachable: a point not contained by r has at least one bit set.
	return 0
}
