package geom

// Circle is a circle centered at (CX, CY). A Circle is never modified
// by its methods.
type Circle[T Scalar] struct {
	CX, CY, Radius T
}

// Circ is shorthand for Circle[T]{CX: cx, CY: cy, Radius: r}.
func Circ[T Scalar](cx, cy, r T) Circle[T] {
	return Circle[T]{CX: cx, CY: cy, Radius: r}
}

// CircleFrom copies the center and radius of c.
func CircleFrom[T Scalar](c CircleLike[T]) Circle[T] {
	cx, cy, r := c.CXYR()
	return Circ(cx, cy, r)
}

// CXYR returns the center and radius of c.
func (c Circle[T]) CXYR() (cx, cy, r T) { return c.CX, c.CY, c.Radius }

// X returns the left edge of c's bounding box.
func (c Circle[T]) X() T { return c.CX - c.Radius }

// X2 returns the right edge of c's bounding box.
func (c Circle[T]) X2() T { return c.CX + c.Radius }

// Y returns the top edge of c's bounding box.
func (c Circle[T]) Y() T { return c.CY - c.Radius }

// Y2 returns the bottom edge of c's bounding box.
func (c Circle[T]) Y2() T { return c.CY + c.Radius }

// Width returns the width of c's bounding box, its diameter.
func (c Circle[T]) Width() T { return 2 * c.Radius }

// Height returns the height of c's bounding box, its diameter.
func (c Circle[T]) Height() T { return 2 * c.Radius }

// Bounds returns the rectangle exactly circumscribing c. A negative
// radius yields an inverted rectangle.
func (c Circle[T]) Bounds() Rect[T] {
	return Rt(c.X(), c.Y(), c.Width(), c.Height())
}

// ContainsPt reports whether (x, y) lies strictly inside c.
func (c Circle[T]) ContainsPt(x, y T) bool {
	return DistSq(c.CX, c.CY, x, y) < c.Radius*c.Radius
}
