package geom

import "fmt"

// Point is a position in 2D space.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// XY returns the coordinates of p.
func (p Point[T]) XY() (x, y T) { return p.X, p.Y }

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Line is a segment between (X1, Y1) and (X2, Y2).
type Line[T Scalar] struct {
	X1, Y1, X2, Y2 T
}

// Ln is shorthand for Line[T]{X1: x1, Y1: y1, X2: x2, Y2: y2}.
func Ln[T Scalar](x1, y1, x2, y2 T) Line[T] {
	return Line[T]{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (l Line[T]) String() string {
	return fmt.Sprintf("(%v,%v)-(%v,%v)", l.X1, l.Y1, l.X2, l.Y2)
}
