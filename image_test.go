package xgeom_test

import (
	"image"
	"testing"

	"deedles.dev/xgeom"
	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestImageRect(t *testing.T) {
	r := geom.Rt(1, 2, 3, 4)
	ir := xgeom.ImageRect(r)
	require.Equal(t, image.Rect(1, 2, 4, 6), ir)
	require.Equal(t, r, xgeom.FromImageRect(ir))

	require.Equal(t, geom.Rt(1, 2, 3, 4), xgeom.FromImageRect(image.Rectangle{
		Min: image.Pt(4, 6),
		Max: image.Pt(1, 2),
	}))
}

func TestImagePoint(t *testing.T) {
	p := image.Pt(-3, 8)
	require.Equal(t, geom.Pt(-3, 8), xgeom.FromImagePoint(p))
	require.Equal(t, p, xgeom.ImagePoint(xgeom.FromImagePoint(p)))
}

func TestBounds(t *testing.T) {
	_, ok := xgeom.Bounds()
	require.False(t, ok)

	points := []image.Point{image.Pt(2, 2), image.Pt(5, 0), image.Pt(0, 3)}
	b, ok := xgeom.Bounds(points...)
	require.True(t, ok)
	require.Equal(t, image.Rect(0, 0, 6, 4), b)
	for _, p := range points {
		require.True(t, p.In(b), "%v", p)
	}
}
