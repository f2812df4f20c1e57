package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	t.Run("ccw", func(t *testing.T) {
		got := Orientation(Point{0, 0}, Point{1, 0}, Point{0, 1})
		require.Equal(t, 1, got)
	})
	t.Run("cw", func(t *testing.T) {
		got := Orientation(Point{0, 0}, Point{0, 1}, Point{1, 0})
		require.Equal(t, -1, got)
	})
	t.Run("collinear", func(t *testing.T) {
		got := Orientation(Point{0, 0}, Point{1, 0}, Point{2, 0})
		require.Equal(t, 0, got)
	})
}

func TestPointInTriangleCCW(t *testing.T) {
	v0, v1, v2 := Point{0, 0}, Point{2, 0}, Point{0, 2}

	require.True(t, PointInTriangle(Point{0.4, 0.4}, v0, v1, v2, 0))
	require.False(t, PointInTriangle(Point{5, 5}, v0, v1, v2, 0))

	// A point just outside the nominal edge is admitted once epsi inflates
	// the acceptance region, and rejected without inflation.
	justOutside := Point{1.001, 1.001}
	require.False(t, PointInTriangle(justOutside, v0, v1, v2, 0))
	require.True(t, PointInTriangle(justOutside, v0, v1, v2, 0.01))
}

func TestPointInTriangleCW(t *testing.T) {
	// Same triangle, opposite winding: must still accept interior points.
	v0, v1, v2 := Point{0, 0}, Point{0, 2}, Point{2, 0}
	require.True(t, PointInTriangle(Point{0.4, 0.4}, v0, v1, v2, 0))
}

func TestPointInCircle(t *testing.T) {
	center := Point{0, 0}
	require.True(t, PointInCircle(Point{1, 0}, center, 1))
	require.False(t, PointInCircle(Point{1.1, 0}, center, 1))
}

func TestSegmentIntersect(t *testing.T) {
	lambda1, lambda2, ok := SegmentIntersect(
		Point{0, 0}, Point{2, 0},
		Point{1, -1}, Point{1, 1},
	)
	require.True(t, ok)
	require.InDelta(t, 0.5, lambda1, 1e-9)
	require.InDelta(t, 0.5, lambda2, 1e-9)
	require.True(t, SegmentIntersectAccept(lambda1, lambda2))
}

func TestSegmentIntersectParallel(t *testing.T) {
	_, _, ok := SegmentIntersect(
		Point{0, 0}, Point{1, 0},
		Point{0, 1}, Point{1, 1},
	)
	require.False(t, ok)
}

func TestSegmentIntersectSlack(t *testing.T) {
	// lambda1 just beyond 1.0 but within the 1.15 slack must be accepted.
	lambda1, lambda2, ok := SegmentIntersect(
		Point{0, 0}, Point{1, 0},
		Point{1.1, -1}, Point{1.1, 1},
	)
	require.True(t, ok)
	require.InDelta(t, 1.1, lambda1, 1e-9)
	require.True(t, SegmentIntersectAccept(lambda1, lambda2))

	lambda1, lambda2, ok = SegmentIntersect(
		Point{0, 0}, Point{1, 0},
		Point{1.2, -1}, Point{1.2, 1},
	)
	require.True(t, ok)
	require.False(t, SegmentIntersectAccept(lambda1, lambda2))
}

func TestIsLeftOfFC(t *testing.T) {
	pred := Point{-1, 0}
	fc := Point{0, 0}
	succ := Point{1, 0}

	require.True(t, IsLeftOfFC(pred, fc, succ, Point{0, 1}))
	require.False(t, IsLeftOfFC(pred, fc, succ, Point{0, -1}))
}

func TestCircumcircle(t *testing.T) {
	center, r2, ok := Circumcircle(Point{0, 0}, Point{2, 0}, Point{0, 2})
	require.True(t, ok)
	require.InDelta(t, 1, center.X, 1e-9)
	require.InDelta(t, 1, center.Y, 1e-9)
	require.InDelta(t, 2, r2, 1e-9)

	_, _, ok = Circumcircle(Point{0, 0}, Point{1, 0}, Point{2, 0})
	require.False(t, ok)
}
