package gm3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAabb3_LineIntersections(t *testing.T) {
	b := Aabb3[float64]{0, 0, 0, 1, 1, 1}

	// through the center along x
	tmin, tmax, ok := b.LineIntersections(Vec3[float64]{-1, 0.5, 0.5}, Vec3[float64]{1, 0, 0})
	require.True(t, ok)
	require.InDelta(t, 1, tmin, 1e-15)
	require.InDelta(t, 2, tmax, 1e-15)

	// the parameters are ratios of dir, not distances
	tmin, tmax, ok = b.LineIntersections(Vec3[float64]{-1, 0.5, 0.5}, Vec3[float64]{2, 0, 0})
	require.True(t, ok)
	require.InDelta(t, 0.5, tmin, 1e-15)
	require.InDelta(t, 1, tmax, 1e-15)

	// a line also hits when pointing away from the box
	tmin, tmax, ok = b.LineIntersections(Vec3[float64]{-1, 0.5, 0.5}, Vec3[float64]{-1, 0, 0})
	require.True(t, ok)
	require.InDelta(t, -2, tmin, 1e-15)
	require.InDelta(t, -1, tmax, 1e-15)

	// diagonal through opposite corners
	tmin, tmax, ok = b.LineIntersections(Vec3[float64]{-1, -1, -1}, Vec3[float64]{1, 1, 1})
	require.True(t, ok)
	require.InDelta(t, 1, tmin, 1e-15)
	require.InDelta(t, 2, tmax, 1e-15)

	// parallel to the box but outside
	_, _, ok = b.LineIntersections(Vec3[float64]{-1, 2, 0.5}, Vec3[float64]{1, 0, 0})
	require.False(t, ok)

	// zero direction components clip against the slab of the origin
	tmin, tmax, ok = b.LineIntersections(Vec3[float64]{0.5, 0.5, -1}, Vec3[float64]{0, 0, 1})
	require.True(t, ok)
	require.InDelta(t, 1, tmin, 1e-15)
	require.InDelta(t, 2, tmax, 1e-15)

	// miss
	_, _, ok = b.LineIntersections(Vec3[float64]{-1, -1, 0.5}, Vec3[float64]{1, 0, 0})
	require.False(t, ok)
}

func TestAabb3_RayIntersections(t *testing.T) {
	b := Aabb3[float64]{0, 0, 0, 1, 1, 1}

	tmin, tmax, ok := b.RayIntersections(Vec3[float64]{-1, 0.5, 0.5}, Vec3[float64]{1, 0, 0})
	require.True(t, ok)
	require.InDelta(t, 1, tmin, 1e-15)
	require.InDelta(t, 2, tmax, 1e-15)

	// the box is behind the ray
	_, _, ok = b.RayIntersections(Vec3[float64]{-1, 0.5, 0.5}, Vec3[float64]{-1, 0, 0})
	require.False(t, ok)

	// origin inside the box, tmin is negative
	tmin, tmax, ok = b.RayIntersections(Vec3[float64]{0.5, 0.5, 0.5}, Vec3[float64]{1, 0, 0})
	require.True(t, ok)
	require.Less(t, tmin, 0.0)
	require.InDelta(t, 0.5, tmax, 1e-15)
}

func TestAabb3_ContainsCenter(t *testing.T) {
	b := Aabb3[float64]{-1, 0, 2, 1, 4, 6}

	require.Equal(t, Vec3[float64]{0, 2, 4}, b.Center())
	require.True(t, b.Contains(b.Center()))
	require.True(t, b.Contains(Vec3[float64]{-1, 0, 2}))
	require.False(t, b.Contains(Vec3[float64]{0, 2, 6.1}))
}

func TestAabb2_Intersections(t *testing.T) {
	b := Aabb2[float64]{0, 0, 2, 1}

	tmin, tmax, ok := b.LineIntersections(Vec2[float64]{-1, 0.5}, Vec2[float64]{1, 0})
	require.True(t, ok)
	require.InDelta(t, 1, tmin, 1e-15)
	require.InDelta(t, 3, tmax, 1e-15)

	_, _, ok = b.LineIntersections(Vec2[float64]{-1, 2}, Vec2[float64]{1, 0})
	require.False(t, ok)

	_, _, ok = b.RayIntersections(Vec2[float64]{-1, 0.5}, Vec2[float64]{-1, 0})
	require.False(t, ok)

	require.Equal(t, Vec2[float64]{1, 0.5}, b.Center())
	require.True(t, b.Contains(Vec2[float64]{2, 1}))
	require.False(t, b.Contains(Vec2[float64]{2.5, 0.5}))
}
