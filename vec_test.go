package gm3

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3_Ops(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{-2, 1, 4}

	require.Equal(t, Vec3[float64]{-1, 3, 7}, a.Add(b))
	require.Equal(t, Vec3[float64]{3, 1, -1}, a.Sub(b))
	require.Equal(t, Vec3[float64]{2, 4, 6}, a.Mul(2))
	require.InDelta(t, 12, a.Dot(b), 1e-15)
	require.InDelta(t, math.Sqrt(14), a.Length(), 1e-15)
	require.InDelta(t, 1, a.Normalized().Length(), 1e-15)
	require.Equal(t, Vec3[float64]{0, 4, 3}, Axpy3(2.0, Vec3[float64]{1, 1, 0}, Vec3[float64]{-2, 2, 3}))

	c := a.Cross(b)
	require.InDelta(t, 0, c.Dot(a), 1e-15)
	require.InDelta(t, 0, c.Dot(b), 1e-15)
	require.Equal(t, Vec3[float64]{5, -10, 5}, c)
}

func TestVec3_OrthonormalBasis(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))

	check := func(v Vec3[float64]) {
		x, y := v.OrthonormalBasis()
		require.InDelta(t, 1, x.Length(), 1e-10)
		require.InDelta(t, 1, y.Length(), 1e-10)
		require.InDelta(t, 0, x.Dot(v), 1e-10)
		require.InDelta(t, 0, y.Dot(v), 1e-10)
		require.InDelta(t, 0, x.Dot(y), 1e-10)

		// right handed
		require.Less(t, x.Cross(y).Sub(v).Length(), 1e-10)
	}

	for range 1000 {
		v := RandomVec3[float64](rng).Sub(Vec3[float64]{0.5, 0.5, 0.5})
		if v.Length() < 0.1 {
			continue
		}
		check(v.Normalized())
	}

	// the fallback kicks in when v is parallel to the y axis
	check(Vec3[float64]{0, 1, 0})
	check(Vec3[float64]{0, -1, 0})
}

func TestVec2_Ops(t *testing.T) {
	a := Vec2[float64]{3, 4}
	b := Vec2[float64]{-1, 2}

	require.Equal(t, Vec2[float64]{2, 6}, a.Add(b))
	require.Equal(t, Vec2[float64]{4, 2}, a.Sub(b))
	require.InDelta(t, 5, a.Dot(b), 1e-15)
	require.InDelta(t, 10, a.Cross(b), 1e-15)
	require.InDelta(t, 5, a.Length(), 1e-15)

	r := Vec2[float64]{1, 0}.Rotated(math.Pi / 2)
	require.InDelta(t, 0, r[0], 1e-15)
	require.InDelta(t, 1, r[1], 1e-15)

	o := a.Orthogonalize(b)
	require.InDelta(t, 0, a.Dot(o), 1e-14)
}

func TestVec2_AngleTo(t *testing.T) {
	a := Vec2[float64]{math.Sqrt(3), 1}
	b := Vec2[float64]{-1, 1}
	require.InDelta(t, 7*math.Pi/12, a.AngleTo(b), 1e-12)
	require.InDelta(t, -7*math.Pi/12, b.AngleTo(a), 1e-12)
}

func TestVec2_AngleToGrad(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))

	const eps = 1e-5
	for range 100 {
		a := Vec2[float64]{RandomIn(rng, -1.0, 1.0), RandomIn(rng, -1.0, 1.0)}
		b := Vec2[float64]{RandomIn(rng, -1.0, 1.0), RandomIn(rng, -1.0, 1.0)}
		if a.Length() < 0.1 || b.Length() < 0.1 {
			continue
		}

		// stay away from the branch cut at pi
		angle, da, db := a.AngleToGrad(b)
		if math.Abs(angle) > 3.0 {
			continue
		}
		require.InDelta(t, a.AngleTo(b), angle, 1e-15)

		for i := range 2 {
			a1 := a
			a1[i] += eps
			require.InDelta(t, (a1.AngleTo(b)-angle)/eps, da[i], 1e-4)

			b1 := b
			b1[i] += eps
			require.InDelta(t, (a.AngleTo(b1)-angle)/eps, db[i], 1e-4)
		}
	}
}
