package gm3

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func eigenResidual[S Scalar](sm SymMat3[S], u Mat3[S], l Vec3[S]) S {
	return u.Mul(DiagonalMat3(l)).Mul(u.Transpose()).Sub(sm.Mat3()).SquaredNorm()
}

func orthogonalityResidual[S Scalar](u Mat3[S]) S {
	return u.Transpose().Mul(u).Sub(IdentityMat3[S]()).SquaredNorm()
}

func TestEigenDecomp(t *testing.T) {
	rng := rand.New(rand.NewPCG(0, 0))

	for range 1000 {
		sm := RandomSymMat3(rng, -50.0, 50.0)

		u, l, ok := EigenDecomp(sm, 100)
		require.True(t, ok)
		require.Less(t, orthogonalityResidual(u), 1e-18)
		require.Less(t, eigenResidual(sm, u, l), 1e-18)
	}
}

func TestEigenDecomp_FewIterations(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))

	for range 1000 {
		sm := RandomSymMat3(rng, 0.0, 50.0)

		u, _, ok := EigenDecomp(sm, 20)
		require.True(t, ok)
		require.Less(t, orthogonalityResidual(u), 1e-18)
	}
}

func TestEigenDecomp_Degenerate(t *testing.T) {
	_, _, ok := EigenDecomp(SymMat3[float64]{}, 20)
	require.False(t, ok)

	tiny := SymMat3[float64]{1e-12, 1e-12, 1e-12, 1e-12, 1e-12, 1e-12}
	_, _, ok = EigenDecomp(tiny, 20)
	require.False(t, ok)

	_, _, ok = tiny.Eigen(Analytic)
	require.False(t, ok)
}

func TestEigen_Analytic(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))

	for range 1000 {
		sm := RandomSymMat3(rng, -1.0, 1.0)

		u, l, ok := sm.Eigen(Analytic)
		require.True(t, ok)
		require.Less(t, orthogonalityResidual(u), 1e-20)
		require.Less(t, eigenResidual(sm, u, l), 1e-16)
	}
}

func TestEigen_AnalyticDiagonal(t *testing.T) {
	sm := SymFromMat3(DiagonalMat3(Vec3[float64]{3, 1, 2}))

	u, l, ok := sm.Eigen(Analytic)
	require.True(t, ok)
	require.Equal(t, IdentityMat3[float64](), u)
	require.InDelta(t, 3, l[0], 1e-15)
	require.InDelta(t, 1, l[1], 1e-15)
	require.InDelta(t, 2, l[2], 1e-15)
}

func TestEigen_ModesAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))

	for range 200 {
		sm := RandomSymMat3(rng, -1.0, 1.0)

		uj, lj, ok := sm.Eigen(Jacobi(100))
		require.True(t, ok)
		ua, la, ok := sm.Eigen(Analytic)
		require.True(t, ok)

		// both modes diagonalize the same matrix, the eigenvalue order may
		// differ
		require.Less(t, eigenResidual(sm, uj, lj), 1e-16)
		require.Less(t, eigenResidual(sm, ua, la), 1e-16)

		sj := []float64{lj[0], lj[1], lj[2]}
		sa := []float64{la[0], la[1], la[2]}
		slices.Sort(sj)
		slices.Sort(sa)
		for i := range sj {
			require.InDelta(t, sj[i], sa[i], 1e-8)
		}
	}
}

func TestEigenDecomp_Float32(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))

	for range 100 {
		sm := RandomSymMat3[float32](rng, -1.0, 1.0)

		u, l, ok := EigenDecomp(sm, 50)
		require.True(t, ok)
		require.Less(t, float64(orthogonalityResidual(u)), 1e-10)
		require.Less(t, float64(eigenResidual(sm, u, l)), 1e-8)
	}
}
