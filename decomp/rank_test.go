package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine3/decomp"
	"github.com/katalvlaran/affine3/linalg"
)

// outer returns the rank-1 matrix a·bᵗ.
func outer(a, b linalg.Vector3) linalg.Matrix3 {
	return linalg.Matrix3{
		{a.X * b.X, a.X * b.Y, a.X * b.Z},
		{a.Y * b.X, a.Y * b.Y, a.Y * b.Z},
		{a.Z * b.X, a.Z * b.Y, a.Z * b.Z},
	}
}

func TestFactorRank1_ZeroMatrixYieldsIdentity(t *testing.T) {
	m := linalg.Matrix4FromMatrix3(linalg.Matrix3{})
	q := decomp.ExportedFactorRank1(&m)
	require.True(t, q.Matrix3().Equals(linalg.Matrix3Identity(), 0), "rank 0 factor is the identity")
}

func TestFactorRank1_ProducesOrthogonalFactor(t *testing.T) {
	r1 := outer(linalg.Vector3{X: 1, Y: -2, Z: 0.5}, linalg.Vector3{X: 3, Y: 1, Z: -1})
	m := linalg.Matrix4FromMatrix3(r1)
	q := decomp.ExportedFactorRank1(&m)

	requireOrthonormal(t, q.Matrix3(), 1e-12)
	assert.InDelta(t, 1, math.Abs(q.Matrix3().Determinant()), 1e-12, "det(Q) = ±1")
}

func TestFactorRank2_ProducesOrthogonalFactor(t *testing.T) {
	// Rank 2: two independent rows, third exactly zero.
	r2 := linalg.Matrix3{
		{1, 2, 0},
		{-1, 1, 3},
		{0, 0, 0},
	}
	m := linalg.Matrix4FromMatrix3(r2)
	madjT := decomp.ExportedAdjointTranspose(&m)
	q := decomp.ExportedFactorRank2(&m, &madjT)

	requireOrthonormal(t, q.Matrix3(), 1e-12)
	assert.InDelta(t, 1, math.Abs(q.Matrix3().Determinant()), 1e-12, "det(Q) = ±1")
}

// TestFactorRank2_DegradesToRank1 hands factorRank2 a rank-1 matrix,
// whose adjoint-transpose vanishes; it must fall through to the rank-1
// construction and still produce an orthogonal factor.
func TestFactorRank2_DegradesToRank1(t *testing.T) {
	r1 := outer(linalg.Vector3{X: 2, Y: 0, Z: -1}, linalg.Vector3{X: 0, Y: 1, Z: 1})
	m := linalg.Matrix4FromMatrix3(r1)
	madjT := decomp.ExportedAdjointTranspose(&m)
	require.Equal(t, decomp.NoColumn, decomp.ExportedFindMaxCol(&madjT),
		"adjoint-transpose of a rank-1 matrix must vanish")

	q := decomp.ExportedFactorRank2(&m, &madjT)
	requireOrthonormal(t, q.Matrix3(), 1e-12)
}
