// SPDX-License-Identifier: MIT
// Package decomp_test contains shared test helpers.
//
// Purpose:
//   - Deterministic fixtures: rotations, scalings and random affine maps
//     built from a seeded source.
//   - An independent reconstruction oracle backed by gonum/mat, so the
//     round-trip assertions do not trust the code under test for the
//     reference products.

package decomp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/affine3/linalg"
)

// Seed for every randomized test in the package; fixed for reproducibility.
const testSeed = 0x1f2e3d4c

// quatAxisAngle builds the unit quaternion rotating by angle radians
// about the unit axis.
func quatAxisAngle(axis linalg.Vector3, angle float64) linalg.Quaternion {
	s := math.Sin(angle / 2)

	return linalg.Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// randomUnitQuaternion draws a uniformly distributed rotation by
// normalizing a 4-vector of standard normals.
func randomUnitQuaternion(rng *rand.Rand) linalg.Quaternion {
	q := linalg.Quaternion{
		X: rng.NormFloat64(),
		Y: rng.NormFloat64(),
		Z: rng.NormFloat64(),
		W: rng.NormFloat64(),
	}

	return q.Normalized()
}

// randomAffine builds a well-conditioned random transformation
// R·diag(s)·translation with scales in [0.5, 3] and, when mirror is set,
// one axis flipped to force a negative determinant.
func randomAffine(rng *rand.Rand, mirror bool) linalg.AffineTransformation {
	r := randomUnitQuaternion(rng).RotationMatrix()
	s := linalg.Vector3{
		X: 0.5 + 2.5*rng.Float64(),
		Y: 0.5 + 2.5*rng.Float64(),
		Z: 0.5 + 2.5*rng.Float64(),
	}
	if mirror {
		s.X = -s.X
	}
	tr := linalg.Vector3{
		X: 10 * (rng.Float64() - 0.5),
		Y: 10 * (rng.Float64() - 0.5),
		Z: 10 * (rng.Float64() - 0.5),
	}

	return linalg.AffineFromParts(r.Mul(linalg.Matrix3Diagonal(s)), tr)
}

// toDense promotes t to a homogeneous 4×4 gonum matrix.
func toDense(t linalg.AffineTransformation) *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		t[0][0], t[0][1], t[0][2], t[0][3],
		t[1][0], t[1][1], t[1][2], t[1][3],
		t[2][0], t[2][1], t[2][2], t[2][3],
		0, 0, 0, 1,
	})
}

// oracleCompose multiplies the given transformations left to right with
// gonum/mat, independent of linalg's own composition code.
func oracleCompose(parts ...linalg.AffineTransformation) *mat.Dense {
	acc := mat.NewDense(4, 4, []float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
	for _, p := range parts {
		next := new(mat.Dense)
		next.Mul(acc, toDense(p))
		acc = next
	}

	return acc
}

// requireAffineEqualsDense asserts that t matches the upper 3×4 block of
// the oracle matrix d within tol.
func requireAffineEqualsDense(t *testing.T, d *mat.Dense, got linalg.AffineTransformation, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.True(t, scalar.EqualWithinAbs(d.At(i, j), got[i][j], tol),
				"entry (%d,%d): oracle %v, got %v", i, j, d.At(i, j), got[i][j])
		}
	}
}

// requireAffineEquals asserts entry-wise agreement of two transformations.
func requireAffineEquals(t *testing.T, want, got linalg.AffineTransformation, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			require.True(t, scalar.EqualWithinAbs(want[i][j], got[i][j], tol),
				"entry (%d,%d): want %v, got %v", i, j, want[i][j], got[i][j])
		}
	}
}

// requireOrthonormal asserts mᵗ·m = I within tol.
func requireOrthonormal(t *testing.T, m linalg.Matrix3, tol float64) {
	t.Helper()
	require.True(t, m.Transpose().Mul(m).Equals(linalg.Matrix3Identity(), tol),
		"matrix is not orthonormal: %v", m)
}

// requireUnitQuaternion asserts |q|² = 1 within tol.
func requireUnitQuaternion(t *testing.T, q linalg.Quaternion, tol float64) {
	t.Helper()
	require.InDelta(t, 1.0, q.SquaredLength(), tol, "quaternion not unit length: %v", q)
}

// sameRotation reports whether two unit quaternions encode the same
// rotation, accounting for the q/-q double cover.
func sameRotation(a, b linalg.Quaternion, tol float64) bool {
	return math.Abs(math.Abs(a.Dot(b))-1) <= tol
}
