package linalg

import "math"

// AffineTransformation is a row-major 3×4 matrix describing an affine map
// of 3-space: the left 3×3 block is the linear part, the fourth column is
// the translation. The implicit bottom row is (0,0,0,1).
type AffineTransformation [3][4]float64

// AffineIdentity returns the identity transformation.
func AffineIdentity() AffineTransformation {
	return AffineTransformation{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
}

// AffineFromParts assembles a transformation from a linear part and a
// translation column.
func AffineFromParts(linear Matrix3, translation Vector3) AffineTransformation {
	return AffineTransformation{
		{linear[0][0], linear[0][1], linear[0][2], translation.X},
		{linear[1][0], linear[1][1], linear[1][2], translation.Y},
		{linear[2][0], linear[2][1], linear[2][2], translation.Z},
	}
}

// AffineTranslation returns the pure translation by v.
func AffineTranslation(v Vector3) AffineTransformation {
	return AffineFromParts(Matrix3Identity(), v)
}

// AffineRotation returns the pure rotation described by the unit
// quaternion q.
func AffineRotation(q Quaternion) AffineTransformation {
	return AffineFromParts(q.RotationMatrix(), Vector3Zero())
}

// AffineScaling returns the symmetric scaling Q·diag(s)·Qᵗ, i.e. a
// non-uniform scale by s along the axes oriented by the unit quaternion q.
func AffineScaling(s Vector3, q Quaternion) AffineTransformation {
	u := q.RotationMatrix()

	return AffineFromParts(u.Mul(Matrix3Diagonal(s)).Mul(u.Transpose()), Vector3Zero())
}

// Linear returns the 3×3 linear part of t.
func (t AffineTransformation) Linear() Matrix3 {
	return Matrix3{
		{t[0][0], t[0][1], t[0][2]},
		{t[1][0], t[1][1], t[1][2]},
		{t[2][0], t[2][1], t[2][2]},
	}
}

// Translation returns the translation column of t.
func (t AffineTransformation) Translation() Vector3 {
	return Vector3{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

// Mul returns the composition t·u, the transformation that applies u
// first and then t.
func (t AffineTransformation) Mul(u AffineTransformation) AffineTransformation {
	var p AffineTransformation
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			p[i][j] = t[i][0]*u[0][j] + t[i][1]*u[1][j] + t[i][2]*u[2][j]
		}
		p[i][3] += t[i][3] // implicit bottom row (0,0,0,1) of u
	}

	return p
}

// MulPoint applies t to the point v (linear part plus translation).
func (t AffineTransformation) MulPoint(v Vector3) Vector3 {
	return t.Linear().MulVector(v).Add(t.Translation())
}

// IsFinite reports whether every entry of t is finite (no NaN, no ±Inf).
func (t AffineTransformation) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if !isFinite(t[i][j]) {
				return false
			}
		}
	}

	return true
}

// Equals reports whether t and u agree entry-wise within eps.
func (t AffineTransformation) Equals(u AffineTransformation, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(t[i][j]-u[i][j]) > eps {
				return false
			}
		}
	}

	return true
}
