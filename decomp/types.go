// Package decomp: public result types.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// Axis indices shared by the kernels; axisW doubles as the homogeneous
// row/column of the padded working matrix.
const (
	axisX = iota
	axisY
	axisZ
	axisW
)

// Scaling describes an anisotropic scaling as scale factors S applied
// along the axes oriented by the unit quaternion Q; the implied symmetric
// tensor is Q·diag(S)·Qᵗ.
type Scaling struct {
	// S holds the non-negative scale factors, one per principal axis.
	S linalg.Vector3

	// Q orients the principal scale axes. Identity when the scaling is
	// isotropic.
	Q linalg.Quaternion
}

// Matrix returns the symmetric scaling tensor Q·diag(S)·Qᵗ as an affine
// transformation with zero translation.
func (s Scaling) Matrix() linalg.AffineTransformation {
	return linalg.AffineScaling(s.S, s.Q)
}

// IsIdentity reports whether s is the identity scaling within eps.
func (s Scaling) IsIdentity(eps float64) bool {
	return s.S.Equals(linalg.Vector3Ones(), eps) && s.Q.IsIdentity(eps)
}

// Decomposition is the unique factorization M = T·F·R·S of an affine
// transformation: Translation, reflection Sign (F = sign·identity),
// Rotation R and Scaling S = Q·diag(S)·Qᵗ.
//
// Invariants on every successful Decompose result: Rotation and Scaling.Q
// are unit quaternions; Scaling.S components are eigenvalues of a
// positive semi-definite matrix and hence non-negative up to rounding;
// Sign is exactly +1 or -1.
type Decomposition struct {
	// Translation is the last column of the input matrix.
	Translation linalg.Vector3

	// Rotation is the proper-rotation part, a unit quaternion.
	Rotation linalg.Quaternion

	// Scaling is the anisotropic scale with its own orientation.
	Scaling Scaling

	// Sign is the sign of the determinant of the linear part: -1 when
	// the transformation contains a reflection, +1 otherwise.
	Sign float64
}

// Matrix recomposes the original transformation as T·F·R·S. Up to
// floating-point error, Decompose followed by Matrix reproduces the
// input.
func (d Decomposition) Matrix() linalg.AffineTransformation {
	f := linalg.AffineFromParts(
		linalg.Matrix3Diagonal(linalg.Vector3{X: d.Sign, Y: d.Sign, Z: d.Sign}),
		linalg.Vector3Zero(),
	)
	t := linalg.AffineTranslation(d.Translation)
	r := linalg.AffineRotation(d.Rotation)

	return t.Mul(f).Mul(r).Mul(d.Scaling.Matrix())
}

// vectorNearOnes reports whether all components of v are within eps of 1.
func vectorNearOnes(v linalg.Vector3, eps float64) bool {
	return math.Abs(v.X-1) <= eps && math.Abs(v.Y-1) <= eps && math.Abs(v.Z-1) <= eps
}
