package linalg

import "math"

// Quaternion represents a rotation (or, more generally, an element of the
// quaternion algebra) with components stored in x,y,z,w order. The scalar
// part is W; the vector part is (X,Y,Z). Unit quaternions q and -q encode
// the same rotation.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

// QuaternionIdentity returns the identity quaternion (0,0,0,1).
func QuaternionIdentity() Quaternion { return Quaternion{W: 1} }

// Mul returns the Hamilton product a·b. For unit quaternions this composes
// the rotations: applying a.Mul(b) equals applying b first, then a.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + b.W*a.X + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y + b.W*a.Y + a.Z*b.X - a.X*b.Z,
		Z: a.W*b.Z + b.W*a.Z + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Dot returns the 4-component dot product of a and b.
func (a Quaternion) Dot(b Quaternion) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// SquaredLength returns the squared norm of a.
func (a Quaternion) SquaredLength() float64 { return a.Dot(a) }

// Inverse returns the multiplicative inverse of a. For unit quaternions
// this is simply the conjugate.
func (a Quaternion) Inverse() Quaternion {
	n := a.SquaredLength()
	return Quaternion{X: -a.X / n, Y: -a.Y / n, Z: -a.Z / n, W: a.W / n}
}

// Normalized returns a scaled to unit length. The receiver must be nonzero.
func (a Quaternion) Normalized() Quaternion {
	s := 1.0 / math.Sqrt(a.SquaredLength())
	return Quaternion{X: a.X * s, Y: a.Y * s, Z: a.Z * s, W: a.W * s}
}

// IsIdentity reports whether a equals the identity quaternion within eps,
// accounting for the q/-q double cover.
func (a Quaternion) IsIdentity(eps float64) bool {
	return math.Abs(a.X) <= eps && math.Abs(a.Y) <= eps &&
		math.Abs(a.Z) <= eps && math.Abs(math.Abs(a.W)-1) <= eps
}

// RotationMatrix returns the 3×3 rotation matrix of the unit quaternion a,
// in the column-vector convention (vNew = M · vOld).
func (a Quaternion) RotationMatrix() Matrix3 {
	xx, yy, zz := a.X*a.X, a.Y*a.Y, a.Z*a.Z
	xy, xz, yz := a.X*a.Y, a.X*a.Z, a.Y*a.Z
	wx, wy, wz := a.W*a.X, a.W*a.Y, a.W*a.Z

	return Matrix3{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}
