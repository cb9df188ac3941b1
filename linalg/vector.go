package linalg

import "math"

// Vector3 represents a vector in 3-dimensional space.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vector3Zero returns the zero vector (0,0,0).
func Vector3Zero() Vector3 { return Vector3{} }

// Vector3Ones returns the vector (1,1,1).
func Vector3Ones() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

// Add returns the sum of vectors a and b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Negated returns the vector a with all components negated.
func (a Vector3) Negated() Vector3 {
	return Vector3{X: -a.X, Y: -a.Y, Z: -a.Z}
}

// Scaled returns the vector a multiplied by the scalar s.
func (a Vector3) Scaled(s float64) Vector3 {
	return Vector3{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector3) Dot(b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of the vectors a and b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// SquaredLength returns the squared Euclidean length of the vector a.
func (a Vector3) SquaredLength() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Length returns the Euclidean length of the vector a.
func (a Vector3) Length() float64 {
	return math.Sqrt(a.SquaredLength())
}

// IsFinite reports whether all components of a are finite (no NaN, no ±Inf).
func (a Vector3) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y) && isFinite(a.Z)
}

// Equals reports whether a and b agree component-wise within eps.
func (a Vector3) Equals(b Vector3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
