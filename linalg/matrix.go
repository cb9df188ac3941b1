package linalg

import "math"

// Matrix3 is a row-major 3×3 matrix of float64 values.
type Matrix3 [3][3]float64

// Matrix3Identity returns the 3×3 identity matrix.
func Matrix3Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Matrix3Diagonal returns the diagonal matrix diag(d.X, d.Y, d.Z).
func Matrix3Diagonal(d Vector3) Matrix3 {
	return Matrix3{{d.X, 0, 0}, {0, d.Y, 0}, {0, 0, d.Z}}
}

// Row returns row i of m as a vector.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// Col returns column j of m as a vector.
func (m Matrix3) Col(j int) Vector3 {
	return Vector3{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Mul returns the matrix product m·n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var p Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return p
}

// MulVector returns the product m·v of m with the column vector v.
func (m Matrix3) MulVector(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Determinant returns det(m), by cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Equals reports whether m and n agree entry-wise within eps.
func (m Matrix3) Equals(n Matrix3, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-n[i][j]) > eps {
				return false
			}
		}
	}

	return true
}

// Matrix4 is a row-major 4×4 matrix. The decomposition pipeline uses it as
// a 3×3 working matrix embedded in an identity border, so that row/column
// operations and the quaternion conversion can treat all sizes uniformly.
type Matrix4 [4][4]float64

// Matrix4Identity returns the 4×4 identity matrix.
func Matrix4Identity() Matrix4 {
	return Matrix4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Matrix4FromMatrix3 embeds m in a 4×4 identity border.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Matrix4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// Matrix3 returns the upper-left 3×3 block of m.
func (m Matrix4) Matrix3() Matrix3 {
	return Matrix3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Transpose3 returns a copy of m with its upper-left 3×3 block transposed;
// the fourth row and column are carried over unchanged.
func (m Matrix4) Transpose3() Matrix4 {
	t := m
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}

	return t
}

// Pad overwrites the fourth row and column of m with (0,0,0,1).
func (m *Matrix4) Pad() {
	m[3][0], m[3][1], m[3][2] = 0, 0, 0
	m[0][3], m[1][3], m[2][3] = 0, 0, 0
	m[3][3] = 1
}
