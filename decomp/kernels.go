// Package decomp: small linear-algebra kernels shared by the polar and
// rank-deficient solvers. All helpers operate on the 3×3 block of a
// padded Matrix4 and trust their callers; bounds are fixed by
// construction.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// det2 returns the determinant of the 2×2 matrix [a b; c d].
func det2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// rowDot returns the dot product of the first three entries of rows
// a[i] and b[j].
func rowDot(a *linalg.Matrix4, i int, b *linalg.Matrix4, j int) float64 {
	return a[i][0]*b[j][0] + a[i][1]*b[j][1] + a[i][2]*b[j][2]
}

// rowCross returns the cross product of rows m[i] and m[j] (first three
// entries).
func rowCross(m *linalg.Matrix4, i, j int) linalg.Vector3 {
	return linalg.Vector3{
		X: m[i][1]*m[j][2] - m[i][2]*m[j][1],
		Y: m[i][2]*m[j][0] - m[i][0]*m[j][2],
		Z: m[i][0]*m[j][1] - m[i][1]*m[j][0],
	}
}

// adjointTranspose returns the adjoint-transpose of the 3×3 block of m:
// each row is the cross product of the other two rows in cyclic order.
// Equals det(m)·m⁻ᵗ when m is invertible and stays well-defined when it
// is singular.
func adjointTranspose(m *linalg.Matrix4) linalg.Matrix4 {
	var adj linalg.Matrix4
	setRow(&adj, axisX, rowCross(m, axisY, axisZ))
	setRow(&adj, axisY, rowCross(m, axisZ, axisX))
	setRow(&adj, axisZ, rowCross(m, axisX, axisY))

	return adj
}

// setRow stores v into the first three entries of row i.
func setRow(m *linalg.Matrix4, i int, v linalg.Vector3) {
	m[i][0], m[i][1], m[i][2] = v.X, v.Y, v.Z
}

// matNorm returns the infinity norm (max abs row sum) of the 3×3 block,
// or the one norm (max abs column sum) when tpose is set.
func matNorm(m *linalg.Matrix4, tpose bool) float64 {
	var sum, max float64
	for i := 0; i < 3; i++ {
		if tpose {
			sum = math.Abs(m[0][i]) + math.Abs(m[1][i]) + math.Abs(m[2][i])
		} else {
			sum = math.Abs(m[i][0]) + math.Abs(m[i][1]) + math.Abs(m[i][2])
		}
		if max < sum {
			max = sum
		}
	}

	return max
}

func normInf(m *linalg.Matrix4) float64 { return matNorm(m, false) }
func normOne(m *linalg.Matrix4) float64 { return matNorm(m, true) }

// noColumn is the findMaxCol sentinel for an all-zero block.
const noColumn = -1

// findMaxCol returns the index of the column of the 3×3 block holding
// the entry of largest magnitude, or noColumn when the block is zero.
// Scan order is row-major; the first strict improvement wins.
func findMaxCol(m *linalg.Matrix4) int {
	var abs, max float64
	col := noColumn
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			abs = math.Abs(m[i][j])
			if abs > max {
				max = abs
				col = j
			}
		}
	}

	return col
}

// makeReflector builds the Householder vector u whose reflection
// I - u·uᵗ zeroes all components of v but the last. The sign of |v| is
// chosen to match v.Z (positive when v.Z is zero) to avoid cancellation.
func makeReflector(v linalg.Vector3) linalg.Vector3 {
	s := v.Length()
	u := v
	if v.Z < 0 {
		u.Z = v.Z - s
	} else {
		u.Z = v.Z + s
	}
	s = math.Sqrt(2.0 / u.SquaredLength())

	return u.Scaled(s)
}

// reflectCols applies the Householder reflection represented by u to the
// column vectors of the 3×3 block of m, in place.
func reflectCols(m *linalg.Matrix4, u linalg.Vector3) {
	uv := [3]float64{u.X, u.Y, u.Z}
	for i := 0; i < 3; i++ {
		s := uv[0]*m[0][i] + uv[1]*m[1][i] + uv[2]*m[2][i]
		for j := 0; j < 3; j++ {
			m[j][i] -= uv[j] * s
		}
	}
}

// reflectRows applies the Householder reflection represented by u to the
// row vectors of the 3×3 block of m, in place.
func reflectRows(m *linalg.Matrix4, u linalg.Vector3) {
	uv := [3]float64{u.X, u.Y, u.Z}
	for i := 0; i < 3; i++ {
		s := uv[0]*m[i][0] + uv[1]*m[i][1] + uv[2]*m[i][2]
		for j := 0; j < 3; j++ {
			m[i][j] -= uv[j] * s
		}
	}
}

// mulBlock3 returns the product of the 3×3 blocks of a and b, padded.
func mulBlock3(a, b *linalg.Matrix4) linalg.Matrix4 {
	var p linalg.Matrix4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	p.Pad()

	return p
}

// negateBlock3 negates the 3×3 block of m in place.
func negateBlock3(m *linalg.Matrix4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = -m[i][j]
		}
	}
}
