// Package decomp: orthogonal factors of rank-deficient matrices.
// The polar iteration divides by det(M); when the determinant hits zero
// it cannot proceed, and the orthogonal factor is instead constructed
// directly from the lower-rank structure via Householder reflections.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// factorRank1 finds an orthogonal factor q of a matrix m of rank 1 (or
// less). m is reduced in place; the reflections applied to it are
// accumulated into q on the opposite side. A zero m yields the identity.
func factorRank1(m *linalg.Matrix4) linalg.Matrix4 {
	q := linalg.Matrix4Identity()

	// If rank(m) is 1, some column of m is nonzero.
	col := findMaxCol(m)
	if col == noColumn {
		return q // rank 0
	}
	v1 := makeReflector(linalg.Vector3{X: m[0][col], Y: m[1][col], Z: m[2][col]})
	reflectCols(m, v1)
	v2 := makeReflector(linalg.Vector3{X: m[2][0], Y: m[2][1], Z: m[2][2]})
	reflectRows(m, v2)
	if m[2][2] < 0 {
		q[2][2] = -1
	}
	reflectCols(&q, v1)
	reflectRows(&q, v2)

	return q
}

// factorRank2 finds an orthogonal factor q of a matrix m of rank 2 (or
// less), using the adjoint-transpose madjT of m. m is reduced in place.
// When madjT is zero the rank is below 2 and factorRank1 takes over.
func factorRank2(m, madjT *linalg.Matrix4) linalg.Matrix4 {
	// If rank(m) is 2, some column of its adjoint-transpose is nonzero.
	col := findMaxCol(madjT)
	if col == noColumn {
		return factorRank1(m) // rank < 2
	}
	v1 := makeReflector(linalg.Vector3{X: madjT[0][col], Y: madjT[1][col], Z: madjT[2][col]})
	reflectCols(m, v1)
	v2 := makeReflector(rowCross(m, axisX, axisY))
	reflectRows(m, v2)

	// The remaining freedom is a rotation or reflection of the top-left
	// 2×2 block [w x; y z]; solve it in closed form.
	w, x, y, z := m[0][0], m[0][1], m[1][0], m[1][1]
	var c, s float64
	q := linalg.Matrix4Identity()
	if det2(w, x, y, z) > 0 {
		c, s = z+w, y-x
		d := math.Sqrt(c*c + s*s)
		c, s = c/d, s/d
		q[0][0], q[1][1] = c, c
		q[0][1], q[1][0] = -s, s
	} else {
		c, s = z-w, y+x
		d := math.Sqrt(c*c + s*s)
		c, s = c/d, s/d
		q[0][0], q[1][1] = -c, c
		q[0][1], q[1][0] = s, s
	}
	reflectCols(&q, v1)
	reflectRows(&q, v2)

	return q
}
