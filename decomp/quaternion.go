// Package decomp: quaternion extraction from rotation matrices.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// quaternionFromMatrix converts the rotation in the padded matrix m to a
// unit quaternion, assuming m multiplies column vectors on the left in a
// right-handed system. Translation and perspective entries are ignored.
//
// The algorithm avoids near-zero divides by extracting a large component
// first: when the trace is non-negative, |w| is at least 1/2; otherwise
// the dominant diagonal entry identifies the largest of |x|, |y|, |z|
// (Shoemake). The final division by sqrt(m[w][w]) generalizes the
// conversion to a scaled homogeneous coordinate.
func quaternionFromMatrix(m *linalg.Matrix4) linalg.Quaternion {
	var qu linalg.Quaternion
	var s float64

	tr := m[axisX][axisX] + m[axisY][axisY] + m[axisZ][axisZ]
	if tr >= 0 {
		s = math.Sqrt(tr + m[axisW][axisW])
		qu.W = s * 0.5
		s = 0.5 / s
		qu.X = (m[axisZ][axisY] - m[axisY][axisZ]) * s
		qu.Y = (m[axisX][axisZ] - m[axisZ][axisX]) * s
		qu.Z = (m[axisY][axisX] - m[axisX][axisY]) * s
	} else {
		h := axisX
		if m[axisY][axisY] > m[axisX][axisX] {
			h = axisY
		}
		if m[axisZ][axisZ] > m[h][h] {
			h = axisZ
		}
		switch h {
		case axisX:
			s = math.Sqrt((m[axisX][axisX] - (m[axisY][axisY] + m[axisZ][axisZ])) + m[axisW][axisW])
			qu.X = s * 0.5
			s = 0.5 / s
			qu.Y = (m[axisX][axisY] + m[axisY][axisX]) * s
			qu.Z = (m[axisZ][axisX] + m[axisX][axisZ]) * s
			qu.W = (m[axisZ][axisY] - m[axisY][axisZ]) * s
		case axisY:
			s = math.Sqrt((m[axisY][axisY] - (m[axisZ][axisZ] + m[axisX][axisX])) + m[axisW][axisW])
			qu.Y = s * 0.5
			s = 0.5 / s
			qu.Z = (m[axisY][axisZ] + m[axisZ][axisY]) * s
			qu.X = (m[axisX][axisY] + m[axisY][axisX]) * s
			qu.W = (m[axisX][axisZ] - m[axisZ][axisX]) * s
		case axisZ:
			s = math.Sqrt((m[axisZ][axisZ] - (m[axisX][axisX] + m[axisY][axisY])) + m[axisW][axisW])
			qu.Z = s * 0.5
			s = 0.5 / s
			qu.X = (m[axisZ][axisX] + m[axisX][axisZ]) * s
			qu.Y = (m[axisY][axisZ] + m[axisZ][axisY]) * s
			qu.W = (m[axisY][axisX] - m[axisX][axisY]) * s
		}
	}
	if m[axisW][axisW] != 1 {
		inv := 1.0 / math.Sqrt(m[axisW][axisW])
		qu.X, qu.Y, qu.Z, qu.W = qu.X*inv, qu.Y*inv, qu.Z*inv, qu.W*inv
	}

	return qu
}
