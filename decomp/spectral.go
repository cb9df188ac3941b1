// Package decomp: spectral decomposition of the symmetric factor.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// spectralDecompose diagonalizes the symmetric positive semi-definite
// 3×3 block of s, returning the eigenvalues k and the orthogonal
// eigenvector matrix u, so that s = u·diag(k)·uᵗ. Uses cyclic Jacobi
// sweeps (Golub & Van Loan, Matrix Computations).
//
// The eigenvalues come back in original axis order, NOT sorted by
// magnitude; the snuggle step resolves ordering downstream. Convergence
// is an exact zero of the off-diagonal sum — each rotation zeroes one
// entry exactly, and for 3×3 the remaining entries vanish to underflow
// well within spectralSweeps sweeps.
func spectralDecompose(s *linalg.Matrix4) (linalg.Vector3, linalg.Matrix4) {
	// nxt encodes the cyclic axis permutation X→Y→Z→X.
	nxt := [3]int{axisY, axisZ, axisX}

	diag := [3]float64{s[axisX][axisX], s[axisY][axisY], s[axisZ][axisZ]}
	offd := [3]float64{s[axisY][axisZ], s[axisZ][axisX], s[axisX][axisY]}
	u := linalg.Matrix4Identity()

	for sweep := spectralSweeps; sweep > 0; sweep-- {
		sm := math.Abs(offd[axisX]) + math.Abs(offd[axisY]) + math.Abs(offd[axisZ])
		if sm == 0 {
			break
		}
		for i := axisZ; i >= axisX; i-- {
			p := nxt[i]
			q := nxt[p]
			absOffDi := math.Abs(offd[i])
			g := 100 * absOffDi
			if absOffDi == 0 {
				continue
			}
			h := diag[q] - diag[p]
			absh := math.Abs(h)
			var t float64
			if absh+g == absh {
				// Off-diagonal already negligible next to the gap; the
				// small-angle shortcut avoids overflow in theta².
				t = offd[i] / h
			} else {
				theta := 0.5 * h / offd[i]
				t = 1.0 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
			}
			c := 1.0 / math.Sqrt(t*t+1)
			sn := t * c
			tau := sn / (c + 1)
			ta := t * offd[i]
			offd[i] = 0
			diag[p] -= ta
			diag[q] += ta
			offdq := offd[q]
			offd[q] -= sn * (offd[p] + tau*offd[q])
			offd[p] += sn * (offdq - tau*offd[p])
			for j := axisZ; j >= axisX; j-- {
				a, b := u[j][p], u[j][q]
				u[j][p] -= sn * (b + tau*a)
				u[j][q] += sn * (a - tau*b)
			}
		}
	}

	return linalg.Vector3{X: diag[axisX], Y: diag[axisY], Z: diag[axisZ]}, u
}
