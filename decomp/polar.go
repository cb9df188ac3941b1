// Package decomp: polar decomposition of the linear part.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// polarDecompose factors the 3×3 block of m as m = q·s with q orthogonal
// and s symmetric positive semi-definite, returning det(m) as well.
//
// Algorithm Outline (Higham & Schreiber, "Fast Polar Decomposition of an
// Arbitrary Matrix", Cornell TR 88-942):
//  1. Iterate mk ← g1·mk + g2·adjᵗ(mk) starting from mᵗ, where g1, g2
//     are scaled by gamma, a norm/determinant balance factor. The fixed
//     point of the iteration is the orthogonal factor's transpose.
//  2. A zero determinant ends the iteration through the rank-2 fallback;
//     singular input is a designed path, not an error.
//  3. Converged when the one-norm of the step residual drops below
//     eps times the one-norm of the iterate.
//  4. q = mkᵗ; s = mk·m, symmetrized to cancel rounding drift.
//
// Well-conditioned input converges in under 10 iterations; maxIter only
// guards against pathological aspect ratios, and exceeding it reports
// ErrNoConvergence rather than returning a poor approximation.
func polarDecompose(m *linalg.Matrix4, eps float64, maxIter int) (q, s linalg.Matrix4, det float64, err error) {
	var (
		madjT                linalg.Matrix4
		mOne, mInf           float64
		madjTOne, madjTInf   float64
		eOne, gamma, g1, g2  float64
		converged, truncated bool
	)

	mk := m.Transpose3()
	mOne = normOne(&mk)
	mInf = normInf(&mk)

	for iter := 0; iter < maxIter; iter++ {
		madjT = adjointTranspose(&mk)
		det = rowDot(&mk, axisX, &madjT, axisX)
		if det == 0 {
			// Singular: construct the orthogonal factor directly from
			// the lower-rank structure.
			mk = factorRank2(&mk, &madjT)
			truncated = true
			break
		}
		madjTOne = normOne(&madjT)
		madjTInf = normInf(&madjT)
		gamma = math.Sqrt(math.Sqrt((madjTOne*madjTInf)/(mOne*mInf)) / math.Abs(det))
		g1 = gamma * 0.5
		g2 = 0.5 / (gamma * det)

		ek := mk
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				mk[i][j] = g1*mk[i][j] + g2*madjT[i][j]
				ek[i][j] -= mk[i][j]
			}
		}

		eOne = normOne(&ek)
		mOne = normOne(&mk)
		mInf = normInf(&mk)
		if eOne <= mOne*eps {
			converged = true
			break
		}
	}
	if !converged && !truncated {
		return q, s, det, ErrNoConvergence
	}

	q = mk.Transpose3()
	q.Pad()
	s = mulBlock3(&mk, m)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			avg := 0.5 * (s[i][j] + s[j][i])
			s[i][j], s[j][i] = avg, avg
		}
	}

	return q, s, det, nil
}
