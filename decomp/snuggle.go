// Package decomp: canonicalization of the spectral eigenframe.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// sqrtHalf is 1/sqrt(2), the magnitude of a 90-degree rotation component.
const sqrtHalf = 0.7071067811865475244

// Canonical quaternions of the degenerate branch: axis swaps into the
// z-frame and the six candidate representatives of the axis-permutation
// group. Components are in (x,y,z,w) order. Go has no struct constants,
// so these are vars; they are read-only and must never be reassigned or
// mutated — snuggle copies them by value.
var (
	quatXToZ = linalg.Quaternion{X: 0, Y: sqrtHalf, Z: 0, W: sqrtHalf}
	quatYToZ = linalg.Quaternion{X: sqrtHalf, Y: 0, Z: 0, W: sqrtHalf}
	quatPPMM = linalg.Quaternion{X: 0.5, Y: 0.5, Z: -0.5, W: -0.5}
	quatPPPP = linalg.Quaternion{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5}
	quatMPMM = linalg.Quaternion{X: -0.5, Y: 0.5, Z: -0.5, W: -0.5}
	quatPPPM = linalg.Quaternion{X: 0.5, Y: 0.5, Z: 0.5, W: -0.5}
	quat0001 = linalg.Quaternion{X: 0, Y: 0, Z: 0, W: 1}
	quat1000 = linalg.Quaternion{X: 1, Y: 0, Z: 0, W: 0}
)

// cycleScales rotates the three scale entries: forward (a1,a2,a0) when
// fwd is set, backward (a2,a0,a1) otherwise.
func cycleScales(a *[3]float64, fwd bool) {
	if fwd {
		a[0], a[1], a[2] = a[1], a[2], a[0]
	} else {
		a[0], a[1], a[2] = a[2], a[0], a[1]
	}
}

// signed returns -v when neg is set, v otherwise.
func signed(neg bool, v float64) float64 {
	if neg {
		return -v
	}

	return v
}

// snuggle finds a unit quaternion p which permutes the coordinate axes
// and turns freely in the plane of duplicate scale factors, such that
// q·p has the largest possible w component — the smallest possible
// rotation angle. It returns p together with k's components permuted to
// go with q·p instead of q (Shoemake & Duff, Graphics Interface 1992,
// pp. 262-263).
//
// The spectral decomposition is unique only up to this freedom: with two
// or more equal scale factors the eigenvectors may rotate within the
// degenerate eigenspace, and even distinct factors leave a discrete
// axis-permutation/sign choice. Consumers interpolating decompositions
// need the stable representative this selection provides.
//
// Branch selection compares k's components with exact float equality on
// purpose: equal scale factors emerge bit-identical from the same Jacobi
// computation, not coincidentally close. Near-equal values from noisy
// input take the generic branch, as in the reference algorithm.
func snuggle(q linalg.Quaternion, k linalg.Vector3) (linalg.Quaternion, linalg.Vector3) {
	ka := [3]float64{k.X, k.Y, k.Z}
	turn := -1
	switch {
	case ka[axisX] == ka[axisY] && ka[axisX] == ka[axisZ]:
		turn = axisW // fully isotropic
	case ka[axisX] == ka[axisY]:
		turn = axisZ
	case ka[axisX] == ka[axisZ]:
		turn = axisY
	case ka[axisY] == ka[axisZ]:
		turn = axisX
	}

	var p linalg.Quaternion
	if turn >= 0 {
		// Degenerate case: at least two scale factors coincide. Rotate
		// the odd axis into z, pick the closest of the six canonical
		// representatives, then refine the free in-plane turn.
		var qtoz linalg.Quaternion
		switch turn {
		case axisX:
			qtoz = quatXToZ
			q = q.Mul(qtoz)
			ka[axisX], ka[axisZ] = ka[axisZ], ka[axisX]
		case axisY:
			qtoz = quatYToZ
			q = q.Mul(qtoz)
			ka[axisY], ka[axisZ] = ka[axisZ], ka[axisY]
		case axisZ:
			qtoz = quat0001
		default:
			// All three equal: any orientation is a valid eigenframe,
			// so q·p collapses to the identity.
			return q.Inverse(), linalg.Vector3{X: ka[0], Y: ka[1], Z: ka[2]}
		}
		q = q.Inverse()

		var mag [3]float64
		var neg [3]bool
		mag[0] = q.Z*q.Z + q.W*q.W - 0.5
		mag[1] = q.X*q.Z - q.Y*q.W
		mag[2] = q.Y*q.Z + q.X*q.W
		for i := 0; i < 3; i++ {
			if neg[i] = mag[i] < 0; neg[i] {
				mag[i] = -mag[i]
			}
		}

		var win int
		if mag[0] > mag[1] {
			if mag[0] > mag[2] {
				win = 0
			} else {
				win = 2
			}
		} else {
			if mag[1] > mag[2] {
				win = 1
			} else {
				win = 2
			}
		}

		switch win {
		case 0:
			if neg[0] {
				p = quat1000
			} else {
				p = quat0001
			}
		case 1:
			if neg[1] {
				p = quatPPMM
			} else {
				p = quatPPPP
			}
			cycleScales(&ka, false)
		case 2:
			if neg[2] {
				p = quatMPMM
			} else {
				p = quatPPPM
			}
			cycleScales(&ka, true)
		}

		qp := q.Mul(p)
		t := math.Sqrt(mag[win] + 0.5)
		p = p.Mul(linalg.Quaternion{X: 0, Y: 0, Z: -qp.Z / t, W: qp.W / t})
		p = qtoz.Mul(p.Inverse())
	} else {
		// Generic case: all scale factors distinct. The freedom reduces
		// to 24 discrete axis permutations; rank q's components by
		// magnitude and pick the pattern (all/two/big) closest to q.
		qa := [4]float64{q.X, q.Y, q.Z, q.W}
		var pa [4]float64
		var neg [4]bool
		par := false
		for i := 0; i < 4; i++ {
			if neg[i] = qa[i] < 0; neg[i] {
				qa[i] = -qa[i]
			}
			par = par != neg[i]
		}

		// Find the two largest components, indices in hi and lo.
		var lo, hi int
		if qa[0] > qa[1] {
			lo = 0
		} else {
			lo = 1
		}
		if qa[2] > qa[3] {
			hi = 2
		} else {
			hi = 3
		}
		if qa[lo] > qa[hi] {
			if qa[lo^1] > qa[hi] {
				hi = lo
				lo ^= 1
			} else {
				hi, lo = lo, hi
			}
		} else if qa[hi^1] > qa[lo] {
			lo = hi ^ 1
		}

		all := (qa[0] + qa[1] + qa[2] + qa[3]) * 0.5
		two := (qa[hi] + qa[lo]) * sqrtHalf
		big := qa[hi]
		if all > two {
			if all > big {
				for i := 0; i < 4; i++ {
					pa[i] = signed(neg[i], 0.5)
				}
				cycleScales(&ka, par)
			} else {
				pa[hi] = signed(neg[hi], 1)
			}
		} else {
			if two > big {
				pa[hi] = signed(neg[hi], sqrtHalf)
				pa[lo] = signed(neg[lo], sqrtHalf)
				if lo > hi {
					hi, lo = lo, hi
				}
				if hi == axisW {
					// Swapping with w corresponds to a swap of the two
					// remaining spatial axes.
					hi = [3]int{axisY, axisZ, axisX}[lo]
					lo = 3 - hi - lo
				}
				ka[hi], ka[lo] = ka[lo], ka[hi]
			} else {
				pa[hi] = signed(neg[hi], 1)
			}
		}

		p = linalg.Quaternion{X: -pa[0], Y: -pa[1], Z: -pa[2], W: pa[3]}
	}

	return p, linalg.Vector3{X: ka[0], Y: ka[1], Z: ka[2]}
}
