// Package decomp: top-level orchestrator.
package decomp

import (
	"math"

	"github.com/katalvlaran/affine3/linalg"
)

// Decompose factors the affine transformation tm into translation,
// reflection sign, rotation and oriented scaling, so that
// tm = T·F·R·S with S = Q·diag(k)·Qᵗ (see the package documentation).
// A nil opts selects DefaultOptions.
//
// Errors:
//   - ErrBadOptions     — Epsilon or MaxPolarIterations out of domain.
//   - ErrNonFinite      — tm contains NaN or ±Inf.
//   - ErrNoConvergence  — polar iteration exceeded MaxPolarIterations.
//
// Singular input (zero determinant) is handled by the rank-deficient
// fallback and succeeds; Sign is then consistent with the orthogonal
// factor the fallback selected.
//
// The call is a pure function of its input: no global state is touched
// and distinct calls may run concurrently.
func Decompose(tm linalg.AffineTransformation, opts *Options) (Decomposition, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Decomposition{}, err
	}
	if !tm.IsFinite() {
		return Decomposition{}, ErrNonFinite
	}

	var d Decomposition
	d.Translation = tm.Translation()

	a := linalg.Matrix4FromMatrix3(tm.Linear())
	q, s, _, err := polarDecompose(&a, o.Epsilon, o.MaxPolarIterations)
	if err != nil {
		return Decomposition{}, err
	}
	// The handedness comes from the orthogonal factor itself, not from
	// det(M): on singular input det(M) is zero (or rounding noise) while
	// the rank fallback may still have picked an improper Q.
	if q.Matrix3().Determinant() < 0 {
		negateBlock3(&q)
		d.Sign = -1
	} else {
		d.Sign = 1
	}
	d.Rotation = quaternionFromMatrix(&q)

	k, u := spectralDecompose(&s)
	d.Scaling.S = k
	d.Scaling.Q = quaternionFromMatrix(&u)
	p, kp := snuggle(d.Scaling.Q, d.Scaling.S)
	d.Scaling.S = kp
	d.Scaling.Q = d.Scaling.Q.Mul(p).Normalized()

	// Isotropic scaling carries no meaningful orientation; canonicalize
	// it away.
	if math.Abs(d.Scaling.Q.W) >= 1 || vectorNearOnes(d.Scaling.S, o.Epsilon) {
		d.Scaling.Q = linalg.QuaternionIdentity()
	}

	return d, nil
}
