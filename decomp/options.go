// SPDX-License-Identifier: MIT
// Package decomp: numeric policy configuration.
// This file defines the Options struct, its documented defaults (named
// constants, single source of truth) and validation. Public APIs accept
// *Options; nil means DefaultOptions().

package decomp

// Numeric policy defaults.
const (
	// DefaultEpsilon is the relative tolerance used by the polar
	// iteration's convergence test and by the isotropic-scaling cleanup.
	// 1e-12 suits float64; the iteration converges quadratically, so a
	// tighter tolerance costs at most one extra sweep.
	DefaultEpsilon = 1e-12

	// DefaultMaxPolarIterations caps the Higham–Schreiber iteration.
	// Well-conditioned input converges in under 10 iterations; the cap
	// only guards against pathological aspect ratios.
	DefaultMaxPolarIterations = 100
)

// spectralSweeps is the fixed sweep count of the Jacobi eigen solver.
// Empirically sufficient for 3×3 symmetric matrices (Golub & Van Loan);
// intentionally not an Options field — changing it changes observable
// output on borderline-convergent inputs.
const spectralSweeps = 20

// Options configures the numeric policy of Decompose.
//
// Fields:
//   - Epsilon             — convergence/cleanup tolerance (> 0).
//   - MaxPolarIterations  — safety cap on the polar iteration (> 0).
//
// Example:
//
//	opts := decomp.DefaultOptions()
//	opts.Epsilon = 1e-9 // looser tolerance, one sweep fewer on rough input
//	d, err := decomp.Decompose(tm, &opts)
type Options struct {
	Epsilon            float64
	MaxPolarIterations int
}

// DefaultOptions returns the documented default numeric policy.
func DefaultOptions() Options {
	return Options{
		Epsilon:            DefaultEpsilon,
		MaxPolarIterations: DefaultMaxPolarIterations,
	}
}

// validate reports ErrBadOptions for out-of-domain values.
func (o Options) validate() error {
	if o.Epsilon <= 0 || o.MaxPolarIterations <= 0 {
		return ErrBadOptions
	}

	return nil
}
