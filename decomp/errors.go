// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set.
// This file defines ONLY package-level sentinel errors. All public entry
// points return these sentinels and tests check them via errors.Is. No
// routine panics on caller-triggered error conditions; panics are reserved
// for programmer errors in private helpers (if any).

package decomp

import "errors"

// Every message is prefixed with "decomp: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning them
// directly; wrap at an outer boundary if context is essential — callers
// still match with errors.Is.

var (
	// ErrNonFinite indicates a NaN or ±Inf entry in the input matrix.
	// The numeric pipeline would only propagate the poison, so the input
	// is rejected up front.
	ErrNonFinite = errors.New("decomp: non-finite matrix entry")

	// ErrNoConvergence indicates that the polar iteration exceeded its
	// safety cap without meeting the tolerance. Downstream consumers
	// assume a converged orthogonal factor, so a poor approximation is
	// reported rather than returned.
	ErrNoConvergence = errors.New("decomp: polar iteration did not converge")

	// ErrBadOptions indicates a nonsensical Options value, such as a
	// non-positive tolerance or iteration cap.
	ErrBadOptions = errors.New("decomp: invalid options")
)
