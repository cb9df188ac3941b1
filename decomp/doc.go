// Package decomp factors an arbitrary 3×4 affine transformation into
// translation, rotation, anisotropic scaling and a reflection sign.
//
// The single entry point is Decompose, which computes
//
//	M = T · F · R · S,    S = U · K · Uᵗ
//
// where T translates, F is the identity with det-sign ±1 on the diagonal,
// R is a proper rotation, and the symmetric scaling S is spectrally split
// into a scale-axis orientation U and diagonal scale factors K
// (Shoemake & Duff, "Matrix Animation and Polar Decomposition",
// Graphics Interface 1992).
//
// Pipeline:
//
//  1. Polar decomposition M = Q·S via the Higham–Schreiber
//     adjoint-transpose iteration, with Householder-based rank-1/rank-2
//     fallbacks for singular input.
//  2. Spectral decomposition of the symmetric factor S by a cyclic 3×3
//     Jacobi eigenvalue sweep.
//  3. Canonicalization ("snuggle") of the eigenframe quaternion, which
//     resolves the axis-permutation and in-plane rotation freedom left
//     by repeated scale factors, so that decompositions vary
//     continuously — a prerequisite for interpolating transformations.
//
// Every loop is bounded and every call is a pure function of its input:
// no global state, no allocation, safe for concurrent use.
//
// Errors are package-level sentinels (ErrNonFinite, ErrNoConvergence,
// ErrBadOptions) matched via errors.Is; singular matrices are a designed
// code path, never an error.
package decomp
