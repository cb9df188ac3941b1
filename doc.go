// Package affine3 is a small, self-contained toolkit for decomposing 3D
// affine transformations — from fixed-size vector/matrix/quaternion
// primitives up to the full polar + spectral factorization pipeline.
//
// 🚀 What is affine3?
//
//	A focused numerical library that factors an arbitrary 3×4 affine
//	matrix M uniquely into
//
//	    M = T · F · R · S,    S = U · K · Uᵗ
//
//	where T is a translation, F a ±1 reflection sign, R a proper
//	rotation, and S a symmetric scaling with its own orientation U and
//	diagonal scale factors K (Shoemake & Duff, Graphics Interface 1992).
//
// ✨ Why choose affine3?
//
//   - Minimal API – one entry point, decomp.Decompose, value types in linalg
//   - Robust numerics – rank-deficient fallbacks, no panics on singular input
//   - Pure Go – no cgo, fixed-size stack values, zero allocation per call
//   - Deterministic – every iteration is bounded; same input, same output
//
// Under the hood, everything is organized under two subpackages:
//
//	linalg/ — Vector3, Quaternion, Matrix3/Matrix4 and AffineTransformation value types
//	decomp/ — polar decomposition, Jacobi spectral solver, quaternion
//	          canonicalization and the Decompose orchestrator
//
// Quick sketch of the pipeline:
//
//	    M ──polar──▶ Q·S ──spectral──▶ U·K·Uᵗ ──snuggle──▶ canonical (S, Q)
//
// Dive into README.md and the package examples for usage patterns.
//
//	go get github.com/katalvlaran/affine3
package affine3
