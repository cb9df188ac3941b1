// SPDX-License-Identifier: MIT

package decomp

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported numeric kernels to package decomp_test ONLY,
//     so each pipeline stage can be verified in isolation without
//     widening the production API.
//
// Provided Surface:
//   - Exported* aliases: thin pass-throughs to the private routines.
//
// Maintenance:
//   - If a private kernel changes signature, mirror the change here once;
//     the white-box tests will catch drift.

var (
	// ExportedMatNorm exposes matNorm for norm-kernel tests.
	ExportedMatNorm = matNorm
	// ExportedFindMaxCol exposes findMaxCol.
	ExportedFindMaxCol = findMaxCol
	// ExportedMakeReflector exposes makeReflector.
	ExportedMakeReflector = makeReflector
	// ExportedReflectCols exposes reflectCols.
	ExportedReflectCols = reflectCols
	// ExportedReflectRows exposes reflectRows.
	ExportedReflectRows = reflectRows
	// ExportedAdjointTranspose exposes adjointTranspose.
	ExportedAdjointTranspose = adjointTranspose
	// ExportedDet2 exposes det2.
	ExportedDet2 = det2

	// ExportedFactorRank1 exposes factorRank1.
	ExportedFactorRank1 = factorRank1
	// ExportedFactorRank2 exposes factorRank2.
	ExportedFactorRank2 = factorRank2

	// ExportedPolarDecompose exposes polarDecompose.
	ExportedPolarDecompose = polarDecompose
	// ExportedSpectralDecompose exposes spectralDecompose.
	ExportedSpectralDecompose = spectralDecompose
	// ExportedSnuggle exposes snuggle.
	ExportedSnuggle = snuggle
	// ExportedQuaternionFromMatrix exposes quaternionFromMatrix.
	ExportedQuaternionFromMatrix = quaternionFromMatrix
)

// NoColumn mirrors the findMaxCol zero-matrix sentinel for tests.
const NoColumn = noColumn
