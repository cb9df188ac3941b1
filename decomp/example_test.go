package decomp_test

import (
	"fmt"

	"github.com/katalvlaran/affine3/decomp"
	"github.com/katalvlaran/affine3/linalg"
)

// ExampleDecompose factors a translated uniform scaling.
//
// Scenario:
//
//	A rigid body scaled by 2 in all directions and moved to (5,-2,3).
//	The decomposition recovers the translation and the scale factors;
//	because the scaling is isotropic, its orientation quaternion is
//	canonicalized to the identity.
func ExampleDecompose() {
	tm := linalg.AffineFromParts(
		linalg.Matrix3Diagonal(linalg.Vector3{X: 2, Y: 2, Z: 2}),
		linalg.Vector3{X: 5, Y: -2, Z: 3},
	)

	d, err := decomp.Decompose(tm, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("translation = (%g, %g, %g)\n", d.Translation.X, d.Translation.Y, d.Translation.Z)
	fmt.Printf("scale       = (%g, %g, %g)\n", d.Scaling.S.X, d.Scaling.S.Y, d.Scaling.S.Z)
	fmt.Printf("rotation    = (%g, %g, %g, %g)\n", d.Rotation.X, d.Rotation.Y, d.Rotation.Z, d.Rotation.W)
	fmt.Printf("sign        = %g\n", d.Sign)
	// Output:
	// translation = (5, -2, 3)
	// scale       = (2, 2, 2)
	// rotation    = (0, 0, 0, 1)
	// sign        = 1
}

// ExampleDecomposition_Matrix reconstructs the input from its parts.
//
// Scenario:
//
//	Decompose a reflected axis-aligned scaling, then recompose
//	T·F·R·S and compare with the original transformation.
func ExampleDecomposition_Matrix() {
	tm := linalg.AffineFromParts(
		linalg.Matrix3Diagonal(linalg.Vector3{X: -1, Y: 4, Z: 9}),
		linalg.Vector3{X: 1, Y: 0, Z: 0},
	)

	d, err := decomp.Decompose(tm, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sign = %g\n", d.Sign)
	fmt.Printf("round trip ok = %t\n", tm.Equals(d.Matrix(), 1e-9))
	// Output:
	// sign = -1
	// round trip ok = true
}
