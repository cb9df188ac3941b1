// Package linalg provides the fixed-size linear-algebra value types used
// by the decomposition core: Vector3, Quaternion, Matrix3, Matrix4 and
// AffineTransformation.
//
// All types are plain value types backed by float64 arrays or structs:
// copying is cheap, nothing escapes to the heap, and no method mutates
// its receiver unless it takes a pointer and says so. Matrices are
// row-major; transformations multiply column vectors on the left
// (vNew = M · vOld) in a right-handed coordinate system.
//
// The package is deliberately small. It covers exactly the arithmetic
// the decomp package needs — dot/cross products, transposes, quaternion
// algebra and 3×4 affine composition — not a general matrix library.
package linalg
