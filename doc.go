// Package lvlga is a geometric algebra kernel for 2-D and 3-D Euclidean
// space, with the small numerical toolkit that grew around it.
//
// 🚀 What is lvlga?
//
//	Plain value types for every grade of G(2,0,0) and G(3,0,0), generic over
//	float32 and float64, with the products between them written out term by
//	term:
//		• Geometric, inner, outer and commutator products
//		• Reverse, conjugate and duals
//		• Norms, inverses, projections, rejections and reflections
//		• Rotors from a plane and an angle, and quaternion interop
//
// ✨ Why choose lvlga?
//
//   - Sparse types – a vector times a bivector costs what it should
//   - No hidden allocation – every value is a small struct passed by value
//   - Fail-fast errors – division by zero and degenerate norms are reported,
//     never turned into NaN
//
// Packages:
//
//	ga/       numeric policy, shared errors and formatting
//	ga2d/     G(2,0,0): Vec2d, PScalar2d, MVec2dE (complex), MVec2d
//	ga3d/     G(3,0,0): Vec3d, BiVec3d, PScalar3d, MVec3dE (quaternion), MVec3dU, MVec3d
//	algebra/  signature and basis naming of G(p,n,z)
//	matrix/   dense matrix kernel with an LU solver
//	stencil/  finite-difference stencils from Taylor moments
//	step/     clamped linear, smooth and smoother steps
//
// Quick example:
//
//	r, _ := ga3d.Rotor(ga3d.E12, math.Pi/2)
//	ga3d.E1.Rotate(r) // e2
//
//	go get github.com/katalvlaran/lvlga
package lvlga
