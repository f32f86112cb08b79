// SPDX-License-Identifier: MIT

// Package ga3d implements the geometric algebra of Euclidean space G(3,0,0).
//
// 🚀 Types (every one generic over T ga.Float):
//
//	Scalar3d   grade 0                                   (tagged value)
//	Vec3d      grade 1   X·e1 + Y·e2 + Z·e3
//	BiVec3d    grade 2   X·e23 + Y·e31 + Z·e12
//	PScalar3d  grade 3   e123 pseudoscalar                (tagged value)
//	MVec3d     full multivector  C0 + C1..C3 (e1,e2,e3) + C4..C6 (e23,e31,e12) + C7·e123
//	MVec3dE    even subalgebra   C0 + C1·e23 + C2·e31 + C3·e12   (quaternions)
//	MVec3dU    odd subalgebra    C0·e1 + C1·e2 + C2·e3 + C3·e123
//
// Vec3d and BiVec3d share a layout but are distinct types; Dual is the only
// bridge between them.
//
// ⚙️ Products are methods named after the operand kind on the right:
//
//	v.Dot(w)        scalar           v.DotBiVec(B)   Vec3d
//	v.Wdg(w)        BiVec3d          v.WdgBiVec(B)   PScalar3d
//	v.Gpr(w)        MVec3dE          v.GprBiVec(B)   MVec3dU
//	B.Cmt(C)        BiVec3d          M.Gpr(N)        MVec3d (64 terms)
//
// Every sparse product returns exactly the grade slice of the full product;
// use MVec3d.Gpr only when both operands are fully populated.
//
// 📐 Conventions:
//   - dual(x) = I·x (left multiplication by the unit pseudoscalar).
//   - Rotor(B, θ) = exp(B, −θ/2) for a plane B; Rotate(x, R) = R·x·rev(R).
//   - MVec3dE maps onto gonum quaternions with i = −e23, j = −e31, k = −e12
//     (see MVec3dE.Quat).
//   - Degenerate norms fail with ga.ErrDegenerateNorm, division by exactly
//     zero with ga.ErrDivisionByZero.
package ga3d
