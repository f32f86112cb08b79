// SPDX-License-Identifier: MIT

// Package ga2d implements the geometric algebra of the Euclidean plane G(2,0,0).
//
// Types (every one generic over T ga.Float):
//
//	Scalar2d   grade 0                     (tagged value)
//	Vec2d      grade 1   X·e1 + Y·e2
//	PScalar2d  grade 2   e12 pseudoscalar   (tagged value)
//	MVec2d     full multivector   C0 + C1·e1 + C2·e2 + C3·e12
//	MVec2dE    even subalgebra    C0 + C1·e12   (complex numbers)
//	MCplx2d    complex number     C0 + C1·e12   with a generic ga.Scalar real part
//
// Products are methods named after the operand kind on the right:
//
//	v.Dot(w)       scalar
//	v.Wdg(w)       PScalar2d
//	v.Gpr(w)       MVec2dE = dot + wdg
//	v.GprPS(I)     Vec2d
//	M.Gpr(N)       MVec2d (full 16-term product)
//
// Conventions:
//   - dual(x) = I·x (left multiplication by the unit pseudoscalar).
//   - Rotor(I, θ) = exp(I, −θ/2); Rotate(v, R) = R·v·rev(R) rotates by θ.
//   - Inversions and unitizations fail with ga.ErrDegenerateNorm, division by
//     exactly zero with ga.ErrDivisionByZero.
//
// Every value is immutable by convention; methods never modify the receiver.
package ga2d
