// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
	"gonum.org/v1/gonum/num/quat"
)

// MVec3dE is a multivector of the even subalgebra C0 + C1·e23 + C2·e31 + C3·e12.
// It is closed under the geometric product and isomorphic to the quaternions;
// rotors live here.
type MVec3dE[T ga.Float] struct {
	C0, C1, C2, C3 T
}

// NewMVec3dE builds s + B, the rotor-building case.
func NewMVec3dE[T ga.Float](s Scalar3d[T], b BiVec3d[T]) MVec3dE[T] {
	return MVec3dE[T]{s.v, b.X, b.Y, b.Z}
}

func (e MVec3dE[T]) Add(f MVec3dE[T]) MVec3dE[T] {
	return MVec3dE[T]{e.C0 + f.C0, e.C1 + f.C1, e.C2 + f.C2, e.C3 + f.C3}
}

func (e MVec3dE[T]) Sub(f MVec3dE[T]) MVec3dE[T] {
	return MVec3dE[T]{e.C0 - f.C0, e.C1 - f.C1, e.C2 - f.C2, e.C3 - f.C3}
}

func (e MVec3dE[T]) Neg() MVec3dE[T]      { return MVec3dE[T]{-e.C0, -e.C1, -e.C2, -e.C3} }
func (e MVec3dE[T]) Scale(s T) MVec3dE[T] { return MVec3dE[T]{e.C0 * s, e.C1 * s, e.C2 * s, e.C3 * s} }

func (e MVec3dE[T]) Div(s T) (MVec3dE[T], error) {
	if err := ga.CheckDivisor(opEvenDiv, s); err != nil {
		return MVec3dE[T]{}, err
	}

	return e.Scale(1 / s), nil
}

func (e MVec3dE[T]) Gr0() Scalar3d[T]  { return Scalar3d[T]{e.C0} }
func (e MVec3dE[T]) Gr1() Vec3d[T]     { return Vec3d[T]{} }
func (e MVec3dE[T]) Gr2() BiVec3d[T]   { return BiVec3d[T]{e.C1, e.C2, e.C3} }
func (e MVec3dE[T]) Gr3() PScalar3d[T] { return PScalar3d[T]{} }

// SqNrm returns e·rev(e) = C0² + C1² + C2² + C3².
func (e MVec3dE[T]) SqNrm() T { return e.C0*e.C0 + e.C1*e.C1 + e.C2*e.C2 + e.C3*e.C3 }
func (e MVec3dE[T]) Nrm() T   { return T(math.Sqrt(float64(e.SqNrm()))) }

// Rev negates the bivector part (the quaternion conjugate).
func (e MVec3dE[T]) Rev() MVec3dE[T] { return MVec3dE[T]{e.C0, -e.C1, -e.C2, -e.C3} }

// Conj coincides with Rev on the even subalgebra.
func (e MVec3dE[T]) Conj() MVec3dE[T] { return e.Rev() }

func (e MVec3dE[T]) Unitized() (MVec3dE[T], error) {
	n := e.Nrm()
	if err := ga.CheckNorm(opEvenUnitized, n); err != nil {
		return MVec3dE[T]{}, err
	}

	return e.Scale(1 / n), nil
}

// Inv returns rev(e)/|e|².
func (e MVec3dE[T]) Inv() (MVec3dE[T], error) {
	sq := e.SqNrm()
	if err := ga.CheckNorm(opEvenInv, sq); err != nil {
		return MVec3dE[T]{}, err
	}

	return e.Rev().Scale(1 / sq), nil
}

// Gpr returns E·F, which stays even.
func (e MVec3dE[T]) Gpr(f MVec3dE[T]) MVec3dE[T] {
	a0, a1, a2, a3 := e.C0, e.C1, e.C2, e.C3
	b0, b1, b2, b3 := f.C0, f.C1, f.C2, f.C3

	return MVec3dE[T]{
		a0*b0 - a1*b1 - a2*b2 - a3*b3,
		a0*b1 + a1*b0 - a2*b3 + a3*b2,
		a0*b2 + a1*b3 + a2*b0 - a3*b1,
		a0*b3 - a1*b2 + a2*b1 + a3*b0,
	}
}

// GprVec returns E·v, an odd multivector.
func (e MVec3dE[T]) GprVec(v Vec3d[T]) MVec3dU[T] {
	return MVec3dU[T]{
		e.C0*v.X - e.C2*v.Z + e.C3*v.Y,
		e.C0*v.Y + e.C1*v.Z - e.C3*v.X,
		e.C0*v.Z - e.C1*v.Y + e.C2*v.X,
		e.C1*v.X + e.C2*v.Y + e.C3*v.Z,
	}
}

// GprBiVec returns E·B.
func (e MVec3dE[T]) GprBiVec(b BiVec3d[T]) MVec3dE[T] {
	return MVec3dE[T]{
		-e.C1*b.X - e.C2*b.Y - e.C3*b.Z,
		e.C0*b.X - e.C2*b.Z + e.C3*b.Y,
		e.C0*b.Y + e.C1*b.Z - e.C3*b.X,
		e.C0*b.Z - e.C1*b.Y + e.C2*b.X,
	}
}

// GprMVecU returns E·U, an odd multivector.
func (e MVec3dE[T]) GprMVecU(u MVec3dU[T]) MVec3dU[T] {
	A0, A1, A2, A3 := e.C0, e.C1, e.C2, e.C3
	B0, B1, B2, B3 := u.C0, u.C1, u.C2, u.C3

	return MVec3dU[T]{
		A0*B0 - A1*B3 - A2*B2 + A3*B1,
		A0*B1 + A1*B2 - A2*B3 - A3*B0,
		A0*B2 - A1*B1 + A2*B0 - A3*B3,
		A0*B3 + A1*B0 + A2*B1 + A3*B2,
	}
}

// GprPS returns E·I·a.
func (e MVec3dE[T]) GprPS(ps PScalar3d[T]) MVec3dU[T] { return ps.GprMVecE(e) }

// GprMVec returns E·M through the full product.
func (e MVec3dE[T]) GprMVec(m MVec3d[T]) MVec3d[T] { return e.ToMVec3d().Gpr(m) }

// Dual returns I·E.
func (e MVec3dE[T]) Dual() MVec3dU[T] { return MVec3dU[T]{-e.C1, -e.C2, -e.C3, e.C0} }

func (e MVec3dE[T]) ToMVec3d() MVec3d[T] {
	return MVec3d[T]{C0: e.C0, C4: e.C1, C5: e.C2, C6: e.C3}
}

// Quat returns e as a gonum quaternion. The bivector basis maps with
// i = -e23, j = -e31, k = -e12 so that E·F corresponds to quat.Mul(E, F) and
// Rotor(E12, θ) is the unit quaternion rotating by θ about the z axis.
func (e MVec3dE[T]) Quat() quat.Number {
	return quat.Number{
		Real: float64(e.C0),
		Imag: -float64(e.C1),
		Jmag: -float64(e.C2),
		Kmag: -float64(e.C3),
	}
}

// MVec3dEFromQuat is the inverse of MVec3dE.Quat.
func MVec3dEFromQuat[T ga.Float](q quat.Number) MVec3dE[T] {
	return MVec3dE[T]{T(q.Real), T(-q.Imag), T(-q.Jmag), T(-q.Kmag)}
}

func (e MVec3dE[T]) Eq(f MVec3dE[T]) bool { return EqualMVec3dE(e, f) }
func (e MVec3dE[T]) String() string       { return ga.FormatComps(e.C0, e.C1, e.C2, e.C3) }
