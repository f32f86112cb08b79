// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// MVec3dU is a multivector of the odd subalgebra C0·e1 + C1·e2 + C2·e3 + C3·e123.
// It appears as the intermediate of rotor sandwiches applied to vectors.
type MVec3dU[T ga.Float] struct {
	C0, C1, C2, C3 T
}

// NewMVec3dU builds v + ps.
func NewMVec3dU[T ga.Float](v Vec3d[T], ps PScalar3d[T]) MVec3dU[T] {
	return MVec3dU[T]{v.X, v.Y, v.Z, ps.v}
}

func (u MVec3dU[T]) Add(w MVec3dU[T]) MVec3dU[T] {
	return MVec3dU[T]{u.C0 + w.C0, u.C1 + w.C1, u.C2 + w.C2, u.C3 + w.C3}
}

func (u MVec3dU[T]) Sub(w MVec3dU[T]) MVec3dU[T] {
	return MVec3dU[T]{u.C0 - w.C0, u.C1 - w.C1, u.C2 - w.C2, u.C3 - w.C3}
}

func (u MVec3dU[T]) Neg() MVec3dU[T]      { return MVec3dU[T]{-u.C0, -u.C1, -u.C2, -u.C3} }
func (u MVec3dU[T]) Scale(s T) MVec3dU[T] { return MVec3dU[T]{u.C0 * s, u.C1 * s, u.C2 * s, u.C3 * s} }

func (u MVec3dU[T]) Div(s T) (MVec3dU[T], error) {
	if err := ga.CheckDivisor(opOddDiv, s); err != nil {
		return MVec3dU[T]{}, err
	}

	return u.Scale(1 / s), nil
}

func (u MVec3dU[T]) Gr0() Scalar3d[T]  { return Scalar3d[T]{} }
func (u MVec3dU[T]) Gr1() Vec3d[T]     { return Vec3d[T]{u.C0, u.C1, u.C2} }
func (u MVec3dU[T]) Gr2() BiVec3d[T]   { return BiVec3d[T]{} }
func (u MVec3dU[T]) Gr3() PScalar3d[T] { return PScalar3d[T]{u.C3} }

func (u MVec3dU[T]) SqNrm() T { return u.C0*u.C0 + u.C1*u.C1 + u.C2*u.C2 + u.C3*u.C3 }
func (u MVec3dU[T]) Nrm() T   { return T(math.Sqrt(float64(u.SqNrm()))) }

// Rev negates the trivector part.
func (u MVec3dU[T]) Rev() MVec3dU[T] { return MVec3dU[T]{u.C0, u.C1, u.C2, -u.C3} }

// Conj negates the vector part.
func (u MVec3dU[T]) Conj() MVec3dU[T] { return MVec3dU[T]{-u.C0, -u.C1, -u.C2, u.C3} }

func (u MVec3dU[T]) Unitized() (MVec3dU[T], error) {
	n := u.Nrm()
	if err := ga.CheckNorm(opOddUnitized, n); err != nil {
		return MVec3dU[T]{}, err
	}

	return u.Scale(1 / n), nil
}

// Inv returns rev(u)/|u|²; u·rev(u) = |v|² + ps² is a scalar.
func (u MVec3dU[T]) Inv() (MVec3dU[T], error) {
	sq := u.SqNrm()
	if err := ga.CheckNorm(opOddInv, sq); err != nil {
		return MVec3dU[T]{}, err
	}

	return u.Rev().Scale(1 / sq), nil
}

// Gpr returns U·W, an even multivector.
func (u MVec3dU[T]) Gpr(w MVec3dU[T]) MVec3dE[T] {
	a0, a1, a2, a3 := u.C0, u.C1, u.C2, u.C3
	b0, b1, b2, b3 := w.C0, w.C1, w.C2, w.C3

	return MVec3dE[T]{
		a0*b0 + a1*b1 + a2*b2 - a3*b3,
		a0*b3 + a1*b2 - a2*b1 + a3*b0,
		-a0*b2 + a1*b3 + a2*b0 + a3*b1,
		a0*b1 - a1*b0 + a2*b3 + a3*b2,
	}
}

// GprVec returns U·v, an even multivector.
func (u MVec3dU[T]) GprVec(v Vec3d[T]) MVec3dE[T] {
	return MVec3dE[T]{
		u.C0*v.X + u.C1*v.Y + u.C2*v.Z,
		u.C1*v.Z - u.C2*v.Y + u.C3*v.X,
		u.C2*v.X - u.C0*v.Z + u.C3*v.Y,
		u.C0*v.Y - u.C1*v.X + u.C3*v.Z,
	}
}

// GprBiVec returns U·B, an odd multivector.
func (u MVec3dU[T]) GprBiVec(b BiVec3d[T]) MVec3dU[T] {
	return MVec3dU[T]{
		u.C2*b.Y - u.C1*b.Z - u.C3*b.X,
		u.C0*b.Z - u.C2*b.X - u.C3*b.Y,
		u.C1*b.X - u.C0*b.Y - u.C3*b.Z,
		u.C0*b.X + u.C1*b.Y + u.C2*b.Z,
	}
}

// GprMVecE returns U·E, an odd multivector.
func (u MVec3dU[T]) GprMVecE(e MVec3dE[T]) MVec3dU[T] {
	A0, A1, A2, A3 := u.C0, u.C1, u.C2, u.C3
	B0, B1, B2, B3 := e.C0, e.C1, e.C2, e.C3

	return MVec3dU[T]{
		A0*B0 - A1*B3 + A2*B2 - A3*B1,
		A0*B3 + A1*B0 - A2*B1 - A3*B2,
		-A0*B2 + A1*B1 + A2*B0 - A3*B3,
		A0*B1 + A1*B2 + A2*B3 + A3*B0,
	}
}

// GprPS returns U·I·a.
func (u MVec3dU[T]) GprPS(ps PScalar3d[T]) MVec3dE[T] { return ps.GprMVecU(u) }

// Dual returns I·U.
func (u MVec3dU[T]) Dual() MVec3dE[T] { return MVec3dE[T]{-u.C3, u.C0, u.C1, u.C2} }

func (u MVec3dU[T]) ToMVec3d() MVec3d[T] {
	return MVec3d[T]{C1: u.C0, C2: u.C1, C3: u.C2, C7: u.C3}
}

func (u MVec3dU[T]) Eq(w MVec3dU[T]) bool { return EqualMVec3dU(u, w) }
func (u MVec3dU[T]) String() string       { return ga.FormatComps(u.C0, u.C1, u.C2, u.C3) }
