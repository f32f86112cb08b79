// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Vec3d is a grade-1 vector X·e1 + Y·e2 + Z·e3 in an orthonormal basis.
type Vec3d[T ga.Float] struct {
	X, Y, Z T
}

func (v Vec3d[T]) Add(w Vec3d[T]) Vec3d[T] { return Vec3d[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3d[T]) Sub(w Vec3d[T]) Vec3d[T] { return Vec3d[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3d[T]) Neg() Vec3d[T]           { return Vec3d[T]{-v.X, -v.Y, -v.Z} }
func (v Vec3d[T]) Scale(s T) Vec3d[T]      { return Vec3d[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns v/s; s == 0 yields ga.ErrDivisionByZero.
func (v Vec3d[T]) Div(s T) (Vec3d[T], error) {
	if err := ga.CheckDivisor(opVec3dDiv, s); err != nil {
		return Vec3d[T]{}, err
	}

	return v.Scale(1 / s), nil
}

// Dot returns the scalar product (orthonormal basis only).
func (v Vec3d[T]) Dot(w Vec3d[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Wdg returns the outer product v∧w, the bivector dual to the cross product.
func (v Vec3d[T]) Wdg(w Vec3d[T]) BiVec3d[T] {
	return BiVec3d[T]{v.Y*w.Z - v.Z*w.Y, v.Z*w.X - v.X*w.Z, v.X*w.Y - v.Y*w.X}
}

// Cross returns the classic cross product v×w = -I·(v∧w).
func (v Vec3d[T]) Cross(w Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{v.Y*w.Z - v.Z*w.Y, v.Z*w.X - v.X*w.Z, v.X*w.Y - v.Y*w.X}
}

// Gpr returns v·w = dot(v,w) + wdg(v,w).
func (v Vec3d[T]) Gpr(w Vec3d[T]) MVec3dE[T] {
	b := v.Wdg(w)
	return MVec3dE[T]{v.Dot(w), b.X, b.Y, b.Z}
}

// DotBiVec returns v⌋B = gr1(v·B), the vector in the plane of B
// perpendicular to v.
func (v Vec3d[T]) DotBiVec(b BiVec3d[T]) Vec3d[T] {
	return Vec3d[T]{v.Z*b.Y - v.Y*b.Z, v.X*b.Z - v.Z*b.X, v.Y*b.X - v.X*b.Y}
}

// WdgBiVec returns v∧B = gr3(v·B).
func (v Vec3d[T]) WdgBiVec(b BiVec3d[T]) PScalar3d[T] {
	return PScalar3d[T]{v.X*b.X + v.Y*b.Y + v.Z*b.Z}
}

// GprBiVec returns v·B = dot(v,B) + wdg(v,B).
func (v Vec3d[T]) GprBiVec(b BiVec3d[T]) MVec3dU[T] {
	d := v.DotBiVec(b)
	return MVec3dU[T]{d.X, d.Y, d.Z, v.WdgBiVec(b).v}
}

// GprPS returns v·I·a, a bivector (I commutes with everything in 3-D).
func (v Vec3d[T]) GprPS(ps PScalar3d[T]) BiVec3d[T] { return ps.GprVec(v) }

// GprMVecE returns v·E.
func (v Vec3d[T]) GprMVecE(e MVec3dE[T]) MVec3dU[T] {
	return MVec3dU[T]{
		v.X*e.C0 - v.Y*e.C3 + v.Z*e.C2,
		v.X*e.C3 + v.Y*e.C0 - v.Z*e.C1,
		-v.X*e.C2 + v.Y*e.C1 + v.Z*e.C0,
		v.X*e.C1 + v.Y*e.C2 + v.Z*e.C3,
	}
}

func (v Vec3d[T]) SqNrm() T { return v.Dot(v) }
func (v Vec3d[T]) Nrm() T   { return T(math.Sqrt(float64(v.Dot(v)))) }

func (v Vec3d[T]) Unitized() (Vec3d[T], error) {
	n := v.Nrm()
	if err := ga.CheckNorm(opVec3dUnitized, n); err != nil {
		return Vec3d[T]{}, err
	}

	return v.Scale(1 / n), nil
}

// Inv returns v/|v|².
func (v Vec3d[T]) Inv() (Vec3d[T], error) {
	sq := v.SqNrm()
	if err := ga.CheckNorm(opVec3dInv, sq); err != nil {
		return Vec3d[T]{}, err
	}

	return v.Scale(1 / sq), nil
}

// Angle returns the angle between v and w in [0, π].
func (v Vec3d[T]) Angle(w Vec3d[T]) (T, error) {
	np := v.Nrm() * w.Nrm()
	if err := ga.CheckNorm(opVec3dAngle, np); err != nil {
		return 0, err
	}

	return T(math.Acos(float64(ga.Clamp(v.Dot(w)/np, -1, 1)))), nil
}

// AngleBiVec returns the angle between v and the plane B in [0, π/2].
// Planes carry no preferred normal side, so only |dot(v,B)| counts.
func (v Vec3d[T]) AngleBiVec(b BiVec3d[T]) (T, error) {
	np := v.Nrm() * b.Nrm()
	if err := ga.CheckNorm(opVec3dAngleBiVec, np); err != nil {
		return 0, err
	}

	return T(math.Acos(float64(ga.Clamp(v.DotBiVec(b).Nrm()/np, 0, 1)))), nil
}

// ProjectOnto returns the component of v parallel to w.
func (v Vec3d[T]) ProjectOnto(w Vec3d[T]) (Vec3d[T], error) {
	wi, err := w.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dProject, err)
	}

	return wi.Scale(v.Dot(w)), nil
}

// ProjectOntoUnitized is ProjectOnto for a unit w.
func (v Vec3d[T]) ProjectOntoUnitized(w Vec3d[T]) Vec3d[T] { return w.Scale(v.Dot(w)) }

// ProjectOntoBiVec returns the component of v in the plane B:
// gr1(dot(v,B)·inv(B)).
func (v Vec3d[T]) ProjectOntoBiVec(b BiVec3d[T]) (Vec3d[T], error) {
	bi, err := b.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dProject, err)
	}

	return v.DotBiVec(b).DotBiVec(bi), nil
}

// ProjectOntoBiVecUnitized is ProjectOntoBiVec for a unit B (inv(B) = rev(B)).
func (v Vec3d[T]) ProjectOntoBiVecUnitized(b BiVec3d[T]) Vec3d[T] {
	return v.DotBiVec(b).DotBiVec(b.Rev())
}

// RejectFrom returns the component of v perpendicular to w:
// gr1(wdg(v,w)·inv(w)).
func (v Vec3d[T]) RejectFrom(w Vec3d[T]) (Vec3d[T], error) {
	wi, err := w.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dReject, err)
	}

	return v.Wdg(w).DotVec(wi), nil
}

// RejectFromUnitized is RejectFrom for a unit w.
func (v Vec3d[T]) RejectFromUnitized(w Vec3d[T]) Vec3d[T] { return v.Wdg(w).DotVec(w) }

// RejectFromBiVec returns the component of v normal to the plane B:
// wdg(v,B)·inv(B).
func (v Vec3d[T]) RejectFromBiVec(b BiVec3d[T]) (Vec3d[T], error) {
	bi, err := b.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dReject, err)
	}

	return v.WdgBiVec(b).GprBiVec(bi), nil
}

// RejectFromBiVecUnitized is RejectFromBiVec for a unit B.
func (v Vec3d[T]) RejectFromBiVecUnitized(b BiVec3d[T]) Vec3d[T] {
	return v.WdgBiVec(b).GprBiVec(b.Rev())
}

// ReflectOnHyp reflects v on the plane with normal n: -n·v·inv(n).
func (v Vec3d[T]) ReflectOnHyp(n Vec3d[T]) (Vec3d[T], error) {
	r, err := v.ReflectOnVec(n)
	if err != nil {
		return Vec3d[T]{}, err
	}

	return r.Neg(), nil
}

// ReflectOnVec reflects v on the line spanned by b: b·v·inv(b).
func (v Vec3d[T]) ReflectOnVec(b Vec3d[T]) (Vec3d[T], error) {
	bi, err := b.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dReflect, err)
	}

	return b.Gpr(v).GprVec(bi).Gr1(), nil
}

// ReflectOn reflects v on the plane B: -B·v·inv(B).
func (v Vec3d[T]) ReflectOn(b BiVec3d[T]) (Vec3d[T], error) {
	bi, err := b.Inv()
	if err != nil {
		return Vec3d[T]{}, ga.OpError(opVec3dReflect, err)
	}

	return b.GprVec(v).GprBiVec(bi).Gr1().Neg(), nil
}

// Rotate applies the rotor R as gr1(R·v·rev(R)).
func (v Vec3d[T]) Rotate(r MVec3dE[T]) Vec3d[T] {
	return r.GprVec(v).GprMVecE(r.Rev()).Gr1()
}

// Dual returns I·v, the bivector with the same components.
func (v Vec3d[T]) Dual() BiVec3d[T] { return BiVec3d[T]{v.X, v.Y, v.Z} }

func (v Vec3d[T]) ToMVec3d() MVec3d[T]   { return MVec3d[T]{C1: v.X, C2: v.Y, C3: v.Z} }
func (v Vec3d[T]) ToMVec3dU() MVec3dU[T] { return MVec3dU[T]{C0: v.X, C1: v.Y, C2: v.Z} }

func (v Vec3d[T]) Eq(w Vec3d[T]) bool { return EqualVec3d(v, w) }
func (v Vec3d[T]) String() string     { return ga.FormatComps(v.X, v.Y, v.Z) }
