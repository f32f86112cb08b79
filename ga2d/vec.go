// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Vec2d is a grade-1 vector X·e1 + Y·e2 in an orthonormal basis.
type Vec2d[T ga.Float] struct {
	X, Y T
}

func (v Vec2d[T]) Add(w Vec2d[T]) Vec2d[T] { return Vec2d[T]{v.X + w.X, v.Y + w.Y} }
func (v Vec2d[T]) Sub(w Vec2d[T]) Vec2d[T] { return Vec2d[T]{v.X - w.X, v.Y - w.Y} }
func (v Vec2d[T]) Neg() Vec2d[T]           { return Vec2d[T]{-v.X, -v.Y} }

// Scale returns s·v (= v·s).
func (v Vec2d[T]) Scale(s T) Vec2d[T] { return Vec2d[T]{v.X * s, v.Y * s} }

// Div returns v/s; s == 0 yields ga.ErrDivisionByZero.
func (v Vec2d[T]) Div(s T) (Vec2d[T], error) {
	if err := ga.CheckDivisor(opVec2dDiv, s); err != nil {
		return Vec2d[T]{}, err
	}
	inv := 1 / s

	return Vec2d[T]{v.X * inv, v.Y * inv}, nil
}

// Dot returns the scalar product x1·x2 + y1·y2 (orthonormal basis only).
func (v Vec2d[T]) Dot(w Vec2d[T]) T { return v.X*w.X + v.Y*w.Y }

// Wdg returns the outer product v∧w = (x1·y2 - y1·x2)·e12.
func (v Vec2d[T]) Wdg(w Vec2d[T]) PScalar2d[T] { return PScalar2d[T]{v.X*w.Y - v.Y*w.X} }

// Gpr returns the geometric product v·w = dot(v,w) + wdg(v,w).
func (v Vec2d[T]) Gpr(w Vec2d[T]) MVec2dE[T] {
	return MVec2dE[T]{v.Dot(w), v.X*w.Y - v.Y*w.X}
}

// GprPS returns v·I·b = (-y, x)·b.
func (v Vec2d[T]) GprPS(ps PScalar2d[T]) Vec2d[T] {
	return Vec2d[T]{-v.Y * ps.v, v.X * ps.v}
}

// DotPS equals GprPS.
func (v Vec2d[T]) DotPS(ps PScalar2d[T]) Vec2d[T] { return v.GprPS(ps) }

// GprMVec returns v·M.
func (v Vec2d[T]) GprMVec(m MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{
		v.X*m.C1 + v.Y*m.C2,
		v.X*m.C0 - v.Y*m.C3,
		v.X*m.C3 + v.Y*m.C0,
		v.X*m.C2 - v.Y*m.C1,
	}
}

// GprMVecE returns v·E, which stays a vector.
func (v Vec2d[T]) GprMVecE(e MVec2dE[T]) Vec2d[T] {
	return Vec2d[T]{v.X*e.C0 - v.Y*e.C1, v.X*e.C1 + v.Y*e.C0}
}

// SqNrm returns |v|².
func (v Vec2d[T]) SqNrm() T { return v.Dot(v) }

// Nrm returns |v|.
func (v Vec2d[T]) Nrm() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Unitized returns v/|v|.
func (v Vec2d[T]) Unitized() (Vec2d[T], error) {
	n := v.Nrm()
	if err := ga.CheckNorm(opVec2dUnitized, n); err != nil {
		return Vec2d[T]{}, err
	}

	return v.Scale(1 / n), nil
}

// Inv returns the multiplicative inverse v/|v|².
func (v Vec2d[T]) Inv() (Vec2d[T], error) {
	sq := v.SqNrm()
	if err := ga.CheckNorm(opVec2dInv, sq); err != nil {
		return Vec2d[T]{}, err
	}

	return v.Scale(1 / sq), nil
}

// Angle returns the angle between v and w in [0, π].
func (v Vec2d[T]) Angle(w Vec2d[T]) (T, error) {
	np := v.Nrm() * w.Nrm()
	if err := ga.CheckNorm(opVec2dAngle, np); err != nil {
		return 0, err
	}

	return T(math.Acos(float64(ga.Clamp(v.Dot(w)/np, -1, 1)))), nil
}

// ProjectOnto returns the component of v parallel to w: dot(v,w)·inv(w).
func (v Vec2d[T]) ProjectOnto(w Vec2d[T]) (Vec2d[T], error) {
	wi, err := w.Inv()
	if err != nil {
		return Vec2d[T]{}, ga.OpError(opVec2dProject, err)
	}

	return wi.Scale(v.Dot(w)), nil
}

// ProjectOntoUnitized is ProjectOnto for a unit w (no inversion).
func (v Vec2d[T]) ProjectOntoUnitized(w Vec2d[T]) Vec2d[T] { return w.Scale(v.Dot(w)) }

// ProjectOntoPS projects v onto the plane spanned by ps: dot(v,ps)·inv(ps).
func (v Vec2d[T]) ProjectOntoPS(ps PScalar2d[T]) (Vec2d[T], error) {
	pi, err := ps.Inv()
	if err != nil {
		return Vec2d[T]{}, ga.OpError(opVec2dProjectPS, err)
	}

	return v.DotPS(ps).GprPS(pi), nil
}

// RejectFrom returns the component of v perpendicular to w: wdg(v,w)·inv(w).
func (v Vec2d[T]) RejectFrom(w Vec2d[T]) (Vec2d[T], error) {
	sq := w.SqNrm()
	if err := ga.CheckNorm(opVec2dReject, sq); err != nil {
		return Vec2d[T]{}, err
	}
	a := v.Wdg(w).v / sq

	return Vec2d[T]{w.Y * a, -w.X * a}, nil
}

// RejectFromUnitized is RejectFrom for a unit w.
func (v Vec2d[T]) RejectFromUnitized(w Vec2d[T]) Vec2d[T] {
	a := v.Wdg(w).v
	return Vec2d[T]{w.Y * a, -w.X * a}
}

// ReflectOnHyp reflects v on the line (hyperplane) with normal n: -n·v·inv(n).
func (v Vec2d[T]) ReflectOnHyp(n Vec2d[T]) (Vec2d[T], error) {
	r, err := v.ReflectOnVec(n)
	if err != nil {
		return Vec2d[T]{}, err
	}

	return r.Neg(), nil
}

// ReflectOnVec reflects v on the line spanned by b: b·v·inv(b).
func (v Vec2d[T]) ReflectOnVec(b Vec2d[T]) (Vec2d[T], error) {
	bi, err := b.Inv()
	if err != nil {
		return Vec2d[T]{}, ga.OpError(opVec2dReflect, err)
	}

	return b.Gpr(v).GprVec(bi), nil
}

// Rotate applies the rotor R as R·v·rev(R).
func (v Vec2d[T]) Rotate(r MVec2dE[T]) Vec2d[T] {
	return r.GprVec(v).GprMVecE(r.Rev())
}

// Dual returns I·v = (y, -x).
func (v Vec2d[T]) Dual() Vec2d[T] { return Vec2d[T]{v.Y, -v.X} }

// ToMVec2d embeds v into a full multivector.
func (v Vec2d[T]) ToMVec2d() MVec2d[T] { return MVec2d[T]{C1: v.X, C2: v.Y} }

func (v Vec2d[T]) Eq(w Vec2d[T]) bool { return EqualVec2d(v, w) }
func (v Vec2d[T]) String() string     { return ga.FormatComps(v.X, v.Y) }
