// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// BiVec3d is a grade-2 bivector X·e23 + Y·e31 + Z·e12, an oriented plane
// element. It has the layout of Vec3d but is a distinct type; use Dual to
// move between the two.
type BiVec3d[T ga.Float] struct {
	X, Y, Z T
}

func (b BiVec3d[T]) Add(c BiVec3d[T]) BiVec3d[T] { return BiVec3d[T]{b.X + c.X, b.Y + c.Y, b.Z + c.Z} }
func (b BiVec3d[T]) Sub(c BiVec3d[T]) BiVec3d[T] { return BiVec3d[T]{b.X - c.X, b.Y - c.Y, b.Z - c.Z} }
func (b BiVec3d[T]) Neg() BiVec3d[T]             { return BiVec3d[T]{-b.X, -b.Y, -b.Z} }
func (b BiVec3d[T]) Scale(s T) BiVec3d[T]        { return BiVec3d[T]{b.X * s, b.Y * s, b.Z * s} }

func (b BiVec3d[T]) Div(s T) (BiVec3d[T], error) {
	if err := ga.CheckDivisor(opBiVec3dDiv, s); err != nil {
		return BiVec3d[T]{}, err
	}

	return b.Scale(1 / s), nil
}

// Dot returns gr0(A·B) = -(AxBx + AyBy + AzBz); bivectors square negative.
func (b BiVec3d[T]) Dot(c BiVec3d[T]) T { return -b.X*c.X - b.Y*c.Y - b.Z*c.Z }

// DotVec returns B⌊v = gr1(B·v).
func (b BiVec3d[T]) DotVec(v Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{b.Z*v.Y - b.Y*v.Z, b.X*v.Z - b.Z*v.X, b.Y*v.X - b.X*v.Y}
}

// WdgVec returns B∧v = gr3(B·v); it equals v∧B.
func (b BiVec3d[T]) WdgVec(v Vec3d[T]) PScalar3d[T] {
	return PScalar3d[T]{b.X*v.X + b.Y*v.Y + b.Z*v.Z}
}

// Cmt returns the commutator product (A·B - B·A)/2 = gr2(A·B).
func (b BiVec3d[T]) Cmt(c BiVec3d[T]) BiVec3d[T] {
	return BiVec3d[T]{b.Z*c.Y - b.Y*c.Z, b.X*c.Z - b.Z*c.X, b.Y*c.X - b.X*c.Y}
}

// Gpr returns A·B = dot(A,B) + cmt(A,B); in 3-D there is no grade-4 part.
func (b BiVec3d[T]) Gpr(c BiVec3d[T]) MVec3dE[T] {
	k := b.Cmt(c)
	return MVec3dE[T]{b.Dot(c), k.X, k.Y, k.Z}
}

// GprVec returns B·v = dot(B,v) + wdg(B,v).
func (b BiVec3d[T]) GprVec(v Vec3d[T]) MVec3dU[T] {
	d := b.DotVec(v)
	return MVec3dU[T]{d.X, d.Y, d.Z, b.WdgVec(v).v}
}

// GprPS returns B·I·a, a vector.
func (b BiVec3d[T]) GprPS(ps PScalar3d[T]) Vec3d[T] { return ps.GprBiVec(b) }

// GprMVecE returns B·E.
func (b BiVec3d[T]) GprMVecE(e MVec3dE[T]) MVec3dE[T] {
	return MVec3dE[T]{
		-b.X*e.C1 - b.Y*e.C2 - b.Z*e.C3,
		b.X*e.C0 - b.Y*e.C3 + b.Z*e.C2,
		b.X*e.C3 + b.Y*e.C0 - b.Z*e.C1,
		-b.X*e.C2 + b.Y*e.C1 + b.Z*e.C0,
	}
}

func (b BiVec3d[T]) SqNrm() T { return b.X*b.X + b.Y*b.Y + b.Z*b.Z }
func (b BiVec3d[T]) Nrm() T   { return T(math.Sqrt(float64(b.SqNrm()))) }

func (b BiVec3d[T]) Unitized() (BiVec3d[T], error) {
	n := b.Nrm()
	if err := ga.CheckNorm(opBiVec3dUnitized, n); err != nil {
		return BiVec3d[T]{}, err
	}

	return b.Scale(1 / n), nil
}

// Inv returns -B/|B|².
func (b BiVec3d[T]) Inv() (BiVec3d[T], error) {
	sq := b.SqNrm()
	if err := ga.CheckNorm(opBiVec3dInv, sq); err != nil {
		return BiVec3d[T]{}, err
	}

	return b.Scale(-1 / sq), nil
}

// Rev negates every component.
func (b BiVec3d[T]) Rev() BiVec3d[T] { return b.Neg() }

// Angle returns the angle between two planes in [0, π/2].
func (b BiVec3d[T]) Angle(c BiVec3d[T]) (T, error) {
	np := b.Nrm() * c.Nrm()
	if err := ga.CheckNorm(opBiVec3dAngle, np); err != nil {
		return 0, err
	}
	d := T(math.Abs(float64(b.Dot(c))))

	return T(math.Acos(float64(ga.Clamp(d/np, 0, 1)))), nil
}

// AngleVec equals v.AngleBiVec(B).
func (b BiVec3d[T]) AngleVec(v Vec3d[T]) (T, error) { return v.AngleBiVec(b) }

// Rotate applies the rotor R as gr2(R·B·rev(R)).
func (b BiVec3d[T]) Rotate(r MVec3dE[T]) BiVec3d[T] {
	return r.GprBiVec(b).Gpr(r.Rev()).Gr2()
}

// ReflectOn reflects the plane b on the plane B: gr2(B·b·inv(B)).
func (b BiVec3d[T]) ReflectOn(plane BiVec3d[T]) (BiVec3d[T], error) {
	pi, err := plane.Inv()
	if err != nil {
		return BiVec3d[T]{}, ga.OpError(opBiVec3dReflect, err)
	}

	return plane.Gpr(b).GprBiVec(pi).Gr2(), nil
}

// Dual returns I·B = -(X, Y, Z) as a vector.
func (b BiVec3d[T]) Dual() Vec3d[T] { return Vec3d[T]{-b.X, -b.Y, -b.Z} }

func (b BiVec3d[T]) ToMVec3d() MVec3d[T]   { return MVec3d[T]{C4: b.X, C5: b.Y, C6: b.Z} }
func (b BiVec3d[T]) ToMVec3dE() MVec3dE[T] { return MVec3dE[T]{C1: b.X, C2: b.Y, C3: b.Z} }

func (b BiVec3d[T]) Eq(c BiVec3d[T]) bool { return EqualBiVec3d(b, c) }
func (b BiVec3d[T]) String() string       { return ga.FormatComps(b.X, b.Y, b.Z) }
