// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// MVec3d is a full multivector of the 3-D algebra:
//
//	C0                 scalar
//	C1, C2, C3         e1, e2, e3
//	C4, C5, C6         e23, e31, e12
//	C7                 e123
type MVec3d[T ga.Float] struct {
	C0, C1, C2, C3, C4, C5, C6, C7 T
}

// NewMVec3d assembles a multivector from its four grades.
func NewMVec3d[T ga.Float](s Scalar3d[T], v Vec3d[T], b BiVec3d[T], ps PScalar3d[T]) MVec3d[T] {
	return MVec3d[T]{s.v, v.X, v.Y, v.Z, b.X, b.Y, b.Z, ps.v}
}

func (m MVec3d[T]) comps() [8]T {
	return [8]T{m.C0, m.C1, m.C2, m.C3, m.C4, m.C5, m.C6, m.C7}
}

func mvec3dOf[T ga.Float](c [8]T) MVec3d[T] {
	return MVec3d[T]{c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7]}
}

func (m MVec3d[T]) Add(n MVec3d[T]) MVec3d[T] {
	a, b := m.comps(), n.comps()
	for i := range a {
		a[i] += b[i]
	}

	return mvec3dOf(a)
}

func (m MVec3d[T]) Sub(n MVec3d[T]) MVec3d[T] {
	a, b := m.comps(), n.comps()
	for i := range a {
		a[i] -= b[i]
	}

	return mvec3dOf(a)
}

func (m MVec3d[T]) Neg() MVec3d[T] { return m.Scale(-1) }

func (m MVec3d[T]) Scale(s T) MVec3d[T] {
	a := m.comps()
	for i := range a {
		a[i] *= s
	}

	return mvec3dOf(a)
}

func (m MVec3d[T]) Div(s T) (MVec3d[T], error) {
	if err := ga.CheckDivisor(opMVec3dDiv, s); err != nil {
		return MVec3d[T]{}, err
	}

	return m.Scale(1 / s), nil
}

func (m MVec3d[T]) Gr0() Scalar3d[T]  { return Scalar3d[T]{m.C0} }
func (m MVec3d[T]) Gr1() Vec3d[T]     { return Vec3d[T]{m.C1, m.C2, m.C3} }
func (m MVec3d[T]) Gr2() BiVec3d[T]   { return BiVec3d[T]{m.C4, m.C5, m.C6} }
func (m MVec3d[T]) Gr3() PScalar3d[T] { return PScalar3d[T]{m.C7} }

// Even returns the even part (grades 0 and 2).
func (m MVec3d[T]) Even() MVec3dE[T] { return MVec3dE[T]{m.C0, m.C4, m.C5, m.C6} }

// Odd returns the odd part (grades 1 and 3).
func (m MVec3d[T]) Odd() MVec3dU[T] { return MVec3dU[T]{m.C1, m.C2, m.C3, m.C7} }

func (m MVec3d[T]) SqNrm() T {
	var s T
	for _, c := range m.comps() {
		s += c * c
	}

	return s
}

func (m MVec3d[T]) Nrm() T { return T(math.Sqrt(float64(m.SqNrm()))) }

// Rev negates the bivector and trivector parts.
func (m MVec3d[T]) Rev() MVec3d[T] {
	return MVec3d[T]{m.C0, m.C1, m.C2, m.C3, -m.C4, -m.C5, -m.C6, -m.C7}
}

// Conj is the Clifford conjugate: vector and bivector negated.
func (m MVec3d[T]) Conj() MVec3d[T] {
	return MVec3d[T]{m.C0, -m.C1, -m.C2, -m.C3, -m.C4, -m.C5, -m.C6, m.C7}
}

func (m MVec3d[T]) Unitized() (MVec3d[T], error) {
	n := m.Nrm()
	if err := ga.CheckNorm(opMVec3dUnitized, n); err != nil {
		return MVec3d[T]{}, err
	}

	return m.Scale(1 / n), nil
}

// Inv returns conj(m)·(m·conj(m))⁻¹. The product m·conj(m) = a + b·I lies in
// the centre of the algebra, so its inverse is (a - b·I)/(a² + b²).
func (m MVec3d[T]) Inv() (MVec3d[T], error) {
	c := m.Conj()
	z := m.Gpr(c)
	a, b := z.C0, z.C7
	d := a*a + b*b
	if err := ga.CheckNorm(opMVec3dInv, d); err != nil {
		return MVec3d[T]{}, err
	}
	zi := MVec3d[T]{C0: a / d, C7: -b / d}

	return c.Gpr(zi), nil
}

// Gpr returns the full geometric product (64 multiply-adds).
func (m MVec3d[T]) Gpr(n MVec3d[T]) MVec3d[T] {
	A0, A1, A2, A3, A4, A5, A6, A7 := m.C0, m.C1, m.C2, m.C3, m.C4, m.C5, m.C6, m.C7
	B0, B1, B2, B3, B4, B5, B6, B7 := n.C0, n.C1, n.C2, n.C3, n.C4, n.C5, n.C6, n.C7

	return MVec3d[T]{
		A0*B0 + A1*B1 + A2*B2 + A3*B3 - A4*B4 - A5*B5 - A6*B6 - A7*B7,
		A0*B1 + A1*B0 - A2*B6 + A3*B5 - A4*B7 - A5*B3 + A6*B2 - A7*B4,
		A0*B2 + A1*B6 + A2*B0 - A3*B4 + A4*B3 - A5*B7 - A6*B1 - A7*B5,
		A0*B3 - A1*B5 + A2*B4 + A3*B0 - A4*B2 + A5*B1 - A6*B7 - A7*B6,
		A0*B4 + A1*B7 + A2*B3 - A3*B2 + A4*B0 - A5*B6 + A6*B5 + A7*B1,
		A0*B5 - A1*B3 + A2*B7 + A3*B1 + A4*B6 + A5*B0 - A6*B4 + A7*B2,
		A0*B6 + A1*B2 - A2*B1 + A3*B7 - A4*B5 + A5*B4 + A6*B0 + A7*B3,
		A0*B7 + A1*B4 + A2*B5 + A3*B6 + A4*B1 + A5*B2 + A6*B3 + A7*B0,
	}
}

// GprPS returns M·I·a; I is central, so this equals a·I·M.
func (m MVec3d[T]) GprPS(ps PScalar3d[T]) MVec3d[T] { return ps.GprMVec(m) }

// Rotate applies the rotor R as R·M·rev(R).
func (m MVec3d[T]) Rotate(r MVec3dE[T]) MVec3d[T] {
	return r.ToMVec3d().Gpr(m).Gpr(r.Rev().ToMVec3d())
}

// Dual returns I·M.
func (m MVec3d[T]) Dual() MVec3d[T] {
	return MVec3d[T]{-m.C7, -m.C4, -m.C5, -m.C6, m.C1, m.C2, m.C3, m.C0}
}

func (m MVec3d[T]) Eq(n MVec3d[T]) bool { return EqualMVec3d(m, n) }

func (m MVec3d[T]) String() string {
	c := m.comps()
	return ga.FormatComps(c[:]...)
}
