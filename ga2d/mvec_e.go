// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// MVec2dE is a multivector of the even subalgebra C0 + C1·e12.
// It is closed under addition and the geometric product and is isomorphic to
// the complex numbers; rotors of the plane live here.
type MVec2dE[T ga.Float] struct {
	C0, C1 T
}

// NewMVec2dE builds s + ps, the rotor-building case.
func NewMVec2dE[T ga.Float](s Scalar2d[T], ps PScalar2d[T]) MVec2dE[T] {
	return MVec2dE[T]{s.v, ps.v}
}

func (e MVec2dE[T]) Add(f MVec2dE[T]) MVec2dE[T] { return MVec2dE[T]{e.C0 + f.C0, e.C1 + f.C1} }
func (e MVec2dE[T]) Sub(f MVec2dE[T]) MVec2dE[T] { return MVec2dE[T]{e.C0 - f.C0, e.C1 - f.C1} }
func (e MVec2dE[T]) Neg() MVec2dE[T]             { return MVec2dE[T]{-e.C0, -e.C1} }
func (e MVec2dE[T]) Scale(s T) MVec2dE[T]        { return MVec2dE[T]{e.C0 * s, e.C1 * s} }

func (e MVec2dE[T]) Div(s T) (MVec2dE[T], error) {
	if err := ga.CheckDivisor(opEvenDiv, s); err != nil {
		return MVec2dE[T]{}, err
	}

	return e.Scale(1 / s), nil
}

// Gr0 returns the scalar part.
func (e MVec2dE[T]) Gr0() Scalar2d[T] { return Scalar2d[T]{e.C0} }

// Gr1 is always zero for the even subalgebra.
func (e MVec2dE[T]) Gr1() Vec2d[T] { return Vec2d[T]{} }

// Gr2 returns the pseudoscalar part.
func (e MVec2dE[T]) Gr2() PScalar2d[T] { return PScalar2d[T]{e.C1} }

// SqNrm returns |e|² = e·rev(e) = C0² + C1².
func (e MVec2dE[T]) SqNrm() T { return e.C0*e.C0 + e.C1*e.C1 }

func (e MVec2dE[T]) Nrm() T { return T(math.Sqrt(float64(e.SqNrm()))) }

// Rev is the complex conjugate.
func (e MVec2dE[T]) Rev() MVec2dE[T] { return MVec2dE[T]{e.C0, -e.C1} }

// Conj coincides with Rev on the even subalgebra.
func (e MVec2dE[T]) Conj() MVec2dE[T] { return e.Rev() }

func (e MVec2dE[T]) Unitized() (MVec2dE[T], error) {
	n := e.Nrm()
	if err := ga.CheckNorm(opEvenUnitized, n); err != nil {
		return MVec2dE[T]{}, err
	}

	return e.Scale(1 / n), nil
}

// Inv returns rev(e)/|e|².
func (e MVec2dE[T]) Inv() (MVec2dE[T], error) {
	sq := e.SqNrm()
	if err := ga.CheckNorm(opEvenInv, sq); err != nil {
		return MVec2dE[T]{}, err
	}

	return e.Rev().Scale(1 / sq), nil
}

// AngleToRe returns the argument of e w.r.t. the real (scalar) axis in
// [-π, π]. The zero element maps to 0.
func (e MVec2dE[T]) AngleToRe() T { return angleToRe(e.C0, e.C1) }

func angleToRe[T ga.Float](re, im T) T {
	switch {
	case re > 0:
		// quadrant I and IV
		return T(math.Atan(float64(im / re)))
	case re < 0 && im >= 0:
		return T(math.Atan(float64(im/re)) + math.Pi)
	case re < 0 && im < 0:
		return T(math.Atan(float64(im/re)) - math.Pi)
	case im > 0:
		return T(math.Pi / 2)
	case im < 0:
		return T(-math.Pi / 2)
	}

	return 0
}

// Gpr returns the complex product.
func (e MVec2dE[T]) Gpr(f MVec2dE[T]) MVec2dE[T] {
	return MVec2dE[T]{e.C0*f.C0 - e.C1*f.C1, e.C0*f.C1 + e.C1*f.C0}
}

// GprVec returns E·v, a vector.
func (e MVec2dE[T]) GprVec(v Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{e.C0*v.X + e.C1*v.Y, e.C0*v.Y - e.C1*v.X}
}

// GprMVec returns E·M.
func (e MVec2dE[T]) GprMVec(m MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{
		e.C0*m.C0 - e.C1*m.C3,
		e.C0*m.C1 + e.C1*m.C2,
		e.C0*m.C2 - e.C1*m.C1,
		e.C0*m.C3 + e.C1*m.C0,
	}
}

// GprPS returns E·I·b (E and I commute).
func (e MVec2dE[T]) GprPS(ps PScalar2d[T]) MVec2dE[T] {
	return MVec2dE[T]{-e.C1 * ps.v, e.C0 * ps.v}
}

// Dual returns I·E.
func (e MVec2dE[T]) Dual() MVec2dE[T] { return MVec2dE[T]{-e.C1, e.C0} }

// ToMVec2d embeds e into a full multivector.
func (e MVec2dE[T]) ToMVec2d() MVec2d[T] { return MVec2d[T]{C0: e.C0, C3: e.C1} }

// ToMCplx2d retags e as a complex number.
func (e MVec2dE[T]) ToMCplx2d() MCplx2d[T] { return MCplx2d[T]{e.C0, e.C1} }

func (e MVec2dE[T]) Eq(f MVec2dE[T]) bool { return EqualMVec2dE(e, f) }
func (e MVec2dE[T]) String() string       { return ga.FormatComps(e.C0, e.C1) }
