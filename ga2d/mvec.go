// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// MVec2d is a full 2-D multivector C0 + C1·e1 + C2·e2 + C3·e12.
type MVec2d[T ga.Float] struct {
	C0, C1, C2, C3 T
}

// NewMVec2d assembles a multivector from its grades.
func NewMVec2d[T ga.Float](s Scalar2d[T], v Vec2d[T], ps PScalar2d[T]) MVec2d[T] {
	return MVec2d[T]{s.v, v.X, v.Y, ps.v}
}

func (m MVec2d[T]) Add(n MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{m.C0 + n.C0, m.C1 + n.C1, m.C2 + n.C2, m.C3 + n.C3}
}

func (m MVec2d[T]) Sub(n MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{m.C0 - n.C0, m.C1 - n.C1, m.C2 - n.C2, m.C3 - n.C3}
}

func (m MVec2d[T]) Neg() MVec2d[T] { return MVec2d[T]{-m.C0, -m.C1, -m.C2, -m.C3} }

func (m MVec2d[T]) Scale(s T) MVec2d[T] {
	return MVec2d[T]{m.C0 * s, m.C1 * s, m.C2 * s, m.C3 * s}
}

func (m MVec2d[T]) Div(s T) (MVec2d[T], error) {
	if err := ga.CheckDivisor(opMVec2dDiv, s); err != nil {
		return MVec2d[T]{}, err
	}

	return m.Scale(1 / s), nil
}

// Gr0 returns the scalar part.
func (m MVec2d[T]) Gr0() Scalar2d[T] { return Scalar2d[T]{m.C0} }

// Gr1 returns the vector part.
func (m MVec2d[T]) Gr1() Vec2d[T] { return Vec2d[T]{m.C1, m.C2} }

// Gr2 returns the bivector (pseudoscalar) part.
func (m MVec2d[T]) Gr2() PScalar2d[T] { return PScalar2d[T]{m.C3} }

// Even returns the even part C0 + C3·e12.
func (m MVec2d[T]) Even() MVec2dE[T] { return MVec2dE[T]{m.C0, m.C3} }

// SqNrm returns the sum of the squared components.
func (m MVec2d[T]) SqNrm() T { return m.C0*m.C0 + m.C1*m.C1 + m.C2*m.C2 + m.C3*m.C3 }

// Nrm returns sqrt(SqNrm).
func (m MVec2d[T]) Nrm() T { return T(math.Sqrt(float64(m.SqNrm()))) }

// Rev negates the bivector part.
func (m MVec2d[T]) Rev() MVec2d[T] { return MVec2d[T]{m.C0, m.C1, m.C2, -m.C3} }

// Conj is the Clifford conjugate: vector and bivector negated.
func (m MVec2d[T]) Conj() MVec2d[T] { return MVec2d[T]{m.C0, -m.C1, -m.C2, -m.C3} }

// Unitized returns m/|m|.
func (m MVec2d[T]) Unitized() (MVec2d[T], error) {
	n := m.Nrm()
	if err := ga.CheckNorm(opMVec2dUnitized, n); err != nil {
		return MVec2d[T]{}, err
	}

	return m.Scale(1 / n), nil
}

// Inv returns conj(m)/(m·conj(m)) where m·conj(m) = C0² - C1² - C2² + C3²
// is a scalar.
func (m MVec2d[T]) Inv() (MVec2d[T], error) {
	d := m.C0*m.C0 - m.C1*m.C1 - m.C2*m.C2 + m.C3*m.C3
	if err := ga.CheckNorm(opMVec2dInv, T(math.Abs(float64(d)))); err != nil {
		return MVec2d[T]{}, err
	}

	return m.Conj().Scale(1 / d), nil
}

// Gpr returns the full geometric product (16 multiply-adds). Prefer the
// specialised products when the operands are known to be sparse.
func (m MVec2d[T]) Gpr(n MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{
		m.C0*n.C0 + m.C1*n.C1 + m.C2*n.C2 - m.C3*n.C3,
		m.C0*n.C1 + m.C1*n.C0 - m.C2*n.C3 + m.C3*n.C2,
		m.C0*n.C2 + m.C1*n.C3 + m.C2*n.C0 - m.C3*n.C1,
		m.C0*n.C3 + m.C1*n.C2 - m.C2*n.C1 + m.C3*n.C0,
	}
}

// GprVec returns M·v.
func (m MVec2d[T]) GprVec(v Vec2d[T]) MVec2d[T] {
	return MVec2d[T]{
		m.C1*v.X + m.C2*v.Y,
		m.C0*v.X + m.C3*v.Y,
		m.C0*v.Y - m.C3*v.X,
		m.C1*v.Y - m.C2*v.X,
	}
}

// GprPS returns M·I·b.
func (m MVec2d[T]) GprPS(ps PScalar2d[T]) MVec2d[T] {
	return MVec2d[T]{-m.C3 * ps.v, -m.C2 * ps.v, m.C1 * ps.v, m.C0 * ps.v}
}

// GprMVecE returns M·E.
func (m MVec2d[T]) GprMVecE(e MVec2dE[T]) MVec2d[T] {
	return MVec2d[T]{
		m.C0*e.C0 - m.C3*e.C1,
		m.C1*e.C0 - m.C2*e.C1,
		m.C1*e.C1 + m.C2*e.C0,
		m.C0*e.C1 + m.C3*e.C0,
	}
}

// Rotate applies the rotor R as R·M·rev(R).
func (m MVec2d[T]) Rotate(r MVec2dE[T]) MVec2d[T] {
	return r.GprMVec(m).GprMVecE(r.Rev())
}

// Dual returns I·M.
func (m MVec2d[T]) Dual() MVec2d[T] { return MVec2d[T]{-m.C3, m.C2, -m.C1, m.C0} }

func (m MVec2d[T]) Eq(n MVec2d[T]) bool { return EqualMVec2d(m, n) }
func (m MVec2d[T]) String() string      { return ga.FormatComps(m.C0, m.C1, m.C2, m.C3) }
