// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Scalar2d is the grade-0 element of the 2-D algebra.
type Scalar2d[T ga.Float] struct {
	v T
}

// NewScalar2d wraps v.
func NewScalar2d[T ga.Float](v T) Scalar2d[T] { return Scalar2d[T]{v} }

// FromScalar tags a generic scalar as a 2-D scalar.
func FromScalar[T ga.Float](s ga.Scalar[T]) Scalar2d[T] { return Scalar2d[T]{s.ToVal()} }

// ToVal returns the wrapped value.
func (s Scalar2d[T]) ToVal() T { return s.v }

// Generic drops the 2-D tag.
func (s Scalar2d[T]) Generic() ga.Scalar[T] { return ga.NewScalar(s.v) }

func (s Scalar2d[T]) Add(t Scalar2d[T]) Scalar2d[T] { return Scalar2d[T]{s.v + t.v} }
func (s Scalar2d[T]) Sub(t Scalar2d[T]) Scalar2d[T] { return Scalar2d[T]{s.v - t.v} }
func (s Scalar2d[T]) Neg() Scalar2d[T]              { return Scalar2d[T]{-s.v} }
func (s Scalar2d[T]) Scale(k T) Scalar2d[T]         { return Scalar2d[T]{s.v * k} }

func (s Scalar2d[T]) Div(k T) (Scalar2d[T], error) {
	if err := ga.CheckDivisor(opScalar2dDiv, k); err != nil {
		return Scalar2d[T]{}, err
	}

	return Scalar2d[T]{s.v / k}, nil
}

// Dual returns I·s.
func (s Scalar2d[T]) Dual() PScalar2d[T] { return PScalar2d[T]{s.v} }

// ToMVec2d embeds s into a full multivector.
func (s Scalar2d[T]) ToMVec2d() MVec2d[T] { return MVec2d[T]{C0: s.v} }

// ToMVec2dE embeds s into the even subalgebra.
func (s Scalar2d[T]) ToMVec2dE() MVec2dE[T] { return MVec2dE[T]{C0: s.v} }

func (s Scalar2d[T]) Eq(t Scalar2d[T]) bool { return ga.Within([]T{s.v}, []T{t.v}) }
func (s Scalar2d[T]) String() string        { return ga.FormatComps(s.v) }

// PScalar2d is the pseudoscalar (grade 2, e12) of the 2-D algebra.
type PScalar2d[T ga.Float] struct {
	v T
}

// NewPScalar2d wraps v.
func NewPScalar2d[T ga.Float](v T) PScalar2d[T] { return PScalar2d[T]{v} }

// ToVal returns the wrapped value.
func (ps PScalar2d[T]) ToVal() T { return ps.v }

func (ps PScalar2d[T]) Add(q PScalar2d[T]) PScalar2d[T] { return PScalar2d[T]{ps.v + q.v} }
func (ps PScalar2d[T]) Sub(q PScalar2d[T]) PScalar2d[T] { return PScalar2d[T]{ps.v - q.v} }
func (ps PScalar2d[T]) Neg() PScalar2d[T]               { return PScalar2d[T]{-ps.v} }
func (ps PScalar2d[T]) Scale(k T) PScalar2d[T]          { return PScalar2d[T]{ps.v * k} }

func (ps PScalar2d[T]) Div(k T) (PScalar2d[T], error) {
	if err := ga.CheckDivisor(opPScalar2dDiv, k); err != nil {
		return PScalar2d[T]{}, err
	}

	return PScalar2d[T]{ps.v / k}, nil
}

// SqNrm returns ps².
func (ps PScalar2d[T]) SqNrm() T { return ps.v * ps.v }

// Nrm returns |ps|.
func (ps PScalar2d[T]) Nrm() T { return T(math.Abs(float64(ps.v))) }

// Rev negates the bivector: (-1)^(2·1/2) = -1.
func (ps PScalar2d[T]) Rev() PScalar2d[T] { return PScalar2d[T]{-ps.v} }

// Inv returns rev(ps)/|ps|² = -ps/|ps|².
func (ps PScalar2d[T]) Inv() (PScalar2d[T], error) {
	sq := ps.SqNrm()
	if err := ga.CheckNorm(opPScalar2dInv, sq); err != nil {
		return PScalar2d[T]{}, err
	}

	return PScalar2d[T]{-ps.v / sq}, nil
}

// Dual returns I·ps = -ps as a scalar.
func (ps PScalar2d[T]) Dual() Scalar2d[T] { return Scalar2d[T]{-ps.v} }

// Gpr returns A·B = -ab (I² = -1).
func (ps PScalar2d[T]) Gpr(q PScalar2d[T]) Scalar2d[T] { return Scalar2d[T]{-ps.v * q.v} }

// GprVec returns A·v = A·(y, -x).
func (ps PScalar2d[T]) GprVec(v Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{ps.v * v.Y, -ps.v * v.X}
}

// DotVec equals GprVec: the product of e12 with a vector has grade 1 only.
func (ps PScalar2d[T]) DotVec(v Vec2d[T]) Vec2d[T] { return ps.GprVec(v) }

// GprMVec returns A·M.
func (ps PScalar2d[T]) GprMVec(m MVec2d[T]) MVec2d[T] {
	return MVec2d[T]{-ps.v * m.C3, ps.v * m.C2, -ps.v * m.C1, ps.v * m.C0}
}

// GprMVecE returns A·E.
func (ps PScalar2d[T]) GprMVecE(e MVec2dE[T]) MVec2dE[T] {
	return MVec2dE[T]{-ps.v * e.C1, ps.v * e.C0}
}

// ToMVec2d embeds ps into a full multivector.
func (ps PScalar2d[T]) ToMVec2d() MVec2d[T] { return MVec2d[T]{C3: ps.v} }

// ToMVec2dE embeds ps into the even subalgebra.
func (ps PScalar2d[T]) ToMVec2dE() MVec2dE[T] { return MVec2dE[T]{C1: ps.v} }

func (ps PScalar2d[T]) Eq(q PScalar2d[T]) bool { return ga.Within([]T{ps.v}, []T{q.v}) }
func (ps PScalar2d[T]) String() string         { return ga.FormatComps(ps.v) }
