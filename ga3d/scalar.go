// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Scalar3d is the grade-0 element of the 3-D algebra.
type Scalar3d[T ga.Float] struct {
	v T
}

// NewScalar3d wraps v.
func NewScalar3d[T ga.Float](v T) Scalar3d[T] { return Scalar3d[T]{v} }

// FromScalar tags a generic scalar as a 3-D scalar.
func FromScalar[T ga.Float](s ga.Scalar[T]) Scalar3d[T] { return Scalar3d[T]{s.ToVal()} }

func (s Scalar3d[T]) ToVal() T              { return s.v }
func (s Scalar3d[T]) Generic() ga.Scalar[T] { return ga.NewScalar(s.v) }

func (s Scalar3d[T]) Add(t Scalar3d[T]) Scalar3d[T] { return Scalar3d[T]{s.v + t.v} }
func (s Scalar3d[T]) Sub(t Scalar3d[T]) Scalar3d[T] { return Scalar3d[T]{s.v - t.v} }
func (s Scalar3d[T]) Neg() Scalar3d[T]              { return Scalar3d[T]{-s.v} }
func (s Scalar3d[T]) Scale(k T) Scalar3d[T]         { return Scalar3d[T]{s.v * k} }

func (s Scalar3d[T]) Div(k T) (Scalar3d[T], error) {
	if err := ga.CheckDivisor(opScalar3dDiv, k); err != nil {
		return Scalar3d[T]{}, err
	}

	return Scalar3d[T]{s.v / k}, nil
}

// Dual returns I·s.
func (s Scalar3d[T]) Dual() PScalar3d[T] { return PScalar3d[T]{s.v} }

func (s Scalar3d[T]) ToMVec3d() MVec3d[T]   { return MVec3d[T]{C0: s.v} }
func (s Scalar3d[T]) ToMVec3dE() MVec3dE[T] { return MVec3dE[T]{C0: s.v} }

func (s Scalar3d[T]) Eq(t Scalar3d[T]) bool { return ga.Within([]T{s.v}, []T{t.v}) }
func (s Scalar3d[T]) String() string        { return ga.FormatComps(s.v) }

// PScalar3d is the pseudoscalar (grade 3, e123) of the 3-D algebra. It
// commutes with every element and squares to -1.
type PScalar3d[T ga.Float] struct {
	v T
}

// NewPScalar3d wraps v.
func NewPScalar3d[T ga.Float](v T) PScalar3d[T] { return PScalar3d[T]{v} }

func (ps PScalar3d[T]) ToVal() T { return ps.v }

func (ps PScalar3d[T]) Add(q PScalar3d[T]) PScalar3d[T] { return PScalar3d[T]{ps.v + q.v} }
func (ps PScalar3d[T]) Sub(q PScalar3d[T]) PScalar3d[T] { return PScalar3d[T]{ps.v - q.v} }
func (ps PScalar3d[T]) Neg() PScalar3d[T]               { return PScalar3d[T]{-ps.v} }
func (ps PScalar3d[T]) Scale(k T) PScalar3d[T]          { return PScalar3d[T]{ps.v * k} }

func (ps PScalar3d[T]) Div(k T) (PScalar3d[T], error) {
	if err := ga.CheckDivisor(opPScalar3dDiv, k); err != nil {
		return PScalar3d[T]{}, err
	}

	return PScalar3d[T]{ps.v / k}, nil
}

func (ps PScalar3d[T]) SqNrm() T { return ps.v * ps.v }
func (ps PScalar3d[T]) Nrm() T   { return T(math.Abs(float64(ps.v))) }

// Rev negates: (-1)^(3·2/2) = -1.
func (ps PScalar3d[T]) Rev() PScalar3d[T] { return PScalar3d[T]{-ps.v} }

// Inv returns rev(ps)/|ps|² = -ps/|ps|².
func (ps PScalar3d[T]) Inv() (PScalar3d[T], error) {
	sq := ps.SqNrm()
	if err := ga.CheckNorm(opPScalar3dInv, sq); err != nil {
		return PScalar3d[T]{}, err
	}

	return PScalar3d[T]{-ps.v / sq}, nil
}

// Dual returns I·ps = -ps as a scalar.
func (ps PScalar3d[T]) Dual() Scalar3d[T] { return Scalar3d[T]{-ps.v} }

// Gpr returns A·B = -ab.
func (ps PScalar3d[T]) Gpr(q PScalar3d[T]) Scalar3d[T] { return Scalar3d[T]{-ps.v * q.v} }

// GprVec returns A·v, a bivector.
func (ps PScalar3d[T]) GprVec(v Vec3d[T]) BiVec3d[T] {
	return BiVec3d[T]{ps.v * v.X, ps.v * v.Y, ps.v * v.Z}
}

// GprBiVec returns A·B, a vector.
func (ps PScalar3d[T]) GprBiVec(b BiVec3d[T]) Vec3d[T] {
	return Vec3d[T]{-ps.v * b.X, -ps.v * b.Y, -ps.v * b.Z}
}

// GprMVecE returns A·E, an odd multivector.
func (ps PScalar3d[T]) GprMVecE(e MVec3dE[T]) MVec3dU[T] {
	return MVec3dU[T]{-ps.v * e.C1, -ps.v * e.C2, -ps.v * e.C3, ps.v * e.C0}
}

// GprMVecU returns A·U, an even multivector.
func (ps PScalar3d[T]) GprMVecU(u MVec3dU[T]) MVec3dE[T] {
	return MVec3dE[T]{-ps.v * u.C3, ps.v * u.C0, ps.v * u.C1, ps.v * u.C2}
}

// GprMVec returns A·M.
func (ps PScalar3d[T]) GprMVec(m MVec3d[T]) MVec3d[T] {
	a := ps.v
	return MVec3d[T]{-a * m.C7, -a * m.C4, -a * m.C5, -a * m.C6, a * m.C1, a * m.C2, a * m.C3, a * m.C0}
}

func (ps PScalar3d[T]) ToMVec3d() MVec3d[T]   { return MVec3d[T]{C7: ps.v} }
func (ps PScalar3d[T]) ToMVec3dU() MVec3dU[T] { return MVec3dU[T]{C3: ps.v} }

func (ps PScalar3d[T]) Eq(q PScalar3d[T]) bool { return ga.Within([]T{ps.v}, []T{q.v}) }
func (ps PScalar3d[T]) String() string         { return ga.FormatComps(ps.v) }
