// SPDX-License-Identifier: MIT

package ga

import "math"

const opScalarDiv = "Scalar.Div"

// Scalar is the algebra-independent grade-0 wrapper. It is a distinct nominal
// type from the algebra specific scalars (ga2d.Scalar2d, ga3d.Scalar3d) and
// from every pseudoscalar; conversions between them are explicit.
type Scalar[T Float] struct {
	v T
}

// NewScalar wraps v.
func NewScalar[T Float](v T) Scalar[T] { return Scalar[T]{v: v} }

// ToVal returns the wrapped value.
func (s Scalar[T]) ToVal() T { return s.v }

func (s Scalar[T]) Add(t Scalar[T]) Scalar[T] { return Scalar[T]{s.v + t.v} }
func (s Scalar[T]) Sub(t Scalar[T]) Scalar[T] { return Scalar[T]{s.v - t.v} }
func (s Scalar[T]) Neg() Scalar[T]            { return Scalar[T]{-s.v} }
func (s Scalar[T]) Scale(k T) Scalar[T]       { return Scalar[T]{s.v * k} }

// Div divides by k; k == 0 yields ErrDivisionByZero.
func (s Scalar[T]) Div(k T) (Scalar[T], error) {
	if err := CheckDivisor(opScalarDiv, k); err != nil {
		return Scalar[T]{}, err
	}

	return Scalar[T]{s.v / k}, nil
}

// SqNrm returns s².
func (s Scalar[T]) SqNrm() T { return s.v * s.v }

// Nrm returns |s|.
func (s Scalar[T]) Nrm() T { return T(math.Abs(float64(s.v))) }

// Eq reports approximate equality.
func (s Scalar[T]) Eq(t Scalar[T]) bool { return Within([]T{s.v}, []T{t.v}) }

func (s Scalar[T]) String() string { return FormatComps(s.v) }

// ConvertScalar changes the precision of s.
func ConvertScalar[U, T Float](s Scalar[T]) Scalar[U] { return Scalar[U]{U(s.v)} }
