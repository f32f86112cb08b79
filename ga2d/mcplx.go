// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// MCplx2d is a complex number C0 + C1·e12 whose real part is tagged with the
// generic ga.Scalar. It shares the algebra of MVec2dE and converts to and
// from Go's complex128.
type MCplx2d[T ga.Float] struct {
	C0, C1 T
}

// NewMCplx2d builds re + im·e12.
func NewMCplx2d[T ga.Float](re ga.Scalar[T], im PScalar2d[T]) MCplx2d[T] {
	return MCplx2d[T]{re.ToVal(), im.v}
}

// MCplx2dFromComplex converts a complex128 (real ↦ C0, imag ↦ C1).
func MCplx2dFromComplex[T ga.Float](c complex128) MCplx2d[T] {
	return MCplx2d[T]{T(real(c)), T(imag(c))}
}

// ToComplex returns z as a complex128.
func (z MCplx2d[T]) ToComplex() complex128 { return complex(float64(z.C0), float64(z.C1)) }

func (z MCplx2d[T]) Add(w MCplx2d[T]) MCplx2d[T] { return MCplx2d[T]{z.C0 + w.C0, z.C1 + w.C1} }
func (z MCplx2d[T]) Sub(w MCplx2d[T]) MCplx2d[T] { return MCplx2d[T]{z.C0 - w.C0, z.C1 - w.C1} }
func (z MCplx2d[T]) Neg() MCplx2d[T]             { return MCplx2d[T]{-z.C0, -z.C1} }
func (z MCplx2d[T]) Scale(s T) MCplx2d[T]        { return MCplx2d[T]{z.C0 * s, z.C1 * s} }

func (z MCplx2d[T]) Div(s T) (MCplx2d[T], error) {
	if err := ga.CheckDivisor(opCplxDiv, s); err != nil {
		return MCplx2d[T]{}, err
	}

	return z.Scale(1 / s), nil
}

// Gr0 returns the real part.
func (z MCplx2d[T]) Gr0() ga.Scalar[T] { return ga.NewScalar(z.C0) }

// Gr2 returns the imaginary part as a pseudoscalar.
func (z MCplx2d[T]) Gr2() PScalar2d[T] { return PScalar2d[T]{z.C1} }

// Gpr is complex multiplication.
func (z MCplx2d[T]) Gpr(w MCplx2d[T]) MCplx2d[T] {
	return MCplx2d[T]{z.C0*w.C0 - z.C1*w.C1, z.C0*w.C1 + z.C1*w.C0}
}

func (z MCplx2d[T]) SqNrm() T { return z.C0*z.C0 + z.C1*z.C1 }
func (z MCplx2d[T]) Nrm() T   { return T(math.Sqrt(float64(z.SqNrm()))) }

// Rev is the complex conjugate.
func (z MCplx2d[T]) Rev() MCplx2d[T] { return MCplx2d[T]{z.C0, -z.C1} }

func (z MCplx2d[T]) Unitized() (MCplx2d[T], error) {
	n := z.Nrm()
	if err := ga.CheckNorm(opCplxUnitized, n); err != nil {
		return MCplx2d[T]{}, err
	}

	return z.Scale(1 / n), nil
}

func (z MCplx2d[T]) Inv() (MCplx2d[T], error) {
	sq := z.SqNrm()
	if err := ga.CheckNorm(opCplxInv, sq); err != nil {
		return MCplx2d[T]{}, err
	}

	return z.Rev().Scale(1 / sq), nil
}

// AngleToRe returns arg(z) in [-π, π], 0 for z == 0.
func (z MCplx2d[T]) AngleToRe() T { return angleToRe(z.C0, z.C1) }

// ToMVec2dE retags z as an even multivector.
func (z MCplx2d[T]) ToMVec2dE() MVec2dE[T] { return MVec2dE[T]{z.C0, z.C1} }

// ToMVec2d embeds z into a full multivector.
func (z MCplx2d[T]) ToMVec2d() MVec2d[T] { return MVec2d[T]{C0: z.C0, C3: z.C1} }

func (z MCplx2d[T]) Eq(w MCplx2d[T]) bool { return EqualMCplx2d(z, w) }
func (z MCplx2d[T]) String() string       { return ga.FormatComps(z.C0, z.C1) }
