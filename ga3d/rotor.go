// SPDX-License-Identifier: MIT

package ga3d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Exp returns exp(B·θ) = cos θ + B̂·sin θ, where B̂ is the unit bivector of
// the plane B. A zero plane fails with ga.ErrDegenerateNorm.
func Exp[T ga.Float](b BiVec3d[T], theta T) (MVec3dE[T], error) {
	u, err := b.Unitized()
	if err != nil {
		return MVec3dE[T]{}, ga.OpError(opExp, err)
	}
	s, c := math.Sincos(float64(theta))

	return NewMVec3dE(Scalar3d[T]{T(c)}, u.Scale(T(s))), nil
}

// Rotor returns exp(B, -θ/2). Applied as R·x·rev(R) it rotates by θ in the
// plane B, turning the first factor of B towards the second (E12 takes e1 to
// e2).
func Rotor[T ga.Float](b BiVec3d[T], theta T) (MVec3dE[T], error) {
	return Exp(b, -theta/2)
}
