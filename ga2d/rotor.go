// SPDX-License-Identifier: MIT

package ga2d

import (
	"math"

	"github.com/katalvlaran/lvlga/ga"
)

// Exp returns exp(I·θ) = cos θ + I·sin θ. The pseudoscalar argument only
// names the plane; in 2-D there is exactly one.
func Exp[T ga.Float](_ PScalar2d[T], theta T) MVec2dE[T] {
	s, c := math.Sincos(float64(theta))
	return MVec2dE[T]{T(c), T(s)}
}

// Rotor returns exp(I, -θ/2). Applied as R·v·rev(R) it rotates by +θ
// (counter-clockwise from e1 towards e2).
func Rotor[T ga.Float](i PScalar2d[T], theta T) MVec2dE[T] {
	return Exp(i, -theta/2)
}
