// SPDX-License-Identifier: MIT

package ga

import (
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// Float is the set of component types a GA value can be instantiated with.
type Float interface {
	~float32 | ~float64
}

// Value is the process-wide default precision. Predefined constants of the
// ga2d and ga3d packages are instantiated with Value.
type Value = float64

const (
	eps32 = 0x1p-23 // machine epsilon of float32
	eps64 = 0x1p-52 // machine epsilon of float64

	// equalityFactor scales the larger machine epsilon in approximate equality.
	equalityFactor = 5
)

// Eps is the shared tolerance for user-level comparisons at Value precision
// (twice the machine epsilon).
const Eps Value = 2 * eps64

// is32 reports whether T is a 32-bit float.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(eps32)
	}

	return T(eps64)
}

// Tolerance returns 5·max(ε(T), ε(U)), the per-component bound of
// approximate equality between values of precision T and U.
func Tolerance[T, U Float]() float64 {
	return equalityFactor * math.Max(float64(Epsilon[T]()), float64(Epsilon[U]()))
}

// Within reports whether a and b have the same length and every paired
// component differs by less than Tolerance[T, U]().
func Within[T, U Float](a []T, b []U) bool {
	if len(a) != len(b) {
		return false
	}
	tol := Tolerance[T, U]()
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) >= tol {
			return false
		}
	}

	return true
}

// Clamp limits x to [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// FormatComps renders components as "(c0,c1,...)" with the shortest
// representation that round-trips at the precision of T.
func FormatComps[T Float](cs ...T) string {
	bits := 64
	if is32[T]() {
		bits = 32
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range cs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(c), 'g', -1, bits))
	}
	sb.WriteByte(')')

	return sb.String()
}
