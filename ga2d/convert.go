// SPDX-License-Identifier: MIT

package ga2d

import "github.com/katalvlaran/lvlga/ga"

// Mixed-precision equality: every component pair must differ by less than
// ga.Tolerance[T, U]().

func EqualVec2d[T, U ga.Float](a Vec2d[T], b Vec2d[U]) bool {
	return ga.Within([]T{a.X, a.Y}, []U{b.X, b.Y})
}

func EqualMVec2d[T, U ga.Float](a MVec2d[T], b MVec2d[U]) bool {
	return ga.Within([]T{a.C0, a.C1, a.C2, a.C3}, []U{b.C0, b.C1, b.C2, b.C3})
}

func EqualMVec2dE[T, U ga.Float](a MVec2dE[T], b MVec2dE[U]) bool {
	return ga.Within([]T{a.C0, a.C1}, []U{b.C0, b.C1})
}

func EqualMCplx2d[T, U ga.Float](a MCplx2d[T], b MCplx2d[U]) bool {
	return ga.Within([]T{a.C0, a.C1}, []U{b.C0, b.C1})
}

func EqualPScalar2d[T, U ga.Float](a PScalar2d[T], b PScalar2d[U]) bool {
	return ga.Within([]T{a.v}, []U{b.v})
}

// Precision conversion. The target precision is the explicit type argument:
//
//	v32 := ga2d.ConvertVec2d[float32](v64)

func ConvertScalar2d[U, T ga.Float](s Scalar2d[T]) Scalar2d[U]    { return Scalar2d[U]{U(s.v)} }
func ConvertPScalar2d[U, T ga.Float](p PScalar2d[T]) PScalar2d[U] { return PScalar2d[U]{U(p.v)} }
func ConvertVec2d[U, T ga.Float](v Vec2d[T]) Vec2d[U]             { return Vec2d[U]{U(v.X), U(v.Y)} }

func ConvertMVec2d[U, T ga.Float](m MVec2d[T]) MVec2d[U] {
	return MVec2d[U]{U(m.C0), U(m.C1), U(m.C2), U(m.C3)}
}

func ConvertMVec2dE[U, T ga.Float](e MVec2dE[T]) MVec2dE[U] {
	return MVec2dE[U]{U(e.C0), U(e.C1)}
}

func ConvertMCplx2d[U, T ga.Float](z MCplx2d[T]) MCplx2d[U] {
	return MCplx2d[U]{U(z.C0), U(z.C1)}
}
