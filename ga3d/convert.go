// SPDX-License-Identifier: MIT

package ga3d

import "github.com/katalvlaran/lvlga/ga"

// Mixed-precision equality: every component pair must differ by less than
// ga.Tolerance[T, U]().

func EqualVec3d[T, U ga.Float](a Vec3d[T], b Vec3d[U]) bool {
	return ga.Within([]T{a.X, a.Y, a.Z}, []U{b.X, b.Y, b.Z})
}

func EqualBiVec3d[T, U ga.Float](a BiVec3d[T], b BiVec3d[U]) bool {
	return ga.Within([]T{a.X, a.Y, a.Z}, []U{b.X, b.Y, b.Z})
}

func EqualPScalar3d[T, U ga.Float](a PScalar3d[T], b PScalar3d[U]) bool {
	return ga.Within([]T{a.v}, []U{b.v})
}

func EqualMVec3d[T, U ga.Float](a MVec3d[T], b MVec3d[U]) bool {
	ca, cb := a.comps(), b.comps()
	return ga.Within(ca[:], cb[:])
}

func EqualMVec3dE[T, U ga.Float](a MVec3dE[T], b MVec3dE[U]) bool {
	return ga.Within([]T{a.C0, a.C1, a.C2, a.C3}, []U{b.C0, b.C1, b.C2, b.C3})
}

func EqualMVec3dU[T, U ga.Float](a MVec3dU[T], b MVec3dU[U]) bool {
	return ga.Within([]T{a.C0, a.C1, a.C2, a.C3}, []U{b.C0, b.C1, b.C2, b.C3})
}

// Precision conversion; the target precision is the explicit type argument.

func ConvertScalar3d[U, T ga.Float](s Scalar3d[T]) Scalar3d[U]    { return Scalar3d[U]{U(s.v)} }
func ConvertPScalar3d[U, T ga.Float](p PScalar3d[T]) PScalar3d[U] { return PScalar3d[U]{U(p.v)} }
func ConvertVec3d[U, T ga.Float](v Vec3d[T]) Vec3d[U]             { return Vec3d[U]{U(v.X), U(v.Y), U(v.Z)} }
func ConvertBiVec3d[U, T ga.Float](b BiVec3d[T]) BiVec3d[U]       { return BiVec3d[U]{U(b.X), U(b.Y), U(b.Z)} }

func ConvertMVec3d[U, T ga.Float](m MVec3d[T]) MVec3d[U] {
	var c [8]U
	for i, x := range m.comps() {
		c[i] = U(x)
	}

	return mvec3dOf(c)
}

func ConvertMVec3dE[U, T ga.Float](e MVec3dE[T]) MVec3dE[U] {
	return MVec3dE[U]{U(e.C0), U(e.C1), U(e.C2), U(e.C3)}
}

func ConvertMVec3dU[U, T ga.Float](u MVec3dU[T]) MVec3dU[U] {
	return MVec3dU[U]{U(u.C0), U(u.C1), U(u.C2), U(u.C3)}
}
