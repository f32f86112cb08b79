// SPDX-License-Identifier: MIT

package ga3d_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/katalvlaran/lvlga/ga3d"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func vcomps(v vec) []float64 { return []float64{v.X, v.Y, v.Z} }

func requireNearVec(t *testing.T, want, got vec) {
	t.Helper()
	require.Truef(t, floats.EqualApprox(vcomps(want), vcomps(got), crossTol), "want %v, got %v", want, got)
}

func TestVec3d_SpaceLaws(t *testing.T) {
	r := newRand()
	var zero vec
	for i := 0; i < samples; i++ {
		u, v, w := randVec(r), randVec(r), randVec(r)
		s, q := rnd(r), rnd(r)

		requireEq(t, u.Add(v), v.Add(u))
		requireNearVec(t, u.Add(v).Add(w), u.Add(v.Add(w)))
		requireEq(t, u, u.Add(zero))
		requireEq(t, zero, u.Add(u.Neg()))
		requireNearVec(t, u.Scale(s).Add(v.Scale(s)), u.Add(v).Scale(s))
		requireNearVec(t, u.Scale(s).Add(u.Scale(q)), u.Scale(s+q))
		requireEq(t, u, u.Scale(1))

		require.InDelta(t, s*u.Dot(v), u.Scale(s).Dot(v), crossTol)
		require.InDelta(t, u.Dot(w)+v.Dot(w), u.Add(v).Dot(w), crossTol)
		require.InDelta(t, u.Dot(v), v.Dot(u), crossTol)
		requireEq(t, u.Wdg(v).Neg(), v.Wdg(u))
	}
}

// TestVec3d_WedgeSine checks |wdg(a,b)| == sin(angle(a,b)) for unit vectors.
func TestVec3d_WedgeSine(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		a, err := randVec(r).Unitized()
		require.NoError(t, err)
		b, err := randVec(r).Unitized()
		require.NoError(t, err)

		theta, err := a.Angle(b)
		require.NoError(t, err)
		require.InDelta(t, math.Sin(theta), a.Wdg(b).Nrm(), 1e-9)
		require.InDelta(t, math.Cos(theta), a.Dot(b), 1e-9)
	}

	a, err := ga3d.E1.Angle(vec{1, 1, 0})
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, a, crossTol)
}

// TestVec3d_ProductDecomposition checks gpr(a,b) == dot + wdg for vectors and
// the grade-1/grade-3 split for vector-bivector pairs.
func TestVec3d_ProductDecomposition(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		v, w, b := randVec(r), randVec(r), randBiVec(r)

		requireEq(t, ga3d.NewMVec3dE(ga3d.NewScalar3d(v.Dot(w)), v.Wdg(w)), v.Gpr(w))
		requireEq(t, ga3d.NewMVec3dU(v.DotBiVec(b), v.WdgBiVec(b)), v.GprBiVec(b))
		requireEq(t, ga3d.NewMVec3dU(b.DotVec(v), b.WdgVec(v)), b.GprVec(v))
	}
}

func TestVec3d_ProjectReject(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		v, u, b := randVec(r), randVec(r), randBiVec(r)
		if u.Nrm() < 0.1 || b.Nrm() < 0.1 {
			continue
		}

		p, err := v.ProjectOnto(u)
		require.NoError(t, err)
		q, err := v.RejectFrom(u)
		require.NoError(t, err)
		requireNearVec(t, v, p.Add(q))
		require.InDelta(t, 0, p.Dot(q), crossTol)
		require.InDelta(t, 0, q.Dot(u), crossTol)

		un, err := u.Unitized()
		require.NoError(t, err)
		requireNearVec(t, p, v.ProjectOntoUnitized(un))
		requireNearVec(t, q, v.RejectFromUnitized(un))

		// vector and plane
		pb, err := v.ProjectOntoBiVec(b)
		require.NoError(t, err)
		qb, err := v.RejectFromBiVec(b)
		require.NoError(t, err)
		requireNearVec(t, v, pb.Add(qb))
		require.InDelta(t, 0, pb.WdgBiVec(b).ToVal(), crossTol) // lies in the plane
		require.InDelta(t, 0, qb.DotBiVec(b).Nrm(), crossTol)   // normal to the plane

		bn, err := b.Unitized()
		require.NoError(t, err)
		requireNearVec(t, pb, v.ProjectOntoBiVecUnitized(bn))
		requireNearVec(t, qb, v.RejectFromBiVecUnitized(bn))
	}

	pb, err := vec{1, 2, 3}.ProjectOntoBiVec(ga3d.E12)
	require.NoError(t, err)
	requireEq(t, vec{1, 2, 0}, pb)
	qb, err := vec{1, 2, 3}.RejectFromBiVec(ga3d.E12)
	require.NoError(t, err)
	requireEq(t, vec{0, 0, 3}, qb)
}

func TestVec3d_Angles(t *testing.T) {
	// 45° out of the e12 plane
	a, err := vec{1, 0, 1}.AngleBiVec(ga3d.E12)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, a, 1e-12)

	a, err = ga3d.E12.AngleVec(ga3d.E3)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, 1e-12)

	// planes at right angles, and the same plane in either orientation
	a, err = ga3d.E12.Angle(ga3d.E23)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, 1e-12)
	a, err = ga3d.E12.Angle(ga3d.E12.Neg())
	require.NoError(t, err)
	require.InDelta(t, 0, a, 1e-12)
}

func TestVec3d_Reflections(t *testing.T) {
	v := vec{1, 2, 3}

	h, err := v.ReflectOnHyp(vec{0, 0, 2})
	require.NoError(t, err)
	requireEq(t, vec{1, 2, -3}, h)

	l, err := v.ReflectOnVec(vec{0, 0, 2})
	require.NoError(t, err)
	requireEq(t, vec{-1, -2, 3}, l)

	p, err := v.ReflectOn(ga3d.E12.Scale(3))
	require.NoError(t, err)
	requireEq(t, vec{1, 2, -3}, p)

	bp, err := ga3d.E23.ReflectOn(ga3d.E12)
	require.NoError(t, err)
	requireEq(t, ga3d.E23.Neg(), bp)
	bp, err = ga3d.E12.ReflectOn(ga3d.E12)
	require.NoError(t, err)
	requireEq(t, ga3d.E12, bp)
}

func TestVec3d_Errors(t *testing.T) {
	tiny := vec{1e-17, 0, 0}
	tinyB := bivec{0, 1e-17, 0}

	_, err := tiny.Unitized()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = tiny.Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = tiny.Angle(ga3d.E1)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.E1.AngleBiVec(tinyB)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = tinyB.Angle(ga3d.E12)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = tinyB.Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = tinyB.Unitized()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.E1.ProjectOntoBiVec(tinyB)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.E1.RejectFromBiVec(tinyB)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.E1.ReflectOn(tinyB)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.E12.ReflectOn(tinyB)
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = ga3d.NewPScalar3d(0.0).Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)

	_, err = vec{1, 2, 3}.Div(0)
	require.ErrorIs(t, err, ga.ErrDivisionByZero)
	_, err = bivec{1, 2, 3}.Div(0)
	require.ErrorIs(t, err, ga.ErrDivisionByZero)
	require.ErrorContains(t, err, "BiVec3d.Div")
	_, err = ga3d.NewScalar3d(1.0).Div(0)
	require.ErrorIs(t, err, ga.ErrDivisionByZero)

	// a well-conditioned value passes the same checks
	vi, err := vec{0, 2, 0}.Inv()
	require.NoError(t, err)
	requireEq(t, vec{0, 0.5, 0}, vi)
	bi, err := bivec{0, 2, 0}.Inv()
	require.NoError(t, err)
	requireEq(t, bivec{0, -0.5, 0}, bi)
	requireEq(t, even{C0: 1}, bivec{0, 2, 0}.Gpr(bi))
}
