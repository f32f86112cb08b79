// SPDX-License-Identifier: MIT

package ga2d_test

import (
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/katalvlaran/lvlga/ga2d"
	"github.com/stretchr/testify/require"
)

// TestMVec2d_SpecialisedProducts compares every sparse product against the
// full 16-term geometric product of the embedded operands.
func TestMVec2d_SpecialisedProducts(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		m, n := randMVec(r), randMVec(r)
		v, w := randVec(r), randVec(r)
		e, f := randEven(r), randEven(r)
		ps, qs := randPS(r), randPS(r)

		mv, ev, pv := v.ToMVec2d(), e.ToMVec2d(), ps.ToMVec2d()

		// multivector · x
		requireNear(t, compsMVec(m.Gpr(mv)), compsMVec(m.GprVec(v)))
		requireNear(t, compsMVec(m.Gpr(ev)), compsMVec(m.GprMVecE(e)))
		requireNear(t, compsMVec(m.Gpr(pv)), compsMVec(m.GprPS(ps)))

		// x · multivector
		requireNear(t, compsMVec(mv.Gpr(m)), compsMVec(v.GprMVec(m)))
		requireNear(t, compsMVec(ev.Gpr(m)), compsMVec(e.GprMVec(m)))
		requireNear(t, compsMVec(pv.Gpr(m)), compsMVec(ps.GprMVec(m)))

		// vector products
		requireNear(t, compsMVec(mv.Gpr(w.ToMVec2d())), compsMVec(v.Gpr(w).ToMVec2d()))
		requireNear(t, compsMVec(mv.Gpr(ev)), compsMVec(v.GprMVecE(e).ToMVec2d()))
		requireNear(t, compsMVec(mv.Gpr(pv)), compsMVec(v.GprPS(ps).ToMVec2d()))

		// even products
		requireNear(t, compsMVec(ev.Gpr(f.ToMVec2d())), compsMVec(e.Gpr(f).ToMVec2d()))
		requireNear(t, compsMVec(ev.Gpr(mv)), compsMVec(e.GprVec(v).ToMVec2d()))
		requireNear(t, compsMVec(ev.Gpr(pv)), compsMVec(e.GprPS(ps).ToMVec2d()))

		// pseudoscalar products
		requireNear(t, compsMVec(pv.Gpr(mv)), compsMVec(ps.GprVec(v).ToMVec2d()))
		requireNear(t, compsMVec(pv.Gpr(ev)), compsMVec(ps.GprMVecE(e).ToMVec2d()))
		requireNear(t, compsMVec(pv.Gpr(qs.ToMVec2d())), compsMVec(ps.Gpr(qs).ToMVec2d()))

		// full product is bilinear and associative
		requireNear(t, compsMVec(m.Gpr(n).Gpr(mv)), compsMVec(m.Gpr(n.Gpr(mv))))
		requireNear(t, compsMVec(m.Add(n).Gpr(ev)), compsMVec(m.Gpr(ev).Add(n.Gpr(ev))))
	}
}

// TestMVec2d_BasisTable checks the multiplication table of the basis.
func TestMVec2d_BasisTable(t *testing.T) {
	one := mvec{C0: 1}
	e1, e2, e12 := ga2d.E1m, ga2d.E2m, ga2d.Im

	requireEq(t, one, e1.Gpr(e1))
	requireEq(t, one, e2.Gpr(e2))
	requireEq(t, one.Neg(), e12.Gpr(e12))
	requireEq(t, e12, e1.Gpr(e2))
	requireEq(t, e12.Neg(), e2.Gpr(e1))
	requireEq(t, e2, e1.Gpr(e12))
	requireEq(t, e1.Neg(), e2.Gpr(e12))
}

// TestMVec2d_InverseAndInvolutions checks Inv, Rev and Conj.
func TestMVec2d_InverseAndInvolutions(t *testing.T) {
	r := newRand()
	one := []float64{1, 0, 0, 0}
	for i := 0; i < samples; i++ {
		m, n := randMVec(r), randMVec(r)

		// rev(m·n) = rev(n)·rev(m)
		requireNear(t, compsMVec(m.Gpr(n).Rev()), compsMVec(n.Rev().Gpr(m.Rev())))
		requireNear(t, compsMVec(m.Gpr(n).Conj()), compsMVec(n.Conj().Gpr(m.Conj())))

		e := m.Even()
		ei, err := e.Inv()
		require.NoError(t, err)
		requireNear(t, one, compsMVec(e.Gpr(ei).ToMVec2d()))

		// keep away from the null cone where the inverse blows up
		if d := m.Gpr(m.Conj()).C0; d > -0.05 && d < 0.05 {
			continue
		}
		mi, err := m.Inv()
		require.NoError(t, err)
		requireNear(t, one, compsMVec(m.Gpr(mi)))
		requireNear(t, one, compsMVec(mi.Gpr(m)))
	}

	// (1 + e1) has no inverse: (1+e1)(1-e1) = 0
	_, err := mvec{C0: 1, C1: 1}.Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	require.ErrorContains(t, err, "MVec2d.Inv")
}

// TestMVec2d_Grades checks grade selection and the even part.
func TestMVec2d_Grades(t *testing.T) {
	m := mvec{1, 2, 3, 4}
	require.Equal(t, 1.0, m.Gr0().ToVal())
	require.Equal(t, vec{2, 3}, m.Gr1())
	require.Equal(t, 4.0, m.Gr2().ToVal())
	require.Equal(t, even{1, 4}, m.Even())
	require.Equal(t, vec{}, even{1, 4}.Gr1())
	require.Equal(t, m, ga2d.NewMVec2d(ga2d.NewScalar2d(1.0), vec{2, 3}, ga2d.NewPScalar2d(4.0)))

	_, err := m.Div(0)
	require.ErrorIs(t, err, ga.ErrDivisionByZero)
	_, err = mvec{}.Unitized()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)

	u, err := m.Unitized()
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Nrm(), crossTol)
}

// TestDual_LeftMultiplicationByI checks every dual against I·x.
func TestDual_LeftMultiplicationByI(t *testing.T) {
	r := newRand()
	im := ga2d.Im
	for i := 0; i < samples; i++ {
		m, v, e, ps := randMVec(r), randVec(r), randEven(r), randPS(r)
		s := ga2d.NewScalar2d(rnd(r))

		requireNear(t, compsMVec(im.Gpr(m)), compsMVec(m.Dual()))
		requireNear(t, compsMVec(im.Gpr(v.ToMVec2d())), compsMVec(v.Dual().ToMVec2d()))
		requireNear(t, compsMVec(im.Gpr(e.ToMVec2d())), compsMVec(e.Dual().ToMVec2d()))
		requireNear(t, compsMVec(im.Gpr(ps.ToMVec2d())), compsMVec(ps.Dual().ToMVec2d()))
		requireNear(t, compsMVec(im.Gpr(s.ToMVec2d())), compsMVec(s.Dual().ToMVec2d()))

		// I² = -1, so the dual applied twice negates
		requireEq(t, m.Neg(), m.Dual().Dual())
		requireEq(t, s.Neg(), s.Dual().Dual())
	}
}
