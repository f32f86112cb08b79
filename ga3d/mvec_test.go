// SPDX-License-Identifier: MIT

package ga3d_test

import (
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/katalvlaran/lvlga/ga3d"
	"github.com/stretchr/testify/require"
)

func TestMVec3d_Construction(t *testing.T) {
	s := ga3d.NewScalar3d(1.0)
	v := vec{2, 3, 4}
	b := bivec{5, 6, 7}
	ps := ga3d.NewPScalar3d(8.0)

	m := ga3d.NewMVec3d(s, v, b, ps)
	require.Equal(t, mvec{1, 2, 3, 4, 5, 6, 7, 8}, m)
	require.Equal(t, s, m.Gr0())
	require.Equal(t, v, m.Gr1())
	require.Equal(t, b, m.Gr2())
	require.Equal(t, ps, m.Gr3())
	require.Equal(t, even{1, 5, 6, 7}, m.Even())
	require.Equal(t, odd{2, 3, 4, 8}, m.Odd())
	requireEq(t, m, m.Even().ToMVec3d().Add(m.Odd().ToMVec3d()))

	// missing grades are zero
	require.Equal(t, mvec{C4: 5, C5: 6, C6: 7}, b.ToMVec3d())
	require.Equal(t, vec{}, even{1, 2, 3, 4}.Gr1())
	require.Equal(t, ga3d.PScalar3d[float64]{}, even{1, 2, 3, 4}.Gr3())
	require.Equal(t, ga3d.Scalar3d[float64]{}, odd{1, 2, 3, 4}.Gr0())
	require.Equal(t, bivec{}, odd{1, 2, 3, 4}.Gr2())
	require.Equal(t, ga3d.NewMVec3dE(s, b), b.ToMVec3dE().Add(s.ToMVec3dE()))
	require.Equal(t, ga3d.NewMVec3dU(v, ps), v.ToMVec3dU().Add(ps.ToMVec3dU()))
	require.Equal(t, 8.0, ga3d.FromScalar(ga.NewScalar(8.0)).ToVal())
}

func TestMVec3d_Involutions(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		m, n := randMVec(r), randMVec(r)

		requireSame(t, m.Gpr(n).Rev(), n.Rev().Gpr(m.Rev()))
		requireSame(t, m.Gpr(n).Conj(), n.Conj().Gpr(m.Conj()))

		// subalgebra involutions agree with the full ones
		e, u := m.Even(), m.Odd()
		requireSame(t, e.ToMVec3d().Rev(), e.Rev().ToMVec3d())
		requireSame(t, u.ToMVec3d().Rev(), u.Rev().ToMVec3d())
		requireSame(t, u.ToMVec3d().Conj(), u.Conj().ToMVec3d())
		requireSame(t, e.ToMVec3d().Conj(), e.Conj().ToMVec3d())
	}
}

func TestMVec3d_Inverse(t *testing.T) {
	r := newRand()
	one := mvec{C0: 1}
	for i := 0; i < samples; i++ {
		m := randMVec(r)
		z := m.Gpr(m.Conj())
		if z.C0*z.C0+z.C7*z.C7 < 0.25 {
			continue
		}
		mi, err := m.Inv()
		require.NoError(t, err)
		requireSame(t, one, m.Gpr(mi))
		requireSame(t, one, mi.Gpr(m))

		e := m.Even()
		ei, err := e.Inv()
		require.NoError(t, err)
		requireSame(t, one, e.Gpr(ei).ToMVec3d())

		u := m.Odd()
		ui, err := u.Inv()
		require.NoError(t, err)
		requireSame(t, one, u.Gpr(ui).ToMVec3d())
	}

	// 1 + e1 is a zero divisor
	_, err := mvec{C0: 1, C1: 1}.Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	require.ErrorContains(t, err, "MVec3d.Inv")

	// the pseudoscalar inverts to its negative
	pi, err := ga3d.NewPScalar3d(2.0).Inv()
	require.NoError(t, err)
	require.Equal(t, -0.5, pi.ToVal())
	require.Equal(t, 1.0, ga3d.NewPScalar3d(2.0).Gpr(pi).ToVal())

	for _, fn := range []func() error{
		func() error { _, err := (mvec{}).Unitized(); return err },
		func() error { _, err := (even{}).Inv(); return err },
		func() error { _, err := (even{}).Unitized(); return err },
		func() error { _, err := (odd{}).Inv(); return err },
		func() error { _, err := (odd{}).Unitized(); return err },
	} {
		require.ErrorIs(t, fn(), ga.ErrDegenerateNorm)
	}
	for _, fn := range []func() error{
		func() error { _, err := (mvec{}).Div(0); return err },
		func() error { _, err := (even{}).Div(0); return err },
		func() error { _, err := (odd{}).Div(0); return err },
		func() error { _, err := ga3d.NewPScalar3d(1.0).Div(0); return err },
	} {
		require.ErrorIs(t, fn(), ga.ErrDivisionByZero)
	}
}

// TestDual_LeftMultiplicationByI checks every dual against I·x.
func TestDual_LeftMultiplicationByI(t *testing.T) {
	r := newRand()
	im := ga3d.Im
	for i := 0; i < samples; i++ {
		m, v, b := randMVec(r), randVec(r), randBiVec(r)
		e, u, ps := randEven(r), randOdd(r), randPS(r)
		s := ga3d.NewScalar3d(rnd(r))

		requireSame(t, im.Gpr(m), m.Dual())
		requireSame(t, im.Gpr(v.ToMVec3d()), v.Dual().ToMVec3d())
		requireSame(t, im.Gpr(b.ToMVec3d()), b.Dual().ToMVec3d())
		requireSame(t, im.Gpr(e.ToMVec3d()), e.Dual().ToMVec3d())
		requireSame(t, im.Gpr(u.ToMVec3d()), u.Dual().ToMVec3d())
		requireSame(t, im.Gpr(ps.ToMVec3d()), ps.Dual().ToMVec3d())
		requireSame(t, im.Gpr(s.ToMVec3d()), s.Dual().ToMVec3d())

		// I² = -1
		requireEq(t, m.Neg(), m.Dual().Dual())
		requireEq(t, v.Neg(), v.Dual().Dual())
	}

	require.Equal(t, ga3d.NewPScalar3d(5.0), ga3d.NewScalar3d(5.0).Dual())
	require.Equal(t, ga3d.NewScalar3d(-5.0), ga3d.NewPScalar3d(5.0).Dual())
	require.Equal(t, ga3d.E23, ga3d.E1.Dual())
	require.Equal(t, ga3d.E1.Neg(), ga3d.E23.Dual())
}

func TestMVec3d_Format(t *testing.T) {
	require.Equal(t, "(1,2,3)", vec{1, 2, 3}.String())
	require.Equal(t, "(0,0,0,0,0,0,0,1)", ga3d.Im.String())
	require.Equal(t, "(0.5,0,0,-0.5)", even{0.5, 0, 0, -0.5}.String())
	require.Equal(t, "(-1)", ga3d.NewPScalar3d(-1.0).String())
}
