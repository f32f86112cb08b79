// SPDX-License-Identifier: MIT

package ga2d_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/katalvlaran/lvlga/ga2d"
	"github.com/stretchr/testify/require"
)

type cplx = ga2d.MCplx2d[float64]

// TestMCplx2d_MatchesComplex128 checks the product against the built-in type.
func TestMCplx2d_MatchesComplex128(t *testing.T) {
	r := newRand()
	for i := 0; i < samples; i++ {
		a := complex(rnd(r), rnd(r))
		b := complex(rnd(r), rnd(r))
		za := ga2d.MCplx2dFromComplex[float64](a)
		zb := ga2d.MCplx2dFromComplex[float64](b)

		got := za.Gpr(zb).ToComplex()
		require.InDelta(t, real(a*b), real(got), crossTol)
		require.InDelta(t, imag(a*b), imag(got), crossTol)

		require.InDelta(t, cmplx.Abs(a), za.Nrm(), crossTol)
		require.InDelta(t, cmplx.Phase(a), za.AngleToRe(), crossTol)

		zi, err := za.Inv()
		require.NoError(t, err)
		require.InDelta(t, real(1/a), real(zi.ToComplex()), 1e-9)
		require.InDelta(t, imag(1/a), imag(zi.ToComplex()), 1e-9)

		// the even subalgebra is the same field
		e := za.ToMVec2dE()
		requireNear(t, compsMVec(e.Gpr(zb.ToMVec2dE()).ToMVec2d()), compsMVec(za.Gpr(zb).ToMVec2d()))
	}
}

// TestAngleToRe_Quadrants covers the axes, the quadrants and the origin.
func TestAngleToRe_Quadrants(t *testing.T) {
	cases := []struct {
		name   string
		re, im float64
		want   float64
	}{
		{"origin", 0, 0, 0},
		{"+re", 1, 0, 0},
		{"+im", 0, 2, math.Pi / 2},
		{"-im", 0, -2, -math.Pi / 2},
		{"-re", -1, 0, math.Pi},
		{"q1", 1, 1, math.Pi / 4},
		{"q2", -1, 1, 3 * math.Pi / 4},
		{"q3", -1, -1, -3 * math.Pi / 4},
		{"q4", 1, -1, -math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, even{tc.re, tc.im}.AngleToRe(), crossTol)
			require.InDelta(t, tc.want, cplx{tc.re, tc.im}.AngleToRe(), crossTol)
		})
	}
}

func TestMCplx2d_Basics(t *testing.T) {
	z := ga2d.NewMCplx2d(ga.NewScalar(3.0), ga2d.NewPScalar2d(4.0))
	require.Equal(t, 3.0, z.Gr0().ToVal())
	require.Equal(t, 4.0, z.Gr2().ToVal())
	require.Equal(t, 5.0, z.Nrm())
	require.Equal(t, cplx{3, -4}, z.Rev())
	require.Equal(t, mvec{C0: 3, C3: 4}, z.ToMVec2d())

	u, err := z.Unitized()
	require.NoError(t, err)
	requireEq(t, cplx{0.6, 0.8}, u)

	_, err = z.Div(0)
	require.ErrorIs(t, err, ga.ErrDivisionByZero)
	_, err = cplx{}.Inv()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
	_, err = cplx{}.Unitized()
	require.ErrorIs(t, err, ga.ErrDegenerateNorm)
}
