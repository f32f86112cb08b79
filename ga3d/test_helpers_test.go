// SPDX-License-Identifier: MIT
// Package ga3d_test contains shared fixtures for the 3-D algebra tests.
//
// Purpose:
//   • Deterministic random operands of every grade and subalgebra.
//   • Embedding into MVec3d so that sparse products can be checked against
//     the full 64-term product component by component.

package ga3d_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlga/ga3d"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const samples = 200

// crossTol bounds round-off between two algebraically identical formulas.
const crossTol = 1e-12

type (
	vec     = ga3d.Vec3d[float64]
	bivec   = ga3d.BiVec3d[float64]
	mvec    = ga3d.MVec3d[float64]
	even    = ga3d.MVec3dE[float64]
	odd     = ga3d.MVec3dU[float64]
	pscalar = ga3d.PScalar3d[float64]
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(20240917)) }

func rnd(r *rand.Rand) float64 { return 2*r.Float64() - 1 }

func randVec(r *rand.Rand) vec     { return vec{rnd(r), rnd(r), rnd(r)} }
func randBiVec(r *rand.Rand) bivec { return bivec{rnd(r), rnd(r), rnd(r)} }
func randEven(r *rand.Rand) even   { return even{rnd(r), rnd(r), rnd(r), rnd(r)} }
func randOdd(r *rand.Rand) odd     { return odd{rnd(r), rnd(r), rnd(r), rnd(r)} }
func randPS(r *rand.Rand) pscalar  { return ga3d.NewPScalar3d(rnd(r)) }

func randMVec(r *rand.Rand) mvec {
	return mvec{rnd(r), rnd(r), rnd(r), rnd(r), rnd(r), rnd(r), rnd(r), rnd(r)}
}

func comps(m mvec) []float64 {
	return []float64{m.C0, m.C1, m.C2, m.C3, m.C4, m.C5, m.C6, m.C7}
}

func requireEq[V interface{ Eq(V) bool }](t *testing.T, want, got V) {
	t.Helper()
	require.Truef(t, got.Eq(want), "want %v, got %v", want, got)
}

// requireSame compares two multivectors within crossTol.
func requireSame(t *testing.T, want, got mvec) {
	t.Helper()
	require.Truef(t, floats.EqualApprox(comps(want), comps(got), crossTol), "want %v, got %v", want, got)
}
