// SPDX-License-Identifier: MIT
// Package ga2d_test contains shared fixtures for the 2-D algebra tests.
//
// Purpose:
//   • Deterministic random operands (fixed seed) for law and cross-product checks.
//   • Component flatteners so results can be compared with gonum/floats.

package ga2d_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlga/ga2d"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// Number of random samples per property.
const samples = 200

// crossTol bounds round-off between two algebraically identical formulas
// evaluated in a different order.
const crossTol = 1e-12

type vec = ga2d.Vec2d[float64]
type mvec = ga2d.MVec2d[float64]
type even = ga2d.MVec2dE[float64]
type pscalar = ga2d.PScalar2d[float64]

// newRand returns a deterministic source so failures are reproducible.
func newRand() *rand.Rand { return rand.New(rand.NewSource(20240917)) }

func rnd(r *rand.Rand) float64 { return 2*r.Float64() - 1 }

func randVec(r *rand.Rand) vec   { return vec{rnd(r), rnd(r)} }
func randEven(r *rand.Rand) even { return even{rnd(r), rnd(r)} }
func randMVec(r *rand.Rand) mvec { return mvec{rnd(r), rnd(r), rnd(r), rnd(r)} }
func randPS(r *rand.Rand) pscalar {
	return ga2d.NewPScalar2d(rnd(r))
}

func compsVec(v vec) []float64   { return []float64{v.X, v.Y} }
func compsMVec(m mvec) []float64 { return []float64{m.C0, m.C1, m.C2, m.C3} }

// requireEq asserts approximate equality through the value's own Eq.
func requireEq[V interface{ Eq(V) bool }](t *testing.T, want, got V) {
	t.Helper()
	require.Truef(t, got.Eq(want), "want %v, got %v", want, got)
}

// requireNear compares component slices within crossTol.
func requireNear(t *testing.T, want, got []float64) {
	t.Helper()
	require.Truef(t, floats.EqualApprox(want, got, crossTol), "want %v, got %v", want, got)
}
