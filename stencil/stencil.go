// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlga/matrix"
	"gonum.org/v1/gonum/floats"
)

// Derivative selects which derivative is placed on the left-hand side.
type Derivative int

const (
	F1 Derivative = 1 // f' on the left-hand side
	F2 Derivative = 2 // f'' on the left-hand side
)

func (d Derivative) String() string {
	switch d {
	case F1:
		return "F1"
	case F2:
		return "F2"
	default:
		return fmt.Sprintf("Derivative(%d)", int(d))
	}
}

// Stencil is a solved finite-difference stencil. Inputs are copied; the
// weights, Order and TruncErr are filled in by New.
type Stencil struct {
	X0  float64    // development point
	LHS Derivative // derivative on the left-hand side

	XF0 []float64 // points for f
	XF1 []float64 // points for f'
	XF2 []float64 // points for f''

	WF0 []float64 // weights for f
	WF1 []float64 // weights for f'
	WF2 []float64 // weights for f''

	Order    int     // consistency order
	TruncErr float64 // coefficient of the leading neglected derivative
}

// column is one unknown weight: a point offset from x0 and the derivative
// it multiplies, signed -1 when it sits on the left-hand side.
type column struct {
	dx    float64
	deriv int
	sign  float64
}

// moment returns the contribution of the column to Taylor moment i:
// sign·dx^(i-deriv)/(i-deriv)!, zero for i < deriv.
func (c column) moment(i int) float64 {
	k := i - c.deriv
	if k < 0 {
		return 0
	}

	return c.sign * math.Pow(c.dx, float64(k)) / fact(k)
}

// New builds and solves the stencil with development point x0, the given
// left-hand derivative and the point lists for f, f' and f''.
// Implementation:
//   - Stage 1: validate lhs and the point counts.
//   - Stage 2: one column per point; rows 0..n-2 are Taylor moments forced to
//     zero, row n-1 normalizes the left-hand weights to 1.
//   - Stage 3: solve with matrix.Solve and split the solution into WF0/WF1/WF2.
//   - Stage 4: scan moments from n-1 for the leading error term.
//
// Errors:
//   - ErrBadOrder for lhs other than F1, F2.
//   - ErrTooFewPoints for n < 3, no derivative points, or no lhs points.
//   - matrix.ErrSingular when the points do not determine the weights
//     (e.g. every point at x0).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for n = len(xf0)+len(xf1)+len(xf2).
func New(x0 float64, lhs Derivative, xf0, xf1, xf2 []float64, opts ...Option) (*Stencil, error) {
	if lhs != F1 && lhs != F2 {
		return nil, stencilErrorf(opNew, fmt.Errorf("%v: %w", lhs, ErrBadOrder))
	}
	n0, n1, n2 := len(xf0), len(xf1), len(xf2)
	n := n0 + n1 + n2
	switch {
	case n < 3:
		return nil, stencilErrorf(opNew, fmt.Errorf("%d points: %w", n, ErrTooFewPoints))
	case n1 == 0 && n2 == 0:
		return nil, stencilErrorf(opNew, fmt.Errorf("no derivative points: %w", ErrTooFewPoints))
	case lhs == F1 && n1 == 0, lhs == F2 && n2 == 0:
		return nil, stencilErrorf(opNew, fmt.Errorf("no points for %v: %w", lhs, ErrTooFewPoints))
	}
	o := gatherOptions(opts...)

	s := &Stencil{
		X0:  x0,
		LHS: lhs,
		XF0: append([]float64(nil), xf0...),
		XF1: append([]float64(nil), xf1...),
		XF2: append([]float64(nil), xf2...),
	}
	cols := s.columns()

	rows := make([][]float64, n)
	for i := 0; i < n-1; i++ {
		rows[i] = make([]float64, n)
		for j, c := range cols {
			rows[i][j] = c.moment(i)
		}
	}
	rows[n-1] = make([]float64, n)
	for j, c := range cols {
		if c.deriv == int(lhs) {
			rows[n-1][j] = 1
		}
	}
	rhs := make([]float64, n)
	rhs[n-1] = 1

	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, stencilErrorf(opNew, err)
	}
	w, err := matrix.Solve(a, rhs)
	if err != nil {
		return nil, stencilErrorf(opNew, err)
	}
	s.WF0 = w[:n0:n0]
	s.WF1 = w[n0 : n0+n1 : n0+n1]
	s.WF2 = w[n0+n1:]

	s.Order, s.TruncErr = leadingTerm(cols, w, int(lhs), o)

	return s, nil
}

// columns lists the unknowns in the order f, f', f''.
func (s *Stencil) columns() []column {
	cols := make([]column, 0, len(s.XF0)+len(s.XF1)+len(s.XF2))
	for d, xs := range [][]float64{s.XF0, s.XF1, s.XF2} {
		sign := 1.0
		if d == int(s.LHS) {
			sign = -1
		}
		for _, x := range xs {
			cols = append(cols, column{dx: x - s.X0, deriv: d, sign: sign})
		}
	}

	return cols
}

// leadingTerm returns the order and coefficient of the first non-vanishing
// Taylor moment past the enforced ones.
func leadingTerm(cols []column, w []float64, lhs int, o Options) (int, float64) {
	first := len(cols) - 1
	last := first + o.maxOrder - 1
	terms := make([]float64, len(cols))
	for i := first; i <= last; i++ {
		for j, c := range cols {
			terms[j] = w[j] * c.moment(i)
		}
		r := floats.Sum(terms)
		if mag := floats.Norm(terms, 1); mag > 0 && math.Abs(r) > o.tol*mag {
			return i - lhs, r
		}
	}

	return last - lhs, 0
}

// Apply evaluates the right-hand side of the stencil for the given values
// at XF0, XF1 and XF2. The list belonging to the left-hand derivative is
// ignored and may be nil. For an explicit stencil (one left-hand point) the
// result approximates that derivative.
//
// Errors:
//   - ErrLengthMismatch when a right-hand list does not match its points.
func (s *Stencil) Apply(f0, f1, f2 []float64) (float64, error) {
	var sum float64
	for d, p := range []struct{ x, w, f []float64 }{{s.XF0, s.WF0, f0}, {s.XF1, s.WF1, f1}, {s.XF2, s.WF2, f2}} {
		if d == int(s.LHS) || len(p.x) == 0 {
			continue
		}
		if len(p.f) != len(p.x) {
			return 0, stencilErrorf(opApply, fmt.Errorf("list %d has %d values, want %d: %w", d, len(p.f), len(p.x), ErrLengthMismatch))
		}
		sum += floats.Dot(p.w, p.f)
	}

	return sum, nil
}

// fact returns k! as a float64.
func fact(k int) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}

	return f
}
