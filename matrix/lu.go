// SPDX-License-Identifier: MIT
// Package matrix - LU factorization and the solvers built on it.
//
// Purpose:
//   - Factor a square matrix once (Crout's method with implicit partial
//     pivoting) and reuse the factors for any number of right-hand sides.
//   - Derive determinant and inverse from the same factors.
//
// Layout of the packed factors (n×n):
//   - strict lower triangle: L with an implicit unit diagonal,
//   - upper triangle including the diagonal: U,
//   - perm[j] = row exchanged with row j at step j (sequential swaps).

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// LU holds the packed factors P·A = L·U of a square matrix.
type LU struct {
	lu      *Dense  // packed L (unit, strict lower) and U (upper)
	perm    []int   // sequential row exchanges
	sign    float64 // +1 or -1: parity of the exchanges
	floored bool    // a zero pivot was replaced by the pivot floor
}

// LUDecomp factors the square matrix m.
// Implementation:
//   - Stage 1: validate non-nil and square; copy m into a private *Dense.
//   - Stage 2: compute the implicit row scaling vv[i] = 1/max_j |a_ij|; an
//     all-zero row is singular.
//   - Stage 3: for each column j, compute the U entries above the diagonal,
//     then the candidates on and below it, choosing the pivot with the
//     largest scaled magnitude (ties go to the lower row). Exchange rows,
//     replace an exactly-zero pivot by the pivot floor and divide the L
//     entries by the pivot.
//
// Inputs:
//   - m: square Matrix; it is not modified.
//   - opts: WithPivotFloor changes the substitute for a zero pivot.
//
// Returns:
//   - *LU: packed factors, permutation and parity.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (Stage 1).
//   - ErrSingular for an all-zero row (Stage 2).
//
// Determinism:
//   - Fixed column-major sweep; identical input gives identical factors.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - A factorization that needed the pivot floor completes, Det reports 0
//     and Solve returns ErrSingular.
func LUDecomp(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a.validateNaNInf = o.validateNaNInf
	n := a.r
	d := a.data

	// Stage 2: implicit scaling.
	vv := make([]float64, n)
	var i, j, k int
	var big, v float64
	for i = 0; i < n; i++ {
		big = 0
		for j = 0; j < n; j++ {
			if v = math.Abs(d[i*n+j]); v > big {
				big = v
			}
		}
		if big == 0 {
			return nil, matrixErrorf(opLU, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		vv[i] = 1 / big
	}

	// Stage 3: Crout sweep over columns.
	perm := make([]int, n)
	sign := 1.0
	floored := false
	var sum, dum float64
	var imax int
	for j = 0; j < n; j++ {
		// U above the diagonal.
		for i = 0; i < j; i++ {
			sum = d[i*n+j]
			for k = 0; k < i; k++ {
				sum -= d[i*n+k] * d[k*n+j]
			}
			d[i*n+j] = sum
		}
		// Pivot candidates on and below the diagonal.
		big = 0
		imax = j
		for i = j; i < n; i++ {
			sum = d[i*n+j]
			for k = 0; k < j; k++ {
				sum -= d[i*n+k] * d[k*n+j]
			}
			d[i*n+j] = sum
			if dum = vv[i] * math.Abs(sum); dum >= big {
				big = dum
				imax = i
			}
		}
		if j != imax {
			for k = 0; k < n; k++ {
				d[imax*n+k], d[j*n+k] = d[j*n+k], d[imax*n+k]
			}
			vv[imax] = vv[j]
			sign = -sign
		}
		perm[j] = imax
		if d[j*n+j] == 0 {
			d[j*n+j] = o.pivotFloor
			floored = true
		}
		if j != n-1 {
			dum = 1 / d[j*n+j]
			for i = j + 1; i < n; i++ {
				d[i*n+j] *= dum
			}
		}
	}

	return &LU{lu: a, perm: perm, sign: sign, floored: floored}, nil
}

// Size returns n for an n×n factorization.
func (f *LU) Size() int { return f.lu.r }

// Pivots returns a copy of the sequential row exchanges: at step j rows j and
// Pivots()[j] were swapped.
func (f *LU) Pivots() []int { return append([]int(nil), f.perm...) }

// Singular reports whether a zero pivot was replaced by the pivot floor.
func (f *LU) Singular() bool { return f.floored }

// L returns the unit lower-triangular factor as a new *Dense.
func (f *LU) L() *Dense {
	n := f.lu.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:i*n+i], f.lu.data[i*n:i*n+i])
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a new *Dense.
func (f *LU) U() *Dense {
	n := f.lu.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		copy(out.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}

	return out
}

// Det returns the determinant: the product of U's diagonal times the parity
// of the exchanges. A factorization that needed the pivot floor returns 0.
// Complexity: O(n).
func (f *LU) Det() float64 {
	if f.floored {
		return 0
	}
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det
}

// Solve returns x with A·x = b using the stored factors; b is not modified.
// Implementation:
//   - Stage 1: validate len(b) == n; refuse a floored factorization.
//   - Stage 2: forward substitution with L, applying the exchanges on the fly
//     and skipping the leading zeros of b.
//   - Stage 3: back substitution with U.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad b.
//   - ErrNaNInf for a non-finite b unless WithNoValidateNaNInf was given.
//   - ErrSingular when the factorization needed the pivot floor.
//
// Complexity:
//   - Time O(n^2), Space O(n).
//
// AI-Hints:
//   - Factor once with LUDecomp and call Solve per right-hand side.
func (f *LU) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if f.lu.validateNaNInf {
		if err := ValidateFinite(b); err != nil {
			return nil, matrixErrorf(opLUSolve, err)
		}
	}
	if f.floored {
		return nil, matrixErrorf(opLUSolve, ErrSingular)
	}
	d := f.lu.data
	x := append([]float64(nil), b...)

	// Stage 2: forward substitution; first is the first non-zero entry of
	// the permuted b, or -1 while none was seen.
	first := -1
	var i, j, ll int
	var sum float64
	for i = 0; i < n; i++ {
		ll = f.perm[i]
		sum = x[ll]
		x[ll] = x[i]
		if first >= 0 {
			for j = first; j < i; j++ {
				sum -= d[i*n+j] * x[j]
			}
		} else if sum != 0 {
			first = i
		}
		x[i] = sum
	}

	// Stage 3: back substitution.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= d[i*n+j] * x[j]
		}
		x[i] = sum / d[i*n+i]
	}

	return x, nil
}

// Solve factors a and solves a·x = b.
//
// Errors:
//   - Any error of LUDecomp or (*LU).Solve, wrapped with "Solve".
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LUDecomp(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Det returns the determinant of a. A singular matrix (an all-zero row or a
// zero pivot) yields 0 without an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Det(a Matrix, opts ...Option) (float64, error) {
	f, err := LUDecomp(a, opts...)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse returns A⁻¹ by solving A·x = e_j for every unit column e_j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(a Matrix, opts ...Option) (*Dense, error) {
	f, err := LUDecomp(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.lu.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: f.lu.validateNaNInf}
	e := make([]float64, n)
	var col []float64
	for j := 0; j < n; j++ {
		clear(e)
		e[j] = 1
		if col, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			out.data[i*n+j] = col[i]
		}
	}

	return out, nil
}
