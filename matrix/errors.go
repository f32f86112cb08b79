// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// ("LUDecomp: row 2: matrix: singular matrix"); callers match with errors.Is.
// No kernel panics on user-triggered conditions. Option constructors panic
// on nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that the rows passed to NewDenseFrom are ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// At and Set return it instead of panicking.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Mul where a.Cols != b.Rows or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a row of the input is entirely zero or when a
	// pivot had to be replaced by the pivot floor during LU decomposition.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opNewDense = "NewDense"
	opNewFrom  = "NewDenseFrom"
	opMul      = "Mul"
	opMatVec   = "MatVec"
	opAllClose = "AllClose"
	opLU       = "LUDecomp"
	opLUSolve  = "LU.Solve"
	opSolve    = "Solve"
	opDet      = "Det"
	opInverse  = "Inverse"
	opIdentity = "NewIdentity"
	ctxAt      = "At"
	ctxSet     = "Set"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices:
// "Dense.<method>(row,col): <err>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
