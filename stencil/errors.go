// SPDX-License-Identifier: MIT

package stencil

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned when the stencil has fewer than three points
	// in total, no derivative points at all, or no point for the derivative
	// on the left-hand side.
	ErrTooFewPoints = errors.New("stencil: too few points")

	// ErrBadOrder is returned for a left-hand side other than F1 or F2.
	ErrBadOrder = errors.New("stencil: derivative order must be F1 or F2")

	// ErrLengthMismatch is returned by Apply when a value list does not match
	// its point list.
	ErrLengthMismatch = errors.New("stencil: value count does not match point count")
)

const (
	opNew   = "stencil.New"
	opApply = "Stencil.Apply"
)

func stencilErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
