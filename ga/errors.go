// SPDX-License-Identifier: MIT
// Package ga: sentinel error set shared by ga2d and ga3d.
// Operations return these sentinels wrapped with an operation tag
// ("Vec3d.Inv: ga: norm below epsilon"); callers match with errors.Is.

package ga

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by every Div when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("ga: division by zero")

	// ErrDegenerateNorm is returned by Inv, Unitized, Angle, projections and
	// rejections when the relevant (squared) norm or norm product is below
	// the machine epsilon of the active precision.
	ErrDegenerateNorm = errors.New("ga: norm below epsilon")
)

// Must returns v or panics if err is non-nil.
// Intended for package-level setup and examples where the inputs are known to
// be well-formed, in the spirit of regexp.MustCompile.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}

// OpError wraps err with an operation tag, keeping the sentinel reachable
// through errors.Is. err must be non-nil.
func OpError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// CheckDivisor returns a wrapped ErrDivisionByZero when s is exactly zero.
func CheckDivisor[T Float](op string, s T) error {
	if s == 0 {
		return OpError(op, ErrDivisionByZero)
	}

	return nil
}

// CheckNorm returns a wrapped ErrDegenerateNorm when n is below the machine
// epsilon of T. n is a norm, a squared norm or a product of norms.
func CheckNorm[T Float](op string, n T) error {
	if n < Epsilon[T]() {
		return OpError(op, ErrDegenerateNorm)
	}

	return nil
}
