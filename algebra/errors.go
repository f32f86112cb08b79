// SPDX-License-Identifier: MIT

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrSignature is returned by New for a signature without an implementation.
	ErrSignature = errors.New("algebra: unsupported signature")

	// ErrBasisIndex is returned by BasisName for an index outside [0, NumComponents).
	ErrBasisIndex = errors.New("algebra: basis index out of range")
)

const (
	opNew       = "New"
	opBasisName = "BasisName"
)

func algebraErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
