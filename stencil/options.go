// SPDX-License-Identifier: MIT

package stencil

import "math"

const (
	// DefaultTolerance is the relative threshold below which a Taylor moment
	// counts as vanishing.
	DefaultTolerance = 1e-9

	// DefaultMaxOrder caps how many moments past the enforced ones are
	// examined when searching for the leading error term.
	DefaultMaxOrder = 16
)

const (
	panicToleranceInvalid = "stencil: WithTolerance: tol must be finite, positive"
	panicMaxOrderInvalid  = "stencil: WithMaxOrder: k must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	tol      float64
	maxOrder int
}

// WithTolerance sets the relative vanishing threshold for Taylor moments.
// Panics when tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxOrder limits the scan for the leading error term to k moments past
// the enforced ones. If all of them vanish, Order is reported as the last
// order examined and TruncErr as 0. Panics when k < 1.
func WithMaxOrder(k int) Option {
	if k < 1 {
		panic(panicMaxOrderInvalid)
	}

	return func(o *Options) { o.maxOrder = k }
}

func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance, maxOrder: DefaultMaxOrder}
	for _, set := range user {
		set(&o)
	}

	return o
}
