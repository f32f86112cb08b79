// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the dense kernel and the LU
// solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a sequence of setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every flag impacts behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultPivotFloor replaces an exactly-zero pivot during LU decomposition
	// so that the factorization can complete. A factorization that needed it is
	// reported as singular by Solve and has a zero determinant.
	DefaultPivotFloor = 1e-20

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotFloorInvalid = "matrix: WithPivotFloor: floor must be finite, positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	pivotFloor     float64 // > 0; DefaultPivotFloor
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the absolute tolerance used by AllClose.
//
// Errors:
//   - Panics when eps is negative, NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotFloor sets the value substituted for an exactly-zero pivot in
// LUDecomp.
//
// Errors:
//   - Panics when floor is not a finite positive number.
//
// AI-Hints:
//   - The floor only lets the factorization run to completion; it never makes
//     a singular system solvable. Leave it at the default unless inspecting
//     the factors of a rank-deficient matrix.
func WithPivotFloor(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor <= 0 {
		panic(panicPivotFloorInvalid)
	}

	return func(o *Options) { o.pivotFloor = floor }
}

// WithValidateNaNInf enables rejection of NaN/±Inf on ingestion and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/±Inf rejection.
// The LU kernels still operate, but results for non-finite input are undefined.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
//
// Determinism:
//   - Stable for a given sequence of setters (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		pivotFloor:     DefaultPivotFloor,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
