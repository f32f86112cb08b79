// SPDX-License-Identifier: MIT

// Package ga holds the numeric policy shared by the 2-D and 3-D geometric
// algebra packages (ga2d, ga3d).
//
// 🚀 What lives here?
//
//	• Float – the precision constraint (float32 or float64) every GA type is generic over
//	• Value – the process-wide default precision used by the predefined constants
//	• Epsilon / Tolerance / Within – machine epsilon and the approximate equality rule
//	  |a_i − b_i| < 5·max(ε(T), ε(U)) applied component by component
//	• ErrDivisionByZero / ErrDegenerateNorm – sentinel errors of every GA operation
//	• Scalar – the generic grade-0 tagged wrapper
//	• DegToRad / RadToDeg – angle utilities
//
// Numeric policy:
//
//   - Degenerate checks compare a norm (or squared norm) against Epsilon[T]().
//   - Division fails only when the divisor is exactly zero.
//   - Nothing here allocates, locks or logs; every function is pure.
//
// Usage:
//
//	import "github.com/katalvlaran/lvlga/ga"
//
//	tol := ga.Tolerance[float32, float64]() // 5·ε(float32)
//	ok := ga.Within([]float32{1, 2}, []float64{1, 2})
package ga
