// Package matrix offers a small dense matrix kernel and an LU solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - Mul, MatVec, NewIdentity and AllClose for the few products the solver
//     and its tests need.
//   - LUDecomp (Crout's method with implicit partial pivoting), Solve, Det
//     and Inverse.
//
// Configuration follows the functional-options pattern (WithEpsilon,
// WithPivotFloor, WithNoValidateNaNInf). Errors are sentinels wrapped with
// the operation name; match them with errors.Is.
//
// Dense systems here are small (stencil moment systems, test fixtures), so
// the kernel favours plain loops over blocking.
package matrix
