// SPDX-License-Identifier: MIT

// Package stencil generates finite-difference stencils from Taylor moments.
//
// 🚀 What is a stencil?
//
//	A linear relation between function values and derivative values at
//	nearby points. One derivative (F1 or F2) sits on the left-hand side, the
//	remaining terms on the right:
//
//	    Σ wL_k·f^(d)(yL_k) = Σ w0_j·f(x_j) + Σ w_k·f^(other)(y_k)
//
//	Explicit schemes have one left-hand point with weight 1; compact (Padé)
//	schemes couple several derivative values.
//
// ⚙️ How the weights are found
//
//	With n unknown weights, the Taylor moments 0..n-2 of the relation around
//	x0 are forced to zero and the left-hand weights are normalized to sum to
//	1. The n×n system is solved with matrix.Solve (Crout LU with implicit
//	partial pivoting).
//
// 📏 Order and truncation error
//
//	The first moment i ≥ n-1 that does not vanish gives the leading error
//	term TruncErr·f^(i)(x0); the consistency order is i - d. A moment
//	vanishes when it is below Tolerance relative to the magnitude of its
//	contributions, so symmetric stencils skip odd moments reliably at any h.
//
// Example (central first difference):
//
//	s, _ := stencil.New(0, stencil.F1, []float64{-h, 0, h}, []float64{0}, nil)
//	// s.WF0 = [-1/(2h), 0, 1/(2h)], s.Order = 2, s.TruncErr = h²/6
package stencil
