// SPDX-License-Identifier: MIT

package stencil_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlga/stencil"
)

// ExampleNew derives the classic second-difference stencil and applies it
// to sin(x) at x0 = 1.
func ExampleNew() {
	const x0, h = 1.0, 0.01
	s, err := stencil.New(x0, stencil.F2, []float64{x0 - h, x0, x0 + h}, nil, []float64{x0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("weights·h²: %.3f %.3f %.3f\n", s.WF0[0]*h*h, s.WF0[1]*h*h, s.WF0[2]*h*h)
	fmt.Printf("order: %d\n", s.Order)

	vals := []float64{math.Sin(x0 - h), math.Sin(x0), math.Sin(x0 + h)}
	d2, err := s.Apply(vals, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("f''(1) ≈ %.5f (exact %.5f)\n", d2, -math.Sin(x0))
	// Output:
	// weights·h²: 1.000 -2.000 1.000
	// order: 2
	// f''(1) ≈ -0.84146 (exact -0.84147)
}
