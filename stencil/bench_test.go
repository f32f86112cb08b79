// SPDX-License-Identifier: MIT

package stencil_test

import (
	"testing"

	"github.com/katalvlaran/lvlga/stencil"
)

var sinkStencil *stencil.Stencil

func BenchmarkNew_Central5(b *testing.B) {
	xs := grid(0, h, -2, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := stencil.New(0, stencil.F1, xs, []float64{0}, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkStencil = s
	}
}

func BenchmarkNew_Compact(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := stencil.New(0, stencil.F1, []float64{-2 * h, -h, h, 2 * h}, []float64{-h, 0, h}, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkStencil = s
	}
}
