// SPDX-License-Identifier: MIT

// Package step provides clamped blend functions that rise from 0 at lo to 1
// at hi.
//
//	LinearStep    t
//	SmoothStep    3t² - 2t³            (f' = 0 at both ends)
//	SmootherStep  6t⁵ - 15t⁴ + 10t³    (f' = f'' = 0 at both ends)
//
// with t = (x - lo)/(hi - lo) clamped to [0, 1]. When lo == hi every
// function is the unit step: 0 for x < lo, 1 otherwise. NaN propagates.
package step

// unit maps x to [0, 1] relative to the interval [lo, hi].
func unit(lo, hi, x float64) float64 {
	if lo == hi {
		if x < lo {
			return 0
		}
		if x >= lo {
			return 1
		}

		return x // NaN
	}

	return min(max((x-lo)/(hi-lo), 0), 1)
}

// LinearStep returns the clamped linear ramp between lo and hi.
func LinearStep(lo, hi, x float64) float64 {
	return unit(lo, hi, x)
}

// SmoothStep returns the cubic Hermite blend between lo and hi.
func SmoothStep(lo, hi, x float64) float64 {
	t := unit(lo, hi, x)

	return t * t * (3 - 2*t)
}

// SmootherStep returns the quintic blend between lo and hi.
func SmootherStep(lo, hi, x float64) float64 {
	t := unit(lo, hi, x)

	return t * t * t * (t*(6*t-15) + 10)
}
