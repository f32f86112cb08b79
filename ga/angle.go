// SPDX-License-Identifier: MIT

package ga

import "math"

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T { return deg * T(math.Pi) / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T { return rad * 180 / T(math.Pi) }
