// SPDX-License-Identifier: MIT

package ga2d

import "github.com/katalvlaran/lvlga/ga"

// Basis elements at the default precision. Treat as read-only.
var (
	E1 = Vec2d[ga.Value]{1, 0}
	E2 = Vec2d[ga.Value]{0, 1}
	I  = PScalar2d[ga.Value]{1}

	E1m = MVec2d[ga.Value]{C1: 1}
	E2m = MVec2d[ga.Value]{C2: 1}
	Im  = MVec2d[ga.Value]{C3: 1}

	// Ie is the unit pseudoscalar in the even subalgebra.
	Ie = MVec2dE[ga.Value]{C1: 1}
)
