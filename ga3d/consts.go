// SPDX-License-Identifier: MIT

package ga3d

import "github.com/katalvlaran/lvlga/ga"

// Basis elements at the default precision. Treat as read-only.
var (
	E1 = Vec3d[ga.Value]{1, 0, 0}
	E2 = Vec3d[ga.Value]{0, 1, 0}
	E3 = Vec3d[ga.Value]{0, 0, 1}

	E23 = BiVec3d[ga.Value]{1, 0, 0}
	E31 = BiVec3d[ga.Value]{0, 1, 0}
	E12 = BiVec3d[ga.Value]{0, 0, 1}

	I = PScalar3d[ga.Value]{1}
)

// The same elements embedded in multivector types.
var (
	E1m  = MVec3d[ga.Value]{C1: 1}
	E2m  = MVec3d[ga.Value]{C2: 1}
	E3m  = MVec3d[ga.Value]{C3: 1}
	E23m = MVec3d[ga.Value]{C4: 1}
	E31m = MVec3d[ga.Value]{C5: 1}
	E12m = MVec3d[ga.Value]{C6: 1}
	Im   = MVec3d[ga.Value]{C7: 1}

	E23e = MVec3dE[ga.Value]{C1: 1}
	E31e = MVec3dE[ga.Value]{C2: 1}
	E12e = MVec3dE[ga.Value]{C3: 1}

	Iu = MVec3dU[ga.Value]{C3: 1}
)
