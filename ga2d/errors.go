// SPDX-License-Identifier: MIT

package ga2d

// Operation tags used when wrapping ga sentinels.
const (
	opScalar2dDiv    = "Scalar2d.Div"
	opPScalar2dDiv   = "PScalar2d.Div"
	opPScalar2dInv   = "PScalar2d.Inv"
	opVec2dDiv       = "Vec2d.Div"
	opVec2dUnitized  = "Vec2d.Unitized"
	opVec2dInv       = "Vec2d.Inv"
	opVec2dAngle     = "Vec2d.Angle"
	opVec2dProject   = "Vec2d.ProjectOnto"
	opVec2dProjectPS = "Vec2d.ProjectOntoPS"
	opVec2dReject    = "Vec2d.RejectFrom"
	opVec2dReflect   = "Vec2d.Reflect"
	opMVec2dDiv      = "MVec2d.Div"
	opMVec2dUnitized = "MVec2d.Unitized"
	opMVec2dInv      = "MVec2d.Inv"
	opEvenDiv        = "MVec2dE.Div"
	opEvenUnitized   = "MVec2dE.Unitized"
	opEvenInv        = "MVec2dE.Inv"
	opCplxDiv        = "MCplx2d.Div"
	opCplxUnitized   = "MCplx2d.Unitized"
	opCplxInv        = "MCplx2d.Inv"
)
