// SPDX-License-Identifier: MIT

package ga3d

// Operation tags used when wrapping ga sentinels.
const (
	opScalar3dDiv     = "Scalar3d.Div"
	opPScalar3dDiv    = "PScalar3d.Div"
	opPScalar3dInv    = "PScalar3d.Inv"
	opVec3dDiv        = "Vec3d.Div"
	opVec3dUnitized   = "Vec3d.Unitized"
	opVec3dInv        = "Vec3d.Inv"
	opVec3dAngle      = "Vec3d.Angle"
	opVec3dAngleBiVec = "Vec3d.AngleBiVec"
	opVec3dProject    = "Vec3d.ProjectOnto"
	opVec3dReject     = "Vec3d.RejectFrom"
	opVec3dReflect    = "Vec3d.Reflect"
	opBiVec3dDiv      = "BiVec3d.Div"
	opBiVec3dUnitized = "BiVec3d.Unitized"
	opBiVec3dInv      = "BiVec3d.Inv"
	opBiVec3dAngle    = "BiVec3d.Angle"
	opBiVec3dReflect  = "BiVec3d.ReflectOn"
	opMVec3dDiv       = "MVec3d.Div"
	opMVec3dUnitized  = "MVec3d.Unitized"
	opMVec3dInv       = "MVec3d.Inv"
	opEvenDiv         = "MVec3dE.Div"
	opEvenUnitized    = "MVec3dE.Unitized"
	opEvenInv         = "MVec3dE.Inv"
	opOddDiv          = "MVec3dU.Div"
	opOddUnitized     = "MVec3dU.Unitized"
	opOddInv          = "MVec3dU.Inv"
	opExp             = "ga3d.Exp"
)
