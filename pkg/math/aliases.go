package math

// Element type suffixes: b int8, ub uint8, s int16, us uint16, i int32,
// ui uint32, l int64, ul uint64, f float32, d float64.

type Vec2b = Vec2[int8]
type Vec2ub = Vec2[uint8]
type Vec2s = Vec2[int16]
type Vec2us = Vec2[uint16]
type Vec2i = Vec2[int32]
type Vec2ui = Vec2[uint32]
type Vec2l = Vec2[int64]
type Vec2ul = Vec2[uint64]
type Vec2f = Vec2[float32]
type Vec2d = Vec2[float64]

type Vec3b = Vec3[int8]
type Vec3ub = Vec3[uint8]
type Vec3s = Vec3[int16]
type Vec3us = Vec3[uint16]
type Vec3i = Vec3[int32]
type Vec3ui = Vec3[uint32]
type Vec3l = Vec3[int64]
type Vec3ul = Vec3[uint64]
type Vec3f = Vec3[float32]
type Vec3d = Vec3[float64]

type Vec4b = Vec4[int8]
type Vec4ub = Vec4[uint8]
type Vec4s = Vec4[int16]
type Vec4us = Vec4[uint16]
type Vec4i = Vec4[int32]
type Vec4ui = Vec4[uint32]
type Vec4l = Vec4[int64]
type Vec4ul = Vec4[uint64]
type Vec4f = Vec4[float32]
type Vec4d = Vec4[float64]

type Vectori = Vector[int32]
type Vectorl = Vector[int64]
type Vectorf = Vector[float32]
type Vectord = Vector[float64]

type Matrixi = Matrix[int32]
type Matrixl = Matrix[int64]
type Matrixf = Matrix[float32]
type Matrixd = Matrix[float64]

type Mat4f = Mat4[float32]
type Mat4d = Mat4[float64]

type Quatf = Quat[float32]
type Quatd = Quat[float64]
