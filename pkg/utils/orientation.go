package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 世界坐标约定：Y 轴向上，角色正前方为 +Z，右方为 +X
var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
)

// directionEpsilon 小于该长度的向量视为零向量
const directionEpsilon = 1e-9

// SafeNormalize 归一化向量；零向量返回 (零向量, false)，不会产生 NaN
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	length := v.Len()
	if length < directionEpsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / length), true
}

// FlattenToGround 将向量投影到水平面（y = 0）并归一化
// 镜头垂直朝下时投影长度为 0，此时返回零向量
func FlattenToGround(v mgl64.Vec3) mgl64.Vec3 {
	flat, _ := SafeNormalize(mgl64.Vec3{v.X(), 0, v.Z()})
	return flat
}

// CalculateMoveDirection 根据输入轴和镜头朝向计算移动方向
//
// 参数：
//   - cameraForward, cameraRight: 镜头的前方和右方向量（任意俯仰角）
//   - horizontal, vertical: 输入轴，范围 [-1, 1]
//
// 返回：
//   - mgl64.Vec3: 位于水平面的移动方向；长度超过 1 时归一化，
//     否则保留模拟输入的原始幅度（轻推摇杆走得更慢）
func CalculateMoveDirection(cameraForward, cameraRight mgl64.Vec3, horizontal, vertical float64) mgl64.Vec3 {
	forward := FlattenToGround(cameraForward)
	right := FlattenToGround(cameraRight)

	desired := forward.Mul(vertical).Add(right.Mul(horizontal))
	if desired.Len() > 1 {
		desired = desired.Normalize()
	}
	return desired
}

// InputMagnitude 返回二维输入的模长
func InputMagnitude(horizontal, vertical float64) float64 {
	return math.Hypot(horizontal, vertical)
}

// LookRotation 返回使 +Z 指向 dir 水平分量的朝向（绕 Y 轴旋转）
// dir 的水平分量为零时返回单位四元数
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	if math.Hypot(dir.X(), dir.Z()) < directionEpsilon {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(dir.X(), dir.Z())
	return mgl64.QuatRotate(yaw, WorldUp)
}

// AngleBetween 返回两个朝向之间的最短夹角（度）
func AngleBetween(a, b mgl64.Quat) float64 {
	dot := math.Abs(a.Normalize().Dot(b.Normalize()))
	if dot > 1 {
		dot = 1
	}
	return mgl64.RadToDeg(2 * math.Acos(dot))
}

// RotateTowards 以最短路径从 from 转向 to，单次最多转过 maxDegrees 度
//
// 剩余角度不超过 maxDegrees 时直接返回 to；maxDegrees <= 0 时保持不动
func RotateTowards(from, to mgl64.Quat, maxDegrees float64) mgl64.Quat {
	if maxDegrees <= 0 {
		return from
	}
	angle := AngleBetween(from, to)
	if angle <= maxDegrees {
		return to
	}

	from, to = from.Normalize(), to.Normalize()
	// q 与 -q 表示同一朝向，取点积为正的一侧保证走最短弧
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	// 绕剩余旋转的轴恰好转 maxDegrees
	delta := to.Mul(from.Inverse())
	axis, ok := SafeNormalize(delta.V)
	if !ok {
		return to
	}
	step := mgl64.QuatRotate(mgl64.DegToRad(maxDegrees), axis)
	return step.Mul(from).Normalize()
}

// YawDegrees 返回朝向在水平面上的偏航角（度），+Z 为 0，+X 为 90
func YawDegrees(q mgl64.Quat) float64 {
	facing := q.Rotate(WorldForward)
	return mgl64.RadToDeg(math.Atan2(facing.X(), facing.Z()))
}
