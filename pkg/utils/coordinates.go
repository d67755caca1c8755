// coordinates.go 提供俯视图的坐标转换
//
// # 坐标系统概述
//
//   - **世界坐标**：Y 轴向上，+Z 为前方，+X 为右方
//   - **视图坐标**：以观察中心为原点，forward 沿镜头水平朝向，right 垂直于其右侧
//   - **屏幕坐标**：由前端按各自的缩放把视图坐标映射到像素或字符格
//
// # 核心转换公式
//
//	d       = p - center
//	forward = d.X*sin(yaw) + d.Z*cos(yaw)
//	right   = d.X*cos(yaw) - d.Z*sin(yaw)
//
// 高度 (Y) 不参与投影。
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GroundView 以某点为中心、跟随镜头水平角的俯视投影
type GroundView struct {
	Center mgl64.Vec3
	sin    float64
	cos    float64
}

// NewGroundView 创建俯视投影
//
// 参数：
//   - center: 视图中心（世界坐标）
//   - cameraYawDegrees: 镜头水平角（度），0 表示镜头朝向 +Z
func NewGroundView(center mgl64.Vec3, cameraYawDegrees float64) GroundView {
	sin, cos := math.Sincos(mgl64.DegToRad(cameraYawDegrees))
	return GroundView{Center: center, sin: sin, cos: cos}
}

// WorldToView 将世界坐标转换为视图坐标 (right, forward)
func (v GroundView) WorldToView(p mgl64.Vec3) (right, forward float64) {
	d := p.Sub(v.Center)
	forward = d.X()*v.sin + d.Z()*v.cos
	right = d.X()*v.cos - d.Z()*v.sin
	return right, forward
}

// ViewToWorld 将视图坐标转换回地面上的世界坐标（y = Center.Y）
func (v GroundView) ViewToWorld(right, forward float64) mgl64.Vec3 {
	x := right*v.cos + forward*v.sin
	z := forward*v.cos - right*v.sin
	return mgl64.Vec3{v.Center.X() + x, v.Center.Y(), v.Center.Z() + z}
}
