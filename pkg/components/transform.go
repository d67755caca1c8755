package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体在世界中的位置和朝向
// 世界坐标：Y 轴向上，+Z 为默认前方
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform 创建位于 position、朝向为单位四元数的变换组件
func NewTransform(position mgl64.Vec3) *TransformComponent {
	return &TransformComponent{
		Position: position,
		Rotation: mgl64.QuatIdent(),
	}
}

// Translate 沿本地坐标轴平移（方向先经 Rotation 旋转到世界空间）
func (t *TransformComponent) Translate(local mgl64.Vec3) {
	t.Position = t.Position.Add(t.Rotation.Rotate(local))
}
