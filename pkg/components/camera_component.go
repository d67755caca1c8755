package components

import (
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraComponent 环绕玩家的第三人称镜头
type CameraComponent struct {
	// Target 镜头跟随的实体（玩家），为 0 时停在原地
	Target ecs.EntityID

	// Yaw 水平角（度），0 表示镜头从 -Z 方向看向 +Z
	Yaw float64
	// Pitch 俯视角（度），正值表示向下看
	Pitch float64
	// Distance 镜头到目标的距离
	Distance float64
	// YawSpeed 手动旋转镜头的速度（度/秒）
	YawSpeed float64

	// Position 镜头世界坐标（由 CameraSystem 每帧计算）
	Position mgl64.Vec3
}
