package entities

import (
	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewSword 创建 Boss 飞剑实体
// 飞剑生成后处于等待阶段，到达 Lifetime 后无论处于哪个阶段都会被销毁
//
// 参数:
//   - em: 实体管理器
//   - position: 生成位置（世界坐标）
//   - rotation: 生成朝向，决定本地飞行轴在世界中的方向
//   - tuning: 飞剑参数
//
// 返回:
//   - ecs.EntityID: 飞剑实体ID
func NewSword(em *ecs.EntityManager, position mgl64.Vec3, rotation mgl64.Quat, tuning config.SwordTuning) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position: position,
		Rotation: rotation,
	})
	em.AddComponent(entityID, &components.SwordMoverComponent{
		Speed:        tuning.Speed,
		LocalAxis:    mgl64.Vec3(tuning.LocalAxis),
		WaitDuration: tuning.WaitDuration,
		Phase:        components.SwordWaiting,
	})
	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: tuning.Lifetime,
	})

	return entityID
}
