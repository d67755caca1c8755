package entities

import (
	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewBoss 创建 Boss 实体
// Boss 本身不移动，只按固定间隔投掷飞剑
func NewBoss(em *ecs.EntityManager, tuning config.BossTuning) ecs.EntityID {
	entityID := em.CreateEntity()

	em.AddComponent(entityID, components.NewTransform(mgl64.Vec3(tuning.Position)))
	em.AddComponent(entityID, &components.BossComponent{
		AttackInterval: tuning.AttackInterval,
		SpawnHeight:    tuning.SpawnHeight,
	})

	return entityID
}
