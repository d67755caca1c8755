package systems

import (
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
)

// LifetimeSystem 清理超过存在时间上限的实体
// 到期实体只做删除标记，由场景在帧末统一移除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 推进所有 LifetimeComponent 的计时
func (s *LifetimeSystem) Update(deltaTime float64) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](em) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if !ok || !lifetime.Advance(deltaTime) {
			continue
		}
		em.DestroyEntity(id)
		log.Printf("[LifetimeSystem] Entity %d expired after %.2fs", id, lifetime.CurrentLifetime)
	}
}
