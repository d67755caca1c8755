package systems

import (
	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
)

// SwordMoveSystem Boss 飞剑的定时运动
//
// 飞剑生成后先悬停 WaitDuration 秒，随后沿本地轴匀速飞行。
// 销毁由 LifetimeSystem 负责，与运动阶段无关。
type SwordMoveSystem struct {
	entityManager *ecs.EntityManager
}

// NewSwordMoveSystem 创建飞剑运动系统
func NewSwordMoveSystem(em *ecs.EntityManager) *SwordMoveSystem {
	return &SwordMoveSystem{
		entityManager: em,
	}
}

// Update 更新所有飞剑
func (s *SwordMoveSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.SwordMoverComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		mover, ok := ecs.GetComponent[*components.SwordMoverComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		moveTime := deltaTime
		if mover.Phase == components.SwordWaiting {
			mover.Elapsed += deltaTime
			if mover.Elapsed < mover.WaitDuration {
				continue
			}
			// 等待结束：只移动超出等待时间的那一部分，位移始终等于 Speed*(t-WaitDuration)
			mover.Phase = components.SwordMoving
			moveTime = mover.Elapsed - mover.WaitDuration
		}

		transform.Translate(mover.LocalAxis.Mul(mover.Speed * moveTime))
	}
}
