package systems

import (
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
)

// TimerSystem 驱动一次性延迟回调
//
// 每个计时器是一个只带 TimerComponent 的实体：Update 累加帧间隔，
// 到期时调用 OnReady 并销毁实体。计时器不可取消，回调在主循环中执行。
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建计时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{
		entityManager: em,
	}
}

// Schedule 安排一个在 delay 秒后触发的回调
//
// 参数：
//   - name: 计时器名称，用于 Pending 查询
//   - delay: 延迟（秒），<= 0 时在下一次 Update 触发
//   - onReady: 触发时的回调，可为 nil
//
// 返回：
//   - ecs.EntityID: 计时器实体ID
func (s *TimerSystem) Schedule(name string, delay float64, onReady func()) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.TimerComponent{
		Name:       name,
		TargetTime: delay,
		OnReady:    onReady,
	})
	return id
}

// Pending 返回指定名称中尚未触发的计时器数量
func (s *TimerSystem) Pending(name string) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if ok && timer.Name == name && !timer.IsReady {
			count++
		}
	}
	return count
}

// Update 推进所有计时器
// 同一帧到期的多个计时器按创建顺序触发
func (s *TimerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager)

	for _, id := range entities {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		if !ok || !timer.Advance(deltaTime) {
			continue
		}

		if timer.OnReady != nil {
			timer.OnReady()
		} else {
			log.Printf("[TimerSystem] Timer %q fired without callback", timer.Name)
		}
		s.entityManager.DestroyEntity(id)
	}
}
