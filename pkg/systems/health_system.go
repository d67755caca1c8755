package systems

import (
	"fmt"
	"math"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
)

// HealthSystem 管理玩家的生命值与耐力
//
// 同时实现 StaminaResource 和 HealthResource，作为移动系统和
// PlayerController 的协作者。耐力被限制在 [0, MaxSP]，
// 消耗停止 SPRegenDelay 秒后按 SPRegenRate 自然恢复。
type HealthSystem struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
}

// NewHealthSystem 创建绑定到指定实体的生命值系统
//
// 返回：
//   - error: 实体缺少 HealthComponent 时返回错误
func NewHealthSystem(em *ecs.EntityManager, playerEntity ecs.EntityID) (*HealthSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("health system: entity manager: %w", ErrMissingCollaborator)
	}
	if !ecs.HasComponent[*components.HealthComponent](em, playerEntity) {
		return nil, fmt.Errorf("health system: entity %d has no HealthComponent: %w", playerEntity, ErrMissingCollaborator)
	}
	return &HealthSystem{
		entityManager: em,
		playerEntity:  playerEntity,
	}, nil
}

func (s *HealthSystem) health() *components.HealthComponent {
	h, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerEntity)
	return h
}

// CurrentStamina 返回当前耐力
func (s *HealthSystem) CurrentStamina() float64 {
	h := s.health()
	if h == nil {
		return 0
	}
	return h.CurrentSP
}

// UpdateStamina 修改耐力
//
// 参数：
//   - delta: absolute 为 false 时为增量，为 true 时为目标值
//   - absolute: 是否直接设置
//
// 负增量视为一次耐力消耗，会重置自然恢复的等待时间
func (s *HealthSystem) UpdateStamina(delta float64, absolute bool) {
	h := s.health()
	if h == nil {
		return
	}
	if absolute {
		h.CurrentSP = clamp(delta, 0, h.MaxSP)
		return
	}
	if delta < 0 {
		h.SinceSPUse = 0
	}
	h.CurrentSP = clamp(h.CurrentSP+delta, 0, h.MaxSP)
}

// CurrentHP 返回当前生命值
func (s *HealthSystem) CurrentHP() float64 {
	h := s.health()
	if h == nil {
		return 0
	}
	return h.CurrentHP
}

// UpdateCurrentHP 修改生命值，规则同 UpdateStamina
func (s *HealthSystem) UpdateCurrentHP(value float64, absolute bool) {
	h := s.health()
	if h == nil {
		return
	}
	if absolute {
		h.CurrentHP = clamp(value, 0, h.MaxHP)
		return
	}
	h.CurrentHP = clamp(h.CurrentHP+value, 0, h.MaxHP)
}

// Update 处理耐力自然恢复
func (s *HealthSystem) Update(deltaTime float64) {
	h := s.health()
	if h == nil {
		return
	}

	if h.SinceSPUse < h.SPRegenDelay {
		h.SinceSPUse += deltaTime
		return
	}
	if h.CurrentSP < h.MaxSP {
		h.CurrentSP = math.Min(h.MaxSP, h.CurrentSP+h.SPRegenRate*deltaTime)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
