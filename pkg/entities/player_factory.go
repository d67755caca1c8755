package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrDuplicatePlayer 已存在玩家时再次创建玩家
var ErrDuplicatePlayer = errors.New("player already exists")

// NewPlayer 创建玩家实体并注册为当前玩家
//
// 玩家创建后处于未激活状态（Active=false），由场景在读档完成后激活。
// 已有玩家时新实体会被立即丢弃，注册表仍指向原玩家。
//
// 参数：
//   - em: 实体管理器
//   - registry: 玩家注册表
//   - tuning: 数值配置
//   - position: 初始位置
//
// 返回：
//   - ecs.EntityID: 玩家实体ID，失败时为 0
//   - error: 参数为 nil 或已有玩家（ErrDuplicatePlayer）时返回错误
func NewPlayer(em *ecs.EntityManager, registry *game.PlayerRegistry, tuning *config.TuningConfig, position mgl64.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if registry == nil {
		return 0, fmt.Errorf("player registry cannot be nil")
	}
	if tuning == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	entityID := em.CreateEntity()
	if !registry.Register(entityID) {
		em.DestroyEntity(entityID)
		existing, _ := registry.Player()
		log.Printf("[PlayerFactory] Discarding duplicate player %d (existing: %d)", entityID, existing)
		return 0, fmt.Errorf("create player: %w", ErrDuplicatePlayer)
	}

	em.AddComponent(entityID, components.NewTransform(position))
	em.AddComponent(entityID, &components.PlayerComponent{
		State:  components.PlayerStateIdle,
		Active: false,
	})
	em.AddComponent(entityID, &components.LocomotionComponent{
		WalkingSpeed:     tuning.Player.WalkingSpeed,
		RunningSpeed:     tuning.Player.RunningSpeed,
		StaminaDrainRate: tuning.Player.StaminaDrainRate,
		RotationSpeed:    tuning.Player.RotationSpeed,
		Movable:          true,
		Runnable:         true,
	})
	em.AddComponent(entityID, &components.HealthComponent{
		MaxHP:        tuning.Stamina.MaxHP,
		CurrentHP:    tuning.Stamina.MaxHP,
		MaxSP:        tuning.Stamina.MaxSP,
		CurrentSP:    tuning.Stamina.MaxSP,
		SPRegenRate:  tuning.Stamina.RegenRate,
		SPRegenDelay: tuning.Stamina.RegenDelay,
	})
	em.AddComponent(entityID, &components.PotionComponent{})
	em.AddComponent(entityID, components.NewAnimatorComponent())

	log.Printf("[PlayerFactory] Created player %d at %v", entityID, position)
	return entityID, nil
}
