package systems

import (
	"fmt"
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerController 玩家状态持有者
//
// 负责：
//   - 维护玩家状态，并把状态同步到动画参数 "player_state"
//   - 读档时传送玩家并把生命值交给生命值系统
//   - 控制玩家实体是否激活（未激活时各系统跳过该玩家）
type PlayerController struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
	animator      AnimationSink
	health        HealthResource
}

// NewPlayerController 创建玩家控制器
//
// 参数：
//   - em: 实体管理器
//   - playerEntity: 玩家实体，必须带有 PlayerComponent 和 TransformComponent
//   - animator: 动画参数接收端
//   - health: 生命值协作者
//
// 返回：
//   - error: 缺少任一协作者或组件时返回包装了 ErrMissingCollaborator 的错误
func NewPlayerController(em *ecs.EntityManager, playerEntity ecs.EntityID, animator AnimationSink, health HealthResource) (*PlayerController, error) {
	if em == nil {
		return nil, fmt.Errorf("player controller: entity manager: %w", ErrMissingCollaborator)
	}
	if animator == nil {
		return nil, fmt.Errorf("player controller: animator not detected: %w", ErrMissingCollaborator)
	}
	if health == nil {
		return nil, fmt.Errorf("player controller: health manager not detected: %w", ErrMissingCollaborator)
	}
	if !ecs.HasComponent[*components.PlayerComponent](em, playerEntity) ||
		!ecs.HasComponent[*components.TransformComponent](em, playerEntity) {
		return nil, fmt.Errorf("player controller: entity %d is not a player: %w", playerEntity, ErrMissingCollaborator)
	}

	return &PlayerController{
		entityManager: em,
		playerEntity:  playerEntity,
		animator:      animator,
		health:        health,
	}, nil
}

// Entity 返回绑定的玩家实体
func (c *PlayerController) Entity() ecs.EntityID {
	return c.playerEntity
}

func (c *PlayerController) player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](c.entityManager, c.playerEntity)
	return p
}

// SetPlayerState 更新玩家状态并同步动画参数
func (c *PlayerController) SetPlayerState(state components.PlayerState) {
	p := c.player()
	if p == nil {
		return
	}
	p.State = state
	c.animator.SetInteger(AnimParamPlayerState, int(state))
}

// PlayerState 返回当前玩家状态
func (c *PlayerController) PlayerState() components.PlayerState {
	p := c.player()
	if p == nil {
		return components.PlayerStateIdle
	}
	return p.State
}

// InitPlayer 用存档数据初始化玩家
//
// 参数：
//   - currentHP: 生命值（绝对值）
//   - potionRemained: 剩余回复药数量
//   - position: 传送目标位置
func (c *PlayerController) InitPlayer(currentHP float64, potionRemained int, position mgl64.Vec3) {
	if transform, ok := ecs.GetComponent[*components.TransformComponent](c.entityManager, c.playerEntity); ok {
		transform.Position = position
	}
	c.health.UpdateCurrentHP(currentHP, true)

	if potions, ok := ecs.GetComponent[*components.PotionComponent](c.entityManager, c.playerEntity); ok {
		potions.Remaining = potionRemained
	} else {
		ecs.AddComponent(c.entityManager, c.playerEntity, &components.PotionComponent{Remaining: potionRemained})
	}

	log.Printf("[PlayerController] Player initialized: hp=%.1f potions=%d position=%v", currentHP, potionRemained, position)
}

// SetActive 激活或隐藏玩家
func (c *PlayerController) SetActive(active bool) {
	if p := c.player(); p != nil {
		p.Active = active
	}
}

// IsActive 玩家是否处于激活状态
func (c *PlayerController) IsActive() bool {
	p := c.player()
	return p != nil && p.Active
}
