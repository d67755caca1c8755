package game

import (
	"log"

	"github.com/decker502/joseonsoul/pkg/ecs"
)

// PlayerRegistry 记录当前唯一的玩家实体
//
// 由应用创建并显式传递给需要它的场景和工厂，不使用全局变量。
// 第一个注册的玩家获胜，之后的注册请求会被拒绝，调用方负责丢弃新实体。
// 场景重载时已注册的玩家保留下来。
type PlayerRegistry struct {
	player     ecs.EntityID
	registered bool
}

// NewPlayerRegistry 创建空的玩家注册表
func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{}
}

// Register 尝试把实体注册为当前玩家
//
// 返回：
//   - bool: 注册成功返回 true；已有玩家时返回 false
func (r *PlayerRegistry) Register(id ecs.EntityID) bool {
	if r.registered {
		log.Printf("[PlayerRegistry] Player %d already registered, rejecting %d", r.player, id)
		return false
	}
	r.player = id
	r.registered = true
	return true
}

// Player 返回当前玩家实体
func (r *PlayerRegistry) Player() (ecs.EntityID, bool) {
	return r.player, r.registered
}

// IsPlayer 检查实体是否是已注册的玩家
func (r *PlayerRegistry) IsPlayer(id ecs.EntityID) bool {
	return r.registered && r.player == id
}

// Release 注销玩家（只有传入当前玩家时生效）
func (r *PlayerRegistry) Release(id ecs.EntityID) {
	if r.IsPlayer(id) {
		r.player = 0
		r.registered = false
	}
}
