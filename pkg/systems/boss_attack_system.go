package systems

import (
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/entities"
	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// BossAttackSystem Boss 定时投掷飞剑
//
// 每隔 AttackInterval 秒在 Boss 头顶生成一把飞剑，
// 飞剑的本地飞行轴对准玩家当前位置。玩家未激活时不攻击。
type BossAttackSystem struct {
	entityManager *ecs.EntityManager
	controller    *PlayerController
	sword         config.SwordTuning
}

// NewBossAttackSystem 创建 Boss 攻击系统
func NewBossAttackSystem(em *ecs.EntityManager, controller *PlayerController, sword config.SwordTuning) *BossAttackSystem {
	return &BossAttackSystem{
		entityManager: em,
		controller:    controller,
		sword:         sword,
	}
}

// Update 推进所有 Boss 的攻击计时
func (s *BossAttackSystem) Update(deltaTime float64) {
	if s.controller == nil || !s.controller.IsActive() {
		return
	}
	playerTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.controller.Entity())
	if !ok {
		return
	}

	bosses := ecs.GetEntitiesWith2[*components.BossComponent, *components.TransformComponent](s.entityManager)
	for _, id := range bosses {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
		bossTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		boss.SinceAttack += deltaTime
		if boss.SinceAttack < boss.AttackInterval {
			continue
		}
		boss.SinceAttack -= boss.AttackInterval

		spawn := bossTransform.Position.Add(utils.WorldUp.Mul(boss.SpawnHeight))
		rotation := AimRotation(s.sword.LocalAxis, spawn, playerTransform.Position)
		swordID := entities.NewSword(s.entityManager, spawn, rotation, s.sword)
		boss.SwordsThrown++

		log.Printf("[BossAttackSystem] Boss %d threw sword %d (total %d)", id, swordID, boss.SwordsThrown)
	}
}

// AimRotation 返回把本地轴 localAxis 对准 from→to 方向的旋转
// 两点重合时返回单位四元数
func AimRotation(localAxis [3]float64, from, to mgl64.Vec3) mgl64.Quat {
	axis, ok := utils.SafeNormalize(mgl64.Vec3(localAxis))
	if !ok {
		return mgl64.QuatIdent()
	}
	dir, ok := utils.SafeNormalize(to.Sub(from))
	if !ok {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(axis, dir)
}
