package scenes

import (
	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/systems"
	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerView 玩家的只读视图
type PlayerView struct {
	Position   mgl64.Vec3
	Yaw        float64 // 朝向（度），+Z 为 0
	State      components.PlayerState
	HP, MaxHP  float64
	SP, MaxSP  float64
	Potions    int
	Speed      float64
	IsRunning  bool
	CanRun     bool
	RunPending int // 未触发的奔跑恢复计时器数量
}

// SwordView 飞剑的只读视图
type SwordView struct {
	ID       ecs.EntityID
	Position mgl64.Vec3
	Heading  mgl64.Vec3 // 飞行方向（世界坐标）
	Phase    components.SwordPhase
	Age      float64
}

// ArenaSnapshot 一帧的场景快照，供前端绘制
type ArenaSnapshot struct {
	Elapsed   float64
	CameraYaw float64
	Player    PlayerView
	Bosses    []mgl64.Vec3
	Swords    []SwordView
}

// Snapshot 生成当前帧的快照
func (s *ArenaScene) Snapshot() ArenaSnapshot {
	em := s.entityManager
	snap := ArenaSnapshot{
		Elapsed:   s.elapsed,
		CameraYaw: s.cameraSystem.Yaw(),
	}

	p := &snap.Player
	if tr, ok := ecs.GetComponent[*components.TransformComponent](em, s.player); ok {
		p.Position = tr.Position
		p.Yaw = utils.YawDegrees(tr.Rotation)
	}
	p.State = s.controller.PlayerState()
	if h, ok := ecs.GetComponent[*components.HealthComponent](em, s.player); ok {
		p.HP, p.MaxHP = h.CurrentHP, h.MaxHP
		p.SP, p.MaxSP = h.CurrentSP, h.MaxSP
	}
	if potions, ok := ecs.GetComponent[*components.PotionComponent](em, s.player); ok {
		p.Potions = potions.Remaining
	}
	p.Speed = s.locomotionSystem.Speed()
	p.IsRunning = s.locomotionSystem.IsRunning()
	p.CanRun = s.locomotionSystem.Runnable()
	p.RunPending = s.timerSystem.Pending(systems.RunRecoveryTimerName)

	for _, id := range ecs.GetEntitiesWith2[*components.BossComponent, *components.TransformComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		snap.Bosses = append(snap.Bosses, tr.Position)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.SwordMoverComponent, *components.TransformComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		mover, _ := ecs.GetComponent[*components.SwordMoverComponent](em, id)
		view := SwordView{
			ID:       id,
			Position: tr.Position,
			Heading:  tr.Rotation.Rotate(mover.LocalAxis),
			Phase:    mover.Phase,
		}
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); ok {
			view.Age = lifetime.CurrentLifetime
		}
		snap.Swords = append(snap.Swords, view)
	}

	return snap
}
