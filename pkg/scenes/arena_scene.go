package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/entities"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/decker502/joseonsoul/pkg/systems"
	"github.com/go-gl/mathgl/mgl64"
)

// ArenaDeps 场景的外部协作者，由前端提供
type ArenaDeps struct {
	Input systems.InputProvider
	Audio systems.RunningAudio
}

// ArenaOptions 场景启动选项
type ArenaOptions struct {
	// Fresh 为 true 时忽略并删除已有存档
	Fresh bool
}

// ArenaScene Boss 竞技场
//
// 持有实体管理器和全部系统，每帧按固定顺序更新：
// Timer → Camera → Locomotion → Health → SwordMove → Lifetime → BossAttack，
// 最后统一清理标记删除的实体。
type ArenaScene struct {
	state  *game.GameState
	tuning *config.TuningConfig
	deps   ArenaDeps

	entityManager *ecs.EntityManager
	player        ecs.EntityID
	boss          ecs.EntityID

	controller       *systems.PlayerController
	healthSystem     *systems.HealthSystem
	timerSystem      *systems.TimerSystem
	cameraSystem     *systems.CameraSystem
	locomotionSystem *systems.LocomotionSystem
	bossAttackSystem *systems.BossAttackSystem
	swordMoveSystem  *systems.SwordMoveSystem
	lifetimeSystem   *systems.LifetimeSystem

	elapsed float64 // 本场景累计运行时间（秒），重载时清零
}

// NewArenaScene 创建竞技场场景
//
// 流程：
//  1. 创建玩家（注册到 state.Registry）和全部系统
//  2. 读取存档并通过 InitPlayer 应用，没有存档时使用满血和初始回复药
//  3. 创建 Boss 并激活玩家
//
// 返回：
//   - error: 参数缺失、玩家已存在或系统缺少协作者时返回错误
func NewArenaScene(state *game.GameState, tuning *config.TuningConfig, deps ArenaDeps, opts ArenaOptions) (*ArenaScene, error) {
	if state == nil || tuning == nil {
		return nil, fmt.Errorf("arena scene: game state and tuning are required")
	}
	if deps.Input == nil || deps.Audio == nil {
		return nil, fmt.Errorf("arena scene: input and audio are required: %w", systems.ErrMissingCollaborator)
	}

	s := &ArenaScene{
		state:         state,
		tuning:        tuning,
		deps:          deps,
		entityManager: ecs.NewEntityManager(),
	}

	player, err := entities.NewPlayer(s.entityManager, state.Registry, tuning, mgl64.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("arena scene: %w", err)
	}
	s.player = player

	if err := s.initSystems(); err != nil {
		state.Registry.Release(player)
		return nil, err
	}

	s.applySave(opts.Fresh)
	s.spawnArena()
	s.controller.SetActive(true)

	log.Printf("[ArenaScene] Arena ready: player=%d boss=%d", s.player, s.boss)
	return s, nil
}

// initSystems 创建全部系统，玩家实体必须已经存在
func (s *ArenaScene) initSystems() error {
	em := s.entityManager

	animator, ok := ecs.GetComponent[*components.AnimatorComponent](em, s.player)
	if !ok {
		return fmt.Errorf("arena scene: player has no animator: %w", systems.ErrMissingCollaborator)
	}

	var err error
	if s.healthSystem, err = systems.NewHealthSystem(em, s.player); err != nil {
		return err
	}
	if s.controller, err = systems.NewPlayerController(em, s.player, animator, s.healthSystem); err != nil {
		return err
	}

	s.timerSystem = systems.NewTimerSystem(em)
	s.cameraSystem = systems.NewCameraSystem(em, s.player, s.deps.Input, s.tuning.Camera)

	s.locomotionSystem, err = systems.NewLocomotionSystem(em, s.controller, systems.LocomotionDeps{
		Input:    s.deps.Input,
		Camera:   s.cameraSystem,
		Stamina:  s.healthSystem,
		Audio:    s.deps.Audio,
		Animator: animator,
		Timers:   s.timerSystem,
	}, s.tuning.Player)
	if err != nil {
		return err
	}

	s.bossAttackSystem = systems.NewBossAttackSystem(em, s.controller, s.tuning.Sword)
	s.swordMoveSystem = systems.NewSwordMoveSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	return nil
}

// applySave 读档并初始化玩家
func (s *ArenaScene) applySave(fresh bool) {
	saves := s.state.Saves
	if fresh {
		if err := saves.Delete(); err != nil {
			log.Printf("[ArenaScene] Warning: failed to delete save: %v", err)
		}
	}

	data, err := saves.Load()
	switch {
	case err == nil:
		s.controller.InitPlayer(data.HP, data.Potions, mgl64.Vec3(data.Position))
		return
	case errors.Is(err, game.ErrNoSave):
		log.Printf("[ArenaScene] No save found, starting fresh")
	default:
		log.Printf("[ArenaScene] Warning: failed to load save: %v (starting fresh)", err)
	}
	s.controller.InitPlayer(s.tuning.Stamina.MaxHP, s.tuning.Stamina.Potions, mgl64.Vec3{})
}

// spawnArena 创建 Boss
func (s *ArenaScene) spawnArena() {
	s.boss = entities.NewBoss(s.entityManager, s.tuning.Boss)
}

// Update 按固定顺序更新所有系统
func (s *ArenaScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	s.timerSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.locomotionSystem.Update(deltaTime)
	s.healthSystem.Update(deltaTime)
	s.swordMoveSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	// 本帧生成的飞剑从下一帧开始计时
	s.bossAttackSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Reload 重建竞技场
//
// 玩家、镜头和未触发的计时器保留（玩家状态不变），Boss 和飞剑被清除后重新生成。
func (s *ArenaScene) Reload() error {
	em := s.entityManager
	keep := map[ecs.EntityID]bool{
		s.player:                true,
		s.cameraSystem.Entity(): true,
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](em) {
		keep[id] = true
	}

	for _, id := range em.GetEntitiesWith() {
		if !keep[id] {
			em.DestroyEntity(id)
		}
	}
	removed := em.RemoveMarkedEntities()

	if registered, ok := s.state.Registry.Player(); !ok || registered != s.player {
		return fmt.Errorf("arena scene: registered player changed during reload")
	}

	s.spawnArena()
	s.elapsed = 0
	log.Printf("[ArenaScene] Reloaded: removed %d entities, player %d kept", removed, s.player)
	return nil
}

// SaveOnExit 保存玩家状态
func (s *ArenaScene) SaveOnExit() bool {
	data := s.SaveData()
	if data == nil {
		return true
	}
	if err := s.state.Saves.Save(data); err != nil {
		log.Printf("[ArenaScene] ERROR: Failed to save player: %v", err)
		return false
	}
	return true
}

// SaveData 收集当前玩家的存档数据
func (s *ArenaScene) SaveData() *game.PlayerSaveData {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player)
	if !ok {
		return nil
	}
	potions := 0
	if p, ok := ecs.GetComponent[*components.PotionComponent](s.entityManager, s.player); ok {
		potions = p.Remaining
	}
	return &game.PlayerSaveData{
		HP:       s.healthSystem.CurrentHP(),
		Potions:  potions,
		Position: [3]float64(transform.Position),
	}
}

// EntityManager 返回场景的实体管理器
func (s *ArenaScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Player 返回玩家实体
func (s *ArenaScene) Player() ecs.EntityID {
	return s.player
}

// Controller 返回玩家控制器
func (s *ArenaScene) Controller() *systems.PlayerController {
	return s.controller
}

// Locomotion 返回移动系统
func (s *ArenaScene) Locomotion() *systems.LocomotionSystem {
	return s.locomotionSystem
}

// Health 返回生命值系统
func (s *ArenaScene) Health() *systems.HealthSystem {
	return s.healthSystem
}

// Timers 返回计时器系统
func (s *ArenaScene) Timers() *systems.TimerSystem {
	return s.timerSystem
}

// Camera 返回镜头系统
func (s *ArenaScene) Camera() *systems.CameraSystem {
	return s.cameraSystem
}
