package systems

import (
	"fmt"
	"log"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// RunRecoveryTimerName 耐力耗尽后恢复奔跑能力的计时器名称
const RunRecoveryTimerName = "run_recovery"

// LocomotionDeps 移动系统的协作者，全部必需
type LocomotionDeps struct {
	Input    InputProvider
	Camera   CameraProvider
	Stamina  StaminaResource
	Audio    RunningAudio
	Animator AnimationSink
	Timers   *TimerSystem
}

// LocomotionSystem 玩家移动与奔跑状态机
//
// 每帧：
//   - 玩家处于 Idle/Moving 时处理输入，否则停止奔跑
//   - 有输入时按镜头方向移动、转向，奔跑时消耗耐力
//   - 耐力不高于阈值时禁止奔跑，冷却结束后由计时器恢复
type LocomotionSystem struct {
	entityManager *ecs.EntityManager
	controller    *PlayerController
	deps          LocomotionDeps
	tuning        config.PlayerTuning
}

// NewLocomotionSystem 创建移动系统
//
// 返回：
//   - error: 缺少协作者或玩家实体没有 LocomotionComponent 时返回错误
func NewLocomotionSystem(em *ecs.EntityManager, controller *PlayerController, deps LocomotionDeps, tuning config.PlayerTuning) (*LocomotionSystem, error) {
	missing := ""
	switch {
	case em == nil:
		missing = "entity manager"
	case controller == nil:
		missing = "player controller"
	case deps.Input == nil:
		missing = "input provider"
	case deps.Camera == nil:
		missing = "camera"
	case deps.Stamina == nil:
		missing = "health manager"
	case deps.Audio == nil:
		missing = "sound manager"
	case deps.Animator == nil:
		missing = "animator"
	case deps.Timers == nil:
		missing = "timer system"
	}
	if missing != "" {
		return nil, fmt.Errorf("locomotion system: no %s detected: %w", missing, ErrMissingCollaborator)
	}

	loco, ok := ecs.GetComponent[*components.LocomotionComponent](em, controller.Entity())
	if !ok {
		return nil, fmt.Errorf("locomotion system: entity %d has no LocomotionComponent: %w", controller.Entity(), ErrMissingCollaborator)
	}
	loco.Runnable = true

	return &LocomotionSystem{
		entityManager: em,
		controller:    controller,
		deps:          deps,
		tuning:        tuning,
	}, nil
}

// IsRunning 玩家当前是否在奔跑（待机时为 false）
func (s *LocomotionSystem) IsRunning() bool {
	loco := s.locomotion()
	return loco != nil && loco.IsRunning && s.controller.PlayerState() == components.PlayerStateMoving
}

// Speed 返回最近一次移动使用的速度
func (s *LocomotionSystem) Speed() float64 {
	if loco := s.locomotion(); loco != nil {
		return loco.Speed
	}
	return 0
}

// Runnable 当前是否允许奔跑
func (s *LocomotionSystem) Runnable() bool {
	loco := s.locomotion()
	return loco != nil && loco.Runnable
}

func (s *LocomotionSystem) locomotion() *components.LocomotionComponent {
	loco, _ := ecs.GetComponent[*components.LocomotionComponent](s.entityManager, s.controller.Entity())
	return loco
}

// Update 每帧更新玩家移动
func (s *LocomotionSystem) Update(deltaTime float64) {
	if !s.controller.IsActive() {
		return
	}
	loco := s.locomotion()
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.controller.Entity())
	if loco == nil || !ok {
		return
	}

	loco.Movable = s.controller.PlayerState().AllowsMovement()
	if loco.Movable {
		s.handleMovement(loco, transform, deltaTime)
	} else {
		loco.IsRunning = false
	}

	s.checkStamina(loco)
}

// handleMovement 根据输入和镜头方向移动、转向玩家
func (s *LocomotionSystem) handleMovement(loco *components.LocomotionComponent, transform *components.TransformComponent, deltaTime float64) {
	horizontal := s.deps.Input.Axis(AxisHorizontal)
	vertical := s.deps.Input.Axis(AxisVertical)

	if utils.InputMagnitude(horizontal, vertical) < s.tuning.RunInputThreshold {
		s.controller.SetPlayerState(components.PlayerStateIdle)
		s.deps.Audio.SetRunning(false)
		return
	}

	moveDirection := utils.CalculateMoveDirection(s.deps.Camera.Forward(), s.deps.Camera.Right(), horizontal, vertical)

	loco.IsRunning = loco.Runnable && s.deps.Input.RunHeld()
	if loco.IsRunning {
		loco.Speed = loco.RunningSpeed
	} else {
		loco.Speed = loco.WalkingSpeed
	}

	s.controller.SetPlayerState(components.PlayerStateMoving)
	s.deps.Animator.SetBool(AnimParamRun, loco.IsRunning)
	s.deps.Animator.SetBool(AnimParamWalk, !loco.IsRunning)

	transform.Position = transform.Position.Add(moveDirection.Mul(loco.Speed * deltaTime))
	s.rotate(loco, transform, moveDirection, deltaTime)

	if loco.IsRunning {
		s.deps.Stamina.UpdateStamina(-loco.StaminaDrainRate*deltaTime, false)
	}
	s.deps.Audio.SetRunning(true)
}

// rotate 以固定最大角速度转向移动方向
func (s *LocomotionSystem) rotate(loco *components.LocomotionComponent, transform *components.TransformComponent, moveDirection mgl64.Vec3, deltaTime float64) {
	if moveDirection.Len() == 0 {
		return
	}
	target := utils.LookRotation(moveDirection)
	transform.Rotation = utils.RotateTowards(transform.Rotation, target, loco.RotationSpeed*deltaTime)
}

// checkStamina 耐力不足时禁止奔跑并安排恢复
func (s *LocomotionSystem) checkStamina(loco *components.LocomotionComponent) {
	if s.deps.Stamina.CurrentStamina() > s.tuning.ExhaustedStamina {
		return
	}

	if loco.Runnable {
		log.Printf("[LocomotionSystem] Stamina exhausted, running disabled for %.1fs", s.tuning.RunCooldown)
	}
	loco.Runnable = false

	if s.tuning.CooldownPolicy != config.CooldownStack && loco.RecoveryPending > 0 {
		return
	}

	loco.RecoveryPending++
	s.deps.Timers.Schedule(RunRecoveryTimerName, s.tuning.RunCooldown, func() {
		s.enableRunning()
	})
}

// enableRunning 恢复奔跑能力（由计时器回调）
func (s *LocomotionSystem) enableRunning() {
	loco := s.locomotion()
	if loco == nil {
		return
	}
	if loco.RecoveryPending > 0 {
		loco.RecoveryPending--
	}
	loco.Runnable = true
}
