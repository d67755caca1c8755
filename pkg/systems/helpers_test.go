package systems

import (
	"testing"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/entities"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// fakeInput 可编程的输入
type fakeInput struct {
	horizontal float64
	vertical   float64
	yaw        float64
	run        bool
}

func (f *fakeInput) Axis(name string) float64 {
	switch name {
	case AxisHorizontal:
		return f.horizontal
	case AxisVertical:
		return f.vertical
	case AxisCameraYaw:
		return f.yaw
	}
	return 0
}

func (f *fakeInput) RunHeld() bool { return f.run }

// fakeCamera 固定朝向的镜头
type fakeCamera struct {
	forward mgl64.Vec3
	right   mgl64.Vec3
}

func (c *fakeCamera) Forward() mgl64.Vec3 { return c.forward }
func (c *fakeCamera) Right() mgl64.Vec3   { return c.right }

// fakeAudio 记录 SetRunning 调用
type fakeAudio struct {
	calls []bool
}

func (a *fakeAudio) SetRunning(running bool) { a.calls = append(a.calls, running) }

func (a *fakeAudio) last() (bool, bool) {
	if len(a.calls) == 0 {
		return false, false
	}
	return a.calls[len(a.calls)-1], true
}

// locomotionFixture 一个激活的玩家和完整的移动系统
type locomotionFixture struct {
	em         *ecs.EntityManager
	player     ecs.EntityID
	controller *PlayerController
	health     *HealthSystem
	timers     *TimerSystem
	locomotion *LocomotionSystem
	input      *fakeInput
	camera     *fakeCamera
	audio      *fakeAudio
	animator   *components.AnimatorComponent
}

func newLocomotionFixture(t *testing.T, tuning *config.TuningConfig) *locomotionFixture {
	t.Helper()
	if tuning == nil {
		tuning = config.DefaultTuningConfig()
	}

	em := ecs.NewEntityManager()
	player, err := entities.NewPlayer(em, game.NewPlayerRegistry(), tuning, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	health, err := NewHealthSystem(em, player)
	if err != nil {
		t.Fatalf("NewHealthSystem() error: %v", err)
	}
	animator, _ := ecs.GetComponent[*components.AnimatorComponent](em, player)
	controller, err := NewPlayerController(em, player, animator, health)
	if err != nil {
		t.Fatalf("NewPlayerController() error: %v", err)
	}
	controller.SetActive(true)

	f := &locomotionFixture{
		em:         em,
		player:     player,
		controller: controller,
		health:     health,
		timers:     NewTimerSystem(em),
		input:      &fakeInput{},
		camera:     &fakeCamera{forward: mgl64.Vec3{0, 0, 1}, right: mgl64.Vec3{1, 0, 0}},
		audio:      &fakeAudio{},
		animator:   animator,
	}

	f.locomotion, err = NewLocomotionSystem(em, controller, LocomotionDeps{
		Input:    f.input,
		Camera:   f.camera,
		Stamina:  health,
		Audio:    f.audio,
		Animator: animator,
		Timers:   f.timers,
	}, tuning.Player)
	if err != nil {
		t.Fatalf("NewLocomotionSystem() error: %v", err)
	}
	return f
}

// step 按场景的顺序推进一帧（不含生命值恢复）
func (f *locomotionFixture) step(dt float64) {
	f.timers.Update(dt)
	f.locomotion.Update(dt)
	f.em.RemoveMarkedEntities()
}

func (f *locomotionFixture) transform() *components.TransformComponent {
	tr, _ := ecs.GetComponent[*components.TransformComponent](f.em, f.player)
	return tr
}

func (f *locomotionFixture) loco() *components.LocomotionComponent {
	l, _ := ecs.GetComponent[*components.LocomotionComponent](f.em, f.player)
	return l
}
