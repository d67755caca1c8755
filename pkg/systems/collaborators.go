package systems

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrMissingCollaborator 构造系统时缺少必需的依赖
var ErrMissingCollaborator = errors.New("missing required collaborator")

// 输入轴名称
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
)

// 动画参数名称
const (
	AnimParamPlayerState = "player_state"
	AnimParamRun         = "run"
	AnimParamWalk        = "walk"
)

// AnimationSink 接收动画参数
type AnimationSink interface {
	SetInteger(name string, value int)
	SetBool(name string, value bool)
}

// StaminaResource 耐力资源
// absolute 为 true 时 delta 是目标值，否则是增量
type StaminaResource interface {
	CurrentStamina() float64
	UpdateStamina(delta float64, absolute bool)
}

// HealthResource 生命值资源
type HealthResource interface {
	UpdateCurrentHP(value float64, absolute bool)
}

// CameraProvider 提供镜头朝向
type CameraProvider interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// RunningAudio 脚步声提示
type RunningAudio interface {
	SetRunning(running bool)
}

// InputProvider 每帧的原始输入
type InputProvider interface {
	// Axis 返回 [-1, 1] 范围的轴值，name 为 AxisHorizontal 或 AxisVertical
	Axis(name string) float64
	// RunHeld 奔跑键是否按住
	RunHeld() bool
}
