package app

import (
	"github.com/decker502/joseonsoul/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// stickDeadZone 摇杆小于该值视为 0
const stickDeadZone = 0.05

// KeyboardInput 键盘和手柄输入
//
//   - WASD / 方向键：移动
//   - Shift：奔跑
//   - Q / E：旋转镜头
//
// 键盘没有输入时读取第一个标准布局手柄的左摇杆（模拟量），右摇杆旋转镜头，A 键奔跑。
type KeyboardInput struct{}

// NewKeyboardInput 创建输入源
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Axis 返回指定输入轴的值
func (in *KeyboardInput) Axis(name string) float64 {
	switch name {
	case systems.AxisHorizontal:
		keys := keyAxis(
			ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		)
		return combineAxis(keys, in.stick(ebiten.StandardGamepadAxisLeftStickHorizontal))
	case systems.AxisVertical:
		keys := keyAxis(
			ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		)
		// 摇杆向下为正
		return combineAxis(keys, -in.stick(ebiten.StandardGamepadAxisLeftStickVertical))
	case systems.AxisCameraYaw:
		keys := keyAxis(ebiten.IsKeyPressed(ebiten.KeyQ), ebiten.IsKeyPressed(ebiten.KeyE))
		return combineAxis(keys, in.stick(ebiten.StandardGamepadAxisRightStickHorizontal))
	}
	return 0
}

// RunHeld 奔跑键是否按住
func (in *KeyboardInput) RunHeld() bool {
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		return true
	}
	id, ok := in.gamepad()
	return ok && ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
}

func (in *KeyboardInput) gamepad() (ebiten.GamepadID, bool) {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func (in *KeyboardInput) stick(axis ebiten.StandardGamepadAxis) float64 {
	id, ok := in.gamepad()
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// keyAxis 把一对按键转换为 -1/0/1，同时按下时抵消
func keyAxis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// combineAxis 键盘优先，键盘无输入时使用摇杆，结果限制在 [-1, 1]
func combineAxis(keys, stick float64) float64 {
	if keys != 0 {
		return keys
	}
	if stick > -stickDeadZone && stick < stickDeadZone {
		return 0
	}
	if stick > 1 {
		return 1
	}
	if stick < -1 {
		return -1
	}
	return stick
}
