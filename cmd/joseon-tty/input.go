package main

import (
	"time"

	"github.com/decker502/joseonsoul/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// direction 被锁存的方向键
type direction int

const (
	dirForward direction = iota
	dirBack
	dirLeft
	dirRight
	dirYawLeft
	dirYawRight
	directionCount
)

// latchInput 终端输入锁存
//
// 终端只上报按下（和系统的按键重复），没有松开事件。
// 每次按下把对应方向保持 hold 时长，持续按住时按键重复会不断续期。
// 大写 WASD（Shift+字母）同时锁存奔跑。
type latchInput struct {
	hold    time.Duration
	now     time.Time
	expires [directionCount]time.Time
	runTill time.Time
}

func newLatchInput(hold time.Duration) *latchInput {
	return &latchInput{hold: hold}
}

// HandleKey 处理一次按键，返回是否为移动相关按键
func (in *latchInput) HandleKey(ev *tcell.EventKey, at time.Time) bool {
	in.now = at
	until := at.Add(in.hold)

	switch ev.Key() {
	case tcell.KeyUp:
		in.expires[dirForward] = until
		return true
	case tcell.KeyDown:
		in.expires[dirBack] = until
		return true
	case tcell.KeyLeft:
		in.expires[dirLeft] = until
		return true
	case tcell.KeyRight:
		in.expires[dirRight] = until
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	var dir direction
	switch r {
	case 'w', 'W':
		dir = dirForward
	case 's', 'S':
		dir = dirBack
	case 'a', 'A':
		dir = dirLeft
	case 'd', 'D':
		dir = dirRight
	case 'q':
		dir = dirYawLeft
	case 'e':
		dir = dirYawRight
	default:
		return false
	}

	in.expires[dir] = until
	if r >= 'A' && r <= 'Z' {
		in.runTill = until
	} else if dir < dirYawLeft {
		// 小写移动键取消奔跑
		in.runTill = time.Time{}
	}
	return true
}

// Advance 推进输入时钟，过期的按键视为已松开
func (in *latchInput) Advance(at time.Time) {
	in.now = at
}

// Release 立即松开所有按键
func (in *latchInput) Release() {
	in.expires = [directionCount]time.Time{}
	in.runTill = time.Time{}
}

func (in *latchInput) held(dir direction) bool {
	return in.now.Before(in.expires[dir])
}

func (in *latchInput) axis(negative, positive direction) float64 {
	v := 0.0
	if in.held(negative) {
		v--
	}
	if in.held(positive) {
		v++
	}
	return v
}

// Axis 实现 systems.InputProvider
func (in *latchInput) Axis(name string) float64 {
	switch name {
	case systems.AxisHorizontal:
		return in.axis(dirLeft, dirRight)
	case systems.AxisVertical:
		return in.axis(dirBack, dirForward)
	case systems.AxisCameraYaw:
		return in.axis(dirYawLeft, dirYawRight)
	}
	return 0
}

// RunHeld 实现 systems.InputProvider
func (in *latchInput) RunHeld() bool {
	return in.now.Before(in.runTill)
}
