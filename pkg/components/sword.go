package components

import "github.com/go-gl/mathgl/mgl64"

// SwordPhase 飞剑运动阶段
type SwordPhase int

const (
	// SwordWaiting 生成后悬停等待
	SwordWaiting SwordPhase = iota
	// SwordMoving 沿本地轴匀速飞行，直到生命周期结束
	SwordMoving
)

// SwordMoverComponent Boss 飞剑的定时运动参数
// 纯运动学，不包含碰撞和伤害
type SwordMoverComponent struct {
	Speed        float64    // 飞行速度（单位/秒）
	LocalAxis    mgl64.Vec3 // 飞行方向（本地坐标）
	WaitDuration float64    // 开始飞行前的等待时间（秒）
	Elapsed      float64    // 等待阶段已经过的时间（秒）
	Phase        SwordPhase
}
