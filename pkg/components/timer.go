package components

// timeEpsilon 累加帧间隔时的浮点误差容差（秒）
// 60 帧每秒累加 360 帧的结果略小于 6.0，容差保证恰好在第 360 帧到期
const timeEpsilon = 1e-9

// TimerComponent 一次性计时器组件
// 用于处理需要时间延迟的行为（如耐力耗尽后的奔跑冷却）
// 时间按帧间隔累加，而不是墙上时钟
type TimerComponent struct {
	Name        string  // 计时器名称，如 "run_recovery"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	OnReady     func()  // 完成时回调，只会调用一次
}

// Advance 累加帧间隔，返回本次是否到期
// 已完成的计时器不再累加，也不会再次返回 true
func (t *TimerComponent) Advance(deltaTime float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime < t.TargetTime-timeEpsilon {
		return false
	}
	t.IsReady = true
	return true
}
