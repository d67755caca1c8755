package components

// LifetimeComponent 存在时间上限
// 到期清理与实体当前的运动阶段无关（飞剑等待中也会被清理）
type LifetimeComponent struct {
	MaxLifetime     float64 // 上限（秒）
	CurrentLifetime float64 // 已存在时间（秒）
	IsExpired       bool
}

// Advance 累加存在时间，返回是否已到期
// 恰好达到上限即视为到期（允许 timeEpsilon 的累加误差）
func (l *LifetimeComponent) Advance(deltaTime float64) bool {
	l.CurrentLifetime += deltaTime
	if l.CurrentLifetime >= l.MaxLifetime-timeEpsilon {
		l.IsExpired = true
	}
	return l.IsExpired
}
