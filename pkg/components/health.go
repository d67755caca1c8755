package components

// HealthComponent 生命值和耐力（SP）
type HealthComponent struct {
	MaxHP     float64
	CurrentHP float64

	MaxSP     float64
	CurrentSP float64

	// SPRegenRate 每秒自然恢复的耐力
	SPRegenRate float64
	// SPRegenDelay 消耗耐力后需要等待多久才开始恢复（秒）
	SPRegenDelay float64
	// SinceSPUse 距离上次消耗耐力的时间（秒）
	SinceSPUse float64
}
