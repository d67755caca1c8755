package components

// BossComponent Boss 的飞剑攻击节奏
type BossComponent struct {
	AttackInterval float64 // 两次投掷之间的间隔（秒）
	SpawnHeight    float64 // 飞剑生成在 Boss 头顶的高度
	SinceAttack    float64 // 距离上次投掷的时间（秒）
	SwordsThrown   int
}
