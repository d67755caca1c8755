package components

// LocomotionComponent 玩家移动参数和运行时状态
type LocomotionComponent struct {
	WalkingSpeed     float64 // 步行速度（单位/秒）
	RunningSpeed     float64 // 奔跑速度（单位/秒）
	StaminaDrainRate float64 // 奔跑时每秒消耗的耐力
	RotationSpeed    float64 // 最大转向速度（度/秒）

	Speed     float64 // 当前帧使用的速度
	IsRunning bool    // 是否处于奔跑（最近一次移动帧的结果）
	Movable   bool    // 当前帧是否允许移动（由玩家状态决定）
	Runnable  bool    // 是否允许奔跑（耐力耗尽后暂时关闭）

	// RecoveryPending 已安排但尚未触发的恢复计时器数量
	RecoveryPending int
}
