package components

// PlayerState 玩家状态
// 数值会同步到动画参数 "player_state"，因此不能随意调整顺序
type PlayerState int

const (
	// PlayerStateIdle 待机：可以移动
	PlayerStateIdle PlayerState = 0
	// PlayerStateMoving 移动中：可以移动
	PlayerStateMoving PlayerState = 1
	// 以下状态为预留，目前只用于冻结移动
	PlayerStateAttacking PlayerState = 2
	PlayerStateDodging   PlayerState = 3
	PlayerStateStaggered PlayerState = 4
	PlayerStateDead      PlayerState = 5
)

// String 返回状态名称（用于调试显示）
func (s PlayerState) String() string {
	switch s {
	case PlayerStateIdle:
		return "Idle"
	case PlayerStateMoving:
		return "Moving"
	case PlayerStateAttacking:
		return "Attacking"
	case PlayerStateDodging:
		return "Dodging"
	case PlayerStateStaggered:
		return "Staggered"
	case PlayerStateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// AllowsMovement 只有 Idle 和 Moving 状态允许处理移动输入
func (s PlayerState) AllowsMovement() bool {
	return s == PlayerStateIdle || s == PlayerStateMoving
}

// PlayerComponent 标记玩家实体并保存状态
type PlayerComponent struct {
	State PlayerState
	// Active 为 false 时所有系统跳过该玩家（实体仍然存在）
	Active bool
}

// PotionComponent 剩余回复药数量
type PotionComponent struct {
	Remaining int
}
