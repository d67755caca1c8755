package game

// Scene 一个可更新的游戏场景
// 绘制由各前端（ebiten 窗口、终端）根据场景快照完成，场景本身不依赖渲染库
type Scene interface {
	// Update 推进一帧，deltaTime 为帧间隔（秒）
	Update(deltaTime float64)
}

// Saveable 可选接口：场景在程序退出时保存状态
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}

// Reloadable 可选接口：场景支持原地重载
type Reloadable interface {
	Reload() error
}
