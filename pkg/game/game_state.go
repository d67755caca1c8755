package game

import (
	"log"

	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "joseon_soul"

// GameState 跨场景共享的游戏状态
//
// 由 main 创建一次并显式传给场景，不使用全局单例：
//   - Registry: 玩家注册表，场景重载时玩家保持不变
//   - Settings: 全局设置
//   - Saves: 玩家存档
type GameState struct {
	Registry *PlayerRegistry
	Settings *SettingsManager
	Saves    *SaveManager
}

// NewGameState 创建游戏状态
//
// 参数：
//   - gdataManager: 存储管理器，为 nil 时设置和存档只保存在内存中
func NewGameState(gdataManager *gdata.Manager) *GameState {
	settings, err := NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[GameState] Warning: settings unavailable: %v", err)
	}

	return &GameState{
		Registry: NewPlayerRegistry(),
		Settings: settings,
		Saves:    NewSaveManager(gdataManager),
	}
}

// OpenStorage 打开 gdata 存储
// 失败时记录警告并返回 nil，游戏以降级模式继续运行
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[GameState] Warning: storage dir not ready: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[GameState] Warning: failed to open gdata storage: %v (progress will not be saved)", err)
		return nil
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[GameState] Storage path: %s", path)
	}
	return manager
}
