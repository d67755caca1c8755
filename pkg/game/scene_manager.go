package game

import (
	"log"
)

// SceneManager 管理当前活动场景
// 任一时刻只有一个场景的 Update 被调用
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// ReloadCurrent 重载当前场景（场景需实现 Reloadable）
func (sm *SceneManager) ReloadCurrent() {
	reloadable, ok := sm.currentScene.(Reloadable)
	if !ok {
		log.Printf("[SceneManager] Current scene does not support reload")
		return
	}
	if err := reloadable.Reload(); err != nil {
		log.Printf("[SceneManager] ERROR: reload failed: %v", err)
		return
	}
	log.Printf("[SceneManager] Scene reloaded")
}

// SaveOnExit 程序退出前保存当前场景
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
}
