package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoSave 没有可用的存档
var ErrNoSave = errors.New("no player save")

// PlayerSaveData 玩家存档
// 读档时通过 PlayerController.InitPlayer 应用
type PlayerSaveData struct {
	HP       float64    `yaml:"hp"`
	Potions  int        `yaml:"potions"`
	Position [3]float64 `yaml:"position"`
}

// 存储路径常量
const (
	saveObject   = "player"
	saveProperty = "slot0"
)

// SaveManager 玩家存档管理器
//
// 存档以 YAML 写入 gdata；gdataManager 为 nil 时退化为内存存档，
// 同一进程内仍可读回，但退出后丢失。
type SaveManager struct {
	gdataManager *gdata.Manager
	memory       *PlayerSaveData // 降级模式下的内存存档
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	return &SaveManager{
		gdataManager: gdataManager,
	}
}

// HasSave 是否存在存档
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return sm.memory != nil
	}
	return sm.gdataManager.ObjectPropExists(saveObject, saveProperty)
}

// Load 读取存档
//
// 返回：
//   - *PlayerSaveData: 存档数据
//   - error: 没有存档时返回 ErrNoSave，读取或解析失败返回包装后的错误
func (sm *SaveManager) Load() (*PlayerSaveData, error) {
	if sm.gdataManager == nil {
		if sm.memory == nil {
			return nil, ErrNoSave
		}
		data := *sm.memory
		return &data, nil
	}

	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil, ErrNoSave
	}

	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load player save: %w", err)
	}

	var data PlayerSaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player save: %w", err)
	}
	return &data, nil
}

// Save 写入存档
func (sm *SaveManager) Save(data *PlayerSaveData) error {
	if data == nil {
		return fmt.Errorf("save data is nil")
	}

	if sm.gdataManager == nil {
		copied := *data
		sm.memory = &copied
		return nil
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal player save: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("failed to save player save: %w", err)
	}

	log.Printf("[SaveManager] Player saved: hp=%.1f potions=%d", data.HP, data.Potions)
	return nil
}

// Delete 删除存档，不存在时不报错
func (sm *SaveManager) Delete() error {
	if sm.gdataManager == nil {
		sm.memory = nil
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}
	if err := sm.gdataManager.DeleteObjectProp(saveObject, saveProperty); err != nil {
		return fmt.Errorf("failed to delete player save: %w", err)
	}
	log.Printf("[SaveManager] Player save deleted")
	return nil
}
