package game

import (
	"errors"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下打开 gdata
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestSaveManagerRoundTrip(t *testing.T) {
	manager := createTestGdataManager(t, "test_player_save")
	sm := NewSaveManager(manager)

	if sm.HasSave() {
		t.Fatal("fresh storage should have no save")
	}
	if _, err := sm.Load(); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load() error = %v, want ErrNoSave", err)
	}

	want := &PlayerSaveData{HP: 63.5, Potions: 2, Position: [3]float64{4, 0, -9}}
	if err := sm.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的管理器从同一存储读回
	got, err := NewSaveManager(manager).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Errorf("loaded %+v, want %+v", *got, *want)
	}

	if err := sm.Delete(); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if sm.HasSave() {
		t.Error("save should be gone after Delete")
	}
	if err := sm.Delete(); err != nil {
		t.Errorf("deleting a missing save should not fail: %v", err)
	}
}

func TestSaveManagerCorruptedSave(t *testing.T) {
	manager := createTestGdataManager(t, "test_player_save_corrupt")
	if err := manager.SaveObjectProp(saveObject, saveProperty, []byte("hp: [")); err != nil {
		t.Fatalf("failed to write corrupted save: %v", err)
	}

	_, err := NewSaveManager(manager).Load()
	if err == nil || errors.Is(err, ErrNoSave) {
		t.Errorf("Load() error = %v, want a parse error", err)
	}
}

func TestSaveManagerDegradedMode(t *testing.T) {
	sm := NewSaveManager(nil)

	if _, err := sm.Load(); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load() error = %v, want ErrNoSave", err)
	}

	data := &PlayerSaveData{HP: 10, Potions: 1}
	if err := sm.Save(data); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data.HP = 99 // 存档是副本

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.HP != 10 || got.Potions != 1 {
		t.Errorf("loaded %+v, want hp=10 potions=1", *got)
	}

	if err := sm.Delete(); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if sm.HasSave() {
		t.Error("degraded save should be cleared")
	}
}

func TestSaveManagerNilData(t *testing.T) {
	if err := NewSaveManager(nil).Save(nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}
