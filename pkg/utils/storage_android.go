//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 /data/data/{package}/saves 存在并可写
// gdata 在 Android 上不会预先创建子目录，需在 gdata.Open 之前调用
func EnsureStorageDir() error {
	base := GetStoragePath()
	if base == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(base, "saves")
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 返回应用的数据目录，包名无法识别时返回空字符串
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	name := processName(data)
	if name == "" {
		return ""
	}
	return filepath.Join("/data/data", name)
}
