package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTuningConfig(t *testing.T) {
	cfg := DefaultTuningConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"walkingSpeed", cfg.Player.WalkingSpeed, 5},
		{"runningSpeed", cfg.Player.RunningSpeed, 10},
		{"staminaDrainRate", cfg.Player.StaminaDrainRate, 25},
		{"rotationSpeed", cfg.Player.RotationSpeed, 720},
		{"runInputThreshold", cfg.Player.RunInputThreshold, 0.1},
		{"exhaustedStamina", cfg.Player.ExhaustedStamina, 1.0},
		{"runCooldown", cfg.Player.RunCooldown, 2.0},
		{"sword.speed", cfg.Sword.Speed, 30},
		{"sword.waitDuration", cfg.Sword.WaitDuration, 1.5},
		{"sword.lifetime", cfg.Sword.Lifetime, 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if cfg.Player.CooldownPolicy != CooldownDebounce {
		t.Errorf("cooldownPolicy: got %q, want %q", cfg.Player.CooldownPolicy, CooldownDebounce)
	}
	if cfg.Sword.LocalAxis != [3]float64{0, -1, 0} {
		t.Errorf("sword.localAxis: got %v, want [0 -1 0]", cfg.Sword.LocalAxis)
	}
}

func TestParseTuningConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TuningConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
player:
  runningSpeed: 12
  cooldownPolicy: stack
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Player.RunningSpeed != 12 {
					t.Errorf("expected runningSpeed = 12, got %f", cfg.Player.RunningSpeed)
				}
				if cfg.Player.WalkingSpeed != 5 {
					t.Errorf("expected default walkingSpeed = 5, got %f", cfg.Player.WalkingSpeed)
				}
				if cfg.Player.CooldownPolicy != CooldownStack {
					t.Errorf("expected cooldownPolicy = stack, got %q", cfg.Player.CooldownPolicy)
				}
				if cfg.Sword.Lifetime != 6 {
					t.Errorf("expected default sword lifetime = 6, got %f", cfg.Sword.Lifetime)
				}
			},
		},
		{
			name: "sword axis override",
			yamlContent: `
sword:
  localAxis: [0, 0, 1]
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Sword.LocalAxis != [3]float64{0, 0, 1} {
					t.Errorf("expected localAxis [0 0 1], got %v", cfg.Sword.LocalAxis)
				}
			},
		},
		{
			name: "running slower than walking",
			yamlContent: `
player:
  walkingSpeed: 6
  runningSpeed: 3
`,
			wantErr:     true,
			errContains: "runningSpeed",
		},
		{
			name: "unknown cooldown policy",
			yamlContent: `
player:
  cooldownPolicy: sometimes
`,
			wantErr:     true,
			errContains: "cooldownPolicy",
		},
		{
			name: "sword never leaves the wait phase",
			yamlContent: `
sword:
  waitDuration: 7
  lifetime: 6
`,
			wantErr:     true,
			errContains: "waitDuration",
		},
		{
			name: "zero sword axis",
			yamlContent: `
sword:
  localAxis: [0, 0, 0]
`,
			wantErr:     true,
			errContains: "localAxis",
		},
		{
			name:        "malformed yaml",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTuningConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadTuningConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  distance: 12\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig() error: %v", err)
	}
	if cfg.Camera.Distance != 12 {
		t.Errorf("camera.distance: got %v, want 12", cfg.Camera.Distance)
	}

	if _, err := LoadTuningConfig(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShippedTuningFileIsValid(t *testing.T) {
	cfg, err := LoadTuningConfig(filepath.Join("..", "..", "data", "tuning.yaml"))
	if err != nil {
		t.Fatalf("data/tuning.yaml should load: %v", err)
	}
	if *cfg != *DefaultTuningConfig() {
		t.Errorf("data/tuning.yaml drifted from defaults:\n got  %+v\n want %+v", *cfg, *DefaultTuningConfig())
	}
}

func TestLoadTuningConfigOrDefault(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := LoadTuningConfigOrDefault(filepath.Join(tempDir, "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if *cfg != *DefaultTuningConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}

	bad := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  walkingSpeed: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadTuningConfigOrDefault(bad); err == nil {
		t.Error("invalid file must still be reported")
	}
}
