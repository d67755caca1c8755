package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// CooldownPolicy 耐力耗尽后恢复计时器的调度策略
type CooldownPolicy string

const (
	// CooldownDebounce 已有恢复计时器未触发时不再重复安排（默认）
	CooldownDebounce CooldownPolicy = "debounce"
	// CooldownStack 每个耐力不足的帧都安排一个新的恢复计时器
	CooldownStack CooldownPolicy = "stack"
)

// TuningConfig 游戏数值配置
//
// 配置文件位置: data/tuning.yaml
// 文件中缺失的字段保留 DefaultTuningConfig 中的默认值
type TuningConfig struct {
	Player  PlayerTuning  `yaml:"player"`
	Stamina StaminaTuning `yaml:"stamina"`
	Sword   SwordTuning   `yaml:"sword"`
	Boss    BossTuning    `yaml:"boss"`
	Camera  CameraTuning  `yaml:"camera"`
}

// PlayerTuning 玩家移动参数
type PlayerTuning struct {
	WalkingSpeed      float64 `yaml:"walkingSpeed"`      // 步行速度（单位/秒）
	RunningSpeed      float64 `yaml:"runningSpeed"`      // 奔跑速度（单位/秒）
	StaminaDrainRate  float64 `yaml:"staminaDrainRate"`  // 奔跑耐力消耗（每秒）
	RotationSpeed     float64 `yaml:"rotationSpeed"`     // 最大转向速度（度/秒）
	RunInputThreshold float64 `yaml:"runInputThreshold"` // 输入模长低于该值视为无输入
	ExhaustedStamina  float64 `yaml:"exhaustedStamina"`  // 耐力不高于该值时禁止奔跑
	RunCooldown       float64 `yaml:"runCooldown"`       // 禁止奔跑的冷却时间（秒）

	CooldownPolicy CooldownPolicy `yaml:"cooldownPolicy"`
}

// StaminaTuning 生命值与耐力参数
type StaminaTuning struct {
	MaxHP      float64 `yaml:"maxHP"`
	MaxSP      float64 `yaml:"maxSP"`
	RegenRate  float64 `yaml:"regenRate"`  // 每秒恢复的耐力
	RegenDelay float64 `yaml:"regenDelay"` // 消耗后多久开始恢复（秒）
	Potions    int     `yaml:"potions"`    // 没有存档时的初始回复药数量
}

// SwordTuning Boss 飞剑参数
type SwordTuning struct {
	Speed        float64    `yaml:"speed"`        // 飞行速度（单位/秒）
	WaitDuration float64    `yaml:"waitDuration"` // 飞行前等待时间（秒）
	Lifetime     float64    `yaml:"lifetime"`     // 生成后自动销毁的时间（秒）
	LocalAxis    [3]float64 `yaml:"localAxis"`    // 飞行方向（本地坐标）
}

// BossTuning Boss 攻击节奏
type BossTuning struct {
	AttackInterval float64    `yaml:"attackInterval"`
	SpawnHeight    float64    `yaml:"spawnHeight"`
	Position       [3]float64 `yaml:"position"`
}

// CameraTuning 环绕镜头参数
type CameraTuning struct {
	Distance float64 `yaml:"distance"`
	Pitch    float64 `yaml:"pitch"`    // 俯视角（度）
	YawSpeed float64 `yaml:"yawSpeed"` // 旋转速度（度/秒）
}

// DefaultTuningConfig 返回默认数值
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		Player: PlayerTuning{
			WalkingSpeed:      5,
			RunningSpeed:      10,
			StaminaDrainRate:  25,
			RotationSpeed:     720,
			RunInputThreshold: 0.1,
			ExhaustedStamina:  1.0,
			RunCooldown:       2.0,
			CooldownPolicy:    CooldownDebounce,
		},
		Stamina: StaminaTuning{
			MaxHP:      100,
			MaxSP:      100,
			RegenRate:  20,
			RegenDelay: 1.0,
			Potions:    3,
		},
		Sword: SwordTuning{
			Speed:        30,
			WaitDuration: 1.5,
			Lifetime:     6,
			LocalAxis:    [3]float64{0, -1, 0},
		},
		Boss: BossTuning{
			AttackInterval: 4,
			SpawnHeight:    6,
			Position:       [3]float64{0, 0, 20},
		},
		Camera: CameraTuning{
			Distance: 8,
			Pitch:    30,
			YawSpeed: 90,
		},
	}
}

// LoadTuningConfig 加载数值配置
//
// 从指定路径加载 YAML 格式的配置文件，未填写的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// LoadTuningConfigOrDefault 加载数值配置，文件不存在时使用默认值
// 文件存在但内容无效时仍返回错误
func LoadTuningConfigOrDefault(path string) (*TuningConfig, error) {
	cfg, err := LoadTuningConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] Warning: %s not found, using default tuning", path)
		return DefaultTuningConfig(), nil
	}
	return cfg, err
}

// ParseTuningConfig 从 YAML 数据解析数值配置
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 速度、转向速度、生命周期等必须为正
//   - 奔跑速度不低于步行速度
//   - 飞剑等待时间必须小于生命周期（否则飞剑永远不会移动）
//   - 冷却策略只能是 debounce 或 stack
func (c *TuningConfig) Validate() error {
	p := c.Player
	if p.WalkingSpeed <= 0 {
		return fmt.Errorf("player.walkingSpeed must be positive, got %.2f", p.WalkingSpeed)
	}
	if p.RunningSpeed < p.WalkingSpeed {
		return fmt.Errorf("player.runningSpeed(%.2f) must not be lower than walkingSpeed(%.2f)",
			p.RunningSpeed, p.WalkingSpeed)
	}
	if p.StaminaDrainRate < 0 {
		return fmt.Errorf("player.staminaDrainRate must not be negative, got %.2f", p.StaminaDrainRate)
	}
	if p.RotationSpeed <= 0 {
		return fmt.Errorf("player.rotationSpeed must be positive, got %.2f", p.RotationSpeed)
	}
	if p.RunInputThreshold <= 0 || p.RunInputThreshold > 1 {
		return fmt.Errorf("player.runInputThreshold must be in (0, 1], got %.2f", p.RunInputThreshold)
	}
	if p.RunCooldown < 0 {
		return fmt.Errorf("player.runCooldown must not be negative, got %.2f", p.RunCooldown)
	}
	switch p.CooldownPolicy {
	case CooldownDebounce, CooldownStack:
	default:
		return fmt.Errorf("player.cooldownPolicy must be %q or %q, got %q",
			CooldownDebounce, CooldownStack, p.CooldownPolicy)
	}

	s := c.Stamina
	if s.MaxHP <= 0 || s.MaxSP <= 0 {
		return fmt.Errorf("stamina.maxHP(%.2f) and stamina.maxSP(%.2f) must be positive", s.MaxHP, s.MaxSP)
	}
	if s.Potions < 0 {
		return fmt.Errorf("stamina.potions must not be negative, got %d", s.Potions)
	}
	if s.RegenRate < 0 || s.RegenDelay < 0 {
		return fmt.Errorf("stamina.regenRate(%.2f) and stamina.regenDelay(%.2f) must not be negative",
			s.RegenRate, s.RegenDelay)
	}

	w := c.Sword
	if w.Speed < 0 {
		return fmt.Errorf("sword.speed must not be negative, got %.2f", w.Speed)
	}
	if w.Lifetime <= 0 {
		return fmt.Errorf("sword.lifetime must be positive, got %.2f", w.Lifetime)
	}
	if w.WaitDuration < 0 || w.WaitDuration >= w.Lifetime {
		return fmt.Errorf("sword.waitDuration(%.2f) must be in [0, lifetime(%.2f))", w.WaitDuration, w.Lifetime)
	}
	if w.LocalAxis == [3]float64{} {
		return fmt.Errorf("sword.localAxis must not be the zero vector")
	}

	if c.Boss.AttackInterval <= 0 {
		return fmt.Errorf("boss.attackInterval must be positive, got %.2f", c.Boss.AttackInterval)
	}

	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera.distance must be positive, got %.2f", c.Camera.Distance)
	}
	if c.Camera.Pitch <= -90 || c.Camera.Pitch >= 90 {
		return fmt.Errorf("camera.pitch must be in (-90, 90), got %.2f", c.Camera.Pitch)
	}

	return nil
}
