// Package app 提供 ebiten 窗口前端
//
// 负责游戏循环、键盘输入、脚步声和俯视角渲染，
// 游戏逻辑全部在 scenes.ArenaScene 中，与渲染库无关。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/decker502/joseonsoul/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Tuning 数值配置，不能为 nil
	Tuning *config.TuningConfig
	// Fresh 忽略已有存档
	Fresh bool
	// State 共享游戏状态，为 nil 时以降级模式创建
	State *game.GameState
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	arena        *scenes.ArenaScene
	state        *game.GameState
	renderer     *Renderer
	footsteps    *FootstepAudio
	verbose      bool

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Tuning == nil {
		return nil, fmt.Errorf("app: tuning config is required")
	}

	state := cfg.State
	if state == nil {
		state = game.NewGameState(nil)
	}

	audioContext := audio.NewContext(footstepSampleRate)
	footsteps := NewFootstepAudio(audioContext, state.Settings)

	arena, err := scenes.NewArenaScene(state, cfg.Tuning, scenes.ArenaDeps{
		Input: NewKeyboardInput(),
		Audio: footsteps,
	}, scenes.ArenaOptions{Fresh: cfg.Fresh})
	if err != nil {
		return nil, fmt.Errorf("竞技场初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(arena)

	if state.Settings != nil && state.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Arena scene started")
	return &App{
		sceneManager: sceneManager,
		arena:        arena,
		state:        state,
		renderer:     NewRenderer(),
		footsteps:    footsteps,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.ReloadCurrent()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 等待窗口管理器处理完再设置大小
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	if a.state.Settings != nil {
		a.state.Settings.SetFullscreen(fullscreen)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.arena.Snapshot())
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Shutdown 保存存档和设置并释放音频
func (a *App) Shutdown() {
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: scene failed to save on exit")
	}
	if a.state.Settings != nil {
		if err := a.state.Settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}
	if err := a.footsteps.Close(); err != nil {
		log.Printf("[App] Warning: failed to close audio: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
