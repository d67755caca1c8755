// joseon-tty 终端版竞技场
//
// 不依赖图形窗口，用 tcell 绘制俯视图，beep 播放脚步声。
// 与窗口版共用存档和设置。
//
// 用法:
//
//	go run ./cmd/joseon-tty -tuning data/tuning.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/decker502/joseonsoul/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

var (
	tuningPath = flag.String("tuning", "data/tuning.yaml", "数值配置文件路径（不存在时使用默认值）")
	fresh      = flag.Bool("fresh", false, "忽略并删除已有存档")
	logPath    = flag.String("log", "", "日志文件路径（为空时不输出日志）")
	hold       = flag.Duration("hold", 300*time.Millisecond, "按键锁存时长")
)

const tickRate = 60

type terminalGame struct {
	screen       tcell.Screen
	sceneManager *game.SceneManager
	arena        *scenes.ArenaScene
	state        *game.GameState
	input        *latchInput
	footsteps    *terminalFootsteps
}

func newTerminalGame(screen tcell.Screen, state *game.GameState, tuning *config.TuningConfig) (*terminalGame, error) {
	input := newLatchInput(*hold)
	footsteps := newTerminalFootsteps(state.Settings)

	arena, err := scenes.NewArenaScene(state, tuning, scenes.ArenaDeps{
		Input: input,
		Audio: footsteps,
	}, scenes.ArenaOptions{Fresh: *fresh})
	if err != nil {
		footsteps.Close()
		return nil, err
	}

	sm := game.NewSceneManager()
	sm.SwitchTo(arena)

	return &terminalGame{
		screen:       screen,
		sceneManager: sm,
		arena:        arena,
		state:        state,
		input:        input,
		footsteps:    footsteps,
	}, nil
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			g.input.Release()
			g.sceneManager.ReloadCurrent()
			return true
		}
		g.input.HandleKey(ev, time.Now())
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			g.input.Advance(now)
			g.sceneManager.Update(1.0 / tickRate)
			drawSnapshot(g.screen, g.arena.Snapshot())
		}
	}
}

// shutdown 保存存档和设置，释放终端和音频
func (g *terminalGame) shutdown() {
	if !g.sceneManager.SaveOnExit() {
		log.Printf("[Main] Warning: scene failed to save on exit")
	}
	if g.state.Settings != nil {
		if err := g.state.Settings.Save(); err != nil {
			log.Printf("[Main] Warning: failed to save settings: %v", err)
		}
	}
	g.footsteps.Close()
	g.screen.Fini()
}

func setupLogging(path string) (io.Closer, error) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	tuning, err := config.LoadTuningConfigOrDefault(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	state := game.NewGameState(game.OpenStorage(game.AppName))
	g, err := newTerminalGame(screen, state, tuning)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	g.run()
	g.shutdown()
}
