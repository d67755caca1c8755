package main

import (
	"flag"
	"log"

	"github.com/decker502/joseonsoul/pkg/app"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/embedded"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志")
	tuningPath = flag.String("tuning", "", "数值配置文件路径（为空时使用内置 data/tuning.yaml）")
	fresh      = flag.Bool("fresh", false, "忽略并删除已有存档")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("加载数值配置失败: %v", err)
	}

	state := game.NewGameState(game.OpenStorage(game.AppName))

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Tuning:  tuning,
		Fresh:   *fresh,
		State:   state,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Joseon Soul")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(a); err != nil {
		a.Shutdown()
		log.Fatal(err)
	}
}

// loadTuning 指定路径时从磁盘加载，否则使用内置配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		return config.LoadTuningConfig(path)
	}
	if !embedded.Exists(embedded.TuningPath) {
		log.Printf("[Main] Warning: embedded tuning missing, using defaults")
		return config.DefaultTuningConfig(), nil
	}
	data, err := embedded.ReadFile(embedded.TuningPath)
	if err != nil {
		return nil, err
	}
	return config.ParseTuningConfig(data)
}
