package scenes

import (
	"github.com/decker502/joseonsoul/pkg/game"
)

// Scene 是 game.Scene 的别名，场景包内的实现都满足该接口
type Scene = game.Scene

var (
	_ Scene           = (*ArenaScene)(nil)
	_ game.Saveable   = (*ArenaScene)(nil)
	_ game.Reloadable = (*ArenaScene)(nil)
)
