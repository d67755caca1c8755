package main

import (
	"fmt"
	"math"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/scenes"
	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	hudRows     = 3
	cellsPerX   = 1.0 // 每个世界单位占的列数
	cellsPerZ   = 0.5 // 字符格高约为宽的两倍
	gridSpacing = 5.0
)

var (
	styleDefault  = tcell.StyleDefault
	styleGrid     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Bold(true)
	styleRunning  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSword    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSwordHot = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleExhaust  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// cellView 把世界坐标映射到字符格
type cellView struct {
	ground        utils.GroundView
	width, height int
}

func newCellView(snap scenes.ArenaSnapshot, width, height int) cellView {
	return cellView{
		ground: utils.NewGroundView(snap.Player.Position, snap.CameraYaw),
		width:  width,
		height: height,
	}
}

// centerRow 场地区域的中心行
func (v cellView) centerRow() int {
	return hudRows + (v.height-hudRows)/2
}

// project 返回世界坐标所在的格子，超出场地区域时 ok 为 false
func (v cellView) project(p mgl64.Vec3) (x, y int, ok bool) {
	right, forward := v.ground.WorldToView(p)
	x = v.width/2 + int(math.Round(right*cellsPerX))
	y = v.centerRow() - int(math.Round(forward*cellsPerZ))
	ok = x >= 0 && x < v.width && y >= hudRows && y < v.height
	return x, y, ok
}

// cellToWorld 返回格子中心对应的地面坐标
func (v cellView) cellToWorld(x, y int) mgl64.Vec3 {
	right := float64(x-v.width/2) / cellsPerX
	forward := float64(v.centerRow()-y) / cellsPerZ
	return v.ground.ViewToWorld(right, forward)
}

// onGrid 地面点是否靠近网格线
func onGrid(p mgl64.Vec3) bool {
	near := func(c float64) bool {
		m := math.Mod(c, gridSpacing)
		if m < 0 {
			m += gridSpacing
		}
		return m < 0.5 || m > gridSpacing-0.5
	}
	return near(p.X()) && near(p.Z())
}

// drawSnapshot 绘制一帧
func drawSnapshot(screen tcell.Screen, snap scenes.ArenaSnapshot) {
	screen.Clear()
	width, height := screen.Size()
	view := newCellView(snap, width, height)

	for y := hudRows; y < height; y++ {
		for x := 0; x < width; x++ {
			if onGrid(view.cellToWorld(x, y)) {
				screen.SetContent(x, y, '·', nil, styleGrid)
			}
		}
	}

	for _, boss := range snap.Bosses {
		if x, y, ok := view.project(boss); ok {
			screen.SetContent(x, y, 'B', nil, styleBoss)
		}
	}

	for _, sword := range snap.Swords {
		x, y, ok := view.project(sword.Position)
		if !ok {
			continue
		}
		if sword.Phase == components.SwordMoving {
			screen.SetContent(x, y, '*', nil, styleSwordHot)
		} else {
			screen.SetContent(x, y, '+', nil, styleSword)
		}
	}

	p := snap.Player
	if x, y, ok := view.project(p.Position); ok {
		style := stylePlayer
		if p.IsRunning {
			style = styleRunning
		}
		screen.SetContent(x, y, '@', nil, style)
	}

	drawHUD(screen, snap, width)
	screen.Show()
}

func drawHUD(screen tcell.Screen, snap scenes.ArenaSnapshot, width int) {
	p := snap.Player
	spStyle := styleDefault
	if !p.CanRun {
		spStyle = styleExhaust
	}

	drawText(screen, 0, 0, styleDefault, fmt.Sprintf("HP %s %.0f/%.0f  potions %d",
		bar(p.HP, p.MaxHP, 20), p.HP, p.MaxHP, p.Potions))
	drawText(screen, 0, 1, spStyle, fmt.Sprintf("SP %s %.1f/%.0f  %s speed %.1f t=%.1fs swords %d",
		bar(p.SP, p.MaxSP, 20), p.SP, p.MaxSP, p.State, p.Speed, snap.Elapsed, len(snap.Swords)))

	help := "wasd move  WASD run  q/e camera  r reload  Esc quit"
	if len(help) > width {
		help = help[:width]
	}
	drawText(screen, 0, 2, styleGrid, help)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// bar 返回定长的文本进度条
func bar(value, max float64, width int) string {
	filled := 0
	if max > 0 {
		filled = int(math.Round(math.Max(0, math.Min(1, value/max)) * float64(width)))
	}
	out := make([]rune, width+2)
	out[0], out[width+1] = '[', ']'
	for i := 0; i < width; i++ {
		if i < filled {
			out[i+1] = '#'
		} else {
			out[i+1] = '-'
		}
	}
	return string(out)
}
