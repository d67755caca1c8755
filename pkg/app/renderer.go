package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/scenes"
	"github.com/decker502/joseonsoul/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 960
	ScreenHeight = 540
)

const (
	pixelsPerUnit = 12.0 // 世界单位到像素的缩放
	gridSpacing   = 5.0  // 地面网格间距（世界单位）
)

var (
	colorGround      = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	colorGrid        = color.RGBA{R: 57, G: 62, B: 70, A: 255}
	colorPlayer      = color.RGBA{R: 0, G: 173, B: 181, A: 255}
	colorPlayerRun   = color.RGBA{R: 255, G: 211, B: 105, A: 255}
	colorBoss        = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	colorSwordWait   = color.RGBA{R: 238, G: 238, B: 238, A: 255}
	colorSwordMove   = color.RGBA{R: 255, G: 99, B: 71, A: 255}
	colorHPBar       = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	colorSPBar       = color.RGBA{R: 60, G: 180, B: 75, A: 255}
	colorSPExhausted = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	colorBarBack     = color.RGBA{R: 20, G: 20, B: 20, A: 200}
)

// Renderer 俯视角调试渲染器
// 以玩家为中心，镜头前方朝向屏幕上方
type Renderer struct{}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw 绘制一帧快照
func (r *Renderer) Draw(screen *ebiten.Image, snap scenes.ArenaSnapshot) {
	screen.Fill(colorGround)
	view := newTopDownView(snap.Player.Position, snap.CameraYaw)

	r.drawGrid(screen, view)

	for _, boss := range snap.Bosses {
		x, y := view.project(boss)
		vector.DrawFilledRect(screen, x-12, y-12, 24, 24, colorBoss, true)
	}

	for _, sword := range snap.Swords {
		r.drawSword(screen, view, sword)
	}

	r.drawPlayer(screen, view, snap.Player)
	r.drawHUD(screen, snap)
}

func (r *Renderer) drawGrid(screen *ebiten.Image, view topDownView) {
	// 覆盖屏幕对角线范围，旋转后仍铺满
	radius := math.Hypot(ScreenWidth, ScreenHeight) / 2 / pixelsPerUnit
	minX := math.Floor((view.center.X()-radius)/gridSpacing) * gridSpacing
	minZ := math.Floor((view.center.Z()-radius)/gridSpacing) * gridSpacing

	for x := minX; x <= view.center.X()+radius; x += gridSpacing {
		x0, y0 := view.project(mgl64.Vec3{x, 0, view.center.Z() - radius})
		x1, y1 := view.project(mgl64.Vec3{x, 0, view.center.Z() + radius})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorGrid, true)
	}
	for z := minZ; z <= view.center.Z()+radius; z += gridSpacing {
		x0, y0 := view.project(mgl64.Vec3{view.center.X() - radius, 0, z})
		x1, y1 := view.project(mgl64.Vec3{view.center.X() + radius, 0, z})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorGrid, true)
	}
}

func (r *Renderer) drawSword(screen *ebiten.Image, view topDownView, sword scenes.SwordView) {
	clr := colorSwordWait
	if sword.Phase == components.SwordMoving {
		clr = colorSwordMove
	}
	x, y := view.project(sword.Position)
	// 越高画得越大
	radius := float32(4 + math.Max(0, sword.Position.Y())*0.5)
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)

	tip := sword.Position.Add(sword.Heading.Mul(2))
	tx, ty := view.project(tip)
	vector.StrokeLine(screen, x, y, tx, ty, 2, clr, true)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, view topDownView, p scenes.PlayerView) {
	clr := colorPlayer
	if p.IsRunning {
		clr = colorPlayerRun
	}
	x, y := view.project(p.Position)
	vector.DrawFilledCircle(screen, x, y, 8, clr, true)

	yaw := mgl64.DegToRad(p.Yaw)
	facing := p.Position.Add(mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}.Mul(1.5))
	fx, fy := view.project(facing)
	vector.StrokeLine(screen, x, y, fx, fy, 3, clr, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap scenes.ArenaSnapshot) {
	p := snap.Player
	drawBar(screen, 16, 16, 240, 12, ratio(p.HP, p.MaxHP), colorHPBar)

	spColor := colorSPBar
	if !p.CanRun {
		spColor = colorSPExhausted
	}
	drawBar(screen, 16, 34, 240, 8, ratio(p.SP, p.MaxSP), spColor)

	status := fmt.Sprintf("HP %.0f/%.0f  SP %.1f/%.0f  potions %d\nstate %s  speed %.1f  running %v  runnable %v (timers %d)\nt=%.1fs  swords %d",
		p.HP, p.MaxHP, p.SP, p.MaxSP, p.Potions,
		p.State, p.Speed, p.IsRunning, p.CanRun, p.RunPending,
		snap.Elapsed, len(snap.Swords))
	ebitenutil.DebugPrintAt(screen, status, 16, 50)

	ebitenutil.DebugPrintAt(screen, "WASD move  Shift run  Q/E camera  F5 reload  F11 fullscreen", 16, ScreenHeight-24)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fill float64, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, w, h, colorBarBack, true)
	vector.DrawFilledRect(screen, x, y, w*float32(fill), h, clr, true)
}

func ratio(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, value/max))
}

// topDownView 俯视投影到屏幕像素
// 镜头前方朝屏幕上方，右方朝屏幕右方
type topDownView struct {
	ground utils.GroundView
	center mgl64.Vec3
}

func newTopDownView(center mgl64.Vec3, cameraYawDegrees float64) topDownView {
	return topDownView{ground: utils.NewGroundView(center, cameraYawDegrees), center: center}
}

func (v topDownView) project(p mgl64.Vec3) (float32, float32) {
	right, forward := v.ground.WorldToView(p)
	return float32(ScreenWidth/2 + right*pixelsPerUnit), float32(ScreenHeight/2 - forward*pixelsPerUnit)
}
