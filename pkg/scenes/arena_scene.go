package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/game"
	"github.com/decker502/montociel/pkg/systems"
	"github.com/decker502/montociel/pkg/utils"
)

// 按钮尺寸（像素）
const (
	buttonWidth  = 160
	buttonHeight = 48

	// 移动端按钮放大，方便手指点击
	mobileButtonScale = 1.5
)

var (
	backgroundColor = color.RGBA{R: 12, G: 16, B: 40, A: 255}
	hazardColor     = color.RGBA{R: 60, G: 140, B: 220, A: 255}
	obstacleColor   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	playerColor     = color.RGBA{R: 250, G: 200, B: 60, A: 255}
	buttonColor     = color.RGBA{R: 70, G: 70, B: 110, A: 230}
)

// ArenaScene 游戏主场景
//
// 每帧：采样输入 → 处理按钮 → 物理积分产生碰撞事件 → 模拟核心消费事件。
// 渲染只读取实体状态，不修改任何东西。
type ArenaScene struct {
	simulation *systems.Simulation
	physics    *systems.PhysicsSystem
	settings   *game.SettingsManager
	viewport   utils.Viewport
	button     utils.Rect
}

// NewArenaScene 创建场景，初始处于 Menu 状态
//
// 参数:
//   - sim: 模拟核心
//   - settings: 设置管理器（调试信息开关），可为 nil
func NewArenaScene(sim *systems.Simulation, settings *game.SettingsManager) *ArenaScene {
	viewport := utils.Viewport{
		Width:  config.GameWindowWidth,
		Height: config.GameWindowHeight,
		Scale:  sim.Config.Physics.Scale,
	}
	cx, cy := viewport.Center()

	bw, bh := float64(buttonWidth), float64(buttonHeight)
	if utils.IsMobile() {
		bw, bh = bw*mobileButtonScale, bh*mobileButtonScale
	}

	return &ArenaScene{
		simulation: sim,
		physics:    systems.NewPhysicsSystem(sim.EntityManager),
		settings:   settings,
		viewport:   viewport,
		button:     utils.CenteredRect(cx, cy, bw, bh),
	}
}

// Update 更新场景逻辑
func (s *ArenaScene) Update(deltaTime float64) {
	if s.settings != nil && inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.settings.ToggleDebug()
		if err := s.settings.Save(); err != nil {
			log.Printf("[ArenaScene] Warning: failed to save settings: %v", err)
		}
	}

	s.step(deltaTime, utils.GetInputState())
}

// step 用给定输入推进一帧
func (s *ArenaScene) step(deltaTime float64, input utils.InputState) {
	phase := s.simulation.GameState.Phase

	// 只有 Menu/GameOver 有按钮
	if phase != game.PhaseInGame && input.JustPressed && s.button.Contains(input.X, input.Y) {
		log.Printf("[ArenaScene] %q pressed", buttonLabel(phase))
		s.simulation.HandlePrimaryAction()
	}

	events := s.physics.Step(deltaTime)
	s.simulation.Tick(deltaTime, systems.TickInput{ThrustHeld: input.Held}, events)
}

// buttonLabel 返回当前状态下按钮的文字
// InGame 没有按钮，调用即说明状态判断有误
func buttonLabel(phase game.GamePhase) string {
	switch phase {
	case game.PhaseMenu:
		return "Play!"
	case game.PhaseGameOver:
		return "Revive!"
	default:
		panic(fmt.Sprintf("scenes: no button in phase %v", phase))
	}
}

// Draw 绘制场景
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	em := s.simulation.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](em) {
		body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
		s.drawBody(screen, body)
	}

	phase := s.simulation.GameState.Phase
	if phase != game.PhaseInGame {
		s.drawButton(screen, buttonLabel(phase))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.simulation.GameState.GetScore()), 10, 10)

	if s.settings != nil && s.settings.GetSettings().ShowDebug {
		s.drawDebugInfo(screen)
	}
}

func (s *ArenaScene) drawBody(screen *ebiten.Image, body *components.BodyComponent) {
	x, y := s.viewport.WorldToScreen(body.Position)
	r := s.viewport.LengthToScreen(body.Radius)

	var clr color.Color
	switch body.Kind {
	case components.BodyPlayer:
		clr = playerColor
	case components.BodyHazard:
		clr = hazardColor
	default:
		clr = obstacleColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)

	// 玩家额外画一条线表示自转角度
	if body.Kind == components.BodyPlayer {
		ex := x + r*math.Cos(body.Angle)
		ey := y - r*math.Sin(body.Angle)
		vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 2, backgroundColor, true)
	}
}

func (s *ArenaScene) drawButton(screen *ebiten.Image, label string) {
	b := s.button
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), buttonColor, true)

	// DebugPrint 字符约 6x16 像素
	textX := int(b.X+b.Width/2) - len(label)*3
	textY := int(b.Y+b.Height/2) - 8
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}

func (s *ArenaScene) drawDebugInfo(screen *ebiten.Image) {
	sim := s.simulation
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Phase: %v", sim.GameState.Phase),
		fmt.Sprintf("Clouds: %d", sim.CountBodies(components.BodyObstacle)),
		fmt.Sprintf("Contacts: %d", s.physics.ContactCount()),
		fmt.Sprintf("Next burst: %.1fs", sim.GameState.SpawnTimer.TargetTime-sim.GameState.SpawnTimer.CurrentTime),
	}

	if body, ok := ecs.GetComponent[*components.BodyComponent](sim.EntityManager, sim.GameState.PlayerID); ok {
		lines = append(lines,
			fmt.Sprintf("Player: (%.2f, %.2f)", body.Position.X, body.Position.Y),
			fmt.Sprintf("Speed: %.2f", body.Velocity.Length()),
		)
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.GameWindowWidth-200, 10+i*16)
	}
}
