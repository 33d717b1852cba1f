// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// thrustButtons 任意一个按住即视为推进
var thrustButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// InputState 存储当前帧的输入状态
// 统一处理鼠标和触摸输入，每帧采样一次
type InputState struct {
	// 是否有任意指针/按钮处于按下状态（推进信号）
	Held bool
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置（屏幕坐标）
	X, Y int
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.Held = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.Held = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, button := range thrustButtons {
		if ebiten.IsMouseButtonPressed(button) {
			state.Held = true
			break
		}
	}
	return state
}

// Rect 屏幕坐标下的轴对齐矩形（用于按钮点击检测）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 检查点 (x, y) 是否落在矩形内（含边界）
func (r Rect) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx <= r.X+r.Width && fy >= r.Y && fy <= r.Y+r.Height
}

// CenteredRect 以 (cx, cy) 为中心构造矩形
func CenteredRect(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}
