package components

import "math"

// TimerComponent 通用重复计时器
// 用于周期性行为（如云朵发射器每 2 秒触发一次）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "cloud_emitter"
	TargetTime  float64 // 周期（秒）
	CurrentTime float64 // 当前周期内已过时间（秒）
	IsReady     bool    // 本帧是否刚触发
}

// NewTimer 创建一个周期为 period 秒的计时器
func NewTimer(name string, period float64) *TimerComponent {
	return &TimerComponent{Name: name, TargetTime: period}
}

// Tick 推进计时器，返回本帧是否触发
//
// 一帧内最多触发一次：即使 deltaTime 跨越了多个周期，也只触发一次，
// 多出的时间按周期取余保留，不会在后续帧补发。
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.IsReady = false
	if t.TargetTime <= 0 {
		return false
	}

	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime = math.Mod(t.CurrentTime, t.TargetTime)
		t.IsReady = true
	}
	return t.IsReady
}

// Reset 清零计时器
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}
