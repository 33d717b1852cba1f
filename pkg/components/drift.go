package components

import "github.com/decker502/montociel/pkg/utils"

// DriftComponent 云朵的恒定漂移速度
// 云朵不受力，每帧把这个速度重新写回刚体，而不是由力积分得到
type DriftComponent struct {
	Velocity utils.Vec2
}
