package systems

import "github.com/decker502/montociel/pkg/utils"

// ImpulseDirection 计算相对位置向量旋转 theta 后取反的冲量方向
//
//	d = -R(theta)·pos，归一化后再除以 scale（像素 → 物理单位换算）
//
// pos 为零向量时方向无定义，直接返回零向量（不做归一化，避免除零）。
func ImpulseDirection(pos utils.Vec2, theta, scale float64) utils.Vec2 {
	delta := pos.Rotate(theta).Negate()
	if delta.IsZero() {
		return utils.Vec2{}
	}
	return delta.Normalize().Scale(1 / scale)
}

// ApplyImpulse 在当前速度上叠加 power 倍的冲量方向（加法，不覆盖速度）
func ApplyImpulse(vel, pos utils.Vec2, theta, scale, power float64) utils.Vec2 {
	return vel.Add(ImpulseDirection(pos, theta, scale).Scale(power))
}
