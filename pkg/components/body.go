package components

import "github.com/decker502/montociel/pkg/utils"

// BodyKind 刚体种类
// 三种互斥且穷尽的种类，用标签区分而不是附加标记组件
type BodyKind int

const (
	// BodyPlayer 玩家控制的环绕体（Montociel）
	BodyPlayer BodyKind = iota
	// BodyObstacle 可被撞碎的漂移云朵，撞到它得分
	BodyObstacle
	// BodyHazard 中心的地球，撞到它游戏结束
	BodyHazard
)

// String 返回种类名称（用于日志）
func (k BodyKind) String() string {
	switch k {
	case BodyPlayer:
		return "Player"
	case BodyObstacle:
		return "Obstacle"
	case BodyHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}

// BodyComponent 圆形刚体
//
// Position 和 Angle 由物理积分器（PhysicsSystem）推进；
// Velocity 由模拟核心的各系统修改。所有长度都是物理单位。
type BodyComponent struct {
	Kind     BodyKind
	Position utils.Vec2 // 圆心位置
	Velocity utils.Vec2 // 线速度
	Radius   float64    // 碰撞半径
	Mass     float64    // 质量（密度 × πr²）
	Spin     float64    // 角速度（弧度/秒），仅用于显示
	Angle    float64    // 当前旋转角（弧度），仅用于显示
}
