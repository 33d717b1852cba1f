package systems

import (
	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/utils"
)

// VelocityClampSystem 把所有刚体的速率限制在 maxSpeed 以内
type VelocityClampSystem struct {
	entityManager *ecs.EntityManager
	maxSpeed      float64
	minSpeed      float64
}

// NewVelocityClampSystem 创建限速系统
//
// 参数:
//   - maxSpeed: 速率上限
//   - minSpeed: 低于该速率不处理（方向不可靠）
func NewVelocityClampSystem(em *ecs.EntityManager, maxSpeed, minSpeed float64) *VelocityClampSystem {
	return &VelocityClampSystem{
		entityManager: em,
		maxSpeed:      maxSpeed,
		minSpeed:      minSpeed,
	}
}

// ClampSpeed 保持方向，把速率截断到 maxSpeed
// 速率不超过 minSpeed 时原样返回
func ClampSpeed(vel utils.Vec2, maxSpeed, minSpeed float64) utils.Vec2 {
	speed := vel.Length()
	if speed <= minSpeed || speed <= maxSpeed {
		return vel
	}
	return vel.Scale(maxSpeed / speed)
}

// Update 限制所有刚体速度
func (s *VelocityClampSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		body.Velocity = ClampSpeed(body.Velocity, s.maxSpeed, s.minSpeed)
	}
}
