package systems

import (
	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/utils"
)

// GravitySystem 对玩家施加指向原点的引力
//
// 力的大小与距离成反比（不是平方反比）：|F| = G·m/(|p|+eps)，方向指向原点。
// eps 保证原点处有限；原点处方向无定义，力为零。云朵和地球不受引力。
type GravitySystem struct {
	entityManager *ecs.EntityManager
	physics       config.PhysicsConfig
}

// NewGravitySystem 创建引力系统
func NewGravitySystem(em *ecs.EntityManager, physics config.PhysicsConfig) *GravitySystem {
	return &GravitySystem{
		entityManager: em,
		physics:       physics,
	}
}

// GravityForce 计算位于 pos、质量为 mass 的刚体受到的引力
//
// 方向取单位向量 p̂。若直接乘以 p（-G·m/(|p|+eps)·p），|F| ≈ G·m 几乎不随距离变化。
func GravityForce(pos utils.Vec2, mass, g, eps float64) utils.Vec2 {
	return pos.Normalize().Scale(-g * mass / (pos.Length() + eps))
}

// Update 把本帧的引力换算为速度增量 F/m·dt 叠加到玩家速度上
func (s *GravitySystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		if body.Kind != components.BodyPlayer || body.Mass <= 0 {
			continue
		}

		force := GravityForce(body.Position, body.Mass, s.physics.Gravity, s.physics.Epsilon)
		body.Velocity = body.Velocity.Add(force.Scale(deltaTime / body.Mass))
	}
}
