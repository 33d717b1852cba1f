package systems

import (
	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
)

// DampingSystem 空气阻力：每帧把玩家速度乘以固定系数
// 只作用于玩家，云朵的漂移速度每帧都会被重新写回，衰减对它们没有意义
type DampingSystem struct {
	entityManager *ecs.EntityManager
	factor        float64
}

// NewDampingSystem 创建阻力系统
func NewDampingSystem(em *ecs.EntityManager, factor float64) *DampingSystem {
	return &DampingSystem{
		entityManager: em,
		factor:        factor,
	}
}

// Update 衰减玩家速度
func (s *DampingSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		if body.Kind != components.BodyPlayer {
			continue
		}
		body.Velocity = body.Velocity.Scale(s.factor)
	}
}
