package systems

import (
	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
)

// ObstacleDriftSystem 每帧把云朵的漂移速度写回刚体
// 云朵做匀速运动，任何其他系统对其速度的修改都会在这里被覆盖
type ObstacleDriftSystem struct {
	entityManager *ecs.EntityManager
}

// NewObstacleDriftSystem 创建漂移系统
func NewObstacleDriftSystem(em *ecs.EntityManager) *ObstacleDriftSystem {
	return &ObstacleDriftSystem{entityManager: em}
}

// Update 重设所有云朵速度
func (s *ObstacleDriftSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.BodyComponent, *components.DriftComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		drift, _ := ecs.GetComponent[*components.DriftComponent](s.entityManager, id)
		body.Velocity = drift.Velocity
	}
}
