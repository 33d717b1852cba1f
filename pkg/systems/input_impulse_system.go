package systems

import (
	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
)

// InputImpulseSystem 按住任意指针/按钮时给玩家一个切向推进
//
// 推进方向是位置向量旋转 ThrustAngle（默认 90°）后取反，
// 即垂直于半径方向，产生绕行而不是径向的加速。不在这里限速。
type InputImpulseSystem struct {
	entityManager *ecs.EntityManager
	player        config.PlayerConfig
	scale         float64
}

// NewInputImpulseSystem 创建推进系统
func NewInputImpulseSystem(em *ecs.EntityManager, cfg *config.GameConfig) *InputImpulseSystem {
	return &InputImpulseSystem{
		entityManager: em,
		player:        cfg.Player,
		scale:         cfg.Physics.Scale,
	}
}

// Update 根据本帧的推进信号修改玩家速度
func (s *InputImpulseSystem) Update(thrustHeld bool) {
	if !thrustHeld {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.entityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		if body.Kind != components.BodyPlayer {
			continue
		}
		body.Velocity = ApplyImpulse(body.Velocity, body.Position, s.player.ThrustAngle, s.scale, s.player.ThrustPower)
	}
}
