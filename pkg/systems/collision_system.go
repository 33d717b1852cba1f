package systems

import (
	"fmt"
	"log"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/game"
)

// CollisionSystem 处理玩家参与的碰撞
//
// 每个开始接触事件按以下规则处理：
//   - 不涉及玩家：忽略（如云与云相撞）
//   - 另一方是地球：立即进入 GameOver，场上实体保持原位
//   - 另一方是云朵：删除云朵，分数加一，并给玩家一个弹跳冲量
//
// 同一帧的多个事件相互独立、效果叠加。分离事件不产生任何效果。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	lifecycle     *LifecycleSystem
	player        config.PlayerConfig
	scale         float64
}

// NewCollisionSystem 创建碰撞处理系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, lifecycle *LifecycleSystem, cfg *config.GameConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		lifecycle:     lifecycle,
		player:        cfg.Player,
		scale:         cfg.Physics.Scale,
	}
}

// Update 消费本帧的全部碰撞事件
func (s *CollisionSystem) Update(events []components.CollisionEvent) {
	playerID := s.gameState.PlayerID
	if playerID == ecs.InvalidEntity {
		return
	}

	for _, ev := range events {
		if ev.Type != components.CollisionStarted {
			continue
		}

		otherID, ok := ev.Involves(playerID)
		if !ok {
			continue
		}
		s.resolve(playerID, otherID)
	}
}

func (s *CollisionSystem) resolve(playerID, otherID ecs.EntityID) {
	other, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, otherID)
	if !ok {
		panic(fmt.Sprintf("systems: collision between player %d and unknown entity %d", playerID, otherID))
	}

	switch other.Kind {
	case components.BodyHazard:
		log.Printf("[CollisionSystem] Player %d hit hazard %d", playerID, otherID)
		s.lifecycle.EnterGameOver()

	case components.BodyObstacle:
		// 同一帧内已被撞碎的云朵不再计分
		if s.entityManager.IsPendingDestroy(otherID) {
			return
		}
		player, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, playerID)
		if !ok {
			panic(fmt.Sprintf("systems: player entity %d has no body", playerID))
		}

		s.entityManager.DestroyEntity(otherID)
		s.gameState.Score.Increment()

		// 同一帧先撞了地球：玩家已冻结，不再弹跳
		if s.gameState.Phase == game.PhaseInGame {
			player.Velocity = ApplyImpulse(player.Velocity, player.Position, s.player.JumpAngle, s.scale, s.player.JumpPower)
		}

		log.Printf("[CollisionSystem] Player %d smashed cloud %d, score=%d", playerID, otherID, s.gameState.GetScore())
	}
}
