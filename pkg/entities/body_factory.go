package entities

import (
	"log"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/utils"
)

// NewPlayerEntity 创建玩家实体（Montociel）
//
// 玩家出生在配置的固定位置，线速度为零，带一个仅用于显示的角速度。
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	radius := cfg.Physics.ToUnits(cfg.Player.RadiusPixels)
	em.AddComponent(id, &components.BodyComponent{
		Kind:     components.BodyPlayer,
		Position: utils.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		Velocity: utils.Vec2{},
		Radius:   radius,
		Mass:     cfg.Physics.Mass(radius),
		Spin:     cfg.Player.Spin,
	})

	log.Printf("[Entities] Player %d spawned at (%.1f, %.1f)", id, cfg.Player.SpawnX, cfg.Player.SpawnY)
	return id
}

// NewHazardEntity 创建中心的地球实体
//
// 地球静止在原点，半径比云朵大。它只由这里创建，云朵生成器不会产生危险体。
func NewHazardEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()

	radius := cfg.Physics.ToUnits(cfg.Hazard.RadiusPixels)
	em.AddComponent(id, &components.BodyComponent{
		Kind:   components.BodyHazard,
		Radius: radius,
		Mass:   cfg.Physics.Mass(radius),
	})

	log.Printf("[Entities] Hazard %d spawned (radius=%.2f)", id, radius)
	return id
}

// NewObstacleEntity 创建一朵云
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置
//   - pos: 出生位置（物理单位）
//   - vel: 恒定漂移速度
//
// 返回: 创建的实体ID
func NewObstacleEntity(em *ecs.EntityManager, cfg *config.GameConfig, pos, vel utils.Vec2) ecs.EntityID {
	id := em.CreateEntity()

	radius := cfg.Physics.ToUnits(cfg.Obstacles.RadiusPixels)
	em.AddComponent(id, &components.BodyComponent{
		Kind:     components.BodyObstacle,
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Mass:     cfg.Physics.Mass(radius),
	})
	em.AddComponent(id, &components.DriftComponent{Velocity: vel})

	return id
}
