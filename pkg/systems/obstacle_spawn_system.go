package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/entities"
	"github.com/decker502/montociel/pkg/utils"
)

// ObstacleSpawnSystem 云朵生成系统
//
// 两种策略：
//   - 环带（Belt）：进入 InGame 时生成一次，N 朵云均匀分布在半径 ρ 的圆上
//   - 发射器（Emitter）：计时器每到期一次，在半径 ρ 处随机角度生成 M 朵云
//
// 两种策略生成的云都沿径向向外漂移，速率在配置范围内随机。
// 本系统从不生成地球，地球由 entities.NewHazardEntity 单独创建。
type ObstacleSpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	rng           *rand.Rand
}

// NewObstacleSpawnSystem 创建云朵生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置
//   - rng: 随机数源（测试时传入固定种子）
func NewObstacleSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig, rng *rand.Rand) *ObstacleSpawnSystem {
	belt, emitter := cfg.Obstacles.Belt, cfg.Obstacles.Emitter
	log.Printf("[ObstacleSpawnSystem] Initialized: belt=%d@%.1f, emitter=%d@%.1f every %.1fs",
		belt.Count, belt.Radius, emitter.Count, emitter.Radius, emitter.Interval)
	return &ObstacleSpawnSystem{
		entityManager: em,
		config:        cfg,
		rng:           rng,
	}
}

// SpawnBelt 生成开局环带，返回新实体ID
func (s *ObstacleSpawnSystem) SpawnBelt() []ecs.EntityID {
	belt := s.config.Obstacles.Belt
	ids := make([]ecs.EntityID, 0, belt.Count)

	for i := 0; i < belt.Count; i++ {
		theta := float64(i) * 2 * math.Pi / float64(belt.Count)
		ids = append(ids, s.spawnRadial(theta, belt.Radius, belt.Speed))
	}

	log.Printf("[ObstacleSpawnSystem] Belt spawned: %d clouds", len(ids))
	return ids
}

// Update 推进发射器计时器，到期时生成一批云朵
func (s *ObstacleSpawnSystem) Update(deltaTime float64, timer *components.TimerComponent) {
	if timer.Tick(deltaTime) {
		s.Emit()
	}
}

// Emit 立即生成一批发射器云朵，返回新实体ID
// 每朵云的角度独立随机，不是均匀分布
func (s *ObstacleSpawnSystem) Emit() []ecs.EntityID {
	emitter := s.config.Obstacles.Emitter
	ids := make([]ecs.EntityID, 0, emitter.Count)

	for i := 0; i < emitter.Count; i++ {
		theta := s.rng.Float64() * 2 * math.Pi
		ids = append(ids, s.spawnRadial(theta, emitter.Radius, emitter.Speed))
	}

	log.Printf("[ObstacleSpawnSystem] Emitter fired: %d clouds", len(ids))
	return ids
}

// spawnRadial 在极坐标 (rho, theta) 处生成一朵沿径向向外漂移的云
func (s *ObstacleSpawnSystem) spawnRadial(theta, rho float64, speed config.SpeedRange) ecs.EntityID {
	pos := utils.FromAngle(theta, rho)
	vel := pos.Normalize().Scale(s.randomSpeed(speed))
	return entities.NewObstacleEntity(s.entityManager, s.config, pos, vel)
}

// randomSpeed 在 [Min, Max) 中均匀取值
func (s *ObstacleSpawnSystem) randomSpeed(r config.SpeedRange) float64 {
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}
