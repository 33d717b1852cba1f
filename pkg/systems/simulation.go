package systems

import (
	"math/rand"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/game"
)

// TickInput 每帧采样一次的外部输入
type TickInput struct {
	// ThrustHeld 是否有任意指针/按钮按住
	ThrustHeld bool
}

// Simulation 模拟核心
//
// 持有实体、全局状态和全部系统，按固定顺序执行每帧更新：
//
//	引力 → 阻力 → 推进 → 限速 → 云朵漂移 → 发射器 → 碰撞处理
//
// 哪些系统运行由当前生命周期状态决定：
//   - Menu：什么都不做
//   - InGame：全部运行
//   - GameOver：只有云朵漂移和发射器，场地保持"冻结但仍在动"
type Simulation struct {
	EntityManager *ecs.EntityManager
	GameState     *game.GameState
	Config        *config.GameConfig

	gravity   *GravitySystem
	damping   *DampingSystem
	thrust    *InputImpulseSystem
	clamp     *VelocityClampSystem
	drift     *ObstacleDriftSystem
	spawner   *ObstacleSpawnSystem
	collision *CollisionSystem
	lifecycle *LifecycleSystem
}

// NewSimulation 创建模拟核心，初始状态为 Menu
//
// 参数:
//   - cfg: 游戏配置
//   - rng: 云朵生成使用的随机数源
func NewSimulation(cfg *config.GameConfig, rng *rand.Rand) *Simulation {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Obstacles.Emitter.Interval)

	spawner := NewObstacleSpawnSystem(em, cfg, rng)
	lifecycle := NewLifecycleSystem(em, gs, cfg, spawner)

	return &Simulation{
		EntityManager: em,
		GameState:     gs,
		Config:        cfg,
		gravity:       NewGravitySystem(em, cfg.Physics),
		damping:       NewDampingSystem(em, cfg.Physics.Damping),
		thrust:        NewInputImpulseSystem(em, cfg),
		clamp:         NewVelocityClampSystem(em, cfg.Physics.MaxSpeed, cfg.Physics.MinClampSpeed),
		drift:         NewObstacleDriftSystem(em),
		spawner:       spawner,
		collision:     NewCollisionSystem(em, gs, lifecycle, cfg),
		lifecycle:     lifecycle,
	}
}

// HandlePrimaryAction 转发外部主操作（Play!/Revive!）
func (s *Simulation) HandlePrimaryAction() {
	s.lifecycle.HandlePrimaryAction()
}

// Tick 执行一帧模拟
//
// events 是物理方在本帧产生的碰撞事件，在这里被消费且只消费一次；
// 不在 InGame 时直接丢弃，不会留到下一帧。
func (s *Simulation) Tick(deltaTime float64, input TickInput, events []components.CollisionEvent) {
	switch s.GameState.Phase {
	case game.PhaseInGame:
		s.gravity.Update(deltaTime)
		s.damping.Update()
		s.thrust.Update(input.ThrustHeld)
		s.clamp.Update()
		s.drift.Update()
		s.spawner.Update(deltaTime, s.GameState.SpawnTimer)
		s.collision.Update(events)

	case game.PhaseGameOver:
		s.drift.Update()
		s.spawner.Update(deltaTime, s.GameState.SpawnTimer)
	}

	s.EntityManager.RemoveMarkedEntities()
}

// CountBodies 统计指定种类的刚体数量（供 UI 和测试使用）
func (s *Simulation) CountBodies(kind components.BodyKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.BodyComponent](s.EntityManager) {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.EntityManager, id)
		if body.Kind == kind {
			n++
		}
	}
	return n
}
