package systems

import (
	"fmt"
	"log"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/config"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/entities"
	"github.com/decker502/montociel/pkg/game"
	"github.com/decker502/montociel/pkg/utils"
)

// LifecycleSystem 三态生命周期控制器（Menu → InGame → GameOver → InGame）
//
// 状态切换：
//   - Menu → InGame：外部"主操作"（点击 Play!）
//   - InGame → GameOver：只能由 CollisionSystem 检测到撞地球触发
//   - GameOver → InGame：外部"主操作"（点击 Revive!），先清空整个场地
//
// InGame 状态下不存在主操作入口，收到主操作说明调用方破坏了不变量，直接 panic。
type LifecycleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig
	spawner       *ObstacleSpawnSystem
}

// NewLifecycleSystem 创建生命周期控制器
func NewLifecycleSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, spawner *ObstacleSpawnSystem) *LifecycleSystem {
	return &LifecycleSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		spawner:       spawner,
	}
}

// HandlePrimaryAction 处理外部主操作事件
func (s *LifecycleSystem) HandlePrimaryAction() {
	switch s.gameState.Phase {
	case game.PhaseMenu:
		s.despawnAll()
		s.enterInGame()
	case game.PhaseGameOver:
		s.despawnAll()
		s.enterInGame()
	case game.PhaseInGame:
		panic("systems: primary action received while InGame")
	default:
		panic(fmt.Sprintf("systems: unknown game phase %v", s.gameState.Phase))
	}
}

// EnterGameOver 进入结束状态
//
// 只在 InGame 中生效；同一帧内多次撞地球只切换一次。
// 玩家和云朵留在原位，玩家速度清零（冻结），云朵继续漂移。
func (s *LifecycleSystem) EnterGameOver() {
	if s.gameState.Phase != game.PhaseInGame {
		return
	}

	if player, ok := ecs.GetComponent[*components.BodyComponent](s.entityManager, s.gameState.PlayerID); ok {
		player.Velocity = utils.Vec2{}
		player.Spin = 0
	}

	s.gameState.Phase = game.PhaseGameOver
	log.Printf("[LifecycleSystem] InGame -> GameOver (score=%d)", s.gameState.GetScore())
}

// enterInGame 进入游戏：分数清零，生成地球、环带和玩家
// 所有副作用在本次调用内完成，下一帧之前不会观察到中间状态
func (s *LifecycleSystem) enterInGame() {
	from := s.gameState.Phase

	s.gameState.Score.Reset()
	s.gameState.SpawnTimer.Reset()

	s.gameState.HazardID = entities.NewHazardEntity(s.entityManager, s.config)
	s.spawner.SpawnBelt()
	s.gameState.PlayerID = entities.NewPlayerEntity(s.entityManager, s.config)

	s.gameState.Phase = game.PhaseInGame
	log.Printf("[LifecycleSystem] %v -> InGame", from)
}

// despawnAll 删除场上所有实体并立即清理
func (s *LifecycleSystem) despawnAll() {
	for _, id := range s.entityManager.AllEntities() {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	s.gameState.PlayerID = ecs.InvalidEntity
	s.gameState.HazardID = ecs.InvalidEntity
}
