package game

import (
	"fmt"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
)

// GamePhase 游戏生命周期状态
type GamePhase int

const (
	// PhaseMenu 初始菜单，场上没有玩家
	PhaseMenu GamePhase = iota
	// PhaseInGame 游戏进行中
	PhaseInGame
	// PhaseGameOver 撞上地球后的结束画面，云朵继续漂移，等待复活
	PhaseGameOver
)

// String 返回状态名称（用于日志）
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseInGame:
		return "InGame"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("GamePhase(%d)", int(p))
	}
}

// ScoreCounter 单调递增的分数，每次进入 InGame 清零
type ScoreCounter struct {
	value uint32
}

// Increment 分数加一
func (s *ScoreCounter) Increment() {
	s.value++
}

// Reset 分数清零
func (s *ScoreCounter) Reset() {
	s.value = 0
}

// Value 返回当前分数
func (s *ScoreCounter) Value() uint32 {
	return s.value
}

// GameState 存储一局模拟的全部可变状态
//
// 由 Simulation 持有并显式传给每个系统，不使用全局单例。
// 进程启动时创建，状态切换时重置，进程退出时销毁。
type GameState struct {
	Phase GamePhase

	Score ScoreCounter

	// SpawnTimer 云朵发射器计时器
	SpawnTimer *components.TimerComponent

	// PlayerID 当前玩家实体（Menu 状态下为 InvalidEntity）
	PlayerID ecs.EntityID
	// HazardID 当前地球实体（Menu 状态下为 InvalidEntity）
	HazardID ecs.EntityID
}

// NewGameState 创建初始状态（Menu，分数 0）
//
// 参数:
//   - emitterInterval: 云朵发射器周期（秒）
func NewGameState(emitterInterval float64) *GameState {
	return &GameState{
		Phase:      PhaseMenu,
		SpawnTimer: components.NewTimer("cloud_emitter", emitterInterval),
		PlayerID:   ecs.InvalidEntity,
		HazardID:   ecs.InvalidEntity,
	}
}

// GetScore 返回当前分数（供 UI 只读）
func (gs *GameState) GetScore() uint32 {
	return gs.Score.Value()
}

// GetPhase 返回当前生命周期状态（供 UI 只读）
func (gs *GameState) GetPhase() GamePhase {
	return gs.Phase
}
