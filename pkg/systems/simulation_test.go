package systems

import (
	"testing"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/game"
	"github.com/decker502/montociel/pkg/utils"
)

func TestMenuTickIsInert(t *testing.T) {
	sim := newTestSimulation()

	for i := 0; i < 600; i++ {
		sim.Tick(1.0/60, TickInput{ThrustHeld: true}, nil)
	}

	if sim.GameState.Phase != game.PhaseMenu {
		t.Errorf("phase %v, want Menu", sim.GameState.Phase)
	}
	if sim.EntityManager.EntityCount() != 0 {
		t.Errorf("menu spawned %d entities", sim.EntityManager.EntityCount())
	}
	if sim.GameState.SpawnTimer.CurrentTime != 0 {
		t.Errorf("spawn timer advanced in menu: %v", sim.GameState.SpawnTimer.CurrentTime)
	}
}

func TestInGameEmitterCadence(t *testing.T) {
	sim := newTestSimulation()
	sim.HandlePrimaryAction()

	// 6.5 秒：发射器触发 3 次
	for i := 0; i < 390; i++ {
		sim.Tick(1.0/60, TickInput{}, nil)
	}

	if got := sim.CountBodies(components.BodyObstacle); got != 10+3*4 {
		t.Errorf("obstacle count %d, want %d", got, 10+3*4)
	}
	if sim.CountBodies(components.BodyHazard) != 1 {
		t.Error("emitter must never spawn hazards")
	}
}

func TestSpeedStaysClamped(t *testing.T) {
	sim := newTestSimulation()
	sim.HandlePrimaryAction()
	maxSpeed := sim.Config.Physics.MaxSpeed

	player := bodyOf(t, sim.EntityManager, sim.GameState.PlayerID)
	player.Velocity = utils.Vec2{X: 500, Y: -500}

	for i := 0; i < 120; i++ {
		sim.Tick(1.0/60, TickInput{ThrustHeld: true}, nil)
		for _, id := range idsOfKind(sim.EntityManager, components.BodyPlayer) {
			if speed := bodyOf(t, sim.EntityManager, id).Velocity.Length(); speed > maxSpeed+floatTolerance {
				t.Fatalf("tick %d: player speed %v exceeds %v", i, speed, maxSpeed)
			}
		}
	}
}

func TestGameOverKeepsCloudsDrifting(t *testing.T) {
	sim := newTestSimulation()
	sim.HandlePrimaryAction()

	player := bodyOf(t, sim.EntityManager, sim.GameState.PlayerID)
	player.Velocity = utils.Vec2{X: 1}
	sim.lifecycle.EnterGameOver()

	cloud := bodyOf(t, sim.EntityManager, idsOfKind(sim.EntityManager, components.BodyObstacle)[1])
	drift := cloud.Velocity
	cloud.Velocity = utils.Vec2{}

	sim.Tick(1.0/60, TickInput{ThrustHeld: true}, nil)

	if cloud.Velocity != drift {
		t.Errorf("cloud velocity %v, want drift %v", cloud.Velocity, drift)
	}
	// 玩家不受引力/推进影响
	if !player.Velocity.IsZero() {
		t.Errorf("player velocity %v should stay frozen", player.Velocity)
	}
}

func TestPhysicsDrivenRound(t *testing.T) {
	sim := newTestSimulation()
	physics := NewPhysicsSystem(sim.EntityManager)
	sim.HandlePrimaryAction()

	// 不施加推进，玩家最终会被引力拉向地球
	for i := 0; i < 60*60 && sim.GameState.Phase == game.PhaseInGame; i++ {
		events := physics.Step(1.0 / 60)
		sim.Tick(1.0/60, TickInput{}, events)
	}

	if sim.GameState.Phase != game.PhaseGameOver {
		t.Errorf("phase %v, expected the player to fall into the hazard", sim.GameState.Phase)
	}
}
