package systems

import (
	"math"
	"testing"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
	"github.com/decker502/montociel/pkg/utils"
)

func TestPhysicsIntegratesPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	_, body := addTestBody(em, components.BodyObstacle, utils.Vec2{X: 1, Y: 2}, utils.Vec2{X: 3, Y: -6})
	body.Spin = 0.4

	ps := NewPhysicsSystem(em)
	ps.Step(0.5)

	if math.Abs(body.Position.X-2.5) > floatTolerance || math.Abs(body.Position.Y+1) > floatTolerance {
		t.Errorf("position %v, want (2.5, -1)", body.Position)
	}
	if math.Abs(body.Angle-0.2) > floatTolerance {
		t.Errorf("angle %v, want 0.2", body.Angle)
	}
}

func TestCircleContact(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     bool
	}{
		{"overlapping", 1.5, true},
		{"touching", 2, true},
		{"apart", 2.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &components.BodyComponent{Radius: 1}
			b := &components.BodyComponent{Radius: 1, Position: utils.Vec2{X: tt.distance}}
			if got := checkCircleCollision(a, b); got != tt.want {
				t.Errorf("checkCircleCollision at %v = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestContactEvents(t *testing.T) {
	em := ecs.NewEntityManager()
	a, _ := addTestBody(em, components.BodyPlayer, utils.Vec2{}, utils.Vec2{})
	b, bBody := addTestBody(em, components.BodyObstacle, utils.Vec2{X: 1.5}, utils.Vec2{})
	ps := NewPhysicsSystem(em)

	events := ps.Step(0)
	if len(events) != 1 || events[0].Type != components.CollisionStarted || events[0].A != a || events[0].B != b {
		t.Fatalf("expected one Started(%d,%d), got %+v", a, b, events)
	}

	// 持续接触不重复产生事件
	if events := ps.Step(0); len(events) != 0 {
		t.Errorf("expected no events while contact persists, got %+v", events)
	}
	if ps.ContactCount() != 1 {
		t.Errorf("contact count %d, want 1", ps.ContactCount())
	}

	bBody.Position = utils.Vec2{X: 5}
	events = ps.Step(0)
	if len(events) != 1 || events[0].Type != components.CollisionStopped {
		t.Fatalf("expected one Stopped event, got %+v", events)
	}
	if ps.ContactCount() != 0 {
		t.Errorf("contact count %d, want 0", ps.ContactCount())
	}
}

func TestContactWithRemovedEntityDropped(t *testing.T) {
	em := ecs.NewEntityManager()
	addTestBody(em, components.BodyPlayer, utils.Vec2{}, utils.Vec2{})
	b, _ := addTestBody(em, components.BodyObstacle, utils.Vec2{X: 1}, utils.Vec2{})
	ps := NewPhysicsSystem(em)
	ps.Step(0)

	em.DestroyEntity(b)
	em.RemoveMarkedEntities()

	if events := ps.Step(0); len(events) != 0 {
		t.Errorf("removed entity should not produce events, got %+v", events)
	}
	if ps.ContactCount() != 0 {
		t.Errorf("contact count %d, want 0", ps.ContactCount())
	}
}

func TestStartedEventsOrdered(t *testing.T) {
	em := ecs.NewEntityManager()
	p, _ := addTestBody(em, components.BodyPlayer, utils.Vec2{}, utils.Vec2{})
	// 两朵云都碰到玩家，但彼此相距 3 > 1+1
	c1, _ := addTestBody(em, components.BodyObstacle, utils.Vec2{X: 1.5}, utils.Vec2{})
	c2, _ := addTestBody(em, components.BodyObstacle, utils.Vec2{X: -1.5}, utils.Vec2{})
	ps := NewPhysicsSystem(em)

	events := ps.Step(0)
	want := []components.CollisionEvent{
		{Type: components.CollisionStarted, A: p, B: c1},
		{Type: components.CollisionStarted, A: p, B: c2},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}
