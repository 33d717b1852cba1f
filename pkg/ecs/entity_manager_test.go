package ecs

import (
	"reflect"
	"testing"
)

// 测试用组件：一个带位置的圆和一个漂移速度
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

var (
	positionType = reflect.TypeOf(&testPositionComponent{})
	velocityType = reflect.TypeOf(&testVelocityComponent{})
)

func TestCreateEntityStartsAtOne(t *testing.T) {
	em := NewEntityManager()

	for want := EntityID(1); want <= 3; want++ {
		if got := em.CreateEntity(); got != want {
			t.Errorf("CreateEntity() = %d, want %d", got, want)
		}
	}
	if em.Exists(InvalidEntity) {
		t.Error("InvalidEntity must never exist")
	}
}

func TestIDsNotReusedAfterCleanup(t *testing.T) {
	em := NewEntityManager()
	first := em.CreateEntity()
	em.DestroyEntity(first)
	em.RemoveMarkedEntities()

	if next := em.CreateEntity(); next == first {
		t.Errorf("id %d reused after cleanup", first)
	}
}

func TestComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, positionType) {
		t.Fatal("fresh entity should have no components")
	}

	em.AddComponent(id, &testPositionComponent{X: 10, Y: 10})
	em.AddComponent(id, &testVelocityComponent{VX: 0.5})

	comp, ok := em.GetComponent(id, positionType)
	if !ok {
		t.Fatal("position component should be found")
	}
	if pos := comp.(*testPositionComponent); pos.X != 10 || pos.Y != 10 {
		t.Errorf("position = (%v, %v), want (10, 10)", pos.X, pos.Y)
	}

	em.RemoveComponent(id, velocityType)
	if em.HasComponent(id, velocityType) {
		t.Error("velocity component should be removed")
	}
	if !em.HasComponent(id, positionType) {
		t.Error("removing one component must keep the others")
	}

	// 不存在的实体上添加组件不产生实体
	em.AddComponent(99, &testPositionComponent{})
	if em.Exists(99) {
		t.Error("AddComponent must not create entities")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for _, id := range ids {
		em.AddComponent(id, &testPositionComponent{})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])

	// 清理前仍可查询，方便同一帧内的后续系统读取
	if got := em.GetEntitiesWith(positionType); len(got) != 3 {
		t.Errorf("before cleanup: %d entities, want 3", len(got))
	}

	em.RemoveMarkedEntities()

	tests := []struct {
		id   EntityID
		want bool
	}{
		{ids[0], false},
		{ids[1], true},
		{ids[2], false},
	}
	for _, tt := range tests {
		if got := em.Exists(tt.id); got != tt.want {
			t.Errorf("Exists(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestGetEntitiesWithFilters(t *testing.T) {
	em := NewEntityManager()

	moving := em.CreateEntity()
	em.AddComponent(moving, &testPositionComponent{})
	em.AddComponent(moving, &testVelocityComponent{})

	still := em.CreateEntity()
	em.AddComponent(still, &testPositionComponent{})

	velocityOnly := em.CreateEntity()
	em.AddComponent(velocityOnly, &testVelocityComponent{})

	tests := []struct {
		name  string
		types []reflect.Type
		want  []EntityID
	}{
		{"position", []reflect.Type{positionType}, []EntityID{moving, still}},
		{"velocity", []reflect.Type{velocityType}, []EntityID{moving, velocityOnly}},
		{"both", []reflect.Type{positionType, velocityType}, []EntityID{moving}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.GetEntitiesWith(tt.types...)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGetEntitiesWithSortedByID(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		ids = append(ids, id)
	}

	// 多次查询，map 遍历顺序不影响结果
	for round := 0; round < 5; round++ {
		got := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
		if len(got) != len(ids) {
			t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
		}
		for i := range ids {
			if got[i] != ids[i] {
				t.Fatalf("Round %d: expected id %d at index %d, got %d", round, ids[i], i, got[i])
			}
		}
	}
}

func TestDestroyEntityTwiceRecordsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsPendingDestroy(id) {
		t.Error("Entity should be pending destroy")
	}
	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("Expected 1 entity queued for destroy, got %d", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsPendingDestroy(id) {
		t.Error("Pending flag should be cleared after cleanup")
	}
}

func TestDestroyUnknownEntityPanics(t *testing.T) {
	em := NewEntityManager()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when destroying unknown entity")
		}
	}()
	em.DestroyEntity(42)
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{X: 1, Y: 2})
	em.AddComponent(id1, &testVelocityComponent{VX: 3})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	pos, ok := GetComponent[*testPositionComponent](em, id1)
	if !ok {
		t.Fatal("Position component should be found")
	}
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("Component data mismatch, expected (1, 2), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id2); ok {
		t.Error("id2 should not have a velocity component")
	}
	if !HasComponent[*testVelocityComponent](em, id1) {
		t.Error("id1 should have a velocity component")
	}

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with Position, got %d", len(got))
	}
	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != 1 || got[0] != id1 {
		t.Errorf("Expected only id1 with Position+Velocity, got %v", got)
	}

	if em.EntityCount() != 2 {
		t.Errorf("Expected EntityCount 2, got %d", em.EntityCount())
	}
	if all := em.AllEntities(); len(all) != 2 || all[0] != id1 || all[1] != id2 {
		t.Errorf("AllEntities returned %v", all)
	}
}
