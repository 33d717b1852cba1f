package systems

import (
	"sort"

	"github.com/decker502/montociel/pkg/components"
	"github.com/decker502/montociel/pkg/ecs"
)

// PhysicsSystem 参考实现的刚体积分与碰撞检测
//
// 它扮演外部物理引擎的角色：
//   - 用各刚体当前速度推进位置（p += v·dt），并推进显示用的旋转角
//   - 圆与圆重叠检测，按实体对跟踪接触状态，产生开始/分离事件
//
// 模拟核心只消费它产生的事件，可以替换为任何其他实现。
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	// 当前处于接触中的实体对
	contacts map[contactPair]bool
}

// contactPair 实体对，A < B
type contactPair struct {
	A, B ecs.EntityID
}

func makePair(a, b ecs.EntityID) contactPair {
	if a > b {
		a, b = b, a
	}
	return contactPair{A: a, B: b}
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		contacts:      make(map[contactPair]bool),
	}
}

// checkCircleCollision 检查两个圆形刚体是否重叠（相切视为接触）
func checkCircleCollision(a, b *components.BodyComponent) bool {
	r := a.Radius + b.Radius
	d := a.Position.Sub(b.Position)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// Step 积分一帧并返回本帧的碰撞事件
//
// 事件顺序确定：先按实体对顺序给出开始事件，再给出分离事件。
// 已被删除的实体对应的接触直接丢弃，不产生分离事件。
func (ps *PhysicsSystem) Step(deltaTime float64) []components.CollisionEvent {
	ids := ecs.GetEntitiesWith1[*components.BodyComponent](ps.entityManager)
	bodies := make([]*components.BodyComponent, len(ids))

	for i, id := range ids {
		body, _ := ecs.GetComponent[*components.BodyComponent](ps.entityManager, id)
		body.Position = body.Position.Add(body.Velocity.Scale(deltaTime))
		body.Angle += body.Spin * deltaTime
		bodies[i] = body
	}

	events := make([]components.CollisionEvent, 0)
	touching := make(map[contactPair]bool, len(ps.contacts))

	// 嵌套遍历检测碰撞
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !checkCircleCollision(bodies[i], bodies[j]) {
				continue
			}
			pair := makePair(ids[i], ids[j])
			touching[pair] = true
			if !ps.contacts[pair] {
				events = append(events, components.CollisionEvent{
					Type: components.CollisionStarted,
					A:    pair.A,
					B:    pair.B,
				})
			}
		}
	}

	stopped := make([]contactPair, 0)
	for pair := range ps.contacts {
		if touching[pair] {
			continue
		}
		if ps.entityManager.Exists(pair.A) && ps.entityManager.Exists(pair.B) {
			stopped = append(stopped, pair)
		}
	}
	sortPairs(stopped)
	for _, pair := range stopped {
		events = append(events, components.CollisionEvent{
			Type: components.CollisionStopped,
			A:    pair.A,
			B:    pair.B,
		})
	}

	ps.contacts = touching
	return events
}

// ContactCount 返回当前接触中的实体对数量
func (ps *PhysicsSystem) ContactCount() int {
	return len(ps.contacts)
}

func sortPairs(pairs []contactPair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
