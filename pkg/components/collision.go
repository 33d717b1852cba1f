package components

import "github.com/decker502/montociel/pkg/ecs"

// CollisionEventType 碰撞事件类型
type CollisionEventType int

const (
	// CollisionStarted 两个刚体开始接触
	CollisionStarted CollisionEventType = iota
	// CollisionStopped 两个刚体分离
	CollisionStopped
)

// String 返回事件类型名称
func (t CollisionEventType) String() string {
	if t == CollisionStarted {
		return "Started"
	}
	return "Stopped"
}

// CollisionEvent 由碰撞检测方产生、由 CollisionSystem 在同一帧内消费一次的事件
type CollisionEvent struct {
	Type CollisionEventType
	A, B ecs.EntityID
}

// Involves 检查事件是否涉及指定实体，返回另一方
func (e CollisionEvent) Involves(id ecs.EntityID) (other ecs.EntityID, ok bool) {
	switch id {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return ecs.InvalidEntity, false
}
