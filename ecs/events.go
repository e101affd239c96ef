package ecs

import (
	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
)

// EventType identifies world events.
type EventType string

const (
	EventProjectileFired   EventType = "projectile_fired"
	EventProjectileRetired EventType = "projectile_retired"
	EventDamageApplied     EventType = "damage_applied"
	EventTargetDefeated    EventType = "target_defeated"
	EventTargetSpawned     EventType = "target_spawned"
	EventRewardDropped     EventType = "reward_dropped"
	EventRewardClaimed     EventType = "reward_claimed"
)

// Event is a single world event. Only the fields relevant to Type are set.
type Event struct {
	Type        EventType
	Projectile  component.ProjectileID
	Target      component.TargetID
	Collectible component.CollectibleID
	Amount      int
	Position    common.Vec3
}

// EventQueue is a simple FIFO queue. Events pushed during a frame stay
// readable until the next frame starts; events pushed between frames are
// carried into the next one.
type EventQueue struct {
	items []Event
	seen  int
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the queued events without removing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// mark records the end of a frame.
func (q *EventQueue) mark() {
	if q == nil {
		return
	}
	q.seen = len(q.items)
}

// flush drops the events that were already visible for a whole frame.
func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	if q.seen >= len(q.items) {
		q.items = nil
	} else {
		q.items = append([]Event(nil), q.items[q.seen:]...)
	}
	q.seen = 0
}
