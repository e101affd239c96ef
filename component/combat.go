package component

import "github.com/milk9111/jewelwood/common"

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventDamageApplied  CombatEventType = "damage_applied"
	EventTargetDefeated CombatEventType = "target_defeated"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type     CombatEventType
	TargetID TargetID
	Amount   int
	Position common.Vec3
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers. It satisfies
// CombatSink.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

func (e *CombatEventEmitter) OnDamageApplied(target TargetID, amount int, pos common.Vec3) {
	e.Emit(CombatEvent{Type: EventDamageApplied, TargetID: target, Amount: amount, Position: pos})
}

func (e *CombatEventEmitter) OnTargetDefeated(target TargetID, pos common.Vec3) {
	e.Emit(CombatEvent{Type: EventTargetDefeated, TargetID: target, Position: pos})
}
