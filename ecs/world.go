package ecs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/prefabs"
)

// Tunable is implemented by systems that read tuning.
type Tunable interface {
	ApplyTuning(t prefabs.Tuning) error
}

// World is one play session: it owns the projectile pool, the registries,
// the player's gear and the system order.
type World struct {
	Projectiles  *ProjectilePool
	Targets      *TargetRegistry
	Collectibles *CollectibleRegistry
	Inventory    *component.Inventory
	Player       *component.Player
	Weapon       *component.Weapon
	Labels       []*component.FloatingText

	// Combat receives resolver output. The world subscribes itself so damage
	// and defeat also land on the event queue; hosts may add their own
	// handlers.
	Combat *component.CombatEventEmitter

	scheduler *Scheduler
	events    EventQueue
	retired   []component.ProjectileID
	frame     uint64
	elapsed   float64
}

// NewWorld creates a session with default tuning and no systems.
func NewWorld() *World {
	w := &World{
		Projectiles:  NewProjectilePool(DefaultPoolConfig()),
		Targets:      NewTargetRegistry(),
		Collectibles: NewCollectibleRegistry(),
		Inventory:    component.NewInventory(component.DefaultMaxStack),
		Player:       &component.Player{},
		Weapon:       component.DefaultBlaster(),
		Combat:       &component.CombatEventEmitter{},
		scheduler:    NewScheduler(),
	}
	w.Combat.Subscribe(w.recordCombat)
	return w
}

func (w *World) recordCombat(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventDamageApplied:
		w.events.Push(Event{Type: EventDamageApplied, Target: evt.TargetID, Amount: evt.Amount, Position: evt.Position})
	case component.EventTargetDefeated:
		w.events.Push(Event{Type: EventTargetDefeated, Target: evt.TargetID, Position: evt.Position})
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.scheduler.Add(s)
}

func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Fire launches a projectile from origin along direction. Rejected requests
// leave the pool unchanged.
func (w *World) Fire(origin, direction common.Vec3, damage int) (component.ProjectileID, error) {
	if w == nil {
		return "", errors.New("ecs: nil world")
	}
	id, err := w.Projectiles.Fire(origin, direction, damage)
	if err != nil {
		return "", err
	}
	w.events.Push(Event{Type: EventProjectileFired, Projectile: id, Amount: damage, Position: origin})
	return id, nil
}

// Update runs one frame. Events the previous Update produced are dropped
// first; events pushed since then, such as Fire, carry into this frame.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.events.flush()
	w.retired = nil
	w.frame++
	w.elapsed += dt
	w.scheduler.Update(w, dt)
	w.events.mark()
}

// SweepProjectiles removes retired projectiles from the pool, records them
// for Retired and queues a retirement event for each.
func (w *World) SweepProjectiles() []component.ProjectileID {
	if w == nil {
		return nil
	}
	ids := w.Projectiles.Sweep()
	for _, id := range ids {
		w.events.Push(Event{Type: EventProjectileRetired, Projectile: id})
	}
	w.retired = append(w.retired, ids...)
	return ids
}

// Retired returns the projectile ids removed during the last frame.
func (w *World) Retired() []component.ProjectileID {
	if w == nil {
		return nil
	}
	return w.retired
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Frame returns how many frames have run.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// ApplyTuning retunes the live world and every Tunable system. Projectiles
// already in flight keep the budgets they were fired with.
func (w *World) ApplyTuning(t prefabs.Tuning) error {
	if w == nil {
		return errors.New("ecs: nil world")
	}
	if err := t.Validate(); err != nil {
		return err
	}

	w.Projectiles.Config = PoolConfig{
		Speed:       t.Projectile.Speed,
		MaxDistance: t.Projectile.MaxDistance,
		MaxBounces:  t.Projectile.MaxBounces,
		Ballistics: component.Ballistics{
			Gravity:        t.Projectile.Gravity,
			Floor:          t.Projectile.Floor,
			BounceFactor:   t.Projectile.BounceFactor,
			GroundFriction: t.Projectile.GroundFriction,
		},
	}

	w.Inventory.MaxStack = t.Inventory.MaxStack
	w.Inventory.Jewels = common.ClampInt(w.Inventory.Jewels, 0, w.Inventory.MaxStack)

	w.Weapon.Name = t.Weapon.Name
	w.Weapon.Cooldown = t.Weapon.Cooldown
	w.Weapon.Damage = t.Weapon.Damage
	w.Weapon.Count = t.Weapon.Count
	w.Weapon.Spread = t.Weapon.Spread()
	w.Weapon.Lift = t.Weapon.Lift
	w.Weapon.MuzzleHeight = t.Weapon.MuzzleHeight

	var errs []error
	for _, s := range w.scheduler.Systems() {
		tunable, ok := s.(Tunable)
		if !ok {
			continue
		}
		if err := tunable.ApplyTuning(t); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", s, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	slog.Info("world: tuning applied", "systems", len(w.scheduler.Systems()))
	return nil
}
