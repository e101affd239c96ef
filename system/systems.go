package system

import (
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// Set is the standard system line-up, kept addressable so hosts and tests can
// reach individual systems.
type Set struct {
	Weapon       *WeaponSystem
	Projectile   *ProjectileSystem
	Combat       *CombatSystem
	Lifecycle    *LifecycleSystem
	Chase        *ChaseSystem
	Pickup       *PickupSystem
	Spawn        *SpawnSystem
	FloatingText *FloatingTextSystem
	Rewards      *RewardEmitter
}

// NewSet builds the standard systems around one random source.
func NewSet(rng RandSource) *Set {
	rewards := NewRewardEmitter(component.JewelDropChance, rng)
	return &Set{
		Weapon:       NewWeaponSystem(),
		Projectile:   NewProjectileSystem(),
		Combat:       NewCombatSystem(),
		Lifecycle:    NewLifecycleSystem(rewards),
		Chase:        NewChaseSystem(),
		Pickup:       NewPickupSystem(),
		Spawn:        NewSpawnSystem(rng),
		FloatingText: NewFloatingTextSystem(),
		Rewards:      rewards,
	}
}

// Ordered returns the systems in frame order: fire, advance, resolve and
// sweep, retire defeated targets, then the world around them.
func (s *Set) Ordered() []ecs.System {
	return []ecs.System{
		s.Weapon,
		s.Projectile,
		s.Combat,
		s.Lifecycle,
		s.Chase,
		s.Pickup,
		s.Spawn,
		s.FloatingText,
	}
}

// Install registers the standard systems on w and applies t to the world and
// the systems.
func Install(w *ecs.World, t prefabs.Tuning, rng RandSource) (*Set, error) {
	set := NewSet(rng)
	for _, sys := range set.Ordered() {
		w.AddSystem(sys)
	}
	if err := w.ApplyTuning(t); err != nil {
		return set, err
	}
	return set, nil
}
