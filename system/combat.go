package system

import (
	"time"

	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// CombatSystem resolves projectile hits for the frame, then sweeps retired
// projectiles out of the pool. Retired projectiles are still tested on the
// frame they retire.
type CombatSystem struct {
	Resolver *component.CombatResolver
}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{Resolver: component.NewCombatResolver(nil)}
}

func (s *CombatSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	if s.Resolver != nil {
		if s.Resolver.Sink == nil && w.Combat != nil {
			s.Resolver.Sink = w.Combat
		}
		var targets component.TargetSource
		if w.Targets != nil {
			targets = w.Targets
		}
		s.Resolver.Resolve(w.Projectiles, targets)
	}
	w.SweepProjectiles()
}

func (s *CombatSystem) ApplyTuning(t prefabs.Tuning) error {
	if s == nil || s.Resolver == nil {
		return nil
	}
	test, err := component.CollisionTestByName(t.Combat.CollisionTest, t.Combat.CollisionRadius, t.Projectile.Size)
	if err != nil {
		return err
	}
	s.Resolver.Test = test
	s.Resolver.Interval = time.Duration(t.Combat.CheckIntervalMS) * time.Millisecond
	return nil
}
