package system

import (
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// ChaseSystem walks live targets toward the player on the ground plane.
type ChaseSystem struct {
	Speed float64
}

func NewChaseSystem() *ChaseSystem {
	return &ChaseSystem{Speed: component.EnemySpeed}
}

func (s *ChaseSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || w.Player == nil || s.Speed <= 0 || dt <= 0 {
		return
	}
	step := s.Speed * dt
	for _, t := range w.Targets.Targets() {
		if t.IsDefeated() {
			continue
		}
		to := w.Player.Position.Sub(t.Position)
		to.Y = 0
		dist := to.Len()
		if dist == 0 {
			continue
		}
		if dist <= step {
			t.Position.X = w.Player.Position.X
			t.Position.Z = w.Player.Position.Z
			continue
		}
		t.Position = t.Position.Add(to.Scale(step / dist))
	}
}

func (s *ChaseSystem) ApplyTuning(t prefabs.Tuning) error {
	if s == nil {
		return nil
	}
	s.Speed = t.Enemy.Speed
	return nil
}
