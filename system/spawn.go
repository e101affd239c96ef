package system

import (
	"log/slog"
	"math"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// SpawnSystem adds an enemy on a ring around the origin every Interval
// seconds.
type SpawnSystem struct {
	Interval  float64
	Radius    float64
	Height    float64
	MaxHealth int
	// MaxAlive caps the registry size; zero means no cap.
	MaxAlive int
	Rand     RandSource

	timer float64
}

func NewSpawnSystem(rng RandSource) *SpawnSystem {
	return &SpawnSystem{
		Interval:  3,
		Radius:    25,
		Height:    1,
		MaxHealth: component.EnemyMaxHealth,
		Rand:      rng,
	}
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || s.Interval <= 0 || s.Rand == nil {
		return
	}
	s.timer += dt
	for s.timer >= s.Interval {
		s.timer -= s.Interval
		if s.MaxAlive > 0 && w.Targets.Len() >= s.MaxAlive {
			continue
		}
		angle := s.Rand.Float64() * 2 * math.Pi
		pos := common.V3(math.Cos(angle)*s.Radius, s.Height, math.Sin(angle)*s.Radius)
		t := w.Targets.Spawn(pos, s.MaxHealth)
		if t == nil {
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventTargetSpawned, Target: t.ID, Position: pos})
		slog.Debug("spawn: enemy", "target", t.ID, "x", pos.X, "z", pos.Z)
	}
}

func (s *SpawnSystem) ApplyTuning(t prefabs.Tuning) error {
	if s == nil {
		return nil
	}
	s.Interval = t.Enemy.SpawnInterval
	s.Radius = t.Enemy.SpawnRadius
	s.Height = t.Enemy.SpawnHeight
	s.MaxHealth = t.Enemy.MaxHealth
	s.MaxAlive = t.Enemy.MaxAlive
	return nil
}
