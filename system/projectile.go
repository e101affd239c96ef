package system

import "github.com/milk9111/jewelwood/ecs"

// ProjectileSystem advances every projectile before any collision runs.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	w.Projectiles.Advance(dt)
}
