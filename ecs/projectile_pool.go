package ecs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
)

var (
	ErrZeroDirection     = errors.New("ecs: projectile direction is zero")
	ErrNonPositiveDamage = errors.New("ecs: projectile damage must be positive")
	ErrInvalidDirection  = errors.New("ecs: projectile direction is not finite")
)

// PoolConfig holds the per-pool projectile tuning.
type PoolConfig struct {
	Speed       float64
	MaxDistance float64
	MaxBounces  int
	Ballistics  component.Ballistics
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Speed:       component.ProjectileSpeed,
		MaxDistance: component.ProjectileMaxDistance,
		MaxBounces:  component.ProjectileMaxBounces,
		Ballistics:  component.DefaultBallistics(),
	}
}

// ProjectilePool owns the live projectiles in firing order.
type ProjectilePool struct {
	Config PoolConfig

	items []*component.Projectile
	byID  map[component.ProjectileID]*component.Projectile
	newID func() component.ProjectileID
}

func NewProjectilePool(cfg PoolConfig) *ProjectilePool {
	return &ProjectilePool{
		Config: cfg,
		byID:   make(map[component.ProjectileID]*component.Projectile),
		newID: func() component.ProjectileID {
			return component.ProjectileID(uuid.NewString())
		},
	}
}

// Fire creates a projectile at origin travelling along direction at the pool
// speed. The pool is left unchanged when the request is rejected.
func (p *ProjectilePool) Fire(origin, direction common.Vec3, damage int) (component.ProjectileID, error) {
	if p == nil {
		return "", errors.New("ecs: nil projectile pool")
	}
	if damage <= 0 {
		return "", fmt.Errorf("fire damage %d: %w", damage, ErrNonPositiveDamage)
	}
	if direction.IsZero() {
		return "", fmt.Errorf("fire direction %v: %w", direction, ErrZeroDirection)
	}
	dir := direction.Normalize()
	if dir.IsZero() {
		return "", fmt.Errorf("fire direction %v: %w", direction, ErrInvalidDirection)
	}

	id := p.newID()
	proj := component.NewProjectile(id, origin, dir.Scale(p.Config.Speed), damage, p.Config.MaxDistance, p.Config.MaxBounces)
	p.items = append(p.items, proj)
	p.byID[id] = proj
	return id, nil
}

// Advance steps every projectile by dt and returns how many retired this
// step. Retired projectiles stay in the pool until Sweep.
func (p *ProjectilePool) Advance(dt float64) int {
	if p == nil || dt <= 0 {
		return 0
	}
	retired := 0
	for _, proj := range p.items {
		if proj.Retired {
			continue
		}
		if proj.Step(dt, p.Config.Ballistics) {
			retired++
		}
	}
	return retired
}

// Sweep removes retired projectiles and returns their ids in firing order.
func (p *ProjectilePool) Sweep() []component.ProjectileID {
	if p == nil {
		return nil
	}
	var removed []component.ProjectileID
	kept := p.items[:0]
	for _, proj := range p.items {
		if proj.Retired {
			removed = append(removed, proj.ID)
			delete(p.byID, proj.ID)
			continue
		}
		kept = append(kept, proj)
	}
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = nil
	}
	p.items = kept
	return removed
}

// Projectiles returns the pool contents, retired entries included until they
// are swept. Callers must not modify the slice.
func (p *ProjectilePool) Projectiles() []*component.Projectile {
	if p == nil {
		return nil
	}
	return p.items
}

func (p *ProjectilePool) Get(id component.ProjectileID) (*component.Projectile, bool) {
	if p == nil {
		return nil, false
	}
	proj, ok := p.byID[id]
	return proj, ok
}

func (p *ProjectilePool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}
