package component

import "github.com/milk9111/jewelwood/common"

// ProjectileID is an opaque projectile identifier. It is never reused.
type ProjectileID string

// Default projectile tuning, matching prefabs/tuning.yaml.
const (
	ProjectileSpeed       = 15.0
	ProjectileMaxDistance = 10.0
	ProjectileMaxBounces  = 5
	ProjectileSize        = 0.2
	ProjectileGravity     = -25.0
	ProjectileFloor       = 0.2
	BounceFactor          = 0.5
	GroundFriction        = 0.9
)

// Ballistics holds the integration constants shared by every projectile in a
// pool.
type Ballistics struct {
	Gravity        float64
	Floor          float64
	BounceFactor   float64
	GroundFriction float64
}

// DefaultBallistics returns the stock gravity and bounce parameters.
func DefaultBallistics() Ballistics {
	return Ballistics{
		Gravity:        ProjectileGravity,
		Floor:          ProjectileFloor,
		BounceFactor:   BounceFactor,
		GroundFriction: GroundFriction,
	}
}

// Projectile is the simulation record of one fired shot. It holds no visual
// state; renderers look it up by ID.
type Projectile struct {
	ID       ProjectileID
	Position common.Vec3
	Velocity common.Vec3
	// Prev is the position at the start of the most recent step.
	Prev common.Vec3

	Damage           int
	DistanceTraveled float64
	MaxDistance      float64
	Bounces          int
	MaxBounces       int

	HitTargets map[TargetID]struct{}
	Retired    bool
}

// NewProjectile creates a projectile at origin moving with velocity.
func NewProjectile(id ProjectileID, origin, velocity common.Vec3, damage int, maxDistance float64, maxBounces int) *Projectile {
	return &Projectile{
		ID:          id,
		Position:    origin,
		Prev:        origin,
		Velocity:    velocity,
		Damage:      damage,
		MaxDistance: maxDistance,
		MaxBounces:  maxBounces,
		HitTargets:  make(map[TargetID]struct{}),
	}
}

// Step advances the projectile by dt seconds and reports whether a budget is
// exhausted. A retired projectile keeps its final position so it can still be
// tested for collisions before the pool sweeps it.
func (p *Projectile) Step(dt float64, b Ballistics) bool {
	if p == nil {
		return false
	}
	if p.Retired {
		return true
	}

	p.Prev = p.Position
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity.Y += b.Gravity * dt

	if p.Position.Y <= b.Floor && p.Bounces < p.MaxBounces {
		p.Position.Y = b.Floor
		p.Velocity.Y = -p.Velocity.Y * b.BounceFactor
		p.Velocity.X *= b.GroundFriction
		p.Velocity.Z *= b.GroundFriction
		p.Bounces++
	}

	p.DistanceTraveled += common.Dist(p.Prev, p.Position)

	if p.DistanceTraveled >= p.MaxDistance || p.Bounces >= p.MaxBounces {
		p.Retired = true
	}
	return p.Retired
}

// HasHit reports whether this projectile already damaged the target.
func (p *Projectile) HasHit(id TargetID) bool {
	if p == nil || p.HitTargets == nil {
		return false
	}
	_, ok := p.HitTargets[id]
	return ok
}

func (p *Projectile) markHit(id TargetID) {
	if p.HitTargets == nil {
		p.HitTargets = make(map[TargetID]struct{})
	}
	p.HitTargets[id] = struct{}{}
}

// Life returns the fraction of the distance budget still unspent, in [0, 1].
func (p *Projectile) Life() float64 {
	if p == nil || p.MaxDistance <= 0 {
		return 0
	}
	return common.ClampFloat(1-p.DistanceTraveled/p.MaxDistance, 0, 1)
}
