package component

import "github.com/milk9111/jewelwood/common"

// TargetID identifies an enemy within a session. Ids increase monotonically
// and are never reused.
type TargetID uint64

// Default enemy tuning.
const (
	EnemyMaxHealth = 100
	EnemySpeed     = 1.0
	// EnemyWidth, EnemyHeight and EnemyDepth describe the enemy box centered
	// on its position.
	EnemyWidth  = 1.0
	EnemyHeight = 2.0
	EnemyDepth  = 1.0
)

// Target is a damageable enemy. Position is owned by movement systems; the
// combat core only reads it.
type Target struct {
	ID       TargetID
	Position common.Vec3
	Health   *Health
	HitBy    map[ProjectileID]struct{}
}

// HitResult reports the outcome of a single projectile hit.
type HitResult struct {
	Applied   bool
	Amount    int
	Remaining int
	Defeated  bool
}

func NewTarget(id TargetID, pos common.Vec3, maxHealth int) *Target {
	return &Target{
		ID:       id,
		Position: pos,
		Health:   NewHealth(maxHealth),
		HitBy:    make(map[ProjectileID]struct{}),
	}
}

// IsDefeated reports whether the target reached zero health.
func (t *Target) IsDefeated() bool {
	return t == nil || t.Health == nil || t.Health.Defeated
}

// WasHitBy reports whether the projectile already damaged this target.
func (t *Target) WasHitBy(id ProjectileID) bool {
	if t == nil || t.HitBy == nil {
		return false
	}
	_, ok := t.HitBy[id]
	return ok
}

// ApplyHit applies the projectile's damage once. Repeat hits from the same
// projectile and hits on a defeated target are no-ops. Both hit ledgers are
// updated together.
func (t *Target) ApplyHit(p *Projectile) HitResult {
	if t == nil || p == nil || t.IsDefeated() {
		return HitResult{}
	}
	if t.WasHitBy(p.ID) || p.HasHit(t.ID) {
		return HitResult{}
	}
	if !t.Health.ApplyDamage(p.Damage) {
		return HitResult{}
	}
	if t.HitBy == nil {
		t.HitBy = make(map[ProjectileID]struct{})
	}
	t.HitBy[p.ID] = struct{}{}
	p.markHit(t.ID)
	return HitResult{
		Applied:   true,
		Amount:    p.Damage,
		Remaining: t.Health.Current,
		Defeated:  t.Health.Defeated,
	}
}
