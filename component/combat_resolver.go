package component

import (
	"log/slog"
	"time"

	"github.com/milk9111/jewelwood/common"
)

// DefaultCheckInterval is the stock spacing between collision passes.
const DefaultCheckInterval = 100 * time.Millisecond

// Hit records one applied projectile hit.
type Hit struct {
	Projectile ProjectileID
	Target     TargetID
	Amount     int
	Remaining  int
	Defeated   bool
	Position   common.Vec3
}

// CombatResolver applies projectile damage to targets, at most once per
// (projectile, target) pair.
type CombatResolver struct {
	Sink CombatSink
	Test CollisionTest
	// Interval spaces collision passes apart on Clock. Zero resolves every
	// call.
	Interval   time.Duration
	Clock      Clock
	Broadphase *Broadphase

	lastPass time.Time
	passes   int
}

// NewCombatResolver creates a resolver that checks every call with the
// default sphere test and a broad phase.
func NewCombatResolver(sink CombatSink) *CombatResolver {
	return &CombatResolver{
		Sink:       sink,
		Test:       SphereTest{Radius: CollisionRadius},
		Clock:      SystemClock(),
		Broadphase: NewBroadphase(),
	}
}

// Passes returns how many collision passes actually ran.
func (r *CombatResolver) Passes() int {
	if r == nil {
		return 0
	}
	return r.passes
}

// Due reports whether a collision pass should run now, and if so records the
// pass time.
func (r *CombatResolver) Due() bool {
	if r == nil {
		return false
	}
	if r.Interval <= 0 {
		return true
	}
	clock := r.Clock
	if clock == nil {
		clock = SystemClock()
	}
	now := clock.Now()
	if !r.lastPass.IsZero() && now.Sub(r.lastPass) <= r.Interval {
		return false
	}
	r.lastPass = now
	return true
}

// Resolve tests every live projectile against every non-defeated target and
// applies new hits. Projectiles are not consumed by hits. A nil target source
// is logged and skipped.
func (r *CombatResolver) Resolve(projectiles ProjectileSource, targets TargetSource) []Hit {
	if r == nil {
		return nil
	}
	if targets == nil {
		slog.Warn("combat: target registry unavailable, skipping collision pass")
		return nil
	}
	if projectiles == nil {
		return nil
	}
	if !r.Due() {
		return nil
	}
	r.passes++

	test := r.Test
	if test == nil {
		test = SphereTest{Radius: CollisionRadius}
	}

	all := targets.Targets()
	live := make([]*Target, 0, len(all))
	for _, t := range all {
		if t != nil && !t.IsDefeated() {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	if r.Broadphase != nil {
		r.Broadphase.Rebuild(live, test.Reach())
	}

	var hits []Hit
	for _, p := range projectiles.Projectiles() {
		if p == nil {
			continue
		}
		candidates := live
		if r.Broadphase != nil {
			candidates = r.Broadphase.Query(p.Prev, p.Position)
		}
		for _, t := range candidates {
			if t.IsDefeated() || p.HasHit(t.ID) {
				continue
			}
			if !test.Collides(p, t.Position) {
				continue
			}
			res := t.ApplyHit(p)
			if !res.Applied {
				continue
			}
			slog.Debug("combat: hit",
				"projectile", p.ID,
				"target", t.ID,
				"damage", res.Amount,
				"health", res.Remaining,
			)
			hit := Hit{
				Projectile: p.ID,
				Target:     t.ID,
				Amount:     res.Amount,
				Remaining:  res.Remaining,
				Defeated:   res.Defeated,
				Position:   t.Position,
			}
			hits = append(hits, hit)
			if r.Sink != nil {
				r.Sink.OnDamageApplied(t.ID, res.Amount, t.Position)
				if res.Defeated {
					r.Sink.OnTargetDefeated(t.ID, t.Position)
				}
			}
			if res.Defeated {
				slog.Debug("combat: target defeated", "target", t.ID, "projectile", p.ID)
			}
		}
	}
	return hits
}
