package component

import (
	"time"

	"github.com/milk9111/jewelwood/common"
)

//go:generate go tool mockgen -destination=./mocks/combat_mock.go -package=mocks . CombatSink,Clock

// CombatSink receives the outcome of collision resolution. UI and audio
// collaborators implement it.
type CombatSink interface {
	OnDamageApplied(target TargetID, amount int, pos common.Vec3)
	OnTargetDefeated(target TargetID, pos common.Vec3)
}

// ProjectileSource enumerates live projectiles, retired ones included until
// they are swept.
type ProjectileSource interface {
	Projectiles() []*Projectile
}

// TargetSource enumerates the targets currently in the registry.
type TargetSource interface {
	Targets() []*Target
}

// Clock supplies monotonic timestamps for throttled work.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
