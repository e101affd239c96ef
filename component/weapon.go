package component

import (
	"math"

	"github.com/milk9111/jewelwood/common"
)

// Shot is one projectile a weapon wants fired.
type Shot struct {
	Origin    common.Vec3
	Direction common.Vec3
	Damage    int
}

// Weapon fires a fan of projectiles with a cooldown measured in simulation
// seconds.
type Weapon struct {
	Name     string
	Cooldown float64
	Damage   int
	Count    int
	// Spread is the total fan angle in radians.
	Spread float64
	// Lift is the upward component of every shot direction before rotation.
	Lift         float64
	MuzzleHeight float64

	wait float64
}

// DefaultBlaster returns the starting weapon.
func DefaultBlaster() *Weapon {
	return &Weapon{
		Name:         "Default Blaster",
		Cooldown:     1,
		Damage:       10,
		Count:        3,
		Spread:       math.Pi / 6,
		Lift:         0.05,
		MuzzleHeight: 0.2,
	}
}

// Tick counts the cooldown down by dt seconds.
func (w *Weapon) Tick(dt float64) {
	if w == nil || w.wait <= 0 {
		return
	}
	w.wait -= dt
	if w.wait < 0 {
		w.wait = 0
	}
}

// Ready reports whether the cooldown has elapsed.
func (w *Weapon) Ready() bool {
	return w != nil && w.wait <= 0
}

// Trigger returns the shots for one volley from origin facing yaw and starts
// the cooldown. It returns nil while cooling down.
func (w *Weapon) Trigger(origin common.Vec3, yaw float64) []Shot {
	if !w.Ready() || w.Count <= 0 {
		return nil
	}
	w.wait = w.Cooldown

	muzzle := origin
	muzzle.Y += w.MuzzleHeight

	shots := make([]Shot, 0, w.Count)
	for i := 0; i < w.Count; i++ {
		angle := 0.0
		if w.Count > 1 {
			angle = (float64(i)/float64(w.Count-1) - 0.5) * w.Spread
		}
		dir := common.V3(math.Sin(angle), w.Lift, -math.Cos(angle)).RotateY(yaw)
		shots = append(shots, Shot{Origin: muzzle, Direction: dir, Damage: w.Damage})
	}
	return shots
}
