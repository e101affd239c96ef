package system

import (
	"log/slog"

	"github.com/milk9111/jewelwood/ecs"
)

// WeaponSystem fires the player's weapon while the trigger is held.
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

func (s *WeaponSystem) Update(w *ecs.World, dt float64) {
	if w == nil || w.Weapon == nil {
		return
	}
	w.Weapon.Tick(dt)
	if w.Player == nil || !w.Player.Trigger || !w.Weapon.Ready() {
		return
	}
	for _, shot := range w.Weapon.Trigger(w.Player.Position, w.Player.Yaw) {
		if _, err := w.Fire(shot.Origin, shot.Direction, shot.Damage); err != nil {
			slog.Warn("weapon: shot rejected", "weapon", w.Weapon.Name, "err", err)
		}
	}
}
