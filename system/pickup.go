package system

import (
	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// PickupSystem moves jewels within Distance of the player into the
// inventory. A full inventory leaves the jewel on the ground.
type PickupSystem struct {
	Distance float64
}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{Distance: component.JewelPickupDistance}
}

func (s *PickupSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil || w.Player == nil || w.Inventory == nil {
		return
	}
	for _, c := range w.Collectibles.All() {
		if c.Kind != component.CollectibleJewel {
			continue
		}
		if common.Dist(w.Player.Position, c.Position) >= s.Distance {
			continue
		}
		if !w.Inventory.AddJewel() {
			continue
		}
		w.Collectibles.Remove(c.ID)
		w.Events().Push(ecs.Event{Type: ecs.EventRewardClaimed, Collectible: c.ID, Position: c.Position})
	}
}

func (s *PickupSystem) ApplyTuning(t prefabs.Tuning) error {
	if s == nil {
		return nil
	}
	s.Distance = t.Reward.PickupDistance
	return nil
}
