package component

import "github.com/milk9111/jewelwood/common"

// CollectibleID identifies a dropped item within a session.
type CollectibleID uint64

// CollectibleKind names what a collectible grants when claimed.
type CollectibleKind string

const CollectibleJewel CollectibleKind = "jewel"

// Default reward tuning.
const (
	JewelDropChance     = 0.3
	JewelPickupDistance = 2.0
	// JewelHeight is the resting height of a dropped jewel.
	JewelHeight = 0.05
)

// Collectible is an item lying on the ground waiting for the player.
type Collectible struct {
	ID       CollectibleID
	Kind     CollectibleKind
	Position common.Vec3
	// Source is the defeated target that dropped it.
	Source TargetID
}
