package component

import "github.com/milk9111/jewelwood/common"

// Player is the controllable character as the simulation sees it. Input
// handling lives in the host; it writes Position, Yaw and Trigger.
type Player struct {
	Position common.Vec3
	// Yaw is the rotation around Y in radians. Zero faces -Z.
	Yaw     float64
	Trigger bool
}

// Forward returns the horizontal unit vector the player faces.
func (p *Player) Forward() common.Vec3 {
	if p == nil {
		return common.V3(0, 0, -1)
	}
	return common.V3(0, 0, -1).RotateY(p.Yaw)
}
