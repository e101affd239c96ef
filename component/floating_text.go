package component

import (
	"strconv"

	"github.com/milk9111/jewelwood/common"
)

const (
	FloatingTextLife = 1.0
	// FloatingTextRise is the upward drift in units per second.
	FloatingTextRise   = 0.6
	FloatingTextOffset = 1.0
)

// FloatingText is a short-lived label anchored in world space.
type FloatingText struct {
	Text     string
	Position common.Vec3
	Age      float64
	Life     float64
}

// NewDamageText creates the label shown above a hit.
func NewDamageText(amount int, pos common.Vec3) *FloatingText {
	pos.Y += FloatingTextOffset
	return &FloatingText{
		Text:     strconv.Itoa(amount),
		Position: pos,
		Life:     FloatingTextLife,
	}
}

// Step ages the label and reports whether it has expired.
func (f *FloatingText) Step(dt, rise float64) bool {
	if f == nil {
		return true
	}
	f.Age += dt
	f.Position.Y += rise * dt
	return f.Age >= f.Life
}

// Alpha fades the label out over its life.
func (f *FloatingText) Alpha() float64 {
	if f == nil || f.Life <= 0 {
		return 0
	}
	return common.ClampFloat(1-f.Age/f.Life, 0, 1)
}
