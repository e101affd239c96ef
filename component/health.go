package component

// Health is an integer hit-point pool. Current stays within [0, Max] and
// Defeated latches the first time Current reaches zero.
type Health struct {
	Max      int
	Current  int
	Defeated bool

	OnDamage func(h *Health, amount int)
	OnDefeat func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity can still take damage.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Defeated && h.Current > 0
}

// ApplyDamage subtracts amount, clamping at zero. It returns false when
// nothing changed: a nil or defeated pool, or a non-positive amount.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Defeated || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current == 0 {
		h.Defeated = true
		if h.OnDefeat != nil {
			h.OnDefeat(h)
		}
	}
	return true
}

// Heal restores health up to Max. Defeated pools stay at zero.
func (h *Health) Heal(amount int) {
	if h == nil || h.Defeated || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() int {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() int {
	if h == nil {
		return 0
	}
	return h.Max
}

// Fraction returns Current/Max for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// SetMaxHP sets the maximum health value and clamps Current if needed.
func (h *Health) SetMaxHP(v int) {
	if h == nil {
		return
	}
	h.Max = v
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
