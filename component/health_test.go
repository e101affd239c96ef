package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/jewelwood/component"
)

func TestHealthClampsUnderDamageSequences(t *testing.T) {
	cases := []struct {
		name    string
		max     int
		damages []int
		want    []int
	}{
		{"exact_kill", 25, []int{10, 10, 10}, []int{15, 5, 0}},
		{"overkill_single", 10, []int{1000}, []int{0}},
		{"ignored_non_positive", 10, []int{0, -5, 3}, []int{10, 10, 7}},
		{"after_defeat", 5, []int{5, 5, 5}, []int{0, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := component.NewHealth(c.max)
			for i, d := range c.damages {
				h.ApplyDamage(d)
				assert.GreaterOrEqual(t, h.Current, 0)
				assert.LessOrEqual(t, h.Current, h.Max)
				assert.Equal(t, c.want[i], h.Current, "after damage #%d", i)
				assert.Equal(t, h.Current == 0, h.Defeated)
			}
		})
	}
}

func TestHealthDefeatIsTerminal(t *testing.T) {
	h := component.NewHealth(10)
	defeats := 0
	h.OnDefeat = func(*component.Health) { defeats++ }

	assert.True(t, h.ApplyDamage(10))
	assert.True(t, h.Defeated)
	assert.False(t, h.IsAlive())

	assert.False(t, h.ApplyDamage(1))
	h.Heal(5)
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.Defeated)
	assert.Equal(t, 1, defeats)
}

func TestHealthHealClampsToMax(t *testing.T) {
	h := component.NewHealth(100)
	h.ApplyDamage(30)
	h.Heal(50)
	assert.Equal(t, 100, h.Current)
	assert.InDelta(t, 1.0, h.Fraction(), 1e-9)

	h.SetMaxHP(40)
	assert.Equal(t, 40, h.Current)
}

func TestNewHealthRejectsNonPositiveMax(t *testing.T) {
	h := component.NewHealth(0)
	assert.Equal(t, 1, h.Max)
	assert.Equal(t, 1, h.Current)
}
