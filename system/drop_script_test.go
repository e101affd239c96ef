package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/system"
	"github.com/milk9111/jewelwood/system/mocks"
)

func TestEmbeddedDropScript(t *testing.T) {
	rule, err := system.NewScriptDropRule("drop", 0.3)
	require.NoError(t, err)

	stock := component.NewTarget(1, common.Vec3{}, 100)
	tough := component.NewTarget(2, common.Vec3{}, 300)

	cases := []struct {
		name   string
		roll   float64
		target *component.Target
		want   bool
	}{
		{"low_roll", 0.1, stock, true},
		{"high_roll", 0.5, stock, false},
		{"at_chance", 0.3, stock, false},
		{"tough_bonus", 0.45, tough, true},
		{"capped", 0.95, component.NewTarget(3, common.Vec3{}, 10000), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, rule.ShouldDrop(c.roll, c.target))
		})
	}
}

func TestCompileDropRule(t *testing.T) {
	t.Run("every_other", func(t *testing.T) {
		rule, err := system.CompileDropRule("alt", []byte(`drop = defeated_count % 2 == 0`), 0)
		require.NoError(t, err)
		assert.False(t, rule.ShouldDrop(0, nil))
		assert.True(t, rule.ShouldDrop(0, nil))
		assert.False(t, rule.ShouldDrop(0, nil))
	})

	t.Run("syntax_error", func(t *testing.T) {
		_, err := system.CompileDropRule("bad", []byte(`drop = (`), 0.3)
		assert.Error(t, err)
	})

	t.Run("runtime_error_falls_back", func(t *testing.T) {
		rule, err := system.CompileDropRule("div", []byte(`x := 1 / max_health
drop = true`), 0.3)
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			assert.True(t, rule.ShouldDrop(0.1, nil))
			assert.False(t, rule.ShouldDrop(0.9, nil))
		})
	})

	t.Run("missing_script", func(t *testing.T) {
		_, err := system.NewScriptDropRule("no_such_rule", 0.3)
		assert.Error(t, err)
	})
}

func TestFailingDropScriptKeepsFrameLoopRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandSource(ctrl)
	rng.EXPECT().Float64().Return(0.1).Times(1)

	rule, err := system.CompileDropRule("div", []byte(`x := 1 / (max_health - 100)
drop = false`), 0.3)
	require.NoError(t, err)
	rewards := system.NewRewardEmitter(0.3, rng)
	rewards.Rule = rule

	w := ecs.NewWorld()
	w.AddSystem(system.NewLifecycleSystem(rewards))
	target := w.Targets.Spawn(common.V3(0, 1, -3), 100)
	require.True(t, target.Health.ApplyDamage(100))

	require.NotPanics(t, func() { w.Update(1.0 / 60) })
	assert.Equal(t, 0, w.Targets.Len())
	assert.Equal(t, 1, rewards.Rolls())
	// The chance comparison decides instead: 0.1 < 0.3.
	require.Equal(t, 1, w.Collectibles.Len())

	require.NotPanics(t, func() { w.Update(1.0 / 60) })
	assert.Equal(t, 1, rewards.Rolls())
}
