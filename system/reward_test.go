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

func TestChanceRule(t *testing.T) {
	cases := []struct {
		roll float64
		want bool
	}{
		{0, true},
		{0.29, true},
		{0.3, false},
		{0.99, false},
	}
	rule := system.ChanceRule{Chance: 0.3}
	for _, c := range cases {
		assert.Equal(t, c.want, rule.ShouldDrop(c.roll, nil), "roll %v", c.roll)
	}
}

func TestRewardEmitterConsultsRuleWithRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandSource(ctrl)
	rule := mocks.NewMockDropRule(ctrl)

	w := ecs.NewWorld()
	tgt := w.Targets.Spawn(common.V3(4, 1, -2), 100)

	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.75),
		rule.EXPECT().ShouldDrop(0.75, tgt).Return(true),
	)

	e := system.NewRewardEmitter(0.3, rng)
	e.Rule = rule
	c, ok := e.Roll(w, tgt)

	require.True(t, ok)
	assert.Equal(t, common.V3(4, component.JewelHeight, -2), c.Position)
	assert.Equal(t, component.CollectibleJewel, c.Kind)
	assert.Equal(t, 1, e.Rolls())
	evts := w.Events().Items()
	require.Len(t, evts, 1)
	assert.Equal(t, ecs.EventRewardDropped, evts[0].Type)
	assert.Equal(t, c.ID, evts[0].Collectible)
}

func TestRewardEmitterWithoutRandSource(t *testing.T) {
	w := ecs.NewWorld()
	tgt := w.Targets.Spawn(common.Vec3{}, 1)
	e := system.NewRewardEmitter(1, nil)

	_, ok := e.Roll(w, tgt)
	assert.False(t, ok)
	assert.Zero(t, e.Rolls())
}
