package system

import (
	"log/slog"

	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
)

//go:generate go tool mockgen -destination=./mocks/reward_mock.go -package=mocks . DropRule,RandSource

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// DropRule decides whether a defeated target leaves a reward, given one
// uniform roll.
type DropRule interface {
	ShouldDrop(roll float64, t *component.Target) bool
}

// ChanceRule drops when the roll is below Chance.
type ChanceRule struct {
	Chance float64
}

func (r ChanceRule) ShouldDrop(roll float64, _ *component.Target) bool {
	return roll < r.Chance
}

// RewardEmitter rolls once per defeated target and drops a jewel on success.
type RewardEmitter struct {
	Rule DropRule
	Rand RandSource
	// Height is where the jewel rests above the ground.
	Height float64

	rolls int
}

func NewRewardEmitter(chance float64, rng RandSource) *RewardEmitter {
	return &RewardEmitter{
		Rule:   ChanceRule{Chance: chance},
		Rand:   rng,
		Height: component.JewelHeight,
	}
}

// Rolls returns how many drop rolls have been made.
func (e *RewardEmitter) Rolls() int {
	if e == nil {
		return 0
	}
	return e.rolls
}

// Roll makes the single drop roll for t and places a jewel at its last
// position when the rule allows it.
func (e *RewardEmitter) Roll(w *ecs.World, t *component.Target) (*component.Collectible, bool) {
	if e == nil || w == nil || t == nil {
		return nil, false
	}
	if e.Rand == nil {
		slog.Warn("reward: no random source, skipping drop roll", "target", t.ID)
		return nil, false
	}
	rule := e.Rule
	if rule == nil {
		rule = ChanceRule{Chance: component.JewelDropChance}
	}

	e.rolls++
	roll := e.Rand.Float64()
	if !rule.ShouldDrop(roll, t) {
		slog.Debug("reward: no drop", "target", t.ID, "roll", roll)
		return nil, false
	}

	pos := t.Position
	pos.Y = e.Height
	c := w.Collectibles.Drop(component.CollectibleJewel, pos, t.ID)
	if c == nil {
		return nil, false
	}
	w.Events().Push(ecs.Event{Type: ecs.EventRewardDropped, Target: t.ID, Collectible: c.ID, Position: pos})
	slog.Debug("reward: jewel dropped", "target", t.ID, "collectible", c.ID, "roll", roll)
	return c, true
}
