package system

import (
	"log/slog"

	"github.com/milk9111/jewelwood/ecs"
	"github.com/milk9111/jewelwood/prefabs"
)

// LifecycleSystem removes defeated targets and gives each one its reward
// roll. A target is removed before its roll, so it can never roll twice.
type LifecycleSystem struct {
	Rewards *RewardEmitter
}

func NewLifecycleSystem(rewards *RewardEmitter) *LifecycleSystem {
	return &LifecycleSystem{Rewards: rewards}
}

func (s *LifecycleSystem) Update(w *ecs.World, _ float64) {
	if s == nil || w == nil {
		return
	}
	for _, t := range w.Targets.Defeated() {
		if !w.Targets.Remove(t.ID) {
			continue
		}
		if s.Rewards == nil {
			slog.Warn("lifecycle: reward emitter unavailable, no drop roll", "target", t.ID)
			continue
		}
		s.Rewards.Roll(w, t)
	}
}

// ApplyTuning swaps the drop rule. The previous rule stays when the script
// fails to load.
func (s *LifecycleSystem) ApplyTuning(t prefabs.Tuning) error {
	if s == nil || s.Rewards == nil {
		return nil
	}
	if t.Reward.Script == "" {
		s.Rewards.Rule = ChanceRule{Chance: t.Reward.DropChance}
		return nil
	}
	rule, err := NewScriptDropRule(t.Reward.Script, t.Reward.DropChance)
	if err != nil {
		return err
	}
	s.Rewards.Rule = rule
	return nil
}
