package system

import (
	"fmt"
	"log/slog"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/prefabs"
)

// ScriptDropRule runs a tengo script to decide drops. The script sees the
// globals roll, chance, max_health and defeated_count and must assign the
// bool global drop.
type ScriptDropRule struct {
	Name   string
	Chance float64

	compiled *tengo.Compiled
	defeats  int
}

// NewScriptDropRule loads name from the prefab scripts and compiles it.
func NewScriptDropRule(name string, chance float64) (*ScriptDropRule, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("reward: load drop script %s: %w", name, err)
	}
	return CompileDropRule(name, src, chance)
}

// CompileDropRule compiles src as a drop rule.
func CompileDropRule(name string, src []byte, chance float64) (*ScriptDropRule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0.0)
	_ = script.Add("chance", chance)
	_ = script.Add("max_health", 0)
	_ = script.Add("defeated_count", 0)
	_ = script.Add("drop", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("reward: compile drop script %s: %w", name, err)
	}
	return &ScriptDropRule{Name: name, Chance: chance, compiled: compiled}, nil
}

// ShouldDrop runs the script. A failing script falls back to the plain
// chance comparison.
func (r *ScriptDropRule) ShouldDrop(roll float64, t *component.Target) bool {
	if r == nil || r.compiled == nil {
		return false
	}
	r.defeats++
	maxHealth := 0
	if t != nil && t.Health != nil {
		maxHealth = t.Health.Max
	}

	if err := r.run(roll, maxHealth); err != nil {
		slog.Warn("reward: drop script failed, using chance", "script", r.Name, "err", err)
		return roll < r.Chance
	}
	return r.compiled.Get("drop").Bool()
}

// run executes the script once. Panics raised inside the VM, such as an
// integer division by zero, come back as errors.
func (r *ScriptDropRule) run(roll float64, maxHealth int) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("reward: drop script %s: %v", r.Name, rec)
		}
	}()
	vars := map[string]any{
		"roll":           roll,
		"chance":         r.Chance,
		"max_health":     maxHealth,
		"defeated_count": r.defeats,
		"drop":           false,
	}
	for name, v := range vars {
		if err := r.compiled.Set(name, v); err != nil {
			return err
		}
	}
	return r.compiled.Run()
}
