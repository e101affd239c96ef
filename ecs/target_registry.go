package ecs

import (
	"sort"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
)

// TargetRegistry holds the enemies of one session. Ids start at 1 and are
// never reused.
type TargetRegistry struct {
	set    SparseSet[*component.Target]
	nextID component.TargetID
}

func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{}
}

// Spawn registers a new target with full health.
func (r *TargetRegistry) Spawn(pos common.Vec3, maxHealth int) *component.Target {
	if r == nil {
		return nil
	}
	r.nextID++
	t := component.NewTarget(r.nextID, pos, maxHealth)
	r.set.Set(int(t.ID), t)
	return t
}

func (r *TargetRegistry) Get(id component.TargetID) (*component.Target, bool) {
	if r == nil {
		return nil, false
	}
	return r.set.Get(int(id))
}

// Targets returns a snapshot of the registered targets ordered by id.
func (r *TargetRegistry) Targets() []*component.Target {
	if r == nil || r.set.Len() == 0 {
		return nil
	}
	out := append([]*component.Target(nil), r.set.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Defeated returns the registered targets whose health reached zero.
func (r *TargetRegistry) Defeated() []*component.Target {
	var out []*component.Target
	for _, t := range r.Targets() {
		if t.IsDefeated() {
			out = append(out, t)
		}
	}
	return out
}

func (r *TargetRegistry) Remove(id component.TargetID) bool {
	if r == nil {
		return false
	}
	return r.set.Remove(int(id))
}

func (r *TargetRegistry) Len() int {
	if r == nil {
		return 0
	}
	return r.set.Len()
}
