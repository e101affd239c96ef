package ecs

import (
	"sort"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
)

// CollectibleRegistry holds dropped rewards waiting to be claimed.
type CollectibleRegistry struct {
	set    SparseSet[*component.Collectible]
	nextID component.CollectibleID
}

func NewCollectibleRegistry() *CollectibleRegistry {
	return &CollectibleRegistry{}
}

// Drop places a collectible at pos.
func (r *CollectibleRegistry) Drop(kind component.CollectibleKind, pos common.Vec3, source component.TargetID) *component.Collectible {
	if r == nil {
		return nil
	}
	r.nextID++
	c := &component.Collectible{ID: r.nextID, Kind: kind, Position: pos, Source: source}
	r.set.Set(int(c.ID), c)
	return c
}

func (r *CollectibleRegistry) Get(id component.CollectibleID) (*component.Collectible, bool) {
	if r == nil {
		return nil, false
	}
	return r.set.Get(int(id))
}

// All returns a snapshot ordered by id.
func (r *CollectibleRegistry) All() []*component.Collectible {
	if r == nil || r.set.Len() == 0 {
		return nil
	}
	out := append([]*component.Collectible(nil), r.set.Values()...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *CollectibleRegistry) Remove(id component.CollectibleID) bool {
	if r == nil {
		return false
	}
	return r.set.Remove(int(id))
}

func (r *CollectibleRegistry) Len() int {
	if r == nil {
		return 0
	}
	return r.set.Len()
}
