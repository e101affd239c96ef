package component

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jewelwood/common"
)

// Broadphase indexes targets on the ground plane so each projectile only
// runs the narrow-phase test against nearby targets. World X maps to cp X and
// world Z maps to cp Y.
type Broadphase struct {
	space *cp.Space
	count int
}

func NewBroadphase() *Broadphase {
	return &Broadphase{space: cp.NewSpace()}
}

// Rebuild replaces the index with the given targets. Targets move every
// frame, so the index is rebuilt once per resolution pass.
func (b *Broadphase) Rebuild(targets []*Target, radius float64) {
	if b == nil {
		return
	}
	b.space = cp.NewSpace()
	b.count = 0
	if radius <= 0 {
		radius = CollisionRadius
	}
	for _, t := range targets {
		if t == nil || t.IsDefeated() {
			continue
		}
		shape := cp.NewCircle(b.space.StaticBody, radius, cp.Vector{X: t.Position.X, Y: t.Position.Z})
		shape.UserData = t
		b.space.AddShape(shape)
		b.count++
	}
}

// Len returns the number of indexed targets.
func (b *Broadphase) Len() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Query returns the targets whose indexed circle overlaps the horizontal
// bounds of the segment from-to, ordered by id.
func (b *Broadphase) Query(from, to common.Vec3) []*Target {
	if b == nil || b.space == nil || b.count == 0 {
		return nil
	}
	bb := cp.BB{
		L: math.Min(from.X, to.X),
		B: math.Min(from.Z, to.Z),
		R: math.Max(from.X, to.X),
		T: math.Max(from.Z, to.Z),
	}
	var out []*Target
	b.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		if t, ok := shape.UserData.(*Target); ok && t != nil {
			out = append(out, t)
		}
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
