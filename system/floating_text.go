package system

import (
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
)

// FloatingTextSystem turns this frame's damage events into rising labels and
// ages the existing ones.
type FloatingTextSystem struct {
	Rise float64
}

func NewFloatingTextSystem() *FloatingTextSystem {
	return &FloatingTextSystem{Rise: component.FloatingTextRise}
}

func (s *FloatingTextSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil {
		return
	}
	kept := w.Labels[:0]
	for _, l := range w.Labels {
		if !l.Step(dt, s.Rise) {
			kept = append(kept, l)
		}
	}
	for i := len(kept); i < len(w.Labels); i++ {
		w.Labels[i] = nil
	}
	w.Labels = kept

	for _, evt := range w.Events().Items() {
		if evt.Type == ecs.EventDamageApplied {
			w.Labels = append(w.Labels, component.NewDamageText(evt.Amount, evt.Position))
		}
	}
}
