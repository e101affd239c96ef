package main

import (
	"fmt"
	"io"
	"math"

	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/ecs"
)

const headlessDelta = 1.0 / 60

type summary struct {
	Frames   int
	Seconds  float64
	Fired    int
	Retired  int
	Hits     int
	Damage   int
	Defeated int
	Spawned  int
	Dropped  int
	Claimed  int
	Alive    int
	Jewels   int
}

// runHeadless drives the world with a player that turns toward the nearest
// enemy, walks to dropped jewels and holds the trigger.
func runHeadless(w *ecs.World, frames int, dt float64) summary {
	var s summary
	for i := 0; i < frames; i++ {
		autopilot(w, dt)
		w.Update(dt)
		for _, evt := range w.Events().Items() {
			switch evt.Type {
			case ecs.EventProjectileFired:
				s.Fired++
			case ecs.EventProjectileRetired:
				s.Retired++
			case ecs.EventDamageApplied:
				s.Hits++
				s.Damage += evt.Amount
			case ecs.EventTargetDefeated:
				s.Defeated++
			case ecs.EventTargetSpawned:
				s.Spawned++
			case ecs.EventRewardDropped:
				s.Dropped++
			case ecs.EventRewardClaimed:
				s.Claimed++
			}
		}
	}
	s.Frames = frames
	s.Seconds = w.Elapsed()
	s.Alive = w.Targets.Len()
	s.Jewels = w.Inventory.Jewels
	return s
}

func autopilot(w *ecs.World, dt float64) {
	p := w.Player
	p.Trigger = false

	var nearest *component.Target
	best := math.Inf(1)
	for _, t := range w.Targets.Targets() {
		d := t.Position.Sub(p.Position)
		d.Y = 0
		if l := d.Len(); l < best {
			best, nearest = l, t
		}
	}
	if nearest != nil {
		to := nearest.Position.Sub(p.Position)
		p.Yaw = math.Atan2(-to.X, -to.Z)
		p.Trigger = best < w.Projectiles.Config.MaxDistance
	}

	if jewels := w.Collectibles.All(); len(jewels) > 0 && !w.Inventory.Full() {
		to := jewels[0].Position.Sub(p.Position)
		to.Y = 0
		if l := to.Len(); l > 0 {
			step := math.Min(playerSpeed*dt, l)
			p.Position = p.Position.Add(to.Scale(step / l))
		}
	}
}

func (s summary) print(out io.Writer) {
	fmt.Fprintf(out, "frames:    %d (%.1fs)\n", s.Frames, s.Seconds)
	fmt.Fprintf(out, "shots:     %d fired, %d retired\n", s.Fired, s.Retired)
	fmt.Fprintf(out, "hits:      %d (%d damage)\n", s.Hits, s.Damage)
	fmt.Fprintf(out, "enemies:   %d spawned, %d defeated, %d alive\n", s.Spawned, s.Defeated, s.Alive)
	fmt.Fprintf(out, "jewels:    %d dropped, %d claimed, %d held\n", s.Dropped, s.Claimed, s.Jewels)
}
