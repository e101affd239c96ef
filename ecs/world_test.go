package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
	"github.com/milk9111/jewelwood/prefabs"
)

type sweepSystem struct{}

func (sweepSystem) Update(w *World, dt float64) {
	w.Projectiles.Advance(dt)
	w.SweepProjectiles()
}

type recordingSystem struct {
	dts    []float64
	tuned  int
	tuneFn func(prefabs.Tuning) error
}

func (s *recordingSystem) Update(_ *World, dt float64) { s.dts = append(s.dts, dt) }

func (s *recordingSystem) ApplyTuning(t prefabs.Tuning) error {
	s.tuned++
	if s.tuneFn != nil {
		return s.tuneFn(t)
	}
	return nil
}

func eventTypes(events []Event) []EventType {
	out := make([]EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func TestWorldFireQueuesEventIntoNextFrame(t *testing.T) {
	w := NewWorld()
	id, err := w.Fire(common.V3(0, 1, 0), common.V3(0, 0, -1), 10)
	require.NoError(t, err)
	require.Equal(t, 1, w.Events().Len())

	w.Update(1.0 / 60)
	evts := w.Events().Items()
	require.Len(t, evts, 1)
	assert.Equal(t, EventProjectileFired, evts[0].Type)
	assert.Equal(t, id, evts[0].Projectile)

	w.Update(1.0 / 60)
	assert.Zero(t, w.Events().Len())
}

func TestWorldFireRejectsZeroDirection(t *testing.T) {
	w := NewWorld()
	_, err := w.Fire(common.V3(0, 1, 0), common.Vec3{}, 10)
	assert.ErrorIs(t, err, ErrZeroDirection)
	assert.Zero(t, w.Projectiles.Len())
	assert.Zero(t, w.Events().Len())
}

func TestWorldRetiredReportsLastFrameOnly(t *testing.T) {
	w := NewWorld()
	w.AddSystem(sweepSystem{})
	w.Projectiles.Config.Ballistics.Gravity = 0

	id, err := w.Fire(common.V3(0, 5, 0), common.V3(1, 0, 0), 1)
	require.NoError(t, err)

	retiredAt := 0
	for frame := 1; frame <= 40; frame++ {
		w.Update(0.05)
		if len(w.Retired()) > 0 {
			retiredAt = frame
			break
		}
	}
	require.Equal(t, 14, retiredAt)
	assert.Equal(t, []component.ProjectileID{id}, w.Retired())
	assert.Contains(t, eventTypes(w.Events().Items()), EventProjectileRetired)

	w.Update(0.05)
	assert.Empty(t, w.Retired())
}

func TestWorldCombatEmitterFeedsQueue(t *testing.T) {
	w := NewWorld()
	pos := common.V3(1, 1, 1)
	w.Combat.OnDamageApplied(3, 10, pos)
	w.Combat.OnTargetDefeated(3, pos)

	evts := w.Events().Items()
	require.Len(t, evts, 2)
	assert.Equal(t, Event{Type: EventDamageApplied, Target: 3, Amount: 10, Position: pos}, evts[0])
	assert.Equal(t, Event{Type: EventTargetDefeated, Target: 3, Position: pos}, evts[1])
}

func TestWorldUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	a, b := &recordingSystem{}, &recordingSystem{}
	w.AddSystem(a)
	w.AddSystem(nil)
	w.AddSystem(b)

	w.Update(0.5)
	w.Update(-1)

	assert.Equal(t, []float64{0.5, 0}, a.dts)
	assert.Equal(t, []float64{0.5, 0}, b.dts)
	assert.Equal(t, uint64(2), w.Frame())
	assert.InDelta(t, 0.5, w.Elapsed(), 1e-9)
	assert.Len(t, w.Systems(), 2)
}

func TestWorldApplyTuning(t *testing.T) {
	w := NewWorld()
	sys := &recordingSystem{}
	w.AddSystem(sys)
	w.Inventory.Jewels = 15

	tune := prefabs.DefaultTuning()
	tune.Projectile.Speed = 30
	tune.Projectile.Gravity = -10
	tune.Inventory.MaxStack = 10
	tune.Weapon.Count = 5

	require.NoError(t, w.ApplyTuning(tune))
	assert.Equal(t, 30.0, w.Projectiles.Config.Speed)
	assert.Equal(t, -10.0, w.Projectiles.Config.Ballistics.Gravity)
	assert.Equal(t, 10, w.Inventory.MaxStack)
	assert.Equal(t, 10, w.Inventory.Jewels)
	assert.Equal(t, 5, w.Weapon.Count)
	assert.Equal(t, 1, sys.tuned)
}

func TestWorldApplyTuningErrors(t *testing.T) {
	t.Run("invalid_tuning", func(t *testing.T) {
		w := NewWorld()
		tune := prefabs.DefaultTuning()
		tune.Projectile.Speed = 0
		err := w.ApplyTuning(tune)
		assert.ErrorIs(t, err, prefabs.ErrInvalidTuning)
		assert.Equal(t, component.ProjectileSpeed, w.Projectiles.Config.Speed)
	})

	t.Run("system_error", func(t *testing.T) {
		w := NewWorld()
		boom := errors.New("boom")
		w.AddSystem(&recordingSystem{tuneFn: func(prefabs.Tuning) error { return boom }})
		assert.ErrorIs(t, w.ApplyTuning(prefabs.DefaultTuning()), boom)
	})
}
