package ecs

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/jewelwood/common"
	"github.com/milk9111/jewelwood/component"
)

func TestProjectilePoolFireRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name    string
		dir     common.Vec3
		damage  int
		wantErr error
	}{
		{"zero_direction", common.Vec3{}, 10, ErrZeroDirection},
		{"zero_damage", common.V3(1, 0, 0), 0, ErrNonPositiveDamage},
		{"negative_damage", common.V3(1, 0, 0), -3, ErrNonPositiveDamage},
		{"infinite_direction", common.V3(math.Inf(1), 0, 0), 10, ErrInvalidDirection},
		{"nan_direction", common.V3(math.NaN(), 1, 0), 10, ErrInvalidDirection},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := NewProjectilePool(DefaultPoolConfig())
			_, _ = pool.Fire(common.Vec3{}, common.V3(0, 0, -1), 1)
			before := pool.Len()

			id, err := pool.Fire(common.V3(0, 1, 0), c.dir, c.damage)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.wantErr), "got %v", err)
			assert.Empty(t, id)
			assert.Equal(t, before, pool.Len())
		})
	}
}

func TestProjectilePoolFireNormalizesDirection(t *testing.T) {
	pool := NewProjectilePool(DefaultPoolConfig())
	id, err := pool.Fire(common.V3(0, 1, 0), common.V3(0, 0, -4), 10)
	require.NoError(t, err)

	p, ok := pool.Get(id)
	require.True(t, ok)
	assert.InDelta(t, component.ProjectileSpeed, p.Velocity.Len(), 1e-9)
	assert.InDelta(t, -component.ProjectileSpeed, p.Velocity.Z, 1e-9)
	assert.Equal(t, 10, p.Damage)
	assert.Equal(t, component.ProjectileMaxDistance, p.MaxDistance)
}

func TestProjectilePoolFireExtremeDirections(t *testing.T) {
	cases := []struct {
		name string
		dir  common.Vec3
		want common.Vec3
	}{
		{"huge", common.V3(1e200, 1e200, 0), common.V3(math.Sqrt2/2, math.Sqrt2/2, 0)},
		{"tiny", common.V3(1e-200, 0, 0), common.V3(1, 0, 0)},
		{"subnormal", common.V3(0, 0, -5e-324), common.V3(0, 0, -1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := NewProjectilePool(DefaultPoolConfig())
			id, err := pool.Fire(common.Vec3{}, c.dir, 10)
			require.NoError(t, err)
			require.Equal(t, 1, pool.Len())

			p, ok := pool.Get(id)
			require.True(t, ok)
			want := c.want.Scale(component.ProjectileSpeed)
			assert.InDelta(t, want.X, p.Velocity.X, 1e-9)
			assert.InDelta(t, want.Y, p.Velocity.Y, 1e-9)
			assert.InDelta(t, want.Z, p.Velocity.Z, 1e-9)
		})
	}
}

func TestProjectilePoolIDsAreUnique(t *testing.T) {
	pool := NewProjectilePool(DefaultPoolConfig())
	seen := make(map[component.ProjectileID]bool)
	for i := 0; i < 50; i++ {
		id, err := pool.Fire(common.Vec3{}, common.V3(1, 0, 0), 1)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestProjectilePoolBounceDecayRetiresAfterCollisionTick(t *testing.T) {
	cfg := DefaultPoolConfig()
	cfg.MaxDistance = 1e6
	pool := NewProjectilePool(cfg)
	id, err := pool.Fire(common.V3(0, cfg.Ballistics.Floor, 0), common.V3(0, -1, 0), 1)
	require.NoError(t, err)

	const dt = 1.0 / 60
	var retiredTick int
	for tick := 1; tick <= 5000; tick++ {
		pool.Advance(dt)
		p, ok := pool.Get(id)
		require.True(t, ok)
		if p.Retired {
			retiredTick = tick
			assert.Equal(t, cfg.MaxBounces, p.Bounces)
			// Still in the pool, so the collision pass of this tick sees it.
			assert.Contains(t, pool.Projectiles(), p)
			break
		}
		assert.Less(t, p.Bounces, cfg.MaxBounces)
		assert.Empty(t, pool.Sweep())
	}
	require.Positive(t, retiredTick)

	assert.Equal(t, []component.ProjectileID{id}, pool.Sweep())
	_, ok := pool.Get(id)
	assert.False(t, ok)
	assert.Zero(t, pool.Len())
}

func TestProjectilePoolSweepKeepsFiringOrder(t *testing.T) {
	pool := NewProjectilePool(DefaultPoolConfig())
	var ids []component.ProjectileID
	for i := 0; i < 4; i++ {
		id, err := pool.Fire(common.V3(0, 5, 0), common.V3(1, 0, 0), 1)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	pool.Projectiles()[0].Retired = true
	pool.Projectiles()[2].Retired = true

	assert.Equal(t, []component.ProjectileID{ids[0], ids[2]}, pool.Sweep())
	require.Equal(t, 2, pool.Len())
	assert.Equal(t, ids[1], pool.Projectiles()[0].ID)
	assert.Equal(t, ids[3], pool.Projectiles()[1].ID)
}

func TestProjectilePoolAdvanceIgnoresNonPositiveDt(t *testing.T) {
	pool := NewProjectilePool(DefaultPoolConfig())
	id, err := pool.Fire(common.V3(0, 5, 0), common.V3(1, 0, 0), 1)
	require.NoError(t, err)

	assert.Zero(t, pool.Advance(0))
	assert.Zero(t, pool.Advance(-1))
	p, _ := pool.Get(id)
	assert.Equal(t, common.V3(0, 5, 0), p.Position)
}
