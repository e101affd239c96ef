package prefabs

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// TuningFile is the name of the simulation tuning document.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning is every adjustable simulation constant.
type Tuning struct {
	Projectile ProjectileTuning `yaml:"projectile"`
	Combat     CombatTuning     `yaml:"combat"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Reward     RewardTuning     `yaml:"reward"`
	Inventory  InventoryTuning  `yaml:"inventory"`
	Weapon     WeaponTuning     `yaml:"weapon"`
}

type ProjectileTuning struct {
	Speed          float64 `yaml:"speed"`
	MaxDistance    float64 `yaml:"max_distance"`
	MaxBounces     int     `yaml:"max_bounces"`
	Size           float64 `yaml:"size"`
	Gravity        float64 `yaml:"gravity"`
	Floor          float64 `yaml:"floor"`
	BounceFactor   float64 `yaml:"bounce_factor"`
	GroundFriction float64 `yaml:"ground_friction"`
}

type CombatTuning struct {
	// CheckIntervalMS spaces collision passes; zero checks every frame.
	CheckIntervalMS int     `yaml:"check_interval_ms"`
	CollisionTest   string  `yaml:"collision_test"`
	// CollisionRadius overrides the sphere threshold; zero uses
	// projectile.size + 1.
	CollisionRadius float64 `yaml:"collision_radius"`
}

type EnemyTuning struct {
	MaxHealth     int     `yaml:"max_health"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpawnRadius   float64 `yaml:"spawn_radius"`
	SpawnHeight   float64 `yaml:"spawn_height"`
	MaxAlive      int     `yaml:"max_alive"`
}

type RewardTuning struct {
	DropChance     float64 `yaml:"drop_chance"`
	PickupDistance float64 `yaml:"pickup_distance"`
	// Script names an optional drop rule under scripts/.
	Script string `yaml:"script"`
}

type InventoryTuning struct {
	MaxStack int `yaml:"max_stack"`
}

type WeaponTuning struct {
	Name         string  `yaml:"name"`
	Cooldown     float64 `yaml:"cooldown"`
	Damage       int     `yaml:"damage"`
	Count        int     `yaml:"count"`
	SpreadDeg    float64 `yaml:"spread_deg"`
	Lift         float64 `yaml:"lift"`
	MuzzleHeight float64 `yaml:"muzzle_height"`
}

// Spread returns the fan angle in radians.
func (w WeaponTuning) Spread() float64 {
	return w.SpreadDeg * math.Pi / 180
}

// DefaultTuning mirrors the embedded tuning.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		Projectile: ProjectileTuning{
			Speed:          15,
			MaxDistance:    10,
			MaxBounces:     5,
			Size:           0.2,
			Gravity:        -25,
			Floor:          0.2,
			BounceFactor:   0.5,
			GroundFriction: 0.9,
		},
		Combat: CombatTuning{
			CheckIntervalMS: 0,
			CollisionTest:   "sphere",
			CollisionRadius: 0,
		},
		Enemy: EnemyTuning{
			MaxHealth:     100,
			Speed:         1,
			SpawnInterval: 3,
			SpawnRadius:   25,
			SpawnHeight:   1,
			MaxAlive:      0,
		},
		Reward: RewardTuning{
			DropChance:     0.3,
			PickupDistance: 2,
		},
		Inventory: InventoryTuning{MaxStack: 20},
		Weapon: WeaponTuning{
			Name:         "Default Blaster",
			Cooldown:     1,
			Damage:       10,
			Count:        3,
			SpreadDeg:    30,
			Lift:         0.05,
			MuzzleHeight: 0.2,
		},
	}
}

// LoadTuning reads tuning.yaml, disk copy first, over DefaultTuning so
// omitted keys keep their defaults.
func LoadTuning() (Tuning, error) {
	return LoadTuningFile(TuningFile)
}

func LoadTuningFile(filename string) (Tuning, error) {
	data, err := Load(filename)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes a tuning document over DefaultTuning and validates it.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}
	check(t.Projectile.Speed > 0, "projectile.speed %v must be positive", t.Projectile.Speed)
	check(t.Projectile.MaxDistance > 0, "projectile.max_distance %v must be positive", t.Projectile.MaxDistance)
	check(t.Projectile.MaxBounces > 0, "projectile.max_bounces %d must be positive", t.Projectile.MaxBounces)
	check(t.Projectile.Size >= 0, "projectile.size %v is negative", t.Projectile.Size)
	check(t.Projectile.BounceFactor >= 0 && t.Projectile.BounceFactor <= 1, "projectile.bounce_factor %v outside [0, 1]", t.Projectile.BounceFactor)
	check(t.Combat.CheckIntervalMS >= 0, "combat.check_interval_ms %d is negative", t.Combat.CheckIntervalMS)
	check(t.Combat.CollisionRadius >= 0, "combat.collision_radius %v is negative", t.Combat.CollisionRadius)
	check(t.Enemy.MaxHealth > 0, "enemy.max_health %d must be positive", t.Enemy.MaxHealth)
	check(t.Reward.DropChance >= 0 && t.Reward.DropChance <= 1, "reward.drop_chance %v outside [0, 1]", t.Reward.DropChance)
	check(t.Reward.PickupDistance >= 0, "reward.pickup_distance %v is negative", t.Reward.PickupDistance)
	check(t.Inventory.MaxStack > 0, "inventory.max_stack %d must be positive", t.Inventory.MaxStack)
	check(t.Weapon.Damage > 0, "weapon.damage %d must be positive", t.Weapon.Damage)
	check(t.Weapon.Count >= 0, "weapon.count %d is negative", t.Weapon.Count)
	return errors.Join(errs...)
}
