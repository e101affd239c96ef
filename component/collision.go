package component

import (
	"fmt"
	"math"

	"github.com/milk9111/jewelwood/common"
)

// CollisionRadius is the default projectile/target proximity threshold.
const CollisionRadius = ProjectileSize + 1

// CollisionTest decides whether a projectile touches a target this pass.
type CollisionTest interface {
	// Reach is the largest horizontal distance from the projectile at which
	// the test can succeed. The broad phase pads its query by this much.
	Reach() float64
	Collides(p *Projectile, target common.Vec3) bool
}

// SphereTest compares the projectile's current position to the target
// position.
type SphereTest struct {
	Radius float64
}

func (s SphereTest) Reach() float64 { return s.Radius }

func (s SphereTest) Collides(p *Projectile, target common.Vec3) bool {
	return common.Dist(p.Position, target) < s.Radius
}

// SweptSphereTest measures against the whole segment travelled in the last
// step, so fast projectiles cannot skip over a target between ticks.
type SweptSphereTest struct {
	Radius float64
}

func (s SweptSphereTest) Reach() float64 { return s.Radius }

func (s SweptSphereTest) Collides(p *Projectile, target common.Vec3) bool {
	return common.SegmentPointDist(p.Prev, p.Position, target) < s.Radius
}

// BoxTest overlaps the projectile cube with the target's axis-aligned box.
type BoxTest struct {
	// TargetHalf is half the target box extents.
	TargetHalf common.Vec3
	// ProjectileHalf is half the projectile cube edge.
	ProjectileHalf float64
}

// DefaultBoxTest sizes the boxes after the stock enemy and projectile.
func DefaultBoxTest() BoxTest {
	return BoxTestForSize(ProjectileSize)
}

// BoxTestForSize pairs the stock enemy box with a projectile cube of edge
// 2*size.
func BoxTestForSize(size float64) BoxTest {
	if size <= 0 {
		size = ProjectileSize
	}
	return BoxTest{
		TargetHalf:     common.V3(EnemyWidth/2, EnemyHeight/2, EnemyDepth/2),
		ProjectileHalf: size,
	}
}

// RadiusForSize is the sphere threshold for a projectile of the given size.
func RadiusForSize(size float64) float64 {
	if size <= 0 {
		size = ProjectileSize
	}
	return size + 1
}

func (b BoxTest) Reach() float64 {
	return math.Hypot(b.TargetHalf.X+b.ProjectileHalf, b.TargetHalf.Z+b.ProjectileHalf)
}

func (b BoxTest) Collides(p *Projectile, target common.Vec3) bool {
	d := p.Position.Sub(target)
	return math.Abs(d.X) < b.TargetHalf.X+b.ProjectileHalf &&
		math.Abs(d.Y) < b.TargetHalf.Y+b.ProjectileHalf &&
		math.Abs(d.Z) < b.TargetHalf.Z+b.ProjectileHalf
}

// CollisionTestByName maps a tuning name to a test. A zero radius derives
// the sphere threshold from the projectile size.
func CollisionTestByName(name string, radius, size float64) (CollisionTest, error) {
	if radius <= 0 {
		radius = RadiusForSize(size)
	}
	switch name {
	case "", "sphere":
		return SphereTest{Radius: radius}, nil
	case "swept":
		return SweptSphereTest{Radius: radius}, nil
	case "box":
		return BoxTestForSize(size), nil
	default:
		return nil, fmt.Errorf("component: unknown collision test %q", name)
	}
}
