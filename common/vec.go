package common

import "math"

// Vec3 is a 3D vector in world units. Y is up; the ground is the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector along v, or the zero vector if v has no
// length. v is first scaled by its largest component so very large or very
// small vectors keep their direction.
func (v Vec3) Normalize() Vec3 {
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return Vec3{}
	}
	u := Vec3{v.X / m, v.Y / m, v.Z / m}
	return u.Scale(1 / u.Len())
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// RotateY rotates v around the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// SegmentPointDist returns the distance from p to the closest point of the
// segment a-b. A degenerate segment reduces to the point distance.
func SegmentPointDist(a, b, p Vec3) float64 {
	ab := b.Sub(a)
	den := ab.LenSq()
	if den == 0 {
		return Dist(a, p)
	}
	t := ClampFloat(p.Sub(a).Dot(ab)/den, 0, 1)
	return Dist(a.Add(ab.Scale(t)), p)
}
