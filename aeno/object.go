package aeno

import "math"

// Sphere is the only primitive a scene is built from. It owns its material by
// value.
type Sphere struct {
	Center   Vector
	Radius   float64
	Material Material
}

// NewSphere returns a sphere
func NewSphere(center Vector, radius float64, material Material) Sphere {
	return Sphere{center, radius, material}
}

// RayIntersect reports whether the ray orig + dir*t hits the sphere in front
// of orig and at which distance t. dir must be unit length.
func (s Sphere) RayIntersect(orig, dir Vector) (bool, float64) {
	l := s.Center.Sub(orig)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return false, 0
	}
	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 < 0 {
		t0 = t1
	}
	if t0 < 0 {
		return false, 0
	}
	return true, t0
}

// Normal returns the outward unit normal at point p on the surface.
func (s Sphere) Normal(p Vector) Vector {
	return p.Sub(s.Center).Normalize()
}
