package aeno

import "math"

const (
	// MaxDepth is the deepest recursion level that is still shaded.
	MaxDepth = 4
	// FarDistance is the cutoff past which a hit counts as a miss.
	FarDistance = 1000.0
	// ParallelEpsilon is the smallest |dir.Y| tested against the floor.
	ParallelEpsilon = 1e-3
	// SurfaceOffset keeps secondary rays from hitting their own surface.
	SurfaceOffset = 1e-3
)

// Scene struct to store all data for a scene. It is read only while rendering.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
	Floor   *Floor // nil for no floor
}

// NewScene returns a new scene
func NewScene(spheres []Sphere, lights []Light, floor *Floor) *Scene {
	return &Scene{spheres, lights, floor}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(sp Sphere) {
	s.Spheres = append(s.Spheres, sp)
}

// AddLight adds a light to the scene
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Intersect finds the nearest surface along the ray orig + dir*t by scanning
// every sphere and then the floor.
func (s *Scene) Intersect(orig, dir Vector) Hit {
	hit := Hit{Material: DefaultMaterial}
	dist := math.MaxFloat64
	for _, sp := range s.Spheres {
		ok, t := sp.RayIntersect(orig, dir)
		if !ok || t >= dist {
			continue
		}
		dist = t
		hit.Point = orig.Add(dir.MulScalar(t))
		hit.Normal = sp.Normal(hit.Point)
		hit.Material = sp.Material
	}

	floorDist := math.MaxFloat64
	if s.Floor != nil {
		if ok, d, p := s.Floor.Intersect(orig, dir); ok && d < dist {
			floorDist = d
			hit.Point = p
			hit.Normal = floorNormal
			hit.Material = s.Floor.Material(p)
		}
	}

	hit.OK = math.Min(dist, floorDist) < FarDistance
	return hit
}
