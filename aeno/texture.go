package aeno

import "math"

var (
	CheckerEven  = V(1, 0.7, 0.3)
	CheckerOdd   = V(1, 1, 1)
	CheckerScale = 0.3
)

// Texture returns a diffuse color for a point on a surface.
type Texture interface {
	Sample(p Vector) Vector
}

// Checkerboard is a procedural texture of 2x2 unit squares in the XZ plane.
type Checkerboard struct {
	Even, Odd Vector
	Scale     float64
}

// NewCheckerboard returns the orange and white board used by the standard floor.
func NewCheckerboard() Checkerboard {
	return Checkerboard{CheckerEven, CheckerOdd, CheckerScale}
}

// Sample picks the square color by the parity of the cell indices of p.
func (c Checkerboard) Sample(p Vector) Vector {
	i := int(math.Floor(p.X*0.5+1000)) + int(math.Floor(p.Z*0.5))
	if i&1 == 0 {
		return c.Even.MulScalar(c.Scale)
	}
	return c.Odd.MulScalar(c.Scale)
}

// Floor is a horizontal textured plane clipped to a rectangle.
type Floor struct {
	Height  float64
	Bounds  ClipRect
	Texture Texture
}

// NewFloor returns the standard floor tile: y = -4, |x| < 10, -30 < z < -10.
func NewFloor() *Floor {
	return &Floor{
		Height:  -4,
		Bounds:  ClipRect{MinX: -10, MaxX: 10, MinZ: -30, MaxZ: -10},
		Texture: NewCheckerboard(),
	}
}

// Normal of the floor, which always faces up.
var floorNormal = V(0, 1, 0)

// Intersect returns the distance along the ray to the floor tile and the hit
// point. Rays within ParallelEpsilon of horizontal never hit.
func (f *Floor) Intersect(orig, dir Vector) (bool, float64, Vector) {
	if math.Abs(dir.Y) <= ParallelEpsilon {
		return false, 0, Vector{}
	}
	d := -(orig.Y - f.Height) / dir.Y
	p := orig.Add(dir.MulScalar(d))
	if d <= 0 || !f.Bounds.Contains(p) {
		return false, 0, Vector{}
	}
	return true, d, p
}

// Material returns the material at floor point p: a copy of DefaultMaterial
// colored by the texture.
func (f *Floor) Material(p Vector) Material {
	return DefaultMaterial.WithDiffuse(f.Texture.Sample(p))
}
