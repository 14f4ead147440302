package aeno

import (
	"fmt"
	"math"

	"github.com/fogleman/fauxgl"
)

// Vector is a 3 component value used for points, directions and colors.
// All operations return a new Vector. Normalize of the zero vector yields NaN
// components; callers must not normalize it.
type Vector = fauxgl.Vector

// V returns a vector
func V(x, y, z float64) Vector {
	return fauxgl.V(x, y, z)
}

// Axis returns the component of a for axis 0, 1 or 2. Any other axis panics.
func Axis(a Vector, i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	}
	panic(fmt.Sprintf("aeno: vector axis %d out of range", i))
}

// WithAxis returns a copy of a with axis i set to v.
func WithAxis(a Vector, i int, v float64) Vector {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		panic(fmt.Sprintf("aeno: vector axis %d out of range", i))
	}
	return a
}

// Refract bends i through a surface with unit normal n separating air from a
// medium of refractive index eta (Snell's law). When i leaves the medium the
// indices are swapped and the normal flipped. ok is false on total internal
// reflection, in which case the zero vector is returned.
func Refract(i, n Vector, eta float64) (Vector, bool) {
	cosi := -fauxgl.Clamp(i.Dot(n), -1, 1)
	etai, etat := 1.0, eta
	nn := n
	if cosi < 0 {
		cosi = -cosi
		etai, etat = etat, etai
		nn = n.Negate()
	}
	r := etai / etat
	k := 1 - r*r*(1-cosi*cosi)
	if k < 0 {
		return Vector{}, false
	}
	return i.MulScalar(r).Add(nn.MulScalar(r*cosi - math.Sqrt(k))), true
}
