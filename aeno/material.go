package aeno

import "fmt"

// Albedo weights the four light contributions of a surface. The weights need
// not sum to one.
type Albedo struct {
	Diffuse, Specular, Reflect, Refract float64
}

// At returns weight i in diffuse, specular, reflect, refract order.
func (a Albedo) At(i int) float64 {
	switch i {
	case 0:
		return a.Diffuse
	case 1:
		return a.Specular
	case 2:
		return a.Reflect
	case 3:
		return a.Refract
	}
	panic(fmt.Sprintf("aeno: albedo index %d out of range", i))
}

// Material describes how a surface responds to light. It is a value: "changing"
// a material means building a new one.
type Material struct {
	RefractiveIndex  float64
	Albedo           Albedo
	DiffuseColor     Vector
	SpecularExponent float64
}

func NewMaterial(refractiveIndex float64, albedo Albedo, diffuse Vector, specularExponent float64) Material {
	return Material{refractiveIndex, albedo, diffuse, specularExponent}
}

// DefaultMaterial is purely diffuse and black. The checkerboard floor is
// shaded with a copy of it.
var DefaultMaterial = NewMaterial(1, Albedo{1, 0, 0, 0}, Vector{}, 0)

// WithDiffuse returns a copy of m with a different diffuse color.
func (m Material) WithDiffuse(c Vector) Material {
	m.DiffuseColor = c
	return m
}

var (
	Ivory     = NewMaterial(1.0, Albedo{0.6, 0.3, 0.1, 0.0}, V(0.4, 0.4, 0.3), 50)
	Glass     = NewMaterial(1.5, Albedo{0.0, 0.5, 0.1, 0.8}, V(0.6, 0.7, 0.8), 125)
	RedRubber = NewMaterial(1.0, Albedo{0.9, 0.1, 0.0, 0.0}, V(0.3, 0.1, 0.1), 10)
	Mirror    = NewMaterial(1.0, Albedo{0.0, 10.0, 0.8, 0.0}, V(1.0, 1.0, 1.0), 1425)
)
