package aeno

import "math"

// Background is the color of rays that escape the scene or go too deep.
var Background = V(0.2, 0.7, 0.8)

// PhongShader computes the color seen along a ray: Phong diffuse and specular
// light with hard shadows, plus recursively traced reflection and refraction.
type PhongShader struct {
	Scene      *Scene
	MaxDepth   int
	Background Vector
}

// NewPhongShader returns a shader for the scene with the default depth limit
// and background.
func NewPhongShader(scene *Scene) *PhongShader {
	return &PhongShader{scene, MaxDepth, Background}
}

// CastRay shades the scene with a default shader.
func CastRay(scene *Scene, orig, dir Vector, depth int) Vector {
	return NewPhongShader(scene).CastRay(orig, dir, depth)
}

// CastRay returns the color arriving at orig from direction dir (unit length).
// Colors are not clamped and may exceed 1.
func (s *PhongShader) CastRay(orig, dir Vector, depth int) Vector {
	if depth > s.MaxDepth {
		return s.Background
	}
	hit := s.Scene.Intersect(orig, dir)
	if !hit.OK {
		return s.Background
	}
	n := hit.Normal
	m := hit.Material
	a := m.Albedo

	var reflectColor, refractColor Vector
	if a.Reflect != 0 {
		reflectDir := dir.Reflect(n).Normalize()
		reflectColor = s.CastRay(hit.offset(reflectDir), reflectDir, depth+1)
	}
	if a.Refract != 0 {
		// total internal reflection leaves no refracted ray to follow
		refractColor = s.Background
		if r, ok := Refract(dir, n, m.RefractiveIndex); ok {
			refractDir := r.Normalize()
			refractColor = s.CastRay(hit.offset(refractDir), refractDir, depth+1)
		}
	}

	var diffuse, specular float64
	for _, l := range s.Scene.Lights {
		toLight := l.Position.Sub(hit.Point)
		lightDir := toLight.Normalize()
		if s.shadowed(hit, lightDir, toLight.Length()) {
			continue
		}
		diffuse += l.Intensity * math.Max(0, n.Dot(lightDir))
		highlight := math.Max(0, lightDir.Negate().Reflect(n).Negate().Dot(dir))
		specular += l.Intensity * math.Pow(highlight, m.SpecularExponent)
	}

	spec := specular * a.Specular
	return m.DiffuseColor.MulScalar(diffuse * a.Diffuse).
		Add(V(spec, spec, spec)).
		Add(reflectColor.MulScalar(a.Reflect)).
		Add(refractColor.MulScalar(a.Refract))
}

// shadowed reports whether something lies between the hit and a light
// lightDist away in direction lightDir.
func (s *PhongShader) shadowed(hit Hit, lightDir Vector, lightDist float64) bool {
	orig := hit.offset(lightDir)
	blocker := s.Scene.Intersect(orig, lightDir)
	return blocker.OK && blocker.Point.Sub(orig).Length() < lightDist
}
