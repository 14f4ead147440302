// Package aeno renders spheres, point lights and a checkerboard floor with a
// recursive Whitted-style ray tracer.
package aeno

const (
	ver = "b.1"
)

// Version identifies the renderer in logs.
func Version() string {
	return "Aeno " + ver
}
