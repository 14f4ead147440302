package aeno

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a pinhole camera. With the default orientation it sits at the
// origin looking down -Z with +Y up.
type Camera struct {
	Eye    Vector
	Fov    float64    // field of view in radians
	Matrix mgl64.Mat4 // camera to world
}

// NewCamera returns the default camera with the given field of view.
func NewCamera(fov float64) Camera {
	return Camera{Fov: fov, Matrix: mgl64.Ident4()}
}

// LookAt returns a camera at eye looking toward center.
func LookAt(eye, center, up Vector, fov float64) Camera {
	view := mgl64.LookAtV(vec3(eye), vec3(center), vec3(up))
	return Camera{Eye: eye, Fov: fov, Matrix: view.Inv()}
}

func vec3(v Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Direction returns the unit direction of the primary ray through the center
// of pixel (x, y) of a width x height raster. Row 0 is the top.
func (c Camera) Direction(x, y, width, height int) Vector {
	w := float64(width)
	h := float64(height)
	t := math.Tan(c.Fov / 2)
	vx := (2*(float64(x)+0.5)/w - 1) * t * w / h
	vy := -(2*(float64(y)+0.5)/h - 1) * t
	d := V(vx, vy, -1).Normalize()
	if c.Matrix == mgl64.Ident4() {
		return d
	}
	r := c.Matrix.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return V(r[0], r[1], r[2]).Normalize()
}
