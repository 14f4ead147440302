package aeno

// Hit represents information about a ray's intersection with a surface.
// It is built fresh for every query and never stored.
type Hit struct {
	OK       bool     // Whether any surface was hit
	Point    Vector   // The point of intersection in 3D space
	Normal   Vector   // The unit normal at the intersection point
	Material Material // Copy of the material at the intersection point
}

// offset moves p off the surface along n, toward the side dir heads, so a ray
// leaving p does not hit the surface it starts on.
func (h Hit) offset(dir Vector) Vector {
	if dir.Dot(h.Normal) < 0 {
		return h.Point.Sub(h.Normal.MulScalar(SurfaceOffset))
	}
	return h.Point.Add(h.Normal.MulScalar(SurfaceOffset))
}
