package aeno

// ClipRect is an open rectangle in the XZ plane. It trims the infinite floor
// plane down to a finite tile.
type ClipRect struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contains reports whether p lies strictly inside the rectangle. Y is ignored.
func (r ClipRect) Contains(p Vector) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Z > r.MinZ && p.Z < r.MaxZ
}
