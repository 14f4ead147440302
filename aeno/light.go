package aeno

// Light is a point light
type Light struct {
	Position  Vector
	Intensity float64
}

func NewLight(position Vector, intensity float64) Light {
	return Light{position, intensity}
}
