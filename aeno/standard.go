package aeno

// StandardScene returns the classic demo: ivory, glass, red rubber and mirror
// spheres over the checkerboard floor, lit by three lights.
func StandardScene() *Scene {
	return NewScene(
		[]Sphere{
			NewSphere(V(-3, 0, -16), 2, Ivory),
			NewSphere(V(-1, -1.5, -12), 2, Glass),
			NewSphere(V(1.5, -0.5, -18), 3, RedRubber),
			NewSphere(V(7, 5, -18), 4, Mirror),
		},
		[]Light{
			NewLight(V(-20, 20, 20), 1.5),
			NewLight(V(30, 50, -25), 1.8),
			NewLight(V(30, 20, 30), 1.7),
		},
		NewFloor(),
	)
}

// StandardSetup is the standard scene at 1024x768 seen by the default camera.
func StandardSetup() *Setup {
	return &Setup{StandardScene(), NewCamera(DefaultFov), DefaultWidth, DefaultHeight}
}
