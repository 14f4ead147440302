package aeno

import (
	"math"
	"testing"
)

func TestIntersectEmptyScene(t *testing.T) {
	hit := (&Scene{}).Intersect(V(0, 0, 0), V(0, 0, -1))
	if hit.OK {
		t.Errorf("empty scene reported a hit: %+v", hit)
	}
}

func TestIntersectPicksNearestSphere(t *testing.T) {
	// overlapping spheres, the far one listed first
	scene := NewScene([]Sphere{
		NewSphere(V(0, 0, -6), 2, RedRubber),
		NewSphere(V(0, 0, -5), 2, Ivory),
	}, nil, nil)

	hit := scene.Intersect(V(0, 0, 0), V(0, 0, -1))
	if !hit.OK {
		t.Fatal("expected a hit")
	}
	if hit.Material != Ivory {
		t.Errorf("material = %+v, want ivory", hit.Material)
	}
	if !near(hit.Point, V(0, 0, -3), 1e-12) {
		t.Errorf("point = %+v, want (0, 0, -3)", hit.Point)
	}
	if !near(hit.Normal, V(0, 0, 1), 1e-12) {
		t.Errorf("normal = %+v, want (0, 0, 1)", hit.Normal)
	}
}

func TestIntersectFarCutoff(t *testing.T) {
	scene := NewScene([]Sphere{NewSphere(V(0, 0, -2000), 1, Ivory)}, nil, nil)
	if hit := scene.Intersect(V(0, 0, 0), V(0, 0, -1)); hit.OK {
		t.Errorf("hit beyond %v reported: %+v", FarDistance, hit)
	}
}

func TestIntersectFloor(t *testing.T) {
	scene := NewScene(nil, nil, NewFloor())
	tests := []struct {
		name    string
		target  Vector
		hit     bool
		diffuse Vector
	}{
		{"odd square", V(1, -4, -21), true, CheckerOdd.MulScalar(CheckerScale)},
		{"even square", V(2.5, -4, -13), true, CheckerEven.MulScalar(CheckerScale)},
		{"in front of tile", V(0, -4, -5), false, Vector{}},
		{"behind tile", V(0, -4, -40), false, Vector{}},
		{"beside tile", V(12, -4, -20), false, Vector{}},
		{"looking up", V(1, 4, -21), false, Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := scene.Intersect(V(0, 0, 0), tt.target.Normalize())
			if hit.OK != tt.hit {
				t.Fatalf("hit = %v, want %v", hit.OK, tt.hit)
			}
			if !tt.hit {
				return
			}
			if !near(hit.Point, tt.target, 1e-9) {
				t.Errorf("point = %+v, want %+v", hit.Point, tt.target)
			}
			if hit.Normal != V(0, 1, 0) {
				t.Errorf("normal = %+v, want (0, 1, 0)", hit.Normal)
			}
			if hit.Material.DiffuseColor != tt.diffuse {
				t.Errorf("diffuse = %+v, want %+v", hit.Material.DiffuseColor, tt.diffuse)
			}
			if hit.Material.Albedo != (Albedo{1, 0, 0, 0}) {
				t.Errorf("floor albedo = %+v, want pure diffuse", hit.Material.Albedo)
			}
		})
	}
}

func TestIntersectFloorSkipsNearParallelRays(t *testing.T) {
	floor := NewFloor()
	orig := V(0, -3.995, -15)

	if ok, _, _ := floor.Intersect(orig, V(1, -0.0009, 0).Normalize()); ok {
		t.Error("near parallel ray hit the floor")
	}
	ok, d, p := floor.Intersect(orig, V(1, -0.002, 0).Normalize())
	if !ok {
		t.Fatal("expected a floor hit")
	}
	if math.Abs(p.Y+4) > 1e-9 || d <= 0 {
		t.Errorf("hit at %+v, d = %v", p, d)
	}
}

func TestIntersectFloorVersusSpheres(t *testing.T) {
	target := V(1, -4, -21)
	dir := target.Normalize()

	below := NewScene([]Sphere{NewSphere(target.MulScalar(2), 1, Ivory)}, nil, NewFloor())
	hit := below.Intersect(V(0, 0, 0), dir)
	if !hit.OK || hit.Normal != V(0, 1, 0) {
		t.Errorf("floor in front of sphere not chosen: %+v", hit)
	}
	if below.Spheres[0].Material != Ivory {
		t.Errorf("floor hit changed the sphere material: %+v", below.Spheres[0].Material)
	}

	above := NewScene([]Sphere{NewSphere(target.MulScalar(0.5), 1, Ivory)}, nil, NewFloor())
	hit = above.Intersect(V(0, 0, 0), dir)
	if !hit.OK || hit.Material != Ivory {
		t.Errorf("sphere in front of floor not chosen: %+v", hit)
	}
}

func TestCheckerboardParity(t *testing.T) {
	c := NewCheckerboard()
	even := CheckerEven.MulScalar(CheckerScale)
	odd := CheckerOdd.MulScalar(CheckerScale)
	tests := []struct {
		p    Vector
		want Vector
	}{
		{V(0.5, -4, -12.5), odd},  // 1000 + -7
		{V(2.5, -4, -12.5), even}, // 1001 + -7
		{V(0.5, -4, -14.5), even}, // 1000 + -8
		{V(-0.5, -4, -14.5), odd}, // 999 + -8
	}
	for _, tt := range tests {
		if got := c.Sample(tt.p); got != tt.want {
			t.Errorf("Sample(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestClipRectIsOpen(t *testing.T) {
	r := NewFloor().Bounds
	for _, p := range []Vector{V(10, 0, -20), V(-10, 0, -20), V(0, 0, -10), V(0, 0, -30)} {
		if r.Contains(p) {
			t.Errorf("edge point %v inside", p)
		}
	}
	if !r.Contains(V(9.99, 0, -29.99)) {
		t.Error("interior point outside")
	}
}

func TestStandardScene(t *testing.T) {
	s := StandardScene()
	if len(s.Spheres) != 4 || len(s.Lights) != 3 || s.Floor == nil {
		t.Errorf("standard scene has %d spheres, %d lights, floor %v", len(s.Spheres), len(s.Lights), s.Floor != nil)
	}
	setup := StandardSetup()
	if setup.Width != 1024 || setup.Height != 768 || setup.Camera.Fov != math.Pi/3 {
		t.Errorf("standard setup %dx%d fov %v", setup.Width, setup.Height, setup.Camera.Fov)
	}
}
