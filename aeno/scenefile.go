package aeno

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fogleman/fauxgl"
)

// ErrInvalidScene is wrapped by every scene validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Triple is a JSON vector: [x, y, z], or for colors a hex string such as
// "#ff8800" or "f80".
type Triple Vector

func (t *Triple) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		if !isHex(hex) {
			return fmt.Errorf("%w: bad hex color %q", ErrInvalidScene, hex)
		}
		c := fauxgl.HexColor(hex)
		*t = Triple{c.R, c.G, c.B}
		return nil
	}
	var xs []float64
	if err := json.Unmarshal(data, &xs); err != nil {
		return fmt.Errorf("%w: vector must be [x, y, z] or a hex color", ErrInvalidScene)
	}
	if len(xs) != 3 {
		return fmt.Errorf("%w: vector needs 3 components, got %d", ErrInvalidScene, len(xs))
	}
	*t = Triple{xs[0], xs[1], xs[2]}
	return nil
}

func isHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

type CameraFile struct {
	Eye    Triple `json:"eye"`
	Center Triple `json:"center"`
	Up     Triple `json:"up"`
}

type MaterialFile struct {
	RefractiveIndex  float64    `json:"refractiveIndex"`
	Albedo           [4]float64 `json:"albedo"`
	Diffuse          Triple     `json:"diffuse"`
	SpecularExponent float64    `json:"specularExponent"`
}

type SphereFile struct {
	Center   Triple  `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

type LightFile struct {
	Position  Triple  `json:"position"`
	Intensity float64 `json:"intensity"`
}

// SceneFile is the JSON form of a scene and how to look at it.
type SceneFile struct {
	Width     int                     `json:"width"`
	Height    int                     `json:"height"`
	Fov       float64                 `json:"fov"` // degrees
	Camera    *CameraFile             `json:"camera,omitempty"`
	Floor     *bool                   `json:"floor,omitempty"`
	Materials map[string]MaterialFile `json:"materials,omitempty"`
	Spheres   []SphereFile            `json:"spheres"`
	Lights    []LightFile             `json:"lights"`
}

// Setup is a scene ready to render.
type Setup struct {
	Scene  *Scene
	Camera Camera
	Width  int
	Height int
}

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultFov    = math.Pi / 3
	// MaxDimension bounds each side of a frame.
	MaxDimension = 16384
)

// Materials usable by name in scene files without being declared.
var namedMaterials = map[string]Material{
	"ivory":      Ivory,
	"glass":      Glass,
	"red_rubber": RedRubber,
	"mirror":     Mirror,
}

// Build validates the file and turns it into a Setup. Missing sizes and field
// of view take the defaults; the floor is on unless disabled.
func (sf *SceneFile) Build() (*Setup, error) {
	width, height := sf.Width, sf.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidScene, width, height)
	}
	fov := DefaultFov
	if sf.Fov != 0 {
		if sf.Fov < 0 || sf.Fov >= 180 {
			return nil, fmt.Errorf("%w: fov %v out of range", ErrInvalidScene, sf.Fov)
		}
		fov = sf.Fov * math.Pi / 180
	}

	camera := NewCamera(fov)
	if c := sf.Camera; c != nil {
		// eye on center, or up along the view direction, has no orientation
		if Vector(c.Center).Sub(Vector(c.Eye)).Cross(Vector(c.Up)).Length() < 1e-9 {
			return nil, fmt.Errorf("%w: degenerate camera", ErrInvalidScene)
		}
		camera = LookAt(Vector(c.Eye), Vector(c.Center), Vector(c.Up), fov)
	}

	materials := make(map[string]Material, len(namedMaterials)+len(sf.Materials))
	for name, m := range namedMaterials {
		materials[name] = m
	}
	for name, m := range sf.Materials {
		a := m.Albedo
		materials[name] = NewMaterial(m.RefractiveIndex, Albedo{a[0], a[1], a[2], a[3]}, Vector(m.Diffuse), m.SpecularExponent)
	}

	scene := &Scene{}
	if sf.Floor == nil || *sf.Floor {
		scene.Floor = NewFloor()
	}
	for i, s := range sf.Spheres {
		if s.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d has radius %v", ErrInvalidScene, i, s.Radius)
		}
		m, ok := materials[s.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d uses unknown material %q", ErrInvalidScene, i, s.Material)
		}
		scene.AddSphere(NewSphere(Vector(s.Center), s.Radius, m))
	}
	for _, l := range sf.Lights {
		scene.AddLight(NewLight(Vector(l.Position), l.Intensity))
	}

	return &Setup{scene, camera, width, height}, nil
}

// DecodeScene reads a JSON scene file from r.
func DecodeScene(r io.Reader) (*Setup, error) {
	var sf SceneFile
	if err := json.NewDecoder(r).Decode(&sf); err != nil {
		if errors.Is(err, ErrInvalidScene) {
			return nil, fmt.Errorf("decode scene: %w", err)
		}
		return nil, fmt.Errorf("decode scene: %w: %v", ErrInvalidScene, err)
	}
	return sf.Build()
}

// LoadScene reads a JSON scene file from disk.
func LoadScene(path string) (*Setup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return DecodeScene(f)
}
