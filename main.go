package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/netisu/melody/aeno"
)

// --- Constants ---
const (
	RenderTimeout = 20 * time.Second
	UploadTimeout = 10 * time.Second
	ThumbSize     = 256
	MaxPixels     = 4096 * 4096
)

// renderJob is one command line render.
type renderJob struct {
	ScenePath string
	Out       string
	Thumb     string
	ThumbSize uint
	Width     int
	Height    int
	Fov       float64 // degrees, 0 keeps the scene's
	Workers   int
}

// setup loads the scene and applies the command line overrides.
func (j renderJob) setup() (*aeno.Setup, error) {
	setup := aeno.StandardSetup()
	if j.ScenePath != "" {
		var err error
		if setup, err = aeno.LoadScene(j.ScenePath); err != nil {
			return nil, err
		}
	}
	if j.Width > 0 {
		setup.Width = j.Width
	}
	if j.Height > 0 {
		setup.Height = j.Height
	}
	if j.Fov != 0 {
		if j.Fov < 0 || j.Fov >= 180 {
			return nil, fmt.Errorf("%w: fov %v out of range", aeno.ErrInvalidScene, j.Fov)
		}
		setup.Camera.Fov = j.Fov * math.Pi / 180
	}
	return setup, nil
}

func runJob(ctx context.Context, j renderJob) error {
	setup, err := j.setup()
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	start := time.Now()
	frame, err := aeno.Render(ctx, setup.Scene, setup.Camera, aeno.RenderOptions{
		Width:   setup.Width,
		Height:  setup.Height,
		Workers: j.Workers,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("Rendered %dx%d in %v", setup.Width, setup.Height, time.Since(start))

	if err := aeno.Save(frame, j.Out); err != nil {
		return err
	}
	log.Printf("Saved %s", j.Out)

	if j.Thumb != "" {
		if err := aeno.SaveThumbnail(frame, j.Thumb, j.ThumbSize); err != nil {
			return err
		}
		log.Printf("Saved %s", j.Thumb)
	}
	return nil
}

func main() {
	var j renderJob
	flag.StringVar(&j.ScenePath, "scene", "", "JSON scene file (default: built-in standard scene)")
	flag.StringVar(&j.Out, "out", "out.ppm", "output image: .ppm, .png, .jpg, .gif, .tif or .bmp")
	flag.StringVar(&j.Thumb, "thumb", "", "also write a thumbnail to this path")
	flag.UintVar(&j.ThumbSize, "thumb-size", ThumbSize, "thumbnail bounding box in pixels")
	flag.IntVar(&j.Width, "width", 0, "override image width")
	flag.IntVar(&j.Height, "height", 0, "override image height")
	flag.Float64Var(&j.Fov, "fov", 0, "override field of view in degrees")
	flag.IntVar(&j.Workers, "workers", 0, "render goroutines (0 = one per CPU)")
	serve := flag.Bool("serve", false, "run the HTTP render service instead")
	flag.Parse()

	cfg := loadConfig()
	log.Printf("%s starting", aeno.Version())

	if *serve {
		runServer(cfg)
		return
	}

	if j.Workers == 0 {
		j.Workers = cfg.Workers
	}
	if err := runJob(context.Background(), j); err != nil {
		log.Printf("Render failed: %v", err)
		os.Exit(1)
	}
}
