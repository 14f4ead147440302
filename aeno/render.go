package aeno

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// RenderOptions controls the frame driver.
type RenderOptions struct {
	Width   int
	Height  int
	Workers int // goroutines sharing the rows; <= 0 means one per CPU
}

// Render casts one primary ray per pixel and returns the raw frame. Rows are
// shared between workers; each pixel only depends on the read-only scene, so
// the result does not depend on the worker count. A cancelled ctx stops the
// render between rows and its error is returned. A panic in a worker is
// returned as an error.
func Render(ctx context.Context, scene *Scene, camera Camera, opts RenderOptions) (*Frame, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Width > MaxDimension || opts.Height > MaxDimension {
		return nil, fmt.Errorf("render: invalid size %dx%d", opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Height {
		workers = opts.Height
	}

	frame := NewFrame(opts.Width, opts.Height)
	shader := NewPhongShader(scene)
	rows := make(chan int, opts.Height)
	for y := 0; y < opts.Height; y++ {
		rows <- y
	}
	close(rows)

	// A panicking worker stops the others and fails the render.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		panicOnce sync.Once
		panicErr  error
	)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() {
						panicErr = fmt.Errorf("render: panic in worker: %v", r)
					})
					cancel()
				}
			}()
			for y := range rows {
				if ctx.Err() != nil {
					return
				}
				for x := 0; x < opts.Width; x++ {
					dir := camera.Direction(x, y, opts.Width, opts.Height)
					frame.Set(x, y, shader.CastRay(camera.Eye, dir, 0))
				}
			}
		}()
	}
	wg.Wait()

	if panicErr != nil {
		return nil, panicErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frame, nil
}
