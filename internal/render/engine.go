// Package render implements the recursive sphere ray tracer and the
// depth-of-field pass built on top of it.
package render

import (
	"context"
	"runtime"
	"sync"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scene"
)

// Fixed renderer constants.
const (
	// ReflectionDepth is the recursion level at which reflection stops.
	ReflectionDepth = 3
	// MaxDepth is the nominal bounce limit. Trace stops at ReflectionDepth first.
	MaxDepth = 5
	// ReflectionBias lifts reflected ray origins off the surface.
	ReflectionBias = 0.0001
	// SoftReflectionEps perturbs the mirror point for the glossy weights.
	SoftReflectionEps = 0.1
	// SoftReflectionExponent sharpens the glossy cosine weights.
	SoftReflectionExponent = 100
)

// Options controls how a render is executed. None of them change the image.
type Options struct {
	// Workers is the number of goroutines tracing rows (default: NumCPU).
	Workers int

	// SingleReflectionTrace traces a reflected ray once and reuses the
	// result for all four blend terms instead of tracing it four times.
	SingleReflectionTrace bool

	Shading ShadeConfig
}

// Engine traces scenes. It holds no per-render state and is safe for
// concurrent use.
type Engine struct {
	opts Options
}

// New creates an engine. Zero-valued options take their defaults.
func New(opts Options) *Engine {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Shading == (ShadeConfig{}) {
		opts.Shading = DefaultShadeConfig()
	}
	return &Engine{opts: opts}
}

// Render traces one primary ray per pixel from sc.Camera.
func (e *Engine) Render(ctx context.Context, sc *scene.Scene) (*raster.Buffer, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	vp := newViewPlane(sc.Width, sc.Height)
	camera := sc.Camera

	buf := raster.New(sc.Width, sc.Height)
	err := e.forEachRow(ctx, sc.Height, func(j int) {
		y := vp.y(j)
		for i := 0; i < sc.Width; i++ {
			ray := primaryRay(camera, vp.x(i), y)
			buf.Set(i, j, e.Trace(ray, sc, 0))
		}
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// forEachRow runs fn for rows 0..n-1 on the worker pool. Cancellation is
// checked before each row; rows already started run to completion.
func (e *Engine) forEachRow(ctx context.Context, n int, fn func(row int)) error {
	rows := make(chan int, e.opts.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < e.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				if ctx.Err() != nil {
					continue
				}
				fn(j)
			}
		}()
	}

send:
	for j := 0; j < n; j++ {
		select {
		case rows <- j:
		case <-ctx.Done():
			break send
		}
	}
	close(rows)
	wg.Wait()

	return ctx.Err()
}

// FindNearest returns the closest object hit by ray and its distance, or
// (0, nil) when nothing is hit. On exactly equal distances the earlier
// object wins.
func FindNearest(ray geom.Ray, objects []*geom.Sphere) (float64, *geom.Sphere) {
	var nearest *geom.Sphere
	minDist := 0.0
	for _, obj := range objects {
		dist, ok := obj.Intersects(ray)
		if ok && (nearest == nil || dist < minDist) {
			minDist = dist
			nearest = obj
		}
	}
	return minDist, nearest
}
