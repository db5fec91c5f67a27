package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-raytracer/internal/imageio"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/render"
	"sphere-raytracer/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir    string
	Formats      []imageio.Format
	Width        int // 0 keeps the scene's width
	Height       int // 0 keeps the scene's height
	Supersample  int
	DepthOfField bool
	ContactSheet bool
	Engine       render.Options
	Jobs         int       // scenes rendered concurrently
	Progress     io.Writer // defaults to stdout
}

// Job is one scene to render.
type Job struct {
	Name   string
	Source string // scene file, empty for built-in scenes
	Scene  *scene.Scene
}

// Result holds the outcome of processing one job.
type Result struct {
	Name     string
	Source   string
	Width    int
	Height   int
	Outputs  []string
	Success  bool
	Error    string
	Duration time.Duration
}

// Output image names inside each job directory.
const (
	NoFocusName = "no_focus"
	FocusName   = "focus"
	SheetName   = "sheet.png"
)

// Run processes all jobs using a worker pool.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	progress := cfg.Progress
	if progress == nil {
		progress = os.Stdout
	}
	workers := cfg.Jobs
	if workers <= 0 {
		workers = 1
	}
	engine := render.New(cfg.Engine)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				elapsed := time.Since(start).Seconds()
				fmt.Fprintf(progress, "  [%d/%d] %.1fs elapsed\n", p, total, elapsed)
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(ctx, engine, cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(ctx context.Context, engine *render.Engine, cfg Config, job Job) Result {
	start := time.Now()
	res := Result{Name: job.Name, Source: job.Source}
	fail := func(err error) Result {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	sc := job.Scene
	width, height := sc.Width, sc.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}
	res.Width, res.Height = width, height

	ss := max(cfg.Supersample, 1)
	sc = sc.WithSize(width*ss, height*ss)
	shrink := func(b *raster.Buffer) *raster.Buffer {
		return postprocess.Downsample(b, width, height)
	}

	dir := filepath.Join(cfg.OutputDir, job.Name)

	img, err := engine.Render(ctx, sc)
	if err != nil {
		return fail(err)
	}
	outs, err := saveAll(dir, NoFocusName, cfg.Formats, shrink(img))
	res.Outputs = append(res.Outputs, outs...)
	if err != nil {
		return fail(err)
	}

	if cfg.DepthOfField {
		dof, err := engine.RenderDepthOfField(ctx, sc)
		if err != nil {
			return fail(err)
		}
		outs, err := saveAll(dir, FocusName, cfg.Formats, shrink(dof.Final))
		res.Outputs = append(res.Outputs, outs...)
		if err != nil {
			return fail(err)
		}

		if cfg.ContactSheet {
			tiles := make([]postprocess.Tile, 0, len(dof.Passes)+2)
			tiles = append(tiles, postprocess.Tile{Label: NoFocusName, Image: shrink(img).ToNRGBA()})
			for k, p := range dof.Passes {
				tiles = append(tiles, postprocess.Tile{Label: fmt.Sprintf("pass %d", k), Image: shrink(p).ToNRGBA()})
			}
			tiles = append(tiles, postprocess.Tile{Label: FocusName, Image: shrink(dof.Final).ToNRGBA()})

			sheetPath := filepath.Join(dir, SheetName)
			if err := imageio.Save(sheetPath, raster.FromImage(postprocess.ContactSheet(tiles))); err != nil {
				return fail(err)
			}
			res.Outputs = append(res.Outputs, sheetPath)
		}
	}

	res.Success = true
	res.Duration = time.Since(start)
	return res
}

// saveAll writes buf once per format as dir/name.<ext>.
func saveAll(dir, name string, formats []imageio.Format, buf *raster.Buffer) ([]string, error) {
	var written []string
	for _, f := range formats {
		path := filepath.Join(dir, name+f.Ext())
		if err := imageio.Save(path, buf); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
