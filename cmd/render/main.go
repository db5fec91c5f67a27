package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"sphere-raytracer/internal/batch"
	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/render"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scenes := flag.String("scene", "", "Comma-separated scene JSON files (default: built-in scene)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	supersample := flag.Int("supersample", 0, "Render at N times the size and downsample (default: 1)")
	formats := flag.String("formats", "", "Comma-separated output formats: ppm,png,webp,tga,bmp,tiff (default: ppm)")
	dof := flag.String("dof", "", "Depth-of-field pass: on or off (default: on)")
	sheet := flag.Bool("sheet", false, "Also write a contact sheet of the depth-of-field passes")
	fast := flag.Bool("fast-reflections", false, "Trace each reflected ray once instead of four times")
	workers := flag.Int("workers", 0, "Row worker goroutines per render (default: NumCPU)")
	jobs := flag.Int("jobs", 0, "Scenes rendered concurrently (default: 1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	var sceneList []string
	for _, s := range strings.Split(*scenes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sceneList = append(sceneList, s)
		}
	}
	if *dof != "" && *dof != "on" && *dof != "off" {
		fmt.Fprintf(os.Stderr, "Error: -dof must be on or off, got %q\n", *dof)
		os.Exit(2)
	}
	cfg.Resolve(config.Flags{
		Scenes:       sceneList,
		OutputDir:    *outputDir,
		Width:        *width,
		Height:       *height,
		Supersample:  *supersample,
		Formats:      *formats,
		DepthOfField: *dof,
		ContactSheet: *sheet,
		Fast:         *fast,
		Workers:      *workers,
		Jobs:         *jobs,
	})

	outFormats, err := cfg.OutputFormats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jobList, err := batch.LoadJobs(cfg.Scenes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenes: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Print summary
	fmt.Printf("Sphere ray tracer → %s\n", strings.Join(cfg.Formats, ", "))
	fmt.Printf("Scenes: %d, Jobs: %d, Workers: %d, Supersample: %d, Depth of field: %t\n",
		len(jobList), cfg.Jobs, cfg.Workers, cfg.Supersample, *cfg.DepthOfField)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:    cfg.OutputDir,
		Formats:      outFormats,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Supersample:  cfg.Supersample,
		DepthOfField: *cfg.DepthOfField,
		ContactSheet: cfg.ContactSheet,
		Engine: render.Options{
			Workers:               cfg.Workers,
			SingleReflectionTrace: cfg.SingleReflectionTrace,
		},
		Jobs: cfg.Jobs,
	}

	results := batch.Run(ctx, batchCfg, jobList)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %dx%d in %.1fs\n", r.Name, r.Width, r.Height, r.Duration.Seconds())
		} else {
			failed++
			fmt.Printf("  %s: FAILED: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(jobList))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
