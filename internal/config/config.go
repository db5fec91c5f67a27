package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"sphere-raytracer/internal/imageio"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string   `json:"base_dir"`
	Scenes    []string `json:"scenes"`
	OutputDir string   `json:"output_dir"`

	// Render settings
	Width                 int      `json:"width"`
	Height                int      `json:"height"`
	Supersample           int      `json:"supersample"`
	Formats               []string `json:"formats"`
	DepthOfField          *bool    `json:"depth_of_field"`
	ContactSheet          bool     `json:"contact_sheet"`
	SingleReflectionTrace bool     `json:"single_reflection_trace"`
	Workers               int      `json:"workers"`
	Jobs                  int      `json:"jobs"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scenes       []string
	OutputDir    string
	Width        int
	Height       int
	Supersample  int
	Formats      string // comma separated
	DepthOfField string // "", "on" or "off"
	ContactSheet bool
	Fast         bool
	Workers      int
	Jobs         int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Formats != "" {
		c.Formats = splitList(flags.Formats)
	}
	switch flags.DepthOfField {
	case "on":
		c.DepthOfField = boolPtr(true)
	case "off":
		c.DepthOfField = boolPtr(false)
	}
	if flags.ContactSheet {
		c.ContactSheet = true
	}
	if flags.Fast {
		c.SingleReflectionTrace = true
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Jobs > 0 {
		c.Jobs = flags.Jobs
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		for i, s := range c.Scenes {
			if !filepath.IsAbs(s) {
				c.Scenes[i] = filepath.Join(c.BaseDir, s)
			}
		}
		if c.OutputDir != "" && !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
	}

	// Defaults for render settings
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "renders")
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{string(imageio.PPM)}
	}
	if c.DepthOfField == nil {
		c.DepthOfField = boolPtr(true)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
}

// OutputFormats parses Formats.
func (c *Config) OutputFormats() ([]imageio.Format, error) {
	out := make([]imageio.Format, 0, len(c.Formats))
	for _, s := range c.Formats {
		f, err := imageio.ParseFormat(s)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, f)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
