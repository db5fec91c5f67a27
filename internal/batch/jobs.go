package batch

import (
	"path/filepath"
	"strings"

	"sphere-raytracer/internal/scene"
)

// DefaultJobName names the job for the built-in scene.
const DefaultJobName = "default"

// LoadJobs loads one job per scene file, named after the file. With no
// paths it returns the built-in scene.
func LoadJobs(paths []string) ([]Job, error) {
	if len(paths) == 0 {
		return []Job{{Name: DefaultJobName, Scene: scene.Default()}}, nil
	}

	jobs := make([]Job, 0, len(paths))
	for _, p := range paths {
		sc, err := scene.Load(p)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		jobs = append(jobs, Job{Name: name, Source: p, Scene: sc})
	}
	return jobs, nil
}
