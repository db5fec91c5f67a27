package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Name    string   `json:"name"`
	Scene   string   `json:"scene,omitempty"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Outputs []string `json:"outputs"`
	Error   string   `json:"error,omitempty"`
	Seconds float64  `json:"seconds"`
}

// WriteManifest writes manifest.json listing every job's outputs relative
// to the directory holding the manifest.
func WriteManifest(path string, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		outputs := make([]string, len(r.Outputs))
		for k, o := range r.Outputs {
			if rel, err := filepath.Rel(base, o); err == nil {
				o = filepath.ToSlash(rel)
			}
			outputs[k] = o
		}
		entries[i] = ManifestEntry{
			Name:    r.Name,
			Scene:   r.Source,
			Width:   r.Width,
			Height:  r.Height,
			Outputs: outputs,
			Error:   r.Error,
			Seconds: r.Duration.Seconds(),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
