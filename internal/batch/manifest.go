package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one object in the output manifest.
type ManifestEntry struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	Position   [3]float64  `json:"position,omitempty"`
	Rotation   float64     `json:"rotation"`
	Quaternion [4]float64  `json:"quaternion,omitempty"`
	Matrix     [16]float64 `json:"matrix,omitempty"`
	Dimensions *[3]float64 `json:"dimensions,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Entries converts results to manifest entries.
func Entries(results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			ID:    r.ID,
			Kind:  string(r.Kind),
			Error: r.Error,
		}
		if r.Success {
			e.Position = r.Transform.Position
			e.Rotation = r.Transform.Rotation
			e.Quaternion = r.Transform.Quat
			e.Matrix = r.Transform.Matrix
			if r.Dimensions != nil {
				d := [3]float64(*r.Dimensions)
				e.Dimensions = &d
			}
		}
		entries[i] = e
	}
	return entries
}

// WriteManifest writes the resolved transforms as JSON.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(Entries(results), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
