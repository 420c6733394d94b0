package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"beatplace/internal/beatmap"
)

// Config holds all configurable paths and placement settings.
type Config struct {
	// Paths
	BaseDir     string `json:"base_dir" yaml:"base_dir"`
	ObjectsFile string `json:"objects_file" yaml:"objects_file"`
	OutputDir   string `json:"output_dir" yaml:"output_dir"`

	// Placement settings
	BeatDepth      float64 `json:"beat_depth" yaml:"beat_depth"`
	Grid           Grid    `json:"grid" yaml:"grid"`
	ExtendedTracks bool    `json:"extended_tracks" yaml:"extended_tracks"`

	Preview Preview `json:"preview" yaml:"preview"`
	Workers int     `json:"workers" yaml:"workers"`
}

// Grid mirrors beatmap.GridConfig in file form.
type Grid struct {
	Rows      int     `json:"rows" yaml:"rows"`
	Cols      int     `json:"cols" yaml:"cols"`
	ColWidth  float64 `json:"col_width" yaml:"col_width"`
	RowHeight float64 `json:"row_height" yaml:"row_height"`
}

// Preview controls the front-view preview image.
type Preview struct {
	Enabled     bool    `json:"enabled" yaml:"enabled"`
	Format      string  `json:"format" yaml:"format"` // "webp" or "tga"
	Size        int     `json:"size" yaml:"size"`
	Supersample int     `json:"supersample" yaml:"supersample"`
	WindowBeats float64 `json:"window_beats" yaml:"window_beats"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.ObjectsFile != "" {
		c.ObjectsFile = flags.ObjectsFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.BeatDepth > 0 {
		c.BeatDepth = flags.BeatDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Extended {
		c.ExtendedTracks = true
	}
	if flags.Preview != "" {
		c.Preview.Enabled = true
		c.Preview.Format = flags.Preview
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	if c.ObjectsFile != "" && !filepath.IsAbs(c.ObjectsFile) {
		c.ObjectsFile = filepath.Join(c.BaseDir, c.ObjectsFile)
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "placements")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
	}

	if c.BeatDepth <= 0 {
		c.BeatDepth = DefaultBeatDepth
	}
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = beatmap.DefaultGrid.NumRows
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = beatmap.DefaultGrid.NumCols
	}
	if c.Grid.ColWidth <= 0 {
		c.Grid.ColWidth = beatmap.DefaultGrid.ColWidth
	}
	if c.Grid.RowHeight <= 0 {
		c.Grid.RowHeight = beatmap.DefaultGrid.RowHeight
	}

	// Defaults for preview settings
	if c.Preview.Format == "" {
		c.Preview.Format = "webp"
	}
	if c.Preview.Size <= 0 {
		c.Preview.Size = 512
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = 2
	}
	if c.Preview.WindowBeats <= 0 {
		c.Preview.WindowBeats = 4
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// DefaultBeatDepth is the depth of one beat in world units.
const DefaultBeatDepth = 9.0

// GridConfig returns the resolved grid.
func (c Config) GridConfig() beatmap.GridConfig {
	return beatmap.GridConfig{
		NumRows:   c.Grid.Rows,
		NumCols:   c.Grid.Cols,
		ColWidth:  c.Grid.ColWidth,
		RowHeight: c.Grid.RowHeight,
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ObjectsFile string
	OutputDir   string
	BeatDepth   float64
	Workers     int
	Extended    bool
	Preview     string
}
