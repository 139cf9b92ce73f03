package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"segtri/internal/encode"
)

// Config holds input/output paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	SceneFile string `json:"scene_file"`
	CasesFile string `json:"cases_file"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	LineWidth   float32 `json:"line_width"`
	Format      string  `json:"format"`
	NoHUD       bool    `json:"no_hud"`
	Workers     int     `json:"workers"`
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
	SceneFile   string
	CasesFile   string
	OutputDir   string
	Format      string
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Resolve applies flag overrides, resolves relative paths against BaseDir and
// fills in defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.CasesFile != "" {
		c.CasesFile = flags.CasesFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
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
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.BaseDir != "" {
		c.SceneFile = resolvePath(c.BaseDir, c.SceneFile)
		c.CasesFile = resolvePath(c.BaseDir, c.CasesFile)
		c.OutputDir = resolvePath(c.BaseDir, c.OutputDir)
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	format, err := encode.Normalize(c.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Format = format
	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
