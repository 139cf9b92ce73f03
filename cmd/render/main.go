package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"segtri/internal/batch"
	"segtri/internal/config"
	"segtri/internal/raster"
	"segtri/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Render a single scene JSON file (default: built-in scene)")
	casesFile := flag.String("cases", "", "Render every scene of a case list JSON file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: webp, tga or png (default: webp)")
	width := flag.Int("width", 0, "Viewport width in pixels (default: 1280)")
	height := flag.Int("height", 0, "Viewport height in pixels (default: 720)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	noHUD := flag.Bool("no-hud", false, "Do not draw the parameter read-out")

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
	err := cfg.Resolve(config.Flags{
		SceneFile:   *sceneFile,
		CasesFile:   *casesFile,
		OutputDir:   *outputDir,
		Format:      *format,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *noHUD {
		cfg.NoHUD = true
	}

	scenes, err := loadScenes(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenes: %v\n", err)
		os.Exit(1)
	}
	if len(scenes) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Segment/triangle renderer → %s\n", cfg.Format)
	p.Printf("Scenes: %d, Size: %dx%d, Workers: %d\n", len(scenes), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	results := batch.Run(ctx, batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Style: raster.Style{
			LineWidth:   cfg.LineWidth,
			Supersample: cfg.Supersample,
			HUD:         !cfg.NoHUD,
		},
		Workers:  cfg.Workers,
		Progress: os.Stdout,
	}, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, colliding := 0, 0
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
			continue
		}
		success++
		if r.Colliding {
			colliding++
		}
		state := "free"
		if r.Colliding {
			state = "COLLISION"
		}
		fmt.Printf("  %-24s %-9s %s\n", r.Name, state, r.Image)
	}

	p.Printf("Rendered: %d/%d (%d colliding)\n", success, len(scenes), colliding)

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}

func loadScenes(cfg config.Config) ([]scene.Scene, error) {
	switch {
	case cfg.CasesFile != "":
		return scene.LoadCases(cfg.CasesFile, cfg.Width, cfg.Height)
	case cfg.SceneFile != "":
		s, err := scene.LoadFile(cfg.SceneFile, cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		return []scene.Scene{s}, nil
	}
	return []scene.Scene{scene.Default(cfg.Width, cfg.Height)}, nil
}
