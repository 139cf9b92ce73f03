package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"segtri/internal/encode"
	"segtri/internal/mathutil"
	"segtri/internal/raster"
	"segtri/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Style     raster.Style
	Workers   int

	// Progress receives a status line every ProgressInterval; nil disables it.
	Progress         io.Writer
	ProgressInterval time.Duration
}

// Result holds the outcome of processing one scene.
type Result struct {
	Index      int
	Name       string
	Image      string // path relative to OutputDir
	Colliding  bool
	BehindNear bool
	Segment    [2]mathutil.Vector3 // screen space
	Skipped    int                 // lines not drawn
	Success    bool
	Error      string
}

// Run renders all scenes using a worker pool. Cancelling ctx stops handing
// out work; scenes never started come back with Error "canceled".
func Run(ctx context.Context, cfg Config, scenes []scene.Scene) []Result {
	total := len(scenes)
	results := make([]Result, total)
	started := make([]bool, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		interval := cfg.ProgressInterval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		p := message.NewPrinter(language.English)
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					n := processed.Load()
					if n > 0 {
						rate := float64(n) / time.Since(start).Seconds()
						p.Fprintf(cfg.Progress, "  [%d/%d] %.1f scenes/sec\n", n, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	work := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					continue
				}
				started[idx] = true
				results[idx] = processScene(cfg, idx, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
send:
	for i := range scenes {
		select {
		case work <- i:
		case <-ctx.Done():
			break send
		}
	}
	close(work)

	wg.Wait()
	close(done)

	for i := range results {
		if !started[i] {
			results[i] = Result{Index: i, Name: scenes[i].Name, Error: "canceled"}
		}
	}
	return results
}

func processScene(cfg Config, idx int, s scene.Scene) Result {
	r := Result{Index: idx, Name: s.Name}
	if err := s.Validate(); err != nil {
		r.Error = err.Error()
		return r
	}

	f := scene.Update(s)
	r.Colliding = f.Colliding
	r.BehindNear = f.BehindNear
	r.Segment = f.Segment

	img, st := raster.Render(f, cfg.Style)
	r.Skipped = st.Skipped

	r.Image = ImageName(idx, s.Name, cfg.Format)
	if err := encode.WriteFile(filepath.Join(cfg.OutputDir, r.Image), img, cfg.Format); err != nil {
		r.Error = err.Error()
		return r
	}

	r.Success = true
	return r
}

// ImageName builds "<index>_<name>.<ext>" with unsafe name characters
// replaced by '_'.
func ImageName(idx int, name, format string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if clean == "" {
		clean = "scene"
	}
	return fmt.Sprintf("%03d_%s%s", idx, clean, encode.Ext(format))
}
