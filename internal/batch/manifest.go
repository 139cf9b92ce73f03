package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"segtri/internal/mathutil"
)

// ManifestEntry represents one scene in the output manifest.
type ManifestEntry struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Colliding bool   `json:"colliding"`
	// SegmentScreen is omitted when an endpoint is not finite (JSON has no
	// NaN or Inf).
	SegmentScreen *[2]mathutil.Vector3 `json:"segment_screen,omitempty"`
	BehindNear    bool                 `json:"behind_near,omitempty"`
	Error         string               `json:"error,omitempty"`
}

// NewManifest converts results to manifest entries.
func NewManifest(results []Result) []ManifestEntry {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Index:      r.Index,
			Name:       r.Name,
			Colliding:  r.Colliding,
			BehindNear: r.BehindNear,
			Error:      r.Error,
		}
		if r.Success {
			e.Image = r.Image
			if r.Segment[0].IsFinite() && r.Segment[1].IsFinite() {
				seg := r.Segment
				e.SegmentScreen = &seg
			}
		}
		entries[i] = e
	}
	return entries
}

// WriteManifest writes manifest.json for the given results.
func WriteManifest(path string, results []Result) error {
	data, err := json.MarshalIndent(NewManifest(results), "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
