package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// caseFile matches a case list: {"cases": [{...}, ...]}.
type caseFile struct {
	Cases []json.RawMessage `json:"cases"`
}

// Decode parses one scene from JSON on top of Default(width, height), so
// fields absent from data keep their reference values.
func Decode(data []byte, width, height int) (Scene, error) {
	return decodeNamed(data, "", width, height)
}

// decodeNamed is Decode with a fallback name for scenes that carry none. The
// name is assigned before validation so errors identify the scene.
func decodeNamed(data []byte, fallback string, width, height int) (Scene, error) {
	s := Default(width, height)
	s.Name = ""
	s.Projection.AspectRatio = 0
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, err
	}
	if s.Name == "" {
		s.Name = fallback
	}
	if s.Projection.AspectRatio == 0 && s.Viewport.Height != 0 {
		s.Projection.AspectRatio = s.Viewport.Width / s.Viewport.Height
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// LoadFile reads a single scene JSON file. An unnamed scene takes the file's
// base name.
func LoadFile(path string, width, height int) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := decodeNamed(data, name, width, height)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

// LoadCases reads a case list. Unnamed cases are named case-<n>.
func LoadCases(path string, width, height int) ([]Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var cf caseFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	scenes := make([]Scene, 0, len(cf.Cases))
	for i, raw := range cf.Cases {
		s, err := decodeNamed(raw, fmt.Sprintf("case-%d", i), width, height)
		if err != nil {
			return nil, fmt.Errorf("scene: %s case %d: %w", path, i, err)
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}
