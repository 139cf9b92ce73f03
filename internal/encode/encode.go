package encode

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Supported output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatPNG  = "png"
)

// Formats lists the accepted format names.
var Formats = []string{FormatWebP, FormatTGA, FormatPNG}

// Normalize lower-cases a format name and maps aliases. It returns an error
// for formats Write cannot produce.
func Normalize(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	switch f {
	case FormatWebP, FormatTGA, FormatPNG:
		return f, nil
	case "":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("encode: unknown format %q", format)
}

// Write encodes img to w. All three formats are lossless; WebP uses VP8L.
func Write(w io.Writer, img image.Image, format string) error {
	f, err := Normalize(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", f, err)
	}
	return nil
}

// WriteFile creates path (and its directory) and encodes img into it.
func WriteFile(path string, img image.Image, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("encode: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := Write(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode: close %s: %w", path, err)
	}
	return nil
}

// Ext returns the file extension (with dot) for a format name.
func Ext(format string) string {
	f, err := Normalize(format)
	if err != nil {
		return ""
	}
	return "." + f
}
