package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutput is the file written when no output path is configured.
const DefaultOutput = "shooting-days-wallpaper.png"

// NewCanvas picks the canvas implementation from the output extension:
// .svg is vector, .png or no extension is raster. Anything else is an error.
func NewCanvas(path string, width, height int, fontPath string) (Canvas, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return NewSVGCanvas(width, height), nil
	case ".png", "":
		return NewRasterCanvas(width, height, fontPath)
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png or .svg)", filepath.Ext(path))
	}
}

// WriteFile encodes c into path, creating parent directories. A failed
// encode or close is returned; the partial file is left for inspection.
func WriteFile(path string, c Canvas) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	encodeErr := c.Encode(f)
	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("encode %s: %w", path, encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}
	return nil
}
