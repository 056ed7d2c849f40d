package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Capture writes preview images to a directory.
type Capture struct {
	outputDir string
}

// NewCapture creates a capture handler writing into outputDir.
// An empty outputDir means the working directory.
func NewCapture(outputDir string) *Capture {
	return &Capture{outputDir: outputDir}
}

// Filename returns the path a preview of the named job and view is saved to.
func (c *Capture) Filename(name string, view View) string {
	filename := fmt.Sprintf("%s_%s.png", name, view)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save encodes img as PNG and returns the written path.
func (c *Capture) Save(img image.Image, name string, view View) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename(name, view)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
