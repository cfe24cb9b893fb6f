// Package pack serializes rendered badge frames to the two build artifacts:
// a multi-resolution ICO container and a standalone PNG.
package pack

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// WriteICO encodes frames into one icon container at path, one directory
// entry per frame. The destination directory must already exist.
func WriteICO(path string, frames []image.Image) error {
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WritePNG encodes a single frame as a PNG file at path.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
