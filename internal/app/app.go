// Package app orchestrates a generation run: render every frame size, pack
// the icon container and write the preview image.
package app

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rvucounter/icongen/internal/pack"
	"github.com/rvucounter/icongen/internal/render"
)

// Artifact file names, fixed relative to the output directory.
const (
	IconFile    = "app.ico"
	PreviewFile = "app_preview.png"
)

// DefaultPreviewSize is the preview edge length when none is configured.
const DefaultPreviewSize = 256

type App struct {
	OutDir      string
	PreviewSize int
	Logger      zerolog.Logger
}

func New(outDir string, previewSize int, logger zerolog.Logger) *App {
	if previewSize <= 0 {
		previewSize = DefaultPreviewSize
	}
	return &App{OutDir: outDir, PreviewSize: previewSize, Logger: logger}
}

// Run creates the output directory if needed, then writes app.ico with one
// frame per size in render.IconSizes followed by the PNG preview. Reruns
// overwrite both artifacts with byte-identical content. Any failure is an
// I/O error and aborts the run.
func (a *App) Run(ctx context.Context) error {
	if err := os.MkdirAll(a.OutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	frames := make([]image.Image, 0, len(render.IconSizes))
	for _, size := range render.IconSizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Logger.Debug().Int("size", size).Msg("rendering frame")
		frames = append(frames, render.Icon(size))
	}

	iconPath := filepath.Join(a.OutDir, IconFile)
	if err := pack.WriteICO(iconPath, frames); err != nil {
		return err
	}
	a.Logger.Info().Str("path", iconPath).Int("frames", len(frames)).Msg("icon container written")

	if err := ctx.Err(); err != nil {
		return err
	}
	previewPath := filepath.Join(a.OutDir, PreviewFile)
	if err := pack.WritePNG(previewPath, render.Icon(a.PreviewSize)); err != nil {
		return err
	}
	a.Logger.Info().Str("path", previewPath).Int("size", a.PreviewSize).Msg("preview written")
	return nil
}
