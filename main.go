// Command icongen renders the application badge icon and writes app.ico
// (frames at 16, 32, 48, 64, 128 and 256 px) plus a PNG preview. It is run
// once as a build step; both artifacts are overwritten on every run.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/rvucounter/icongen/internal/app"
)

func main() {
	outDir := flag.String("out", "", "output directory for app.ico and app_preview.png; also configurable via ICONGEN_OUT (default Resources)")
	previewSize := flag.Int("preview-size", app.DefaultPreviewSize, "edge length of the PNG preview in pixels")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)

	dir := *outDir
	if dir == "" {
		dir = os.Getenv("ICONGEN_OUT")
	}
	if dir == "" {
		dir = "Resources"
	}

	a := app.New(dir, *previewSize, logger)
	if err := a.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("icon generation failed")
		os.Exit(1)
	}
}
