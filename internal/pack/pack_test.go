package pack

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/rvucounter/icongen/internal/render"
)

func TestWriteICOFrameSet(t *testing.T) {
	frames := make([]image.Image, 0, len(render.IconSizes))
	for _, s := range render.IconSizes {
		frames = append(frames, render.Icon(s))
	}
	path := filepath.Join(t.TempDir(), "app.ico")
	if err := WriteICO(path, frames); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(render.IconSizes) {
		t.Fatalf("container holds %d frames, want %d", len(decoded), len(render.IconSizes))
	}
	got := map[int]bool{}
	for _, frame := range decoded {
		b := frame.Bounds()
		if b.Dx() != b.Dy() {
			t.Errorf("non-square frame %dx%d", b.Dx(), b.Dy())
		}
		got[b.Dx()] = true
	}
	for _, s := range render.IconSizes {
		if !got[s] {
			t.Errorf("missing %dpx frame", s)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_preview.png")
	if err := WritePNG(path, render.Icon(256)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("preview is %dx%d, want 256x256", b.Dx(), b.Dy())
	}
}

func TestWriteICOMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.ico")
	if err := WriteICO(path, []image.Image{render.Icon(16)}); err == nil {
		t.Error("expected an error when the destination directory does not exist")
	}
}
