package tileset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid image to dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 64, B: 32, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}

func TestLoaderOpen(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "tiles.png", 16, 8)
	loader := NewLoader()

	img, err := loader.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 16x8", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second open must serve the cached image even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	cached, err := loader.Open(path)
	if err != nil {
		t.Fatalf("cached Open failed: %v", err)
	}
	if cached != img {
		t.Error("cached Open returned a different image")
	}

	// After eviction the deleted file can no longer be opened.
	loader.Evict(path)
	if _, err := loader.Open(path); err == nil {
		t.Error("Open after Evict of deleted file: want error, got nil")
	}
}

func TestLoaderClear(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "tiles.png", 4, 4)

	loader := NewLoader()
	if _, err := loader.Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	loader.Clear()

	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}
	if _, err := loader.Open(path); err == nil {
		t.Error("Open after Clear of deleted file: want error, got nil")
	}
}

func TestLoaderOpen_MissingFile(t *testing.T) {
	loader := NewLoader()
	if _, err := loader.Open(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("want error for missing file, got nil")
	}
}
