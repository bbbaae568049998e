package dragbubble

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"after-drag", "after-drag"},
		{"v1.2", "v1.2"},
		{"with space", "with_space"},
		{"../escape", ".._escape"},
		{"99+", "99_"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	g := newTestGame(t, "9")
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 {
		t.Errorf("queue length = %d, want 2", len(g.screenshotQueue))
	}
}

func TestDrawRasterWritesScreenshots(t *testing.T) {
	g := newTestGame(t, "9")
	g.ScreenshotDir = t.TempDir()
	g.SetSize(64, 48)
	g.Screenshot("idle")

	s := g.DrawRaster()
	if b := s.Image().Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("raster size = %v, want 64x48", b)
	}
	if len(g.screenshotQueue) != 0 {
		t.Error("queue should be flushed")
	}

	matches, err := filepath.Glob(filepath.Join(g.ScreenshotDir, "*_idle.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("found %d screenshots, want 1", len(matches))
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("png size = %v, want 64x48", b)
	}
}

func TestDrawRasterWithoutQueueWritesNothing(t *testing.T) {
	g := newTestGame(t, "9")
	g.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	g.DrawRaster()
	if _, err := os.Stat(g.ScreenshotDir); !os.IsNotExist(err) {
		t.Error("screenshot dir should not be created without queued shots")
	}
}
