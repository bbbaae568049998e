package dragbubble

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/goregular"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadFrames(t *testing.T) {
	fsys := fstest.MapFS{
		"explode/0.png": {Data: encodePNG(t, 8, 8)},
		"explode/1.png": {Data: encodePNG(t, 16, 16)},
	}
	frames, err := LoadFrames(fsys, "explode/0.png", "explode/1.png")
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[1].Bounds().Dx() != 16 {
		t.Error("frames should keep their order")
	}
}

func TestLoadFramesErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.png": {Data: []byte("not a png")},
	}
	if _, err := LoadFrames(fsys, "missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFrames(fsys, "bad.png"); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestGenerateExplosionFrames(t *testing.T) {
	frames := GenerateExplosionFrames(DefaultFrameCount, 32, ColorRed)
	if len(frames) != DefaultFrameCount {
		t.Fatalf("got %d frames, want %d", len(frames), DefaultFrameCount)
	}
	for i, f := range frames {
		if b := f.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("frame %d size = %v", i, b)
		}
	}
	if GenerateExplosionFrames(0, 32, ColorRed) != nil {
		t.Error("zero frames should return nil")
	}
	if GenerateExplosionFrames(3, 0, ColorRed) != nil {
		t.Error("zero size should return nil")
	}
}

func TestGenerateExplosionFramesFade(t *testing.T) {
	frames := GenerateExplosionFrames(4, 64, ColorRed)
	alpha := func(img image.Image) uint32 {
		var max uint32
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a > max {
					max = a
				}
			}
		}
		return max
	}
	first, last := alpha(frames[0]), alpha(frames[3])
	if first == 0 {
		t.Fatal("first frame should not be empty")
	}
	if last >= first {
		t.Errorf("frames should fade: first alpha %d, last %d", first, last)
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.Face(12).Size != 12 {
		t.Error("Face should carry the size")
	}

	if _, err := LoadFont([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestDefaultFontCached(t *testing.T) {
	a, b := DefaultFont(), DefaultFont()
	if a == nil {
		t.Fatal("default font should load")
	}
	if a != b {
		t.Error("default font should be parsed once")
	}
}
