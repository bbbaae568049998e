package dragbubble

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a parsed TrueType/OpenType font usable by every Surface. The same
// font bytes back the Ebitengine text/v2 source and the freetype face used by
// RasterSurface.
type Font struct {
	source *text.GoTextFaceSource
	ttf    *truetype.Font
}

// LoadFont parses raw TTF/OTF data.
func LoadFont(data []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("dragbubble: parse font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dragbubble: parse font: %w", err)
	}
	return &Font{source: source, ttf: ttf}, nil
}

var defaultFont *Font

// DefaultFont returns Go Regular, parsed once. Returns nil if parsing fails,
// in which case labels are not drawn.
func DefaultFont() *Font {
	if defaultFont != nil {
		return defaultFont
	}
	f, err := LoadFont(goregular.TTF)
	if err != nil {
		warnf("default font: %v", err)
		return nil
	}
	defaultFont = f
	return f
}

// Face returns an Ebitengine text/v2 face at the given pixel size.
func (f *Font) Face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: size}
}

// rasterFace returns a freetype face at the given pixel size for gg.
func (f *Font) rasterFace(size float64) font.Face {
	return truetype.NewFace(f.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
