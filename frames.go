package dragbubble

import (
	"fmt"
	"image"
	_ "image/png" // decoder for LoadFrames
	"io/fs"
	"math"

	"github.com/fogleman/gg"
)

// DefaultFrameCount is the number of frames in a generated explosion.
const DefaultFrameCount = 5

// LoadFrames decodes the named images from fsys, in order, as an explosion
// sequence. PNG is always supported; register other decoders to use them.
func LoadFrames(fsys fs.FS, names ...string) ([]image.Image, error) {
	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := loadFrame(fsys, name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func loadFrame(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("dragbubble: open frame %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dragbubble: decode frame %s: %w", name, err)
	}
	return img, nil
}

// GenerateExplosionFrames draws n square frames of a bursting bubble, for
// hosts without sprite assets. Each frame is size x size pixels: a fading
// ring that widens while droplets fly outward.
func GenerateExplosionFrames(n, size int, clr Color) []image.Image {
	if n <= 0 || size <= 0 {
		return nil
	}
	const droplets = 8
	frames := make([]image.Image, n)
	half := float64(size) / 2
	for i := range frames {
		p := float64(i+1) / float64(n) // progress in (0, 1]
		fade := Color{R: clr.R, G: clr.G, B: clr.B, A: clr.A * (1 - 0.8*p)}

		dc := gg.NewContext(size, size)
		dc.SetColor(fade.RGBA())

		ring := half * (0.35 + 0.55*p)
		dc.SetLineWidth(math.Max(1, half*0.3*(1-p)))
		dc.DrawCircle(half, half, ring)
		dc.Stroke()

		dropR := math.Max(1, half*0.12*(1-0.5*p))
		for d := 0; d < droplets; d++ {
			a := 2 * math.Pi * float64(d) / droplets
			dist := half * (0.2 + 0.7*p)
			dc.DrawCircle(half+dist*math.Cos(a), half+dist*math.Sin(a), dropR)
			dc.Fill()
		}
		frames[i] = dc.Image()
	}
	return frames
}
