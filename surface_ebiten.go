package dragbubble

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once, dragbubble is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used as the source texture for untextured fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenSurface draws a Bubble onto an ebiten.Image. Shapes are built as
// vector paths, triangulated and drawn with the non-zero fill rule.
// Vertex, index and face buffers are reused across frames.
type EbitenSurface struct {
	dst    *ebiten.Image
	vs     []ebiten.Vertex
	is     []uint16
	faces  map[faceKey]*text.GoTextFace
	images map[image.Image]*ebiten.Image
}

type faceKey struct {
	font *Font
	size float64
}

// NewEbitenSurface creates a surface. Call SetTarget before drawing.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		faces:  make(map[faceKey]*text.GoTextFace),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget sets the image drawn to by subsequent calls.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// FillCircle fills a circle.
func (s *EbitenSurface) FillCircle(c Circle, clr Color) {
	if c.Radius <= 0 {
		return
	}
	var p vector.Path
	p.Arc(float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	s.fill(&p, clr)
}

// FillRoundRect fills a rectangle with circular corners. The corner radius is
// clamped to half the shorter side.
func (s *EbitenSurface) FillRoundRect(r Rect, cornerRadius float64, clr Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	cr := float32(math.Min(cornerRadius, math.Min(r.Width, r.Height)/2))
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)

	var p vector.Path
	p.MoveTo(x+cr, y)
	p.LineTo(x+w-cr, y)
	p.Arc(x+w-cr, y+cr, cr, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-cr)
	p.Arc(x+w-cr, y+h-cr, cr, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+cr, y+h)
	p.Arc(x+cr, y+h-cr, cr, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+cr)
	p.Arc(x+cr, y+cr, cr, math.Pi, 3*math.Pi/2, vector.Clockwise)
	p.Close()
	s.fill(&p, clr)
}

// FillPath replays p into a vector path and fills it.
func (s *EbitenSurface) FillPath(p *Path, clr Color) {
	var vp vector.Path
	for _, seg := range p.Segments() {
		switch seg.Op {
		case PathMoveTo:
			vp.MoveTo(float32(seg.To.X), float32(seg.To.Y))
		case PathLineTo:
			vp.LineTo(float32(seg.To.X), float32(seg.To.Y))
		case PathQuadTo:
			vp.QuadTo(float32(seg.Ctrl.X), float32(seg.Ctrl.Y), float32(seg.To.X), float32(seg.To.Y))
		case PathClose:
			vp.Close()
		}
	}
	s.fill(&vp, clr)
}

// fill triangulates p and draws it with a solid premultiplied color.
func (s *EbitenSurface) fill(p *vector.Path, clr Color) {
	if s.dst == nil {
		return
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	if len(s.is) == 0 {
		return
	}
	a := float32(clamp01(clr.A))
	r := float32(clamp01(clr.R)) * a
	g := float32(clamp01(clr.G)) * a
	b := float32(clamp01(clr.B)) * a
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR = r
		v.ColorG = g
		v.ColorB = b
		v.ColorA = a
	}
	s.dst.DrawTriangles(s.vs, s.is, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	})
}

// DrawLabel draws text centered on center.
func (s *EbitenSurface) DrawLabel(str string, center Vec2, font *Font, size float64, clr Color) {
	if s.dst == nil || font == nil || str == "" || size <= 0 {
		return
	}
	key := faceKey{font: font, size: size}
	face, ok := s.faces[key]
	if !ok {
		face = font.Face(size)
		s.faces[key] = face
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(clr.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, face, op)
}

// DrawImage draws img scaled into dst with linear filtering. Images that are
// not already *ebiten.Image are uploaded once and cached.
func (s *EbitenSurface) DrawImage(img image.Image, dst Rect) {
	if s.dst == nil || img == nil {
		return
	}
	eimg, ok := img.(*ebiten.Image)
	if !ok {
		eimg, ok = s.images[img]
		if !ok {
			eimg = ebiten.NewImageFromImage(img)
			s.images[img] = eimg
		}
	}
	b := eimg.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(eimg, op)
}
