package dragbubble

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// RasterSurface draws a Bubble into an in-memory RGBA image with gg. It needs
// no graphics driver, so it is used for headless snapshots and tests.
type RasterSurface struct {
	dc    *gg.Context
	faces map[faceKey]font.Face
}

// NewRasterSurface creates a transparent w x h surface.
func NewRasterSurface(w, h int) *RasterSurface {
	return &RasterSurface{
		dc:    gg.NewContext(w, h),
		faces: make(map[faceKey]font.Face),
	}
}

// Clear fills the whole surface with c.
func (s *RasterSurface) Clear(c Color) {
	s.dc.SetColor(c.RGBA())
	s.dc.Clear()
}

// Image returns the backing image. It aliases the surface; later draws
// change it.
func (s *RasterSurface) Image() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// SavePNG writes the current contents to path.
func (s *RasterSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// FillCircle fills a circle.
func (s *RasterSurface) FillCircle(c Circle, clr Color) {
	if c.Radius <= 0 {
		return
	}
	s.dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	s.dc.SetColor(clr.RGBA())
	s.dc.Fill()
}

// FillRoundRect fills a rectangle with circular corners.
func (s *RasterSurface) FillRoundRect(r Rect, cornerRadius float64, clr Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	s.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, cornerRadius)
	s.dc.SetColor(clr.RGBA())
	s.dc.Fill()
}

// FillPath replays p into the gg path and fills it with the winding rule.
func (s *RasterSurface) FillPath(p *Path, clr Color) {
	for _, seg := range p.Segments() {
		switch seg.Op {
		case PathMoveTo:
			s.dc.MoveTo(seg.To.X, seg.To.Y)
		case PathLineTo:
			s.dc.LineTo(seg.To.X, seg.To.Y)
		case PathQuadTo:
			s.dc.QuadraticTo(seg.Ctrl.X, seg.Ctrl.Y, seg.To.X, seg.To.Y)
		case PathClose:
			s.dc.ClosePath()
		}
	}
	s.dc.SetFillRule(gg.FillRuleWinding)
	s.dc.SetColor(clr.RGBA())
	s.dc.Fill()
}

// DrawLabel draws text centered on center.
func (s *RasterSurface) DrawLabel(str string, center Vec2, f *Font, size float64, clr Color) {
	if f == nil || str == "" || size <= 0 {
		return
	}
	key := faceKey{font: f, size: size}
	face, ok := s.faces[key]
	if !ok {
		face = f.rasterFace(size)
		s.faces[key] = face
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(clr.RGBA())
	s.dc.DrawStringAnchored(str, center.X, center.Y, 0.5, 0.5)
}

// DrawImage scales img into dst with bilinear filtering.
func (s *RasterSurface) DrawImage(img image.Image, dst Rect) {
	if img == nil || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	r := image.Rect(
		int(dst.X), int(dst.Y),
		int(dst.X+dst.Width), int(dst.Y+dst.Height),
	)
	xdraw.ApproxBiLinear.Scale(s.Image(), r, img, img.Bounds(), xdraw.Over, nil)
}
