package dragbubble

import "image"

// Surface is a drawing target for a Bubble. EbitenSurface draws onto an
// ebiten.Image each frame; RasterSurface draws into an in-memory image for
// headless snapshots.
type Surface interface {
	FillCircle(c Circle, clr Color)
	FillRoundRect(r Rect, cornerRadius float64, clr Color)
	FillPath(p *Path, clr Color)
	// DrawLabel draws text centered on center. A nil font draws nothing.
	DrawLabel(text string, center Vec2, font *Font, size float64, clr Color)
	// DrawImage draws img scaled to fill dst.
	DrawImage(img image.Image, dst Rect)
}

// Draw renders the bubble onto s in paint order: drag bubble, anchor circle
// and connector, label, explosion frame. Draw clears the dirty flag.
func (b *Bubble) Draw(s Surface) {
	b.dirty = false
	r := b.cfg.Radius
	bounds := b.shape.Bounds(b.bubble, r)

	if b.state != StateDismiss {
		if b.shape.IsRound() {
			s.FillCircle(Circle{Center: b.bubble, Radius: r}, b.cfg.Color)
		} else {
			s.FillRoundRect(bounds, r, b.cfg.Color)
		}
	}

	if conn, ok := b.Connector(); ok {
		s.FillCircle(Circle{Center: b.anchor, Radius: b.connectorRadius}, b.cfg.Color)
		b.path.Reset()
		conn.AppendPath(&b.path)
		s.FillPath(&b.path, b.cfg.Color)
	}

	if b.state != StateDismiss && b.cfg.Text != "" {
		s.DrawLabel(b.cfg.Text, bounds.Center(), b.cfg.Font, b.cfg.TextSize, b.cfg.TextColor)
	}

	if frame := b.explosion.Frame(); frame != nil {
		s.DrawImage(frame, RectCentered(b.bubble, 2*r, 2*r))
	}
}
