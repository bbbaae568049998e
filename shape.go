package dragbubble

import "unicode/utf8"

// Shape selects the drag bubble's outline from the label length.
type Shape uint8

const (
	ShapeDot   Shape = iota // circle, labels of 0-1 characters
	ShapeSmall              // rounded rect 4/3 x 1 radius units (half extents), 2 characters
	ShapeLarge              // rounded rect 3/2 x 1 radius units (half extents), 3+ characters
)

func (s Shape) String() string {
	switch s {
	case ShapeDot:
		return "dot"
	case ShapeSmall:
		return "small"
	case ShapeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// ResolveShape picks the shape for a label. Length is counted in runes, so
// "99+" is Large and a single multi-byte glyph is a Dot.
func ResolveShape(text string) Shape {
	switch n := utf8.RuneCountInString(text); {
	case n <= 1:
		return ShapeDot
	case n == 2:
		return ShapeSmall
	default:
		return ShapeLarge
	}
}

// halfExtents returns the half width and half height in radius units.
func (s Shape) halfExtents() (float64, float64) {
	switch s {
	case ShapeSmall:
		return 4.0 / 3.0, 1
	case ShapeLarge:
		return 3.0 / 2.0, 1
	default:
		return 1, 1
	}
}

// Bounds returns the draw bounds of the shape centered on c.
func (s Shape) Bounds(c Vec2, radius float64) Rect {
	hw, hh := s.halfExtents()
	return RectCentered(c, 2*hw*radius, 2*hh*radius)
}

// IsRound reports whether the shape is drawn as a circle rather than a
// rounded rectangle.
func (s Shape) IsRound() bool {
	return s == ShapeDot
}

// AnchorFor returns the anchor center for a shape on a w x h surface: the
// center of the shape's bounds when the bounds are centered on the surface.
func AnchorFor(s Shape, radius float64, w, h int) Vec2 {
	surface := Vec2{float64(w) / 2, float64(h) / 2}
	return s.Bounds(surface, radius).Center()
}
