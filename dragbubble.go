package dragbubble

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorRed is the default bubble fill.
	ColorRed = Color{1, 0, 0, 1}
	// ColorWhite is the default label color.
	ColorWhite = Color{1, 1, 1, 1}
)

// RGBA converts c to a premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or offset. The coordinate system has its origin at the
// top-left of the drawing surface, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Lerp interpolates between v and o. f is not clamped, so values outside
// [0, 1] overshoot.
func (v Vec2) Lerp(o Vec2, f float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*f, v.Y + (o.Y-v.Y)*f}
}

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RectCentered returns the rectangle of the given size centered on c.
func RectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Center returns the center point of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Circle is a center and radius. Used for both the anchor and the drag bubble.
type Circle struct {
	Center Vec2
	Radius float64
}

// State is the bubble's interaction state.
type State uint8

const (
	StateDefault State = iota // idle, bubble resting on the anchor
	StateDrag                 // pointer controls the bubble, connector visible
	StateMove                 // pointer controls the bubble, connector snapped
	StateDismiss              // exploded; terminal until reinitialized
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateDrag:
		return "drag"
	case StateMove:
		return "move"
	case StateDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// EventType identifies a listener notification.
type EventType uint8

const (
	EventDrag    EventType = iota // bubble moved while still connected
	EventMove                     // bubble moved with the connector snapped
	EventRestore                  // restore animation finished
	EventDismiss                  // bubble released far away and exploded
)

func (e EventType) String() string {
	switch e {
	case EventDrag:
		return "drag"
	case EventMove:
		return "move"
	case EventRestore:
		return "restore"
	case EventDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}
