package dragbubble

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidRadius is returned by New when Config.Radius is not positive.
var ErrInvalidRadius = errors.New("dragbubble: radius must be positive")

const (
	// maxDistanceFactor scales the radius to the maximum connection distance.
	maxDistanceFactor = 8
	// The press zone extends the radius by a quarter of the max distance so
	// small bubbles are easy to grab.
	pressSlackFraction = 0.25
	// The connector snaps at three quarters of the max distance, before its
	// radius gets small enough to look like a stray dot.
	connectFraction = 0.75
	// Connector radius shrinks by one unit per shrinkDivisor units of distance.
	shrinkDivisor = 10
	// Releasing a snapped bubble within restoreFactor radii brings it back.
	restoreFactor = 2
)

// Config is the host-resolved configuration of a bubble. Zero fields take
// defaults in New.
type Config struct {
	Radius    float64 // base radius of the anchor and the drag bubble; required
	Color     Color   // bubble and connector fill; zero means ColorRed
	Text      string  // label; its rune count selects the Shape
	TextColor Color   // zero means ColorWhite
	TextSize  float64 // label size in pixels; zero means Radius

	// Font for the label. Nil uses DefaultFont.
	Font *Font

	// Frames is the explosion sprite sequence, drawn in order over
	// ExplosionDuration. May be empty.
	Frames []image.Image

	RestoreDuration   float32 // seconds; zero means DefaultAnimationDuration
	ExplosionDuration float32 // seconds; zero means DefaultAnimationDuration
}

// MaxDistance returns the maximum connection distance, 8 × Radius.
func (c Config) MaxDistance() float64 {
	return maxDistanceFactor * c.Radius
}

func (c *Config) applyDefaults() {
	if c.Color == (Color{}) {
		c.Color = ColorRed
	}
	if c.TextColor == (Color{}) {
		c.TextColor = ColorWhite
	}
	if c.TextSize <= 0 {
		c.TextSize = c.Radius
	}
	if c.RestoreDuration <= 0 {
		c.RestoreDuration = DefaultAnimationDuration
	}
	if c.ExplosionDuration <= 0 {
		c.ExplosionDuration = DefaultAnimationDuration
	}
}

// Bubble is a drag-to-dismiss notification badge. It owns the interaction
// state machine, the connector geometry and the restore/explosion tweens.
//
// A Bubble is not safe for concurrent use. Pointer events, Update ticks and
// Draw calls must all come from the same goroutine.
type Bubble struct {
	cfg     Config
	maxDist float64

	width, height int
	shape         Shape
	anchor        Vec2
	bubble        Vec2

	state           State
	grabbed         bool    // the current gesture started with an accepted press
	distance        float64 // bubble center to anchor center
	connectorRadius float64

	anim      Animator
	explosion *Explosion

	listener Listener
	store    EventStore
	redraw   func()
	dirty    bool

	path Path // reused by Draw
}

// New creates a bubble from cfg. Call Resize before the first Draw so the
// anchor can be placed on the surface.
func New(cfg Config) (*Bubble, error) {
	if !(cfg.Radius > 0) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidRadius, cfg.Radius)
	}
	cfg.applyDefaults()
	if cfg.Font == nil {
		cfg.Font = DefaultFont()
	}
	b := &Bubble{cfg: cfg, maxDist: cfg.MaxDistance()}
	b.reset()
	return b, nil
}

// --- Host commands ---

// Resize sets the drawing surface size, re-resolves the shape and anchor and
// resets the bubble to StateDefault.
func (b *Bubble) Resize(w, h int) {
	b.width, b.height = w, h
	b.reset()
}

// Reinitialize re-resolves the shape and anchor for the current surface and
// resets to StateDefault. This is the only way out of StateDismiss besides
// Resize.
func (b *Bubble) Reinitialize() {
	b.reset()
}

// SetText updates the label. The bubble keeps its position and state; the
// anchor follows the new shape if the rune count crosses a shape boundary.
func (b *Bubble) SetText(text string) {
	b.cfg.Text = text
	if s := ResolveShape(text); s != b.shape {
		b.shape = s
		b.anchor = AnchorFor(s, b.cfg.Radius, b.width, b.height)
		b.updateDistance()
	}
	b.invalidate()
}

// SetColor sets the bubble fill.
func (b *Bubble) SetColor(c Color) {
	b.cfg.Color = c
	b.invalidate()
}

// SetTextColor sets the label color.
func (b *Bubble) SetTextColor(c Color) {
	b.cfg.TextColor = c
	b.invalidate()
}

// SetTextSize sets the label size in pixels.
func (b *Bubble) SetTextSize(size float64) {
	b.cfg.TextSize = size
	b.invalidate()
}

// SetFrames replaces the explosion frames used by the next dismiss.
func (b *Bubble) SetFrames(frames []image.Image) {
	b.cfg.Frames = frames
}

// SetRedrawFunc registers the redraw port. fn is called whenever geometry or
// animation state changes.
func (b *Bubble) SetRedrawFunc(fn func()) {
	b.redraw = fn
}

// reset puts the bubble back on its anchor in StateDefault and drops any
// in-flight animation.
func (b *Bubble) reset() {
	b.anim.CancelAll()
	b.shape = ResolveShape(b.cfg.Text)
	b.anchor = AnchorFor(b.shape, b.cfg.Radius, b.width, b.height)
	b.bubble = b.anchor
	b.distance = 0
	b.connectorRadius = b.cfg.Radius
	b.explosion = nil
	b.grabbed = false
	b.setState(StateDefault)
	b.invalidate()
}

// --- Pointer input ---

// Press handles a pointer press at (x, y). Presses within Radius +
// MaxDistance/4 of the anchor start a drag, cancelling an in-flight restore.
// Presses outside the zone are ignored, as is every press in StateDismiss.
func (b *Bubble) Press(x, y float64) {
	if b.state == StateDismiss {
		return
	}
	if b.anchor.Dist(Vec2{x, y}) >= b.cfg.Radius+b.maxDist*pressSlackFraction {
		return
	}
	b.anim.Cancel(AnimRestore)
	b.grabbed = true
	b.setState(StateDrag)
	// A restore may have started from StateMove with a snapped connector.
	b.updateDistance()
	b.connectorRadius = b.shrunkRadius()
	b.invalidate()
}

// Move handles a pointer move to (x, y). The bubble follows the pointer in
// StateDrag and StateMove; the connector shrinks with distance until it
// snaps at 3/4 of MaxDistance. Moves of an ignored press do nothing.
func (b *Bubble) Move(x, y float64) {
	if !b.grabbed || b.state == StateDefault || b.state == StateDismiss {
		return
	}
	b.bubble = Vec2{x, y}
	b.updateDistance()

	switch b.state {
	case StateDrag:
		if b.distance < b.connectThreshold() {
			b.connectorRadius = b.shrunkRadius()
			b.notify(EventDrag)
		} else {
			b.setState(StateMove)
			b.notify(EventMove)
		}
	case StateMove:
		b.notify(EventMove)
	}
	b.invalidate()
}

// Release handles the pointer release. A connected bubble always restores;
// a snapped bubble restores when released within 2 × Radius of the anchor
// and is dismissed otherwise. Releases ending an ignored press do nothing.
func (b *Bubble) Release() {
	if !b.grabbed {
		return
	}
	b.grabbed = false
	switch b.state {
	case StateDrag:
		b.startRestore()
	case StateMove:
		if b.distance < restoreFactor*b.cfg.Radius {
			b.startRestore()
		} else {
			b.startDismiss()
		}
	}
}

// --- Animation ---

// Update advances the restore and explosion animations by dt seconds.
func (b *Bubble) Update(dt float32) {
	b.anim.Update(dt)
}

// Animating reports whether any animation is in flight.
func (b *Bubble) Animating() bool {
	return b.anim.Running(AnimRestore) || b.anim.Running(AnimExplosion)
}

func (b *Bubble) startRestore() {
	from, to := b.bubble, b.anchor
	tw := NewTween("restore", b.cfg.RestoreDuration, WobbleEase)
	tw.OnTick = func(v float64) {
		b.bubble = from.Lerp(to, v)
		b.updateDistance()
		if b.state == StateDrag && b.distance < b.connectThreshold() {
			b.connectorRadius = b.shrunkRadius()
		}
		b.invalidate()
	}
	tw.OnComplete = func() {
		b.bubble = b.anchor
		b.distance = 0
		b.connectorRadius = b.cfg.Radius
		b.setState(StateDefault)
		b.invalidate()
		b.notify(EventRestore)
	}
	b.anim.Start(AnimRestore, tw)
}

func (b *Bubble) startDismiss() {
	b.setState(StateDismiss)
	ex := &Explosion{Frames: b.cfg.Frames, Playing: true}
	b.explosion = ex
	b.invalidate()
	b.notify(EventDismiss)

	n := len(ex.Frames)
	tw := NewTween("explosion", b.cfg.ExplosionDuration, nil)
	tw.OnTick = func(v float64) {
		if i := frameAt(v, n); i != ex.Index {
			ex.Index = i
			b.invalidate()
		}
	}
	tw.OnComplete = func() {
		ex.Playing = false
		if b.explosion == ex {
			b.explosion = nil
		}
		b.invalidate()
	}
	b.anim.Start(AnimExplosion, tw)
}

// --- Helpers ---

func (b *Bubble) setState(s State) {
	if s == b.state {
		return
	}
	debugf("state %s -> %s (distance=%.2f)", b.state, s, b.distance)
	b.state = s
}

func (b *Bubble) updateDistance() {
	b.distance = b.anchor.Dist(b.bubble)
}

func (b *Bubble) connectThreshold() float64 {
	return b.maxDist * connectFraction
}

// shrunkRadius is the connector radius for the current distance, never
// negative.
func (b *Bubble) shrunkRadius() float64 {
	return math.Max(0, b.cfg.Radius-b.distance/shrinkDivisor)
}

func (b *Bubble) invalidate() {
	b.dirty = true
	if b.redraw != nil {
		b.redraw()
	}
}

// --- Accessors ---

// State returns the current interaction state.
func (b *Bubble) State() State { return b.state }

// Shape returns the shape resolved from the current label.
func (b *Bubble) Shape() Shape { return b.shape }

// Text returns the current label.
func (b *Bubble) Text() string { return b.cfg.Text }

// Radius returns the base radius.
func (b *Bubble) Radius() float64 { return b.cfg.Radius }

// MaxDistance returns the maximum connection distance.
func (b *Bubble) MaxDistance() float64 { return b.maxDist }

// Anchor returns the anchor center.
func (b *Bubble) Anchor() Vec2 { return b.anchor }

// Position returns the drag bubble center.
func (b *Bubble) Position() Vec2 { return b.bubble }

// Distance returns the distance between the bubble and anchor centers.
func (b *Bubble) Distance() float64 { return b.distance }

// ConnectorRadius returns the anchor-side connector radius. Only meaningful
// while Connected reports true.
func (b *Bubble) ConnectorRadius() float64 { return b.connectorRadius }

// Connected reports whether the connector is shown: StateDrag with the
// bubble closer than 3/4 of MaxDistance.
func (b *Bubble) Connected() bool {
	return b.state == StateDrag && b.distance < b.connectThreshold()
}

// Connector returns the current connector outline. ok is false when the
// connector is hidden or the centers coincide.
func (b *Bubble) Connector() (Connector, bool) {
	if !b.Connected() {
		return Connector{}, false
	}
	return ComputeConnector(
		Circle{Center: b.anchor, Radius: b.connectorRadius},
		Circle{Center: b.bubble, Radius: b.cfg.Radius},
	)
}

// Explosion returns a copy of the explosion playback. The zero value means
// no explosion is playing.
func (b *Bubble) Explosion() Explosion {
	if b.explosion == nil {
		return Explosion{}
	}
	return *b.explosion
}

// Dirty reports whether anything changed since the last Draw or ClearDirty.
func (b *Bubble) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag without drawing.
func (b *Bubble) ClearDirty() { b.dirty = false }

// Size returns the surface size last passed to Resize.
func (b *Bubble) Size() (int, int) { return b.width, b.height }

// NaturalSize is the size a host should use when it has no size constraint:
// a square just large enough for the resting dot.
func (b *Bubble) NaturalSize() (int, int) {
	d := int(2 * b.cfg.Radius)
	return d, d
}
