package dragbubble

import "github.com/hajimehoshi/ebiten/v2"

// PointerTarget receives the press/move/release stream. *Bubble implements it.
type PointerTarget interface {
	Press(x, y float64)
	Move(x, y float64)
	Release()
}

// Pointer turns Ebitengine mouse and touch state into a single pointer
// stream for a PointerTarget. The first touch to go down wins; further
// touches are ignored until it lifts. While no touch is active the left
// mouse button drives the pointer.
//
// Call Update once per tick, before advancing animations.
type Pointer struct {
	// Exclude lists host controls drawn over the bubble. A gesture that
	// starts inside one of them is not forwarded to the target.
	Exclude []Rect

	target PointerTarget

	down         bool
	swallowed    bool // current gesture started inside Exclude
	lastX, lastY float64

	touchActive bool
	touchID     ebiten.TouchID
	touchIDs    []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewPointer creates a pointer adapter feeding target.
func NewPointer(target PointerTarget) *Pointer {
	return &Pointer{target: target}
}

// Down reports whether the pointer is currently pressed.
func (p *Pointer) Down() bool { return p.down }

// Position returns the last pointer position seen.
func (p *Pointer) Position() (float64, float64) { return p.lastX, p.lastY }

// Update reads one frame of input. A queued synthetic event takes the place
// of real input for that frame.
func (p *Pointer) Update() {
	if p.processInjectedInput() {
		return
	}
	if x, y, pressed, ok := p.readTouch(); ok {
		p.process(x, y, pressed)
		return
	}
	mx, my := ebiten.CursorPosition()
	p.process(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// readTouch tracks a single touch. ok is false when touch is not driving the
// pointer this frame.
func (p *Pointer) readTouch() (x, y float64, pressed, ok bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])

	if p.touchActive {
		for _, id := range p.touchIDs {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true, true
			}
		}
		// Tracked touch lifted: release at its last position.
		p.touchActive = false
		return p.lastX, p.lastY, false, true
	}

	if len(p.touchIDs) > 0 && !p.down {
		p.touchActive = true
		p.touchID = p.touchIDs[0]
		tx, ty := ebiten.TouchPosition(p.touchID)
		return float64(tx), float64(ty), true, true
	}
	return 0, 0, false, false
}

// process runs the pointer state machine for one sample.
func (p *Pointer) process(x, y float64, pressed bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.lastX, p.lastY = x, y
		if p.excluded(x, y) {
			p.swallowed = true
			return
		}
		p.target.Press(x, y)
	case !pressed && p.down:
		p.down = false
		p.lastX, p.lastY = x, y
		if p.swallowed {
			p.swallowed = false
			return
		}
		p.target.Release()
	case pressed && p.down:
		if p.swallowed {
			p.lastX, p.lastY = x, y
			return
		}
		if x != p.lastX || y != p.lastY {
			p.lastX, p.lastY = x, y
			p.target.Move(x, y)
		}
	default:
		p.lastX, p.lastY = x, y
	}
}

func (p *Pointer) excluded(x, y float64) bool {
	for _, r := range p.Exclude {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
