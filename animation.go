package dragbubble

import (
	"image"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultAnimationDuration is the restore and explosion duration in seconds.
const DefaultAnimationDuration = 0.5

// wobbleFactor sets the period of the restore wobble.
const wobbleFactor = 0.571429

// Wobble maps a time fraction to a damped-sine value fraction:
// 2^(-4t) * sin((t - f/4) * 2π/f) + 1. It starts at 0, overshoots 1 and
// settles around 1.
func Wobble(t float64) float64 {
	return math.Pow(2, -4*t)*math.Sin((t-wobbleFactor/4)*(2*math.Pi)/wobbleFactor) + 1
}

// WobbleEase is Wobble in gween's easing signature.
func WobbleEase(t, b, c, d float32) float32 {
	return b + c*float32(Wobble(float64(t/d)))
}

// Tween drives one value from 0 to 1 over a duration through an easing
// function. Call Update(dt) from the host clock. OnTick receives the eased
// value on every tick including the last; OnComplete runs once after it.
//
// A cancelled or finished tween ignores further updates.
type Tween struct {
	OnTick     func(value float64)
	OnComplete func()

	tw        *gween.Tween
	name      string
	cancelled bool
	done      bool
}

// NewTween creates a tween lasting duration seconds. A nil easing is linear.
func NewTween(name string, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{name: name, tw: gween.New(0, 1, duration, fn)}
}

// Update advances the tween by dt seconds. Elapsed time is accumulated, so
// irregular tick intervals are fine.
func (t *Tween) Update(dt float32) {
	if t.done || t.cancelled {
		debugf("tween %s: tick ignored (done=%v cancelled=%v)", t.name, t.done, t.cancelled)
		return
	}
	val, finished := t.tw.Update(dt)
	if t.OnTick != nil {
		t.OnTick(float64(val))
	}
	if finished {
		t.done = true
		debugf("tween %s: complete", t.name)
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Cancel stops the tween. Values already applied are left in place.
func (t *Tween) Cancel() {
	if t.done || t.cancelled {
		return
	}
	t.cancelled = true
	debugf("tween %s: cancelled", t.name)
}

// Done reports whether the tween ran to completion.
func (t *Tween) Done() bool { return t.done }

// Cancelled reports whether the tween was cancelled.
func (t *Tween) Cancelled() bool { return t.cancelled }

// Active reports whether the tween still accepts ticks.
func (t *Tween) Active() bool { return !t.done && !t.cancelled }

// AnimationKind names an Animator slot.
type AnimationKind uint8

const (
	AnimRestore AnimationKind = iota
	AnimExplosion
	numAnimationKinds
)

func (k AnimationKind) String() string {
	switch k {
	case AnimRestore:
		return "restore"
	case AnimExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Animator holds at most one live tween per kind. Starting a kind cancels the
// tween previously in that slot before installing the new one, so a
// superseded tween never sees another tick.
//
// There is no global animation manager; the owner calls Update each frame.
type Animator struct {
	slots [numAnimationKinds]*Tween
}

// Start installs t in the slot for kind, cancelling whatever was there.
func (a *Animator) Start(kind AnimationKind, t *Tween) {
	if old := a.slots[kind]; old != nil {
		old.Cancel()
	}
	a.slots[kind] = t
	debugf("tween %s: start", kind)
}

// Cancel cancels the tween in the slot for kind, if any.
func (a *Animator) Cancel(kind AnimationKind) {
	if old := a.slots[kind]; old != nil {
		old.Cancel()
		a.slots[kind] = nil
	}
}

// CancelAll cancels every slot.
func (a *Animator) CancelAll() {
	for k := range a.slots {
		a.Cancel(AnimationKind(k))
	}
}

// Running reports whether kind has a live tween.
func (a *Animator) Running(kind AnimationKind) bool {
	t := a.slots[kind]
	return t != nil && t.Active()
}

// Update ticks every live tween by dt seconds. Slots whose tween finished
// are cleared.
func (a *Animator) Update(dt float32) {
	for k := range a.slots {
		t := a.slots[k]
		if t == nil {
			continue
		}
		t.Update(dt)
		if a.slots[k] == t && !t.Active() {
			a.slots[k] = nil
		}
	}
}

// Explosion is the sprite-sequence playback shown after a dismiss.
type Explosion struct {
	Frames  []image.Image
	Index   int
	Playing bool
}

// Frame returns the frame to draw, or nil when playback stopped or the index
// ran past the last frame.
func (e *Explosion) Frame() image.Image {
	if e == nil || !e.Playing || e.Index < 0 || e.Index >= len(e.Frames) {
		return nil
	}
	return e.Frames[e.Index]
}

// frameAt maps an eased fraction to a frame index: floor(t * n).
func frameAt(t float64, n int) int {
	i := int(math.Floor(t * float64(n)))
	if i < 0 {
		return 0
	}
	return i
}
