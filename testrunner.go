package dragbubble

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadScript for a script without steps.
var ErrNoSteps = errors.New("no steps")

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events, label changes and
// screenshots across frames for automated visual testing. Attach to a Game
// via SetScriptRunner.
//
// Supported actions: press, move, release (x, y); drag (fromX, fromY, toX,
// toY, frames); wait (frames); text (text); reinit; resize (width, height);
// screenshot (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a runner ready to be attached
// to a Game.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrNoSteps)
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called at the start
// of every Update, before pointer input is read.
func (g *Game) SetScriptRunner(r *ScriptRunner) {
	g.runner = r
}

// Done reports whether every step has been executed and every injected event
// consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(g *Game) error {
	if r.done {
		return nil
	}
	// Wait for pending injections to drain before advancing.
	if g.Pointer.Pending() > 0 {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		g.Pointer.InjectPress(st.X, st.Y)
	case "move":
		g.Pointer.InjectMove(st.X, st.Y)
	case "release":
		g.Pointer.InjectRelease(st.X, st.Y)
	case "drag":
		g.Pointer.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "text":
		g.Bubble.SetText(st.Text)
	case "reinit":
		g.Bubble.Reinitialize()
	case "resize":
		g.SetSize(st.Width, st.Height)
	case "screenshot":
		g.Screenshot(st.Label)
	default:
		return fmt.Errorf("step %d: unknown action %q", r.cursor-1, st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.Pointer.Pending() == 0 {
		r.done = true
	}
	return nil
}
