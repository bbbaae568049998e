package dragbubble

import "testing"

func TestInjectQueue(t *testing.T) {
	target := &recordingTarget{}
	p := NewPointer(target)

	p.InjectPress(10, 10)
	p.InjectMove(20, 10)
	p.InjectRelease(20, 10)
	if p.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", p.Pending())
	}

	for p.processInjectedInput() {
	}
	if p.Pending() != 0 {
		t.Errorf("Pending after drain = %d", p.Pending())
	}
	want := []string{"press", "move", "release"}
	if len(target.log) != len(want) {
		t.Fatalf("log = %v, want %v", target.log, want)
	}
	for i := range want {
		if target.log[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, target.log[i], want[i])
		}
	}
}

func TestProcessInjectedInputEmpty(t *testing.T) {
	p := NewPointer(&recordingTarget{})
	if p.processInjectedInput() {
		t.Error("empty queue should report nothing consumed")
	}
}

func TestInjectDrag(t *testing.T) {
	target := &recordingTarget{}
	p := NewPointer(target)
	p.InjectDrag(0, 0, 40, 0, 5)

	if p.Pending() != 6 {
		t.Fatalf("Pending = %d, want 6 (frames+1)", p.Pending())
	}
	for p.processInjectedInput() {
	}

	wantLog := []string{"press", "move", "move", "move", "move", "release"}
	wantX := []float64{0, 10, 20, 30, 40, -1}
	if len(target.log) != len(wantLog) {
		t.Fatalf("log = %v, want %v", target.log, wantLog)
	}
	for i := range wantLog {
		if target.log[i] != wantLog[i] {
			t.Errorf("event %d = %s, want %s", i, target.log[i], wantLog[i])
		}
		if !approxEqual(target.x[i], wantX[i], 1e-9) {
			t.Errorf("event %d x = %v, want %v", i, target.x[i], wantX[i])
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	p := NewPointer(&recordingTarget{})
	p.InjectDrag(0, 0, 10, 10, 0)
	if p.Pending() != 3 {
		t.Errorf("Pending = %d, want 3 (press, move, release)", p.Pending())
	}
}

func TestInjectDragDismissesBubble(t *testing.T) {
	b, c := newTestBubble(t, "9")
	p := NewPointer(b)
	a := b.Anchor()
	p.InjectDrag(a.X, a.Y, a.X+120, a.Y, 10)
	for p.processInjectedInput() {
	}
	if b.State() != StateDismiss {
		t.Errorf("state = %v, want dismiss", b.State())
	}
	if c.drag == 0 || c.move == 0 || c.dismiss != 1 {
		t.Errorf("drag=%d move=%d dismiss=%d", c.drag, c.move, c.dismiss)
	}
}
