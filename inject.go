package dragbubble

// syntheticPointerEvent represents a single injected pointer event.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update.
func (p *Pointer) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move to (x, y) with the pointer held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (p *Pointer) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, then a move to and a
// release at (toX, toY). The sequence consumes frames+1 frames. Minimum
// frames is 2.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectMove(toX, toY)
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. Returns true if an event was consumed
// (real input is skipped for that frame).
func (p *Pointer) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.process(evt.x, evt.y, evt.pressed)
	return true
}
