package ecs

import (
	"testing"

	"github.com/phanxgames/dragbubble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dragbubble.BubbleEvent
	BubbleEventType.Subscribe(world, func(w donburi.World, e dragbubble.BubbleEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dragbubble.BubbleEvent{
		Type:     dragbubble.EventDrag,
		State:    dragbubble.StateDrag,
		X:        100,
		Y:        200,
		Distance: 50,
	})
	store.EmitEvent(dragbubble.BubbleEvent{
		Type:  dragbubble.EventDismiss,
		State: dragbubble.StateDismiss,
	})

	// Events are queued; process them.
	BubbleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != dragbubble.EventDrag || e0.State != dragbubble.StateDrag {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 || e0.Distance != 50 {
		t.Errorf("event 0 position: (%v,%v) d=%v", e0.X, e0.Y, e0.Distance)
	}
	if received[1].Type != dragbubble.EventDismiss {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store dragbubble.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

// A full drag-and-dismiss on a real bubble publishes the listener sequence.
func TestDonburiStore_BubbleDismissSequence(t *testing.T) {
	world := donburi.NewWorld()
	b, err := dragbubble.New(dragbubble.Config{Radius: 12, Text: "9"})
	if err != nil {
		t.Fatal(err)
	}
	b.Resize(400, 400)
	b.SetEventStore(NewDonburiStore(world))

	var types []dragbubble.EventType
	BubbleEventType.Subscribe(world, func(w donburi.World, e dragbubble.BubbleEvent) {
		types = append(types, e.Type)
	})

	a := b.Anchor()
	b.Press(a.X, a.Y)
	b.Move(a.X+50, a.Y)
	b.Move(a.X+80, a.Y)
	b.Release()
	events.ProcessAllEvents(world)

	want := []dragbubble.EventType{dragbubble.EventDrag, dragbubble.EventMove, dragbubble.EventDismiss}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	BubbleEventType.Subscribe(world, func(w donburi.World, e dragbubble.BubbleEvent) {
		count1++
	})
	BubbleEventType.Subscribe(world, func(w donburi.World, e dragbubble.BubbleEvent) {
		count2++
	})

	store.EmitEvent(dragbubble.BubbleEvent{Type: dragbubble.EventRestore})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
