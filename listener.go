package dragbubble

// Listener receives bubble notifications. Every field is optional; a nil
// callback means the caller is not subscribed to that notification.
type Listener struct {
	OnDrag    func() // each pointer move while the connector is attached
	OnMove    func() // the Drag→Move transition and each pointer move after it
	OnRestore func() // restore animation finished, bubble back on its anchor
	OnDismiss func() // bubble released far away; fires before the explosion plays
}

// EventStore is the interface for optional ECS integration.
// When set on a Bubble, every notification is also forwarded as a BubbleEvent.
type EventStore interface {
	EmitEvent(event BubbleEvent)
}

// BubbleEvent carries notification data for the ECS bridge.
type BubbleEvent struct {
	Type     EventType
	State    State   // state after the notification
	X, Y     float64 // bubble center
	Distance float64 // bubble center to anchor center
}

// SetListener replaces the bubble's listener.
func (b *Bubble) SetListener(l Listener) {
	b.listener = l
}

// SetEventStore sets the optional ECS bridge. Pass nil to detach.
func (b *Bubble) SetEventStore(store EventStore) {
	b.store = store
}

// notify fires the listener callback for typ, then the ECS bridge.
func (b *Bubble) notify(typ EventType) {
	debugf("notify %s (state=%s distance=%.2f)", typ, b.state, b.distance)

	var fn func()
	switch typ {
	case EventDrag:
		fn = b.listener.OnDrag
	case EventMove:
		fn = b.listener.OnMove
	case EventRestore:
		fn = b.listener.OnRestore
	case EventDismiss:
		fn = b.listener.OnDismiss
	}
	if fn != nil {
		fn()
	}

	if b.store != nil {
		b.store.EmitEvent(BubbleEvent{
			Type:     typ,
			State:    b.state,
			X:        b.bubble.X,
			Y:        b.bubble.Y,
			Distance: b.distance,
		})
	}
}
