package ecs

import (
	"github.com/phanxgames/dragbubble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BubbleEventType is the Donburi event type for bubble notifications.
var BubbleEventType = events.NewEventType[dragbubble.BubbleEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Notifications are published to BubbleEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dragbubble.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dragbubble.BubbleEvent) {
	BubbleEventType.Publish(s.world, event)
}
