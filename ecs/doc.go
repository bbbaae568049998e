// Package ecs provides ECS adapters for dragbubble's notification events.
//
// The primary adapter is [NewDonburiStore], which bridges bubble
// notifications (drag, move, restore, dismiss) into a [Donburi] world as
// typed events. Subscribe to [BubbleEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	bubble.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
