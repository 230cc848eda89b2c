// Package ecs provides ECS adapters for glimpse's pointer events.
//
// The primary adapter is [NewDonburiStore], which bridges router events
// (down, up, move, wheel, enter, exit, context menu) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them. Only panes with a non-zero EntityID are reported; use
// [DonburiStore.BindPane] to give a pane an entity.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	store.BindPane(button)
//	router.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
