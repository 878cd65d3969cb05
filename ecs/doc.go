// Package ecs provides ECS adapters for scrollfx binding events.
//
// The primary adapter is [NewDonburiSink], which bridges playback state
// changes (entered, settled, reversed) into a [Donburi] world. Every change
// is published as a typed event on [BindingEventType], and each binding is
// mirrored as an entity carrying a [BindingStatus] component so systems can
// query the current state of every effect on the page.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	observer.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
