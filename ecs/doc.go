// Package ecs provides ECS adapters for grove's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges grove lifecycle
// events (created, started, destroyed, instantiated) into a [Donburi] world
// as typed events. Subscribe to [LifecycleEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
