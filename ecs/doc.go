// Package ecs provides ECS adapters for the tween engine's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges tween lifecycle
// events (play, start, pause, repeat, end) into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tween.Default().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
