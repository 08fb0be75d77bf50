// Package ecs provides ECS adapters for knot's curve events.
//
// The primary adapter is [NewDonburiSink], which publishes every
// [knot.CurveEvent] (points added or deleted, curve selection, speed and
// resolution changes, restart, pause) into a [Donburi] world as a typed event.
// Subscribe to [CurveEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	saver.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
