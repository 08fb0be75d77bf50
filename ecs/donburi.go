package ecs

import (
	"github.com/phanxgames/knot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CurveEventType is the Donburi event type for knot curve events.
var CurveEventType = events.NewEventType[knot.CurveEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on CurveEventType and delivered by ProcessEvents or
// events.ProcessAllEvents.
func NewDonburiSink(world donburi.World) knot.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event knot.CurveEvent) {
	CurveEventType.Publish(s.world, event)
}
