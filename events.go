package knot

// EventType identifies a change made to the curves by user input.
type EventType uint8

const (
	EventPointAdded        EventType = iota // control point appended to the active curve
	EventPointDeleted                       // control point removed from the active curve
	EventCurveSelected                      // active curve changed
	EventSpeedChanged                       // active curve velocities scaled
	EventResolutionChanged                  // active curve resolution changed
	EventRestart                            // every curve cleared
	EventPauseToggled                       // animation paused or resumed
	EventPointRestored                      // last deleted control point put back
)

var eventNames = [...]string{
	EventPointAdded:        "point-added",
	EventPointDeleted:      "point-deleted",
	EventCurveSelected:     "curve-selected",
	EventSpeedChanged:      "speed-changed",
	EventResolutionChanged: "resolution-changed",
	EventRestart:           "restart",
	EventPauseToggled:      "pause-toggled",
	EventPointRestored:     "point-restored",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// CurveEvent describes one change. Fields not relevant to Type are zero.
type CurveEvent struct {
	Type  EventType
	Curve int // index of the active curve

	// Position of the added or deleted control point.
	X, Y float64

	Points     int     // control points on the active curve after the change
	Resolution int     // resolution of the active curve after the change
	Factor     float64 // velocity factor for EventSpeedChanged
	Paused     bool    // state after EventPauseToggled
}

// EventSink receives curve events from a Saver. See the ecs subpackage for a
// donburi-backed implementation.
type EventSink interface {
	EmitEvent(event CurveEvent)
}

// SetEventSink sets the optional receiver of curve events.
func (s *Saver) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Saver) emit(ev CurveEvent) {
	if s.sink == nil {
		return
	}
	ev.Curve = s.curves.Index()
	if ev.Type != EventRestart && ev.Type != EventPauseToggled {
		c := s.curves.Active()
		ev.Points = c.Len()
		ev.Resolution = c.Resolution()
	}
	s.sink.EmitEvent(ev)
}
