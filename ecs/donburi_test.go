package ecs

import (
	"testing"

	"github.com/phanxgames/knot"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []knot.CurveEvent
	CurveEventType.Subscribe(world, func(w donburi.World, e knot.CurveEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(knot.CurveEvent{Type: knot.EventPointAdded, Curve: 2, X: 100, Y: 200, Points: 3})
	sink.EmitEvent(knot.CurveEvent{Type: knot.EventSpeedChanged, Factor: knot.SpeedUp})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	CurveEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != knot.EventPointAdded || e.Curve != 2 || e.X != 100 || e.Y != 200 || e.Points != 3 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != knot.EventSpeedChanged || e.Factor != knot.SpeedUp {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromSaver(t *testing.T) {
	world := donburi.NewWorld()
	cfg := knot.DefaultConfig()
	cfg.Seed = 1
	s, err := knot.NewSaver(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.SetEventSink(NewDonburiSink(world))

	var types []knot.EventType
	CurveEventType.Subscribe(world, func(w donburi.World, e knot.CurveEvent) {
		types = append(types, e.Type)
	})

	s.InjectClick(10, 10, knot.MouseButtonLeft)
	s.InjectAction(knot.ActionNextCurve)
	s.InjectAction(knot.ActionRestart)
	for range 3 {
		if err := s.Update(); err != nil {
			t.Fatal(err)
		}
	}
	events.ProcessAllEvents(world)

	want := []knot.EventType{knot.EventPointAdded, knot.EventCurveSelected, knot.EventRestart}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	CurveEventType.Subscribe(world, func(w donburi.World, e knot.CurveEvent) {
		count1++
	})
	CurveEventType.Subscribe(world, func(w donburi.World, e knot.CurveEvent) {
		count2++
	})

	sink.EmitEvent(knot.CurveEvent{Type: knot.EventRestart})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
