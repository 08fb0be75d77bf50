package knot

// InjectClick queues a click at the given screen coordinates. The left button
// adds a control point, the right button deletes one. The event is consumed
// on the next tick, in place of real input.
func (s *Saver) InjectClick(x, y float64, button MouseButton) {
	s.injectQueue = append(s.injectQueue, pointerEvent(button, x, y))
}

// InjectAction queues a keyboard action such as ActionNextCurve. Pointer
// actions injected this way apply at (0, 0); use InjectClick for those.
func (s *Saver) InjectAction(action Action) {
	s.injectQueue = append(s.injectQueue, inputEvent{action: action})
}

// processInjectedInput pops and applies one queued event. It reports whether
// an event was consumed, in which case real input is skipped for the tick.
func (s *Saver) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.apply(ev)
	return true
}
