package knot

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a user command understood by the Saver.
type Action uint8

const (
	ActionNone          Action = iota
	ActionAddPoint             // add a control point at the pointer
	ActionDeletePoint          // delete the control point under the pointer
	ActionUndoDelete           // restore the last deleted control point
	ActionRestart              // clear every curve
	ActionTogglePause          // stop or resume the animation
	ActionToggleHelp           // show or hide the help overlay
	ActionMoreSteps            // one more sample per window on the active curve
	ActionFewerSteps           // one less sample per window on the active curve
	ActionNextCurve            // activate the next curve, wrapping around
	ActionPrevCurve            // activate the previous curve, stopping at the first
	ActionSpeedUp              // multiply active velocities by SpeedUp
	ActionSlowDown             // multiply active velocities by SlowDown
	ActionTogglePolygon        // show or hide the control polygon
	ActionQuit                 // stop the game loop
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionAddPoint:      "add",
	ActionDeletePoint:   "delete",
	ActionUndoDelete:    "undo",
	ActionRestart:       "restart",
	ActionTogglePause:   "pause",
	ActionToggleHelp:    "help",
	ActionMoreSteps:     "more",
	ActionFewerSteps:    "fewer",
	ActionNextCurve:     "next",
	ActionPrevCurve:     "prev",
	ActionSpeedUp:       "faster",
	ActionSlowDown:      "slower",
	ActionTogglePolygon: "polygon",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction returns the action with the given name, as used in test
// scripts.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), i != int(ActionNone)
		}
	}
	return ActionNone, false
}

// keyBinding maps a key to an action.
type keyBinding struct {
	key    ebiten.Key
	action Action
}

// keyBindings lists every key the Saver reacts to. Several keys may share an
// action.
var keyBindings = []keyBinding{
	{ebiten.KeyEscape, ActionQuit},
	{ebiten.KeyR, ActionRestart},
	{ebiten.KeyP, ActionTogglePause},
	{ebiten.KeyF1, ActionToggleHelp},
	{ebiten.KeyKPAdd, ActionMoreSteps},
	{ebiten.KeyEqual, ActionMoreSteps},
	{ebiten.KeyKPSubtract, ActionFewerSteps},
	{ebiten.KeyMinus, ActionFewerSteps},
	{ebiten.KeyArrowRight, ActionNextCurve},
	{ebiten.KeyArrowLeft, ActionPrevCurve},
	{ebiten.KeyArrowUp, ActionSpeedUp},
	{ebiten.KeyArrowDown, ActionSlowDown},
	{ebiten.KeyC, ActionTogglePolygon},
	{ebiten.KeyU, ActionUndoDelete},
}

// inputEvent is one action together with the pointer position it applies to.
type inputEvent struct {
	action Action
	x, y   float64
}

// processInput handles at most one injected event, or else all real keyboard
// and mouse input of this tick.
func (s *Saver) processInput() {
	if s.processInjectedInput() {
		return
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			s.apply(inputEvent{action: b.action})
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.applyPointer(MouseButtonLeft)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.applyPointer(MouseButtonRight)
	}
}

func (s *Saver) applyPointer(button MouseButton) {
	mx, my := ebiten.CursorPosition()
	pos := V(float64(mx), float64(my))
	if !s.curves.Bounds().Contains(pos) {
		return
	}
	s.apply(pointerEvent(button, pos.X, pos.Y))
}

// pointerEvent maps a click to its action: the primary button adds a control
// point, the secondary button deletes one.
func pointerEvent(button MouseButton, x, y float64) inputEvent {
	ev := inputEvent{action: ActionAddPoint, x: x, y: y}
	if button == MouseButtonRight {
		ev.action = ActionDeletePoint
	}
	return ev
}

// apply runs a single action against the curves.
func (s *Saver) apply(ev inputEvent) {
	switch ev.action {
	case ActionAddPoint:
		vel := V(s.rng.Float64()*s.cfg.MaxInitialSpeed, s.rng.Float64()*s.cfg.MaxInitialSpeed)
		s.curves.Active().AddControlPoint(V(ev.x, ev.y), vel)
		s.emit(CurveEvent{Type: EventPointAdded, X: ev.x, Y: ev.y})
	case ActionDeletePoint:
		if s.curves.Active().DeleteNearestControlPoint(V(ev.x, ev.y)) {
			s.emit(CurveEvent{Type: EventPointDeleted, X: ev.x, Y: ev.y})
		}
	case ActionUndoDelete:
		if s.curves.Active().UndoDelete() {
			s.emit(CurveEvent{Type: EventPointRestored})
		}
	case ActionRestart:
		s.curves.Reset()
		s.emit(CurveEvent{Type: EventRestart})
	case ActionTogglePause:
		s.paused = !s.paused
		s.emit(CurveEvent{Type: EventPauseToggled, Paused: s.paused})
	case ActionToggleHelp:
		s.showHelp = !s.showHelp
	case ActionMoreSteps:
		s.curves.Active().IncResolution()
		s.emit(CurveEvent{Type: EventResolutionChanged})
	case ActionFewerSteps:
		s.curves.Active().DecResolution()
		s.emit(CurveEvent{Type: EventResolutionChanged})
	case ActionNextCurve:
		s.curves.Next()
		s.emit(CurveEvent{Type: EventCurveSelected})
	case ActionPrevCurve:
		s.curves.Previous()
		s.emit(CurveEvent{Type: EventCurveSelected})
	case ActionSpeedUp:
		s.curves.ScaleActiveVelocity(SpeedUp)
		s.emit(CurveEvent{Type: EventSpeedChanged, Factor: SpeedUp})
	case ActionSlowDown:
		s.curves.ScaleActiveVelocity(SlowDown)
		s.emit(CurveEvent{Type: EventSpeedChanged, Factor: SlowDown})
	case ActionTogglePolygon:
		s.showPolygon = !s.showPolygon
	case ActionQuit:
		s.quit = true
	}
}
