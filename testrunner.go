package knot

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of clicks, key actions, waits and
// screenshots, one step per tick, for automated visual testing. Attach it
// with SetTestRunner.
//
// Supported steps:
//
//	{"action": "click", "x": 100, "y": 200}
//	{"action": "rightclick", "x": 100, "y": 200}
//	{"action": "key", "key": "next"}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-click"}
//
// Key names are those of Action.String.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses and checks a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "rightclick", "wait", "screenshot":
		case "key":
			if _, ok := ParseAction(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key action %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is processed.
func (s *Saver) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick.
func (r *TestRunner) step(s *Saver) {
	if r.done {
		return
	}
	// Let earlier injections drain first.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y, MouseButtonLeft)
	case "rightclick":
		s.InjectClick(st.X, st.Y, MouseButtonRight)
	case "key":
		action, _ := ParseAction(st.Key)
		s.InjectAction(action)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}
}
