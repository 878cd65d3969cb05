package scrollfx

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a scroll script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a scroll script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected scrolls, clicks, waits and snapshots across
// frames for scripted runs. Attach to an Observer via SetTestRunner.
//
// Actions: "scroll" (jump to y), "scrollBy" (jump by dy), "smooth" (scroll
// to y over frames), "click" (screen x, y), "wait" (frames) and "snapshot"
// (calls OnSnapshot with label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	// OnSnapshot is called for every "snapshot" step.
	OnSnapshot func(label string, o *Observer)
}

// LoadTestScript parses a JSON scroll script and returns a TestRunner ready
// to be attached to an Observer via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scrollBy", "smooth", "click", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the observer. The runner's step
// method is called from Observer.Update before injected events are consumed.
func (o *Observer) SetTestRunner(runner *TestRunner) {
	o.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Observer.Update.
func (r *TestRunner) step(o *Observer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(o.injectQueue) > 0 {
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
	case "snapshot":
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label, o)
		}
	case "scroll":
		o.InjectScroll(st.Y)
	case "scrollBy":
		o.InjectScroll(o.ScrollY() + st.DY)
	case "smooth":
		o.InjectSmoothScroll(o.ScrollY(), st.Y, st.Frames)
	case "click":
		o.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(o.injectQueue) == 0 {
		r.done = true
	}
}
