package tween

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a tick script.
type scriptStep struct {
	Action string  `json:"action"`
	DT     float64 `json:"dt,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  float64 `json:"value,omitempty"`
}

// tickScript is the top-level JSON structure for a tick script.
type tickScript struct {
	FixedRate int          `json:"fixedRate,omitempty"`
	Steps     []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded sequence of frame times through a
// ManualRunner, making tween behavior reproducible frame by frame.
//
// Supported actions:
//
//	{"action": "tick", "dt": 0.016, "frames": 10}  // fire frames ticks of dt seconds
//	{"action": "timescale", "value": 0.5}          // change the time scale
//	{"action": "kill"}                             // kill the runner
type ScriptRunner struct {
	*ManualRunner

	steps     []scriptStep
	cursor    int
	remaining int
	done      bool
}

// LoadTickScript parses a JSON tick script and returns a ScriptRunner ready
// to be bound to an Engine.
func LoadTickScript(jsonData []byte) (*ScriptRunner, error) {
	var script tickScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tick script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tick script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tick", "timescale", "kill":
		default:
			return nil, fmt.Errorf("parse tick script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{
		ManualRunner: NewManualRunner(script.FixedRate),
		steps:        script.Steps,
	}, nil
}

// Done reports whether every step in the script has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Advance executes steps until one frame has been ticked or the script ends.
// It reports whether a frame was ticked.
func (r *ScriptRunner) Advance() bool {
	for !r.done {
		if r.remaining > 0 {
			r.remaining--
			r.Step(r.steps[r.cursor-1].DT)
			r.checkDone()
			return true
		}
		if r.cursor >= len(r.steps) {
			r.done = true
			return false
		}

		st := r.steps[r.cursor]
		r.cursor++
		switch st.Action {
		case "tick":
			r.remaining = max(st.Frames, 1)
		case "timescale":
			r.SetTimeScale(st.Value)
		case "kill":
			r.Kill()
			r.done = true
		}
	}
	return false
}

// RunToEnd executes the whole script and returns the number of frames ticked.
func (r *ScriptRunner) RunToEnd() int {
	frames := 0
	for r.Advance() {
		frames++
	}
	return frames
}

func (r *ScriptRunner) checkDone() {
	if r.remaining == 0 && r.cursor >= len(r.steps) {
		r.done = true
	}
}
