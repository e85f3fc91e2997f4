package gameshell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoSteps is returned when a script has no steps.
var ErrNoSteps = errors.New("no steps")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Input  string `json:"input,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a sequence of inputs and screenshots across frames, for
// automated runs of the shell. Steps:
//
//	{"action": "press", "input": "toggleFullscreen"}
//	{"action": "hold", "input": "right", "frames": 30}
//	{"action": "wait", "frames": 10}
//	{"action": "screenshot", "label": "after-move"}
//	{"action": "quit"}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	holding   Action
	holdCount int
	done      bool
}

// ParseScript parses a JSON input script.
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrNoSteps)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "hold":
			if _, err := ParseAction(st.Input); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		case "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and parses a JSON input script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame, adding its inputs to state. It
// returns the label of a screenshot requested this frame, if any.
func (s *Script) step(state *ActionState) (screenshot string, ok bool) {
	if s.done {
		return "", false
	}
	if s.holdCount > 0 {
		s.holdCount--
		state.Hold(s.holding)
		s.finishIfIdle()
		return "", false
	}
	if s.waitCount > 0 {
		s.waitCount--
		s.finishIfIdle()
		return "", false
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return "", false
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		a, _ := ParseAction(st.Input)
		state.Press(a)
	case "hold":
		a, _ := ParseAction(st.Input)
		state.Press(a)
		if st.Frames > 1 {
			s.holding = a
			s.holdCount = st.Frames - 1 // this frame counts as one
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1
		}
	case "screenshot":
		screenshot, ok = st.Label, true
	case "quit":
		state.Press(ActionQuit)
	}

	s.finishIfIdle()
	return screenshot, ok
}

func (s *Script) finishIfIdle() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && s.holdCount == 0 {
		s.done = true
	}
}
