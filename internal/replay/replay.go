// Package replay parses scripted input programs for headless runs.
//
// A script is a list of steps separated by commas or newlines. Each step
// names the actions held for its duration, joined by '+', and an optional
// frame count after '*':
//
//	confirm, right*40, right+jump, idle*120, fire
//
// Lines starting with '#' are comments. An action counts as pressed only on
// the first frame of an unbroken hold, so "jump*10" is one jump.
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("replay: syntax error")

// idleName is the step with no actions.
const idleName = "idle"

// MaxFrames bounds the total length of a script, about 77 hours at 60fps.
const MaxFrames = 1 << 24

// Step holds a set of actions for a number of frames.
type Step struct {
	Actions []core.Action
	Frames  int
}

// Script is a parsed input program.
type Script struct {
	Steps []Step
}

// Parse reads a script.
func Parse(src string) (Script, error) {
	var s Script
	n, total := 0, 0
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			n++
			step, err := parseStep(tok)
			if err != nil {
				return Script{}, fmt.Errorf("%w: step %d (%q): %v", ErrSyntax, n, tok, err)
			}
			if step.Frames > MaxFrames-total {
				return Script{}, fmt.Errorf("%w: step %d (%q): script longer than %d frames", ErrSyntax, n, tok, MaxFrames)
			}
			total += step.Frames
			s.Steps = append(s.Steps, step)
		}
	}
	return s, nil
}

func parseStep(tok string) (Step, error) {
	names, count, hasCount := strings.Cut(tok, "*")
	step := Step{Frames: 1}
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n <= 0 {
			return Step{}, fmt.Errorf("frame count must be a positive integer")
		}
		step.Frames = n
	}

	for _, name := range strings.Split(names, "+") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == idleName {
			continue
		}
		a, ok := lookup(name)
		if !ok {
			return Step{}, fmt.Errorf("unknown action %q", name)
		}
		step.Actions = append(step.Actions, a)
	}
	return step, nil
}

// lookup maps a lower-case action name to its action. Quit is not
// scriptable.
func lookup(name string) (core.Action, bool) {
	for _, a := range core.Actions {
		if a != core.ActionQuit && strings.ToLower(a.String()) == name {
			return a, true
		}
	}
	return core.ActionNone, false
}

// Len returns the number of frames the script covers.
func (s Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Frames
	}
	return n
}

// String formats the script in its canonical form.
func (s Script) String() string {
	parts := make([]string, 0, len(s.Steps))
	for _, st := range s.Steps {
		names := make([]string, 0, len(st.Actions))
		for _, a := range st.Actions {
			names = append(names, strings.ToLower(a.String()))
		}
		if len(names) == 0 {
			names = append(names, idleName)
		}
		p := strings.Join(names, "+")
		if st.Frames != 1 {
			p += "*" + strconv.Itoa(st.Frames)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}

// Feed yields a script's input frames one at a time.
type Feed struct {
	steps []Step
	step  int
	frame int
	prev  map[core.Action]bool
}

// NewFeed starts feeding s from its first frame.
func NewFeed(s Script) *Feed {
	return &Feed{steps: s.Steps}
}

// Next returns the next frame, or false once the script is exhausted.
func (f *Feed) Next() (core.InputFrame, bool) {
	for f.step < len(f.steps) && f.frame >= f.steps[f.step].Frames {
		f.step++
		f.frame = 0
	}
	if f.step >= len(f.steps) {
		return core.InputFrame{}, false
	}

	st := f.steps[f.step]
	f.frame++

	in := core.NewInputFrame()
	held := make(map[core.Action]bool, len(st.Actions))
	for _, a := range st.Actions {
		if f.prev[a] {
			in.Hold(a)
		} else {
			in.Set(a)
		}
		held[a] = true
	}
	f.prev = held
	return in, true
}

// Done reports whether every frame has been fed.
func (f *Feed) Done() bool {
	for i := f.step; i < len(f.steps); i++ {
		left := f.steps[i].Frames
		if i == f.step {
			left -= f.frame
		}
		if left > 0 {
			return false
		}
	}
	return true
}
