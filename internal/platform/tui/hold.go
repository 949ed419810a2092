package tui

import (
	"time"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last event.
// It must exceed the terminal's auto-repeat delay (typically 250-600ms),
// otherwise the gap before the first repeat releases the key and the
// repeat registers as a second press.
const DefaultHoldWindow = 500 * time.Millisecond

// HoldTracker turns the key events a terminal delivers (one per press plus
// auto-repeats) into held and pressed state. A key is held while events keep
// arriving within the window and pressed on the first event after a release.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pending  map[core.Action]bool
}

// NewHoldTracker creates a tracker. A non-positive window uses the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		pending:  make(map[core.Action]bool),
	}
}

// Window returns the hold window.
func (h *HoldTracker) Window() time.Duration { return h.window }

// Key records a key event for a at now.
func (h *HoldTracker) Key(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !h.heldAt(a, now) {
		h.pending[a] = true
	}
	h.lastSeen[a] = now
}

func (h *HoldTracker) heldAt(a core.Action, now time.Time) bool {
	seen, ok := h.lastSeen[a]
	return ok && now.Sub(seen) <= h.window
}

// Frame builds the input for the tick at now and consumes pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		in.Hold(a)
	}
	for a := range h.pending {
		in.Set(a)
	}
	clear(h.pending)
	return in
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.lastSeen)
	clear(h.pending)
}
