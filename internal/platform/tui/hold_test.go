package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-kong/internal/core"
)

func TestHoldTrackerPressThenHold(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Key(core.ActionRight, t0)
	in := h.Frame(t0.Add(10 * time.Millisecond))
	assert.True(t, in.Pressed(core.ActionRight))
	assert.True(t, in.Held(core.ActionRight))

	in = h.Frame(t0.Add(50 * time.Millisecond))
	assert.False(t, in.Pressed(core.ActionRight))
	assert.True(t, in.Held(core.ActionRight))

	// Auto-repeat keeps the key held without a new press.
	h.Key(core.ActionRight, t0.Add(90*time.Millisecond))
	in = h.Frame(t0.Add(150 * time.Millisecond))
	assert.False(t, in.Pressed(core.ActionRight))
	assert.True(t, in.Held(core.ActionRight))

	in = h.Frame(t0.Add(300 * time.Millisecond))
	assert.True(t, in.Empty())
}

func TestHoldTrackerPressAfterRelease(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Key(core.ActionJump, t0)
	h.Frame(t0)
	h.Key(core.ActionJump, t0.Add(500*time.Millisecond))
	in := h.Frame(t0.Add(510 * time.Millisecond))

	assert.True(t, in.Pressed(core.ActionJump))
}

func TestHoldTrackerPressSurvivesLateTick(t *testing.T) {
	h := NewHoldTracker(10 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Key(core.ActionFire, t0)
	in := h.Frame(t0.Add(time.Second))

	assert.True(t, in.Pressed(core.ActionFire))
}

func TestHoldTrackerDefaults(t *testing.T) {
	h := NewHoldTracker(0)
	assert.Equal(t, DefaultHoldWindow, h.Window())

	h.Key(core.ActionNone, time.Now())
	assert.True(t, h.Frame(time.Now()).Empty())

	h.Key(core.ActionLeft, time.Now())
	h.Reset()
	assert.True(t, h.Frame(time.Now()).Empty())
}

func TestDefaultWindowBridgesRepeatDelay(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(0, 0)

	// Press, then the first auto-repeat after a 400ms delay, then 30ms repeats.
	h.Key(core.ActionJump, t0)
	assert.True(t, h.Frame(t0.Add(16*time.Millisecond)).Pressed(core.ActionJump))

	presses := 0
	for ms := 400; ms <= 700; ms += 30 {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		h.Key(core.ActionJump, now)
		in := h.Frame(now.Add(time.Millisecond))
		assert.True(t, in.Held(core.ActionJump), "held at %dms", ms)
		if in.Pressed(core.ActionJump) {
			presses++
		}
	}
	assert.Zero(t, presses, "repeats must not count as new presses")
}
