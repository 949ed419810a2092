package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
)

func keys(ks ...ebiten.Key) keyState {
	set := make(map[ebiten.Key]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestFrameFrom(t *testing.T) {
	in := frameFrom(keys(ebiten.KeyArrowLeft, ebiten.KeySpace), keys(ebiten.KeySpace))

	assert.True(t, in.Held(core.ActionLeft))
	assert.False(t, in.Pressed(core.ActionLeft))
	assert.True(t, in.Pressed(core.ActionJump))
	assert.False(t, in.Held(core.ActionRight))
}

func TestFrameFromAlternateKeys(t *testing.T) {
	in := frameFrom(keys(ebiten.KeyD), keys(ebiten.KeyX))

	assert.True(t, in.Held(core.ActionRight))
	assert.True(t, in.Pressed(core.ActionFire))
}

func TestEverySpriteHasColour(t *testing.T) {
	for _, id := range kong.Sprites {
		_, ok := spriteColors[id]
		assert.True(t, ok, id)
	}
}

type countingGame struct {
	steps int
	last  core.InputFrame
}

func (g *countingGame) ID() string                    { return "count" }
func (g *countingGame) Title() string                 { return "Count" }
func (g *countingGame) Reset(core.RuntimeConfig)      {}
func (g *countingGame) Draw(core.Canvas)              {}
func (g *countingGame) WorldSize() (float64, float64) { return 320, 200 }
func (g *countingGame) State() core.GameState         { return core.GameState{} }
func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{}
}

func TestGameUpdate(t *testing.T) {
	inner := &countingGame{}
	reloads := make(chan int, 2)
	reloads <- 2
	g := NewGame(inner, Options{Reloads: reloads})
	next := core.NewInputFrame()
	next.Set(core.ActionFire)
	g.poll = func() core.InputFrame { return next }

	require.NoError(t, g.Update())
	assert.Equal(t, 1, inner.steps)
	assert.True(t, inner.last.Pressed(core.ActionFire))
	assert.Empty(t, reloads)

	w, h := g.Layout(1, 1)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)
}

func TestGameQuit(t *testing.T) {
	inner := &countingGame{}
	g := NewGame(inner, Options{})
	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	g.poll = func() core.InputFrame { return quit }

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Zero(t, inner.steps)
}
