package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// binding maps an action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionFire, []ebiten.Key{ebiten.KeyF, ebiten.KeyX}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionSkip, []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// keyState reports whether a key is down, or went down this tick.
type keyState func(ebiten.Key) bool

// frameFrom builds an input frame from key state.
func frameFrom(down, justPressed keyState) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if justPressed(k) {
				in.Set(b.action)
			} else if down(k) {
				in.Hold(b.action)
			}
		}
	}
	return in
}

// pollInput reads the keyboard for the current tick.
func pollInput() core.InputFrame {
	return frameFrom(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}
