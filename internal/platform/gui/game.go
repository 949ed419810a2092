// Package gui runs games in a desktop window with Ebitengine.
// Unlike a terminal, the window reports real key-up events, so held and
// pressed input is exact.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// Options tune the window frontend.
type Options struct {
	// Scale multiplies the world size to get the window size.
	Scale float64
	// Reloads delivers configuration versions from a watcher.
	Reloads <-chan int
	Logger  *log.Logger
}

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game    registry.Game
	face    text.Face
	reloads <-chan int
	logger  *log.Logger
	poll    func() core.InputFrame
}

// NewGame wraps game for Ebitengine.
func NewGame(game registry.Game, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		game:    game,
		face:    defaultFace(),
		reloads: opts.Reloads,
		logger:  logger,
		poll:    pollInput,
	}
}

// Update advances the game one tick.
func (g *Game) Update() error {
	g.drainReloads()
	in := g.poll()
	if in.Pressed(core.ActionQuit) {
		return ebiten.Termination
	}
	g.game.Step(in)
	return nil
}

func (g *Game) drainReloads() {
	for {
		select {
		case v, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.logger.Info("config reloaded", "version", v)
		default:
			return
		}
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.game.Draw(NewImageCanvas(screen, g.face))
}

// Layout keeps the logical screen at the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.game.WorldSize()
	return int(w), int(h)
}

// Run opens a window and plays game until it is closed or Quit is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	game.Reset(cfg)
	w, h := game.WorldSize()

	ebiten.SetWindowSize(int(w*opts.Scale), int(h*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err := ebiten.RunGame(NewGame(game, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
