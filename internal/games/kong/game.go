// Package kong implements a two-level ladder-climbing platformer.
// The player climbs to Kong past barrels and monkeys, picking up a hammer
// to smash through or a blaster to shoot from range, before the clock runs out.
package kong

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// source, when set, is the configuration new games are built from
var source ConfigSource

var logger = discardLogger()

// LoadConfig loads and validates the configuration at path (empty searches
// the default locations), applies preset and makes new games use it.
// It returns the source and the file it came from, empty for the embedded
// default. A malformed file is an error and leaves the current source alone.
func LoadConfig(path string, preset config.DifficultyPreset) (*config.Source, string, error) {
	cfg, used, err := config.LoadKongWithPath(path)
	if err != nil {
		return nil, "", err
	}
	src := config.NewSource(cfg, preset)
	SetSource(src)
	return src, used, nil
}

// SetSource makes new games read their configuration from src.
// Passing nil restores the default search path.
func SetSource(src ConfigSource) {
	source = src
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger = l
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Game adapts a Run to the registry.Game interface.
type Game struct {
	id         string
	title      string
	startLevel int // 0 starts on the Home screen
	run        *Run
	cfg        config.KongConfig
}

// New creates a game that starts on the Home screen.
func New() *Game {
	return &Game{id: "kong", title: "Kong Climb"}
}

// NewLevel2 creates a game that starts directly in Level 2.
func NewLevel2() *Game {
	return &Game{id: "kong-level2", title: "Kong Climb: Level 2", startLevel: 2}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	src := source
	if src == nil {
		// The search path skips unusable files and ends at the embedded default.
		cfg, err := config.LoadKong("")
		if err != nil {
			cfg = config.DefaultKongConfig()
		}
		src = staticSource(cfg)
	}
	g.cfg = src.Config()

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.run = NewRun(src, rand.New(rand.NewSource(seed)), logger)
	if g.startLevel > 0 {
		g.run.Start(g.startLevel)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.run == nil {
		g.Reset(core.DefaultConfig())
	}
	g.run.Step(in)
	if lvl := g.run.Level(); lvl != nil {
		g.cfg = lvl.cfg
	} else {
		g.cfg = g.run.src.Config()
	}
	return core.StepResult{State: g.State()}
}

// Draw renders the current screen.
func (g *Game) Draw(dst core.Canvas) {
	if g.run == nil {
		return
	}
	drawRun(dst, g.run, g.cfg)
}

// WorldSize returns the world dimensions in pixels.
func (g *Game) WorldSize() (float64, float64) {
	if g.run == nil {
		cfg := config.DefaultKongConfig()
		return cfg.Window.Width, cfg.Window.Height
	}
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.run.Score(),
		GameOver: g.run.Phase() == PhaseEnd,
		Paused:   g.run.Paused(),
	}
}

// Run returns the underlying run state machine.
func (g *Game) Run() *Run {
	return g.run
}

func init() {
	registry.Register("kong", func() registry.Game {
		return New()
	})
	registry.Register("kong-level2", func() registry.Game {
		return NewLevel2()
	})
}
