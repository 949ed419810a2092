package kong

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Phase is the screen a run is on.
type Phase int

const (
	PhaseHome Phase = iota
	PhaseLevel1
	PhaseLevel2
	PhaseEnd
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhaseLevel1:
		return "level 1"
	case PhaseLevel2:
		return "level 2"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ConfigSource supplies the configuration each new level is built from.
type ConfigSource interface {
	Config() config.KongConfig
}

// staticSource always returns the same configuration.
type staticSource config.KongConfig

func (s staticSource) Config() config.KongConfig { return config.KongConfig(s) }

// Run sequences Home, Level 1, Level 2 and End, carrying the score between
// levels and adding the time bonus on wins.
type Run struct {
	src    ConfigSource
	rng    *rand.Rand
	logger *log.Logger

	phase  Phase
	level  *Level
	paused bool

	finalScore int
	won        bool
	lastLevel  *Level // the level that ended the run, kept for reporting
}

// NewRun creates a run on the Home screen.
func NewRun(src ConfigSource, rng *rand.Rand, logger *log.Logger) *Run {
	if logger == nil {
		logger = discardLogger()
	}
	return &Run{src: src, rng: rng, logger: logger}
}

// Start skips the Home screen and begins the given level with score 0.
func (r *Run) Start(level int) {
	r.startLevel(level, 0)
}

// Step advances the run one frame.
func (r *Run) Step(in core.InputFrame) {
	switch r.phase {
	case PhaseHome:
		switch {
		case in.Pressed(core.ActionConfirm):
			r.startLevel(1, 0)
		case in.Pressed(core.ActionSkip):
			r.startLevel(2, 0)
		}

	case PhaseLevel1, PhaseLevel2:
		if in.Pressed(core.ActionBack) {
			r.logger.Info("run abandoned", "level", r.level.Number())
			r.home()
			return
		}
		if in.Pressed(core.ActionPause) {
			r.paused = !r.paused
		}
		if r.paused {
			return
		}
		if r.level.Update(in) {
			r.finishLevel()
		}

	case PhaseEnd:
		if in.Pressed(core.ActionJump) || in.Pressed(core.ActionConfirm) {
			r.home()
		}
	}
}

func (r *Run) startLevel(n, score int) {
	lvl, err := NewLevel(n, r.src.Config(), score, r.rng)
	if err != nil {
		r.logger.Error("cannot start level", "level", n, "error", err)
		r.home()
		return
	}
	r.level = lvl
	r.paused = false
	r.phase = PhaseLevel1
	if n == 2 {
		r.phase = PhaseLevel2
	}
	r.logger.Info("level started", "level", n, "score", score)
}

func (r *Run) finishLevel() {
	lvl := r.level
	r.logger.Info("level ended",
		"level", lvl.Number(),
		"outcome", lvl.Outcome(),
		"score", lvl.ReportedScore(),
		"seconds_left", lvl.SecondsLeft())

	if lvl.Won() {
		bonus := lvl.TimeBonus()
		r.logger.Debug("time bonus", "level", lvl.Number(), "bonus", bonus)
		if r.phase == PhaseLevel1 {
			r.startLevel(2, lvl.Score()+bonus)
			return
		}
		r.end(lvl, true, lvl.Score()+bonus)
		return
	}
	r.end(lvl, false, lvl.ReportedScore())
}

func (r *Run) end(lvl *Level, won bool, score int) {
	r.lastLevel = lvl
	r.level = nil
	r.won = won
	r.finalScore = score
	r.phase = PhaseEnd
	r.logger.Info("run ended", "won", won, "score", score)
}

func (r *Run) home() {
	r.level = nil
	r.lastLevel = nil
	r.paused = false
	r.won = false
	r.finalScore = 0
	r.phase = PhaseHome
}

// Phase returns the current screen.
func (r *Run) Phase() Phase { return r.phase }

// Level returns the level being played, or nil outside a level.
func (r *Run) Level() *Level { return r.level }

// LastLevel returns the level that ended the run, or nil.
func (r *Run) LastLevel() *Level { return r.lastLevel }

// Paused reports whether the level is paused.
func (r *Run) Paused() bool { return r.paused }

// Won reports whether the finished run was won.
func (r *Run) Won() bool { return r.won }

// FinalScore returns the score shown on the End screen.
func (r *Run) FinalScore() int { return r.finalScore }

// Score returns the score to display for the current phase.
func (r *Run) Score() int {
	switch r.phase {
	case PhaseLevel1, PhaseLevel2:
		return r.level.Score()
	case PhaseEnd:
		return r.finalScore
	default:
		return 0
	}
}
