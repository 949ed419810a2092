package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// footerRows is the space below the playfield: status line and help.
const footerRows = 2

// Options tune the terminal frontend.
type Options struct {
	// HoldWindow is how long a key stays held after its last event.
	HoldWindow time.Duration
	// Reloads delivers configuration versions from a watcher.
	Reloads <-chan int
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	canvas  *ScreenCanvas
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	hold    *HoldTracker
	reloads <-chan int
	logger  *log.Logger
	clock   func() time.Time

	state    core.GameState
	status   string
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH))
	w, h := game.WorldSize()
	hm := help.New()
	hm.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewScreenCanvas(screen, w, h),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    hm,
		hold:    NewHoldTracker(opts.HoldWindow),
		reloads: opts.Reloads,
		logger:  logger,
		clock:   time.Now,
	}
}

func playRows(height int) int {
	return max(1, height-footerRows)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitReload(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		res := m.game.Step(m.hold.Frame(time.Time(msg)))
		m.state = res.State
		return m, tickCmd(m.config.TickRate)

	case reloadMsg:
		m.status = fmt.Sprintf("config v%d loaded, used from the next level", int(msg))
		m.logger.Info("config reloaded", "version", int(msg))
		return m, waitReload(m.reloads)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	a := m.keys.Action(msg)
	if a == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Key(a, m.clock())
	return m, nil
}

// View renders the playfield, the status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.canvas.SetWorld(m.game.WorldSize())
	m.game.Draw(m.canvas)

	status := theme.Status.Render(fmt.Sprintf("%s  score %d", m.game.Title(), m.state.Score))
	if m.state.Paused {
		status += theme.Warning.Render("  paused")
	}
	if m.status != "" {
		status += theme.Description.Render("  " + m.status)
	}
	return RenderScreen(m.screen) + "\n" + status + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState { return m.state }

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
