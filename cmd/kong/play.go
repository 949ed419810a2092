package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
	"github.com/vovakirdan/tui-kong/internal/platform/gui"
	"github.com/vovakirdan/tui-kong/internal/platform/tui"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagHoldMS     int
	flagGUI        bool
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Without a game the picker menu opens.

Controls:
  Left/Right, A/D  - Move
  Up/Down, W/S     - Climb ladders
  Space            - Jump
  F/X              - Fire the blaster
  Enter            - Start Level 1
  2                - Skip to Level 2 from the home screen
  P                - Pause
  Esc              - Back to the home screen
  Q/Ctrl+C         - Quit

Terminals report key presses, not releases. A key counts as held while
its repeats keep arriving within --hold-ms. Keep it above your terminal's
auto-repeat delay or a held Jump or Fire fires twice; lower values stop
movement sooner after a key is let go.

Difficulty options:
  easy   - More time, slower bananas, weaker Kong
  normal - Values from the config file
  hard   - Less time, faster bananas, tougher Kong

Examples:
  kong play
  kong play kong --difficulty easy
  kong play kong-level2
  kong play kong --config ./kong.yaml --watch --log-file kong.log
  kong play kong --gui --scale 0.75`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes (applies from the next level)")
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", int(tui.DefaultHoldWindow/time.Millisecond), "Terminal key hold window in milliseconds")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale for --gui")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	switch {
	case len(args) == 1:
		gameID = args[0]
	case flagGUI:
		gameID = "kong"
	default:
		result, menuErr := tui.RunMenu(cfg, preset)
		if menuErr != nil {
			return menuErr
		}
		if result.Quit {
			return nil
		}
		gameID = result.GameID
		preset = result.Difficulty
		cfg = result.Config
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'kong list' to see available games)", gameID)
	}

	// The terminal belongs to the game in TUI mode, so logs are dropped
	// unless --log-file is given.
	var fallback io.Writer = io.Discard
	if flagGUI {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	kong.SetLogger(logger)

	// A malformed config ends the command here, before any screen opens.
	src, path, err := kong.LoadConfig(flagConfig, preset)
	if err != nil {
		return err
	}
	defer kong.SetSource(nil)

	var reloads <-chan int
	if flagWatch {
		watcher, watchErr := startWatch(src, path, logger)
		if watchErr != nil {
			return watchErr
		}
		if watcher != nil {
			defer watcher.Close()
			reloads = watcher.Reloaded
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "game", gameID, "difficulty", preset, "gui", flagGUI)

	if flagGUI {
		err = gui.Run(game, cfg, gui.Options{
			Scale:   flagScale,
			Reloads: reloads,
			Logger:  logger,
		})
	} else {
		err = tui.Run(game, cfg, tui.Options{
			HoldWindow: time.Duration(flagHoldMS) * time.Millisecond,
			Reloads:    reloads,
			Logger:     logger,
		})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// startWatch watches path and reloads it into src. It returns nil when the
// config came from the embedded default and there is no file to watch.
func startWatch(src *config.Source, path string, logger *log.Logger) (*config.Watcher, error) {
	if path == "" {
		logger.Warn("no config file found, --watch has nothing to watch")
		fmt.Fprintln(os.Stderr, "Warning: no config file found, --watch ignored")
		return nil, nil
	}

	watcher, err := config.NewWatcher(path, src, logger)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Info("watching config", "path", path)
	return watcher, nil
}
