package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
	"github.com/vovakirdan/tui-kong/internal/replay"
)

// simulateSeed replaces --seed 0 so headless runs are reproducible.
const simulateSeed = 1

var (
	flagSimScript     string
	flagSimFrames     int
	flagSimConfig     string
	flagSimDifficulty string
	flagSimLevel      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted input program without a display",
	Long: `Steps the game headless with inputs taken from a script and prints
where the run ended up.

A script is a comma or newline separated list of steps. Each step names
the actions held for that step, joined by '+', with an optional frame
count after '*'. Actions: idle, left, right, up, down, jump, fire,
confirm, skip, pause, back. '#' starts a comment. An action held in
consecutive frames is pressed only on its first frame.

The run stops at the end screen, after --frames frames, or when the
script runs out if --frames is 0. Frames past the end of the script are
idle.

Examples:
  kong simulate --script "confirm, right*40, right+jump, idle*120"
  kong simulate --script @run.txt --frames 3000 --difficulty hard
  kong simulate --level 2 --script "left*30" --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimScript, "script", "", "Input script, or @file to read it from a file")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 0, "Frames to run (0 = length of the script)")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 0, "Start in this level (0 = home screen)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	if err := simulateCommand(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulateCommand(out io.Writer) error {
	script, err := loadScript(flagSimScript)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagSimDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadKong(flagSimConfig)
	if err != nil {
		return err
	}
	if flagSimLevel < 0 || flagSimLevel > config.LevelCount {
		return fmt.Errorf("--level must be between 0 and %d", config.LevelCount)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = simulateSeed
	}
	run := kong.NewRun(config.NewSource(cfg, preset), rand.New(rand.NewSource(seed)), logger)
	if flagSimLevel > 0 {
		run.Start(flagSimLevel)
	}

	writeResult(out, simulate(run, script, flagSimFrames))
	return nil
}

// loadScript parses an inline script or, with a leading '@', a script file.
func loadScript(arg string) (replay.Script, error) {
	src := arg
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(name)
		if err != nil {
			return replay.Script{}, fmt.Errorf("read script: %w", err)
		}
		src = string(data)
	}
	return replay.Parse(src)
}

// simResult describes where a simulated run stopped.
type simResult struct {
	Phase   kong.Phase
	Level   int          // 0 when no level was played
	Outcome kong.Outcome // outcome of Level
	Score   int
	Won     bool
	Frames  int
}

// simulate steps run with the script's inputs. frames <= 0 runs the script's
// length. It stops early when the run reaches the end screen.
func simulate(run *kong.Run, script replay.Script, frames int) simResult {
	if frames <= 0 {
		frames = script.Len()
	}
	feed := replay.NewFeed(script)

	used := 0
	for used < frames && run.Phase() != kong.PhaseEnd {
		in, ok := feed.Next()
		if !ok {
			in = core.NewInputFrame()
		}
		run.Step(in)
		used++
	}

	res := simResult{
		Phase:  run.Phase(),
		Score:  run.Score(),
		Won:    run.Won(),
		Frames: used,
	}
	lvl := run.Level()
	if lvl == nil {
		lvl = run.LastLevel()
	}
	if lvl != nil {
		res.Level = lvl.Number()
		res.Outcome = lvl.Outcome()
	}
	return res
}

func writeResult(w io.Writer, r simResult) {
	fmt.Fprintf(w, "phase:   %s\n", r.Phase)
	if r.Level > 0 {
		fmt.Fprintf(w, "level:   %d (%s)\n", r.Level, r.Outcome)
	} else {
		fmt.Fprintln(w, "level:   none")
	}
	if r.Phase == kong.PhaseEnd {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(w, "result:  %s\n", result)
	}
	fmt.Fprintf(w, "score:   %d\n", r.Score)
	fmt.Fprintf(w, "frames:  %d\n", r.Frames)
}
