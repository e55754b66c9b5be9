package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/logging"
	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var (
	flagDifficulty string
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a dungeon run",
	Long: `Start a dungeon run.

Controls:
  W/A/S/D, Arrows  - Move
  I/J/K/L          - Cast the active spell up/left/down/right
  Left click       - Cast toward the mouse pointer
  Q/U, E/O         - Previous / next spell
  1-9              - Select a spell slot
  P                - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Esc              - Leave the dungeon

Difficulty options:
  easy   - Start at lowest difficulty, faster energy recharge
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, slower recharge, one more monster alive
  fixed  - No progression, stays at config's initial level

Examples:
  dungeon play
  dungeon play --difficulty hard
  dungeon play --config ./my-dungeon.yaml
  dungeon play --seed 42 --log ./run.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the run flags on cmd. The root command shares them
// so that a bare "dungeon" starts a run.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write a per-frame debug trace to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one local session. Resources are released by its defers before
// runPlay decides the exit code.
func play() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := loadDungeon(preset)
	if err != nil {
		return err
	}

	runtime := runtimeConfig()
	warnIfTooSmall(cfg, runtime)

	var trace *log.Logger
	if flagLogPath != "" {
		l, f, traceErr := logging.OpenTrace(flagLogPath, "dungeon")
		if traceErr != nil {
			return traceErr
		}
		defer f.Close()
		trace = l
		trace.Info("run config", "board", tui.BoardFor(preset), "seed", runtime.Seed, "fps", runtime.TickRate)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Store:   store,
		Board:   tui.BoardFor(preset),
		Player:  playerName(),
		Trace:   trace,
	}); err != nil {
		return fmt.Errorf("running dungeon: %w", err)
	}
	return nil
}

// loadDungeon loads the config and applies a difficulty preset.
func loadDungeon(preset config.DifficultyPreset) (config.DungeonConfig, error) {
	cfg, err := config.LoadDungeon(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyDungeonPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// warnIfTooSmall tells the player up front when the arena, its border and
// the HUD will not fit the terminal.
func warnIfTooSmall(cfg config.DungeonConfig, rt core.RuntimeConfig) {
	needW, needH := cfg.Arena.Width+2, cfg.Arena.Height+6
	if rt.ScreenW < needW || rt.ScreenH < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the arena needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, needW, needH)
	}
}

// playerName returns the name recorded with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
