package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dungeon/internal/platform/tui"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the dungeon with a difficulty picker",
	Long: `Start the dungeon in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter.
After a run ends, press Esc to return to the menu and go again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start a run
  Tab          - Scoreboard
  Q            - Quit

Examples:
  dungeon menu
  dungeon menu --fps 30
  dungeon menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		dungeonCfg, err := loadDungeon(menuResult.Preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if err := tui.Run(tui.Options{
			Config:  dungeonCfg,
			Runtime: cfg,
			Store:   store,
			Board:   tui.BoardFor(menuResult.Preset),
			Player:  playerName(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running dungeon: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
