// dungeon is a real-time terminal dungeon: steer a caster to the exit while
// monsters close in, burning them down with spells.
//
// Usage:
//
//	dungeon                  - Play with the loaded config
//	dungeon play             - Same as above
//	dungeon menu             - Pick a difficulty interactively
//	dungeon serve            - Start SSH server for remote play
//	dungeon scores [board]   - Show high scores and recent runs
//	dungeon config           - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible monster identities
//	--db <path>      - Set database path (default: ~/.dungeon/scores.db)
//	--config <path>  - Use a custom dungeon config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Dungeon - a real-time spell-slinging crawl in your terminal",
	Long: `Dungeon drops you in an arena full of monsters. Reach the exit
to win; every monster you burn on the way is a point.

Available commands:
  play     - Start a run (default)
  menu     - Pick a difficulty, browse scores, play again
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective config

Examples:
  dungeon
  dungeon play --difficulty hard
  dungeon menu
  dungeon serve --ssh :2222
  dungeon scores dungeon_hard`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dungeon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
