// minerun is a side-scrolling cave runner for the terminal.
//
// Usage:
//
//	minerun list             - List available modes
//	minerun play [mode]      - Play a mode (default: minerun)
//	minerun menu             - Pick modes interactively
//	minerun scores [mode]    - Show the best runs for a mode
//	minerun config           - Print the effective configuration
//	minerun serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.minerun/scores.db)
//	--data-dir <path>    - Set settings directory (default: ~/.minerun)
//	--config <path>      - Use a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the Mine Run modes
	_ "github.com/vovakirdan/minerun/internal/games/minerun"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDataDir    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minerun",
	Short: "Mine Run - dodge spikes, tunnels and beams in your terminal",
	Long: `Mine Run is an endless side-scroller. Hold your miner in the air,
dodge spikes, squeeze through tunnels and slip between beams while the
world speeds up. Coins add to your score.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View the best runs
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  minerun play
  minerun play minerun_tunnel --difficulty hard
  minerun menu
  minerun scores
  minerun serve --ssh :2222`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.minerun/scores.db", "Path to scores database")
	pf.StringVar(&flagDataDir, "data-dir", "~/.minerun", "Directory for high score and preference files")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
