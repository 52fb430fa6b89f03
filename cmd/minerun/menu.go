package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minerun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode and difficulty, play, then press B after game over to come
back to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  minerun menu
  minerun menu --fps 30
  minerun menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug log to <data-dir>/debug.log")
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags(false)

	host, closeHost := openHost(flagDebug)
	defer closeHost()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(cfg, host)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		if res.Quit {
			return
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(host.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := tui.SelectGame(res)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		host.Logger.Info("play", "game", res.GameID, "difficulty", res.Difficulty)

		back, err := tui.Run(game, host, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return
		}
	}
}
