package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minerun/internal/platform/tui"
	"github.com/vovakirdan/minerun/internal/registry"
)

var (
	flagDebug    bool
	flagHitboxes bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode, or the endless run by default.

Controls:
  Space/Up/W  - Jump (hold to keep rising)
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back (while paused or after game over)
  H           - Toggle hitboxes
  ] / [       - Effects volume up/down
  = / -       - Music volume up/down
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at tier 0 and ramp up
  normal - Start one tier higher
  hard   - Start three tiers higher
  fixed  - Tiers never change

Examples:
  minerun play
  minerun play minerun_beams
  minerun play --difficulty hard --seed 42
  minerun play --config ./my-minerun.yaml --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug log to <data-dir>/debug.log")
	playCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Start with the hitbox overlay on")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "minerun"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown mode %q\nRun 'minerun list' to see available modes.", gameID)
	}

	applyGameFlags(flagHitboxes)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	host, closeHost := openHost(flagDebug)
	host.Logger.Info("play", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)

	_, runErr := tui.Run(game, host, runtimeConfig())
	closeHost()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
