package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start the given variant (breakout by default).

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Space/Enter  - Start round (classic variant: also spawn a ball)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - Config values, speed ramps from 30%
  hard   - 2 lives, narrow paddle, fast ball
  fixed  - Config values, no speed ramp

Examples:
  breakout play
  breakout play breakout_classic
  breakout play --difficulty hard --seed 42
  breakout play --config ./my-breakout.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", gameID)
	}

	e, err := setup(true, true)
	if err != nil {
		return err
	}
	defer e.close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	e.logger.Info("starting round", "game", gameID, "seed", flagSeed)

	if err := tui.Run(game, e.runtime(), e.options(width, height, false)); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
