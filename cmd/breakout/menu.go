package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant and Tab to
open the round history. Esc or B leaves a round that is not running and
returns to the menu.

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./rounds.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := setup(true, true)
	if err != nil {
		return err
	}
	defer e.close()

	width, height := terminalSize()

	for {
		res, err := tui.RunMenu(e.store, width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(e.store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			e.logger.Warn("cannot create game", "err", err)
			continue
		}

		// Each round gets its own seed unless one was fixed on the command line.
		e.logger.Info("starting round", "game", res.GameID)
		if err := tui.Run(game, e.runtime(), e.options(width, height, true)); err != nil {
			e.logger.Error("cannot run game", "err", err)
		}
	}
}
