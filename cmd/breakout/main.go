// breakout is a terminal breakout game: clear a 6x6 grid of blocks with a
// paddle and a growing set of balls.
//
// Usage:
//
//	breakout list              - List available variants
//	breakout play [variant]    - Play a variant (default: breakout)
//	breakout menu              - Pick variants interactively
//	breakout serve             - Start SSH server for remote play
//	breakout scores [variant]  - Show round history for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.breakout/rounds.db)
//	--config <path>       - Custom game config (.yaml or .toml)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--font <path>         - Font descriptor YAML
//	--log-file <path>     - Log destination while the TUI runs
//	--verbose             - Enable debug logging
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagFont       string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newLogger(os.Stderr).Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - clear the grid in your terminal",
	Long: `Breakout is a terminal take on the classic brick breaker.

Bounce the ball off the paddle to break a 6x6 grid of blocks. Every block
takes two hits; magenta blocks release an extra ball when destroyed.
Each block is worth 10 points and you start with 3 lives.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View round history

Examples:
  breakout play
  breakout play breakout_classic --difficulty hard
  breakout menu --config ./breakout.toml
  breakout serve --ssh :2222
  breakout scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.breakout/rounds.db", "Path to rounds database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagFont, "font", "", "Path to font descriptor YAML (embedded default if empty)")
	pf.StringVar(&flagLogFile, "log-file", "~/.breakout/breakout.log", "Log file used while the game screen is shown")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
