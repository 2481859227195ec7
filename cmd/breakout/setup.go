package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// env is everything a command needs once flags are parsed.
type env struct {
	logger  *log.Logger
	cfg     config.BreakoutConfig
	font    core.Font
	store   *storage.Store
	logFile *os.File
}

// setup validates configuration, loads the font and optionally opens round
// history. When toFile is set, logs go to --log-file so they do not draw
// over the alternate screen. Config and font failures are fatal; storage
// failures only disable history.
func setup(toFile, withStore bool) (*env, error) {
	e := &env{}

	var w io.Writer = os.Stderr
	if toFile && flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, err
		}
		e.logFile = f
		w = f
	}
	e.logger = newLogger(w)

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		e.close()
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		e.close()
		return nil, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	e.cfg = cfg

	font, err := config.LoadFont(flagFont)
	if err != nil {
		e.close()
		return nil, err
	}
	e.font = font

	// The game reloads its config on every reset
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	if withStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			e.logger.Warn("could not open rounds database, history disabled", "err", err)
		} else {
			e.store = store
		}
	}

	e.logger.Debug("configuration loaded",
		"config", flagConfig,
		"difficulty", string(preset),
		"world", fmt.Sprintf("%vx%v", cfg.Screen.Width, cfg.Screen.Height),
		"font", font.Name,
	)
	return e, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// close releases the store and the log file.
func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("cannot close rounds database", "err", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// runtime returns the per-game runtime config. The world size stays zero
// so the game uses its configured size.
func (e *env) runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Font:     e.font,
	}
}

// options returns the TUI options for a terminal of the given size.
func (e *env) options(width, height int, allowBack bool) tui.Options {
	return tui.Options{
		Store:         e.store,
		Logger:        e.logger,
		Width:         width,
		Height:        height,
		HoldWindow:    time.Duration(e.cfg.Input.HoldWindowMS) * time.Millisecond,
		MaxFrameDelta: e.cfg.Input.MaxFrameDelta,
		AllowBack:     allowBack,
	}
}

// terminalSize returns the current terminal size or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return tui.DefaultWidth, tui.DefaultHeight
}
