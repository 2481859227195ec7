package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.{yaml,toml} ->
// ./configs/breakout.{yaml,toml} -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when broken.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(customPath, data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("breakout") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseBreakout(path, data)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, nil
	}

	cfg, err := parseBreakout("breakout.yaml", defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFont loads a HUD font descriptor. An empty path selects the embedded
// default. Unlike game config there is no search path: the font is either
// named explicitly or built in.
func LoadFont(path string) (core.Font, error) {
	data := defaultFontYAML
	name := "font.yaml"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return core.Font{}, fmt.Errorf("config: cannot read font %s: %w", path, err)
		}
		name = path
	}

	font := DefaultFont()
	if err := decode(name, data, &font); err != nil {
		return core.Font{}, fmt.Errorf("config: cannot parse font %s: %w", name, err)
	}
	if err := validateFont(font); err != nil {
		return core.Font{}, fmt.Errorf("config: invalid font %s: %w", name, err)
	}
	return font, nil
}

func parseBreakout(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := decode(path, data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// decode picks the format from the file extension; anything that is not
// .toml is treated as YAML.
func decode(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// searchPaths lists the implicit config locations for a game, most specific first.
func searchPaths(game string) []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, game+".yaml"),
			filepath.Join(dir, game+".toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", game+".yaml"),
		filepath.Join("configs", game+".toml"),
	)
}

// userConfigDir returns ~/.breakout/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs")
}

// Validate checks the invariants the game relies on at construction time.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)

	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.Speed >= 0, "paddle.speed must not be negative")
	check(c.Paddle.BottomOffset >= 0, "paddle.bottom_offset must not be negative")

	check(c.Ball.Size > 0, "ball.size must be positive")
	check(c.Ball.Speed >= 0, "ball.speed must not be negative")
	check(c.Ball.RespawnGap >= 0, "ball.respawn_gap must not be negative")

	g := c.Grid
	check(g.Cols >= 0 && g.Rows >= 0, "grid dimensions must not be negative, got %dx%d", g.Cols, g.Rows)
	check(g.BlockWidth > 0 && g.BlockHeight > 0, "grid block size must be positive")
	check(g.Padding >= 0, "grid.padding must not be negative")
	check(g.TopMargin >= 0, "grid.top_margin must not be negative")
	check(g.BlockHP >= 1, "grid.block_hp must be at least 1")
	check(g.SpecialCount >= 0, "grid.special_count must not be negative")
	check(g.SpecialCount <= g.Total(), "grid.special_count %d exceeds %d blocks", g.SpecialCount, g.Total())

	check(c.Gameplay.Lives >= 1, "gameplay.lives must be at least 1")
	check(c.Gameplay.BlockPoints >= 0, "gameplay.block_points must not be negative")

	check(c.HUD.FontSize > 0, "hud.font_size must be positive")

	check(c.Input.HoldWindowMS >= 0, "input.hold_window_ms must not be negative")
	check(c.Input.MaxFrameDelta > 0, "input.max_frame_delta must be positive")

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty.progression.type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

func validateFont(f core.Font) error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if f.Advance <= 0 {
		errs = append(errs, errors.New("advance must be positive"))
	}
	if f.LineHeight <= 0 {
		errs = append(errs, errors.New("line_height must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config unchanged.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 200
		cfg.Ball.Speed = 320
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 110
		cfg.Ball.Speed = 480
	}
}
