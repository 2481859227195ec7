// Package config provides YAML/TOML game configuration loading and
// difficulty management for the breakout game.
package config

// BreakoutConfig contains all configuration for a breakout round.
// Sizes and positions are world units; speeds are world units per second.
type BreakoutConfig struct {
	Screen     BreakoutScreen   `yaml:"screen" toml:"screen"`
	Paddle     BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball" toml:"ball"`
	Grid       BreakoutGrid     `yaml:"grid" toml:"grid"`
	Gameplay   BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
	HUD        BreakoutHUD      `yaml:"hud" toml:"hud"`
	Input      BreakoutInput    `yaml:"input" toml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BreakoutScreen defines the size of the simulated world.
type BreakoutScreen struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutPaddle defines the player's paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the bottom edge to the paddle top
}

// BreakoutBall defines ball size and motion.
type BreakoutBall struct {
	Size       float64 `yaml:"size" toml:"size"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	RespawnGap float64 `yaml:"respawn_gap" toml:"respawn_gap"` // Gap between a respawned ball and the paddle
}

// BreakoutGrid defines the block layout.
type BreakoutGrid struct {
	Cols             int     `yaml:"cols" toml:"cols"`
	Rows             int     `yaml:"rows" toml:"rows"`
	BlockWidth       float64 `yaml:"block_width" toml:"block_width"`
	BlockHeight      float64 `yaml:"block_height" toml:"block_height"`
	Padding          float64 `yaml:"padding" toml:"padding"`
	TopMargin        float64 `yaml:"top_margin" toml:"top_margin"`
	BlockHP          int     `yaml:"block_hp" toml:"block_hp"`
	SpecialCount     int     `yaml:"special_count" toml:"special_count"`
	DistinctSpecials bool    `yaml:"distinct_specials" toml:"distinct_specials"`
}

// Total returns the number of blocks in the grid.
func (g BreakoutGrid) Total() int {
	return g.Cols * g.Rows
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives       int  `yaml:"lives" toml:"lives"`
	BlockPoints int  `yaml:"block_points" toml:"block_points"`
	ManualSpawn bool `yaml:"manual_spawn" toml:"manual_spawn"` // Start adds a centered ball while playing
}

// BreakoutHUD defines text placement.
type BreakoutHUD struct {
	FontSize float64 `yaml:"font_size" toml:"font_size"`
	Top      float64 `yaml:"top" toml:"top"`
	Left     float64 `yaml:"left" toml:"left"`
}

// BreakoutInput defines how the host turns key events into frames.
type BreakoutInput struct {
	HoldWindowMS  int     `yaml:"hold_window_ms" toml:"hold_window_ms"`   // How long a key counts as held after its last event
	MaxFrameDelta float64 `yaml:"max_frame_delta" toml:"max_frame_delta"` // Upper bound for dt in seconds
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown strings yield the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
