package core

// Font describes the metrics of a display font.
// Text width is measured as runes * size * Advance, height as size * LineHeight.
type Font struct {
	Name       string  `yaml:"name" toml:"name"`
	Advance    float64 `yaml:"advance" toml:"advance"`         // Glyph advance per unit of font size
	LineHeight float64 `yaml:"line_height" toml:"line_height"` // Line height per unit of font size
}

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are world units, independent of the terminal size.
type RuntimeConfig struct {
	ScreenW  float64 // World width
	ScreenH  float64 // World height
	TickRate int     // Frames per second requested from the host
	Seed     int64   // RNG seed for deterministic gameplay
	Font     Font    // Font used for HUD text
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Font: Font{
			Name:       "mono",
			Advance:    0.5,
			LineHeight: 1.0,
		},
	}
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Lives remaining, never negative
	Phase    string // Current phase of the state machine
	GameOver bool   // Whether the round has ended (won or lost)
	Won      bool   // Whether the round ended with every block destroyed
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}

// RoundStats summarizes a round for history and logging.
type RoundStats struct {
	BlocksDestroyed int     // Blocks reduced to zero HP
	BallsSpawned    int     // Balls added after the initial one
	Frames          int     // Simulated frames while playing
	Elapsed         float64 // Simulated seconds while playing
}
