package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/font.yaml
var defaultFontYAML []byte

// DefaultBreakoutConfig returns hardcoded defaults for Breakout.
// Used only if the embedded YAML cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: BreakoutScreen{Width: 800, Height: 600},
		Paddle: BreakoutPaddle{
			Width:        150,
			Height:       32,
			Speed:        750,
			BottomOffset: 100,
		},
		Ball: BreakoutBall{
			Size:       50,
			Speed:      400,
			RespawnGap: 10,
		},
		Grid: BreakoutGrid{
			Cols:         6,
			Rows:         6,
			BlockWidth:   80,
			BlockHeight:  32,
			Padding:      5,
			TopMargin:    50,
			BlockHP:      2,
			SpecialCount: 3,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BlockPoints: 10,
		},
		HUD: BreakoutHUD{
			FontSize: 20,
			Top:      40,
			Left:     30,
		},
		Input: BreakoutInput{
			HoldWindowMS:  150,
			MaxFrameDelta: 0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 360,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultFont returns the hardcoded HUD font descriptor.
func DefaultFont() core.Font {
	return core.Font{Name: "mono", Advance: 0.5, LineHeight: 1.0}
}
