// Package breakout implements a real-time brick breaker: a paddle, a 6x6
// wall of two-hit blocks and any number of balls, some of which are released
// by special blocks when they break.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Round phases
const (
	StateMenu    = "menu"    // Waiting for Start
	StatePlaying = "playing" // Simulation running
	StateWon     = "won"     // Every block destroyed
	StateLost    = "lost"    // No lives left
)

// Phase texts
const (
	MenuText  = "Press SPACE to start"
	LostText  = "You LOST :("
	WonFormat = "You WON!!! with SCORE: %d"
)

// Colors for everything that is not a game object.
const (
	BackgroundColor = core.ColorWhite
	TextColor       = core.ColorBlack
)

// Variant selects between the registered rule sets.
type Variant int

const (
	VariantDefault Variant = iota // Start only leaves menus
	VariantClassic                // Start also adds a ball while playing
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game is the round controller: it owns every object of a round and runs
// the menu/playing/won/lost state machine.
type Game struct {
	variant Variant
	fixed   *config.BreakoutConfig // Bypasses file loading when set

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	rng        *SimpleRNG
	font       core.Font
	screenW    float64
	screenH    float64

	// Game objects
	paddle *Paddle
	balls  []*Ball
	blocks []*Block
	spawns []core.Vec2 // Ball spawns queued during the collision pass

	// Round state
	state string
	score int
	lives int
	stats core.RoundStats
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{variant: VariantDefault}
}

// NewClassic creates a Breakout game where Start adds a ball mid-round.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading a config file.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{variant: VariantDefault, fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "breakout_classic"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Breakout (Classic)"
	}
	return "Breakout"
}

// Reset loads configuration, seeds the RNG and builds a fresh round in the
// menu phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	if g.variant == VariantClassic {
		g.cfg.Gameplay.ManualSpawn = true
	}

	g.screenW, g.screenH = g.cfg.Screen.Width, g.cfg.Screen.Height
	if runtime.ScreenW > 0 && runtime.ScreenH > 0 {
		g.screenW, g.screenH = runtime.ScreenW, runtime.ScreenH
	}

	g.font = runtime.Font
	if g.font.Advance <= 0 || g.font.LineHeight <= 0 {
		g.font = config.DefaultFont()
	}

	g.rng = NewSimpleRNG(runtime.Seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.resetRound()
	g.state = StateMenu
}

func (g *Game) loadConfig() config.BreakoutConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	return cfg
}

// resetRound recreates the paddle, the ball collection and the grid.
func (g *Game) resetRound() {
	g.paddle = NewPaddle(g.screenW, g.screenH, g.cfg.Paddle)
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.balls = make([]*Ball, 0, 8)
	g.addBall(g.centerSpawn())
	g.blocks = BuildGrid(g.screenW, g.cfg.Grid, g.rng)
	g.spawns = g.spawns[:0]
	g.stats = core.RoundStats{}
}

// centerSpawn is where the first ball and manually spawned balls appear.
func (g *Game) centerSpawn() core.Vec2 {
	return core.V(g.screenW*0.5, g.screenH*0.5)
}

func (g *Game) addBall(pos core.Vec2) {
	g.balls = append(g.balls, NewBall(pos, g.cfg.Ball.Size, g.rng))
}

// Step advances the round by one frame.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionStart) {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.update(in, dt)
	case StateWon, StateLost:
		if in.Has(core.ActionStart) {
			g.resetRound()
			g.state = StateMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// update runs one playing frame. Order matters: balls released by blocks
// join the collection only after every ball has moved and collided.
func (g *Game) update(in core.InputFrame, dt float64) {
	g.stats.Frames++
	g.stats.Elapsed += dt

	if g.cfg.Gameplay.ManualSpawn && in.Has(core.ActionStart) {
		g.addBall(g.centerSpawn())
		g.stats.BallsSpawned++
	}

	g.paddle.Update(dt, in.Has(core.ActionLeft), in.Has(core.ActionRight), g.screenW)

	speed := g.difficulty.Speed(g.cfg.Ball.Speed, g.score, g.stats.Frames)
	for _, ball := range g.balls {
		ball.Update(dt, speed, g.screenW)
		core.ResolveCollision(&ball.Rect, &ball.Vel, g.paddle.Rect)

		for _, block := range g.blocks {
			if !block.Alive() {
				continue
			}
			if core.ResolveCollision(&ball.Rect, &ball.Vel, block.Rect) {
				g.hitBlock(block, ball)
			}
		}
	}

	for _, pos := range g.spawns {
		g.addBall(pos)
		g.stats.BallsSpawned++
	}
	g.spawns = g.spawns[:0]

	g.pruneBalls()
	g.pruneBlocks()
}

// hitBlock applies one hit and handles destruction.
func (g *Game) hitBlock(block *Block, ball *Ball) {
	if !block.Hit() {
		return
	}
	g.score += g.cfg.Gameplay.BlockPoints
	g.stats.BlocksDestroyed++
	if block.Kind == BlockSpawnsBall {
		g.spawns = append(g.spawns, ball.Rect.Pos())
	}
}

// pruneBalls drops balls below the screen. Losing the last ball costs a life.
func (g *Game) pruneBalls() {
	before := len(g.balls)
	kept := g.balls[:0]
	for _, ball := range g.balls {
		if ball.Rect.Y <= g.screenH {
			kept = append(kept, ball)
		}
	}
	clear(g.balls[len(kept):before])
	g.balls = kept

	if before > 0 && len(g.balls) == 0 {
		g.loseLife()
	}
}

// loseLife ends the round on the last life, otherwise serves a new ball
// just above the paddle.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateLost
		return
	}

	size := g.cfg.Ball.Size
	g.addBall(core.V(
		g.paddle.CenterX()-size*0.5,
		g.paddle.Rect.Y-size-g.cfg.Ball.RespawnGap,
	))
	g.stats.BallsSpawned++
}

// pruneBlocks drops destroyed blocks. An empty wall wins the round, even if
// the last life was lost in the same frame.
func (g *Game) pruneBlocks() {
	before := len(g.blocks)
	kept := g.blocks[:0]
	for _, block := range g.blocks {
		if block.Alive() {
			kept = append(kept, block)
		}
	}
	clear(g.blocks[len(kept):before])
	g.blocks = kept

	if len(g.blocks) == 0 {
		g.state = StateWon
	}
}

// Render draws the frame: background, paddle, blocks, balls, then the text
// for the current phase.
func (g *Game) Render(dst core.Canvas) {
	dst.ClearBackground(BackgroundColor)

	g.paddle.Draw(dst)
	for _, block := range g.blocks {
		block.Draw(dst)
	}
	for _, ball := range g.balls {
		ball.Draw(dst)
	}

	switch g.state {
	case StateMenu:
		g.drawTitle(dst, MenuText)
	case StatePlaying:
		g.renderHUD(dst)
	case StateWon:
		g.drawTitle(dst, fmt.Sprintf(WonFormat, g.score))
	case StateLost:
		g.drawTitle(dst, LostText)
	}
}

func (g *Game) renderHUD(dst core.Canvas) {
	hud := g.cfg.HUD

	scoreText := fmt.Sprintf("score: %d", g.score)
	w, _ := dst.MeasureText(scoreText, g.font, hud.FontSize)
	dst.DrawText(scoreText, g.screenW*0.5-w*0.5, hud.Top, g.font, hud.FontSize, TextColor)

	livesText := fmt.Sprintf("lives: %d", max(g.lives, 0))
	dst.DrawText(livesText, hud.Left, hud.Top, g.font, hud.FontSize, TextColor)
}

// drawTitle centers text on the screen.
func (g *Game) drawTitle(dst core.Canvas, text string) {
	size := g.cfg.HUD.FontSize
	w, h := dst.MeasureText(text, g.font, size)
	dst.DrawText(text, g.screenW*0.5-w*0.5, g.screenH*0.5-h*0.5, g.font, size, TextColor)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    max(g.lives, 0),
		Phase:    g.state,
		GameOver: g.state == StateWon || g.state == StateLost,
		Won:      g.state == StateWon,
	}
}

// Stats returns counters for the current round.
func (g *Game) Stats() core.RoundStats {
	return g.stats
}

// WorldSize returns the world dimensions chosen by the last Reset.
func (g *Game) WorldSize() (float64, float64) {
	return g.screenW, g.screenH
}

// Phase returns the current state machine phase.
func (g *Game) Phase() string {
	return g.state
}

// Paddle returns the player's paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Balls returns the live balls. The slice is owned by the game.
func (g *Game) Balls() []*Ball {
	return g.balls
}

// Blocks returns the remaining blocks. The slice is owned by the game.
func (g *Game) Blocks() []*Block {
	return g.blocks
}

// Config returns the configuration the current round was built from.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_classic", func() registry.Game {
		return NewClassic()
	})
}
