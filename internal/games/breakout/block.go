package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BlockKind distinguishes plain blocks from ones that release a ball.
type BlockKind int

const (
	BlockPlain      BlockKind = iota // Destroyed without side effects
	BlockSpawnsBall                  // Releases a new ball when destroyed
)

// String returns the kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockPlain:
		return "plain"
	case BlockSpawnsBall:
		return "spawns_ball"
	default:
		return "unknown"
	}
}

// Block colors
const (
	BlockColorFull    = core.ColorRed
	BlockColorDamaged = core.ColorOrange
	BlockColorSpecial = core.ColorMagenta
)

// Block is a destructible target. It is passive: the round applies hits.
type Block struct {
	Rect  core.Rect
	HP    int
	MaxHP int
	Kind  BlockKind
}

// NewBlock creates a block at pos with the given size and hit points.
func NewBlock(pos, size core.Vec2, hp int, kind BlockKind) *Block {
	return &Block{
		Rect:  core.NewRect(pos.X, pos.Y, size.X, size.Y),
		HP:    hp,
		MaxHP: hp,
		Kind:  kind,
	}
}

// Alive reports whether the block still has hit points.
func (b *Block) Alive() bool {
	return b.HP > 0
}

// Hit removes one hit point and reports whether this hit destroyed the block.
// HP never drops below zero; hitting a destroyed block reports false.
func (b *Block) Hit() bool {
	if b.HP <= 0 {
		return false
	}
	b.HP--
	return b.HP == 0
}

// Color returns the fill color for the block's current state.
func (b *Block) Color() core.Color {
	switch {
	case b.Kind == BlockSpawnsBall:
		return BlockColorSpecial
	case b.HP >= b.MaxHP:
		return BlockColorFull
	default:
		return BlockColorDamaged
	}
}

// Draw renders the block.
func (b *Block) Draw(c core.Canvas) {
	c.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.Color())
}
