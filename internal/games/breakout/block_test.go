package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBlockHit(t *testing.T) {
	b := NewBlock(core.V(0, 0), core.V(80, 32), 2, BlockPlain)

	if b.Hit() {
		t.Error("first hit should not destroy a 2 HP block")
	}
	if b.HP != 1 || !b.Alive() {
		t.Errorf("after one hit HP = %d, alive = %v", b.HP, b.Alive())
	}
	if !b.Hit() {
		t.Error("second hit should destroy the block")
	}
	if b.HP != 0 || b.Alive() {
		t.Errorf("after two hits HP = %d, alive = %v", b.HP, b.Alive())
	}
	if b.Hit() {
		t.Error("hitting a destroyed block should report false")
	}
	if b.HP != 0 {
		t.Errorf("HP went negative: %d", b.HP)
	}
}

func TestBlockColor(t *testing.T) {
	tests := []struct {
		name string
		kind BlockKind
		hits int
		want core.Color
	}{
		{"plain full", BlockPlain, 0, BlockColorFull},
		{"plain damaged", BlockPlain, 1, BlockColorDamaged},
		{"special full", BlockSpawnsBall, 0, BlockColorSpecial},
		{"special damaged", BlockSpawnsBall, 1, BlockColorSpecial},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBlock(core.V(10, 20), core.V(80, 32), 2, tc.kind)
			for i := 0; i < tc.hits; i++ {
				b.Hit()
			}
			if got := b.Color(); got != tc.want {
				t.Errorf("Color() = %v, expected %v", got, tc.want)
			}

			c := newRecordCanvas(800, 600)
			b.Draw(c)
			if len(c.calls) != 1 || c.calls[0].color != tc.want || c.calls[0].x != 10 || c.calls[0].y != 20 {
				t.Errorf("Draw() = %+v", c.calls)
			}
		})
	}
}

func TestBlockKindString(t *testing.T) {
	if BlockPlain.String() != "plain" || BlockSpawnsBall.String() != "spawns_ball" {
		t.Errorf("unexpected kind names: %s, %s", BlockPlain, BlockSpawnsBall)
	}
}
