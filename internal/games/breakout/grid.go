package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BuildGrid lays out cfg.Cols x cfg.Rows blocks in row-major order, centered
// horizontally and cfg.TopMargin below the top edge, then marks
// cfg.SpecialCount random blocks as ball spawners.
//
// Picks are made with replacement unless cfg.DistinctSpecials is set, so the
// default grid may hold fewer specials than requested.
func BuildGrid(screenW float64, cfg config.BreakoutGrid, rng *SimpleRNG) []*Block {
	total := cfg.Total()
	if total <= 0 {
		return nil
	}

	size := core.V(cfg.BlockWidth, cfg.BlockHeight)
	pitch := size.Add(core.V(cfg.Padding, cfg.Padding))
	start := core.V((screenW-pitch.X*float64(cfg.Cols))*0.5, cfg.TopMargin)

	blocks := make([]*Block, 0, total)
	for i := 0; i < total; i++ {
		col := float64(i % cfg.Cols)
		row := float64(i / cfg.Cols)
		pos := start.Add(core.V(col*pitch.X, row*pitch.Y))
		blocks = append(blocks, NewBlock(pos, size, cfg.BlockHP, BlockPlain))
	}

	specials := min(cfg.SpecialCount, total)
	if cfg.DistinctSpecials {
		markDistinct(blocks, specials, rng)
	} else {
		for i := 0; i < specials; i++ {
			blocks[rng.Intn(total)].Kind = BlockSpawnsBall
		}
	}

	return blocks
}

// markDistinct flags n different blocks using a partial Fisher-Yates shuffle
// of the block indices.
func markDistinct(blocks []*Block, n int, rng *SimpleRNG) {
	idx := make([]int, len(blocks))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		blocks[idx[i]].Kind = BlockSpawnsBall
	}
}

// CountSpecials returns how many blocks release a ball when destroyed.
func CountSpecials(blocks []*Block) int {
	n := 0
	for _, b := range blocks {
		if b.Kind == BlockSpawnsBall {
			n++
		}
	}
	return n
}
