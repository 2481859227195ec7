package breakout

import "math"

// Snapshot contains the complete round state as primitive values.
// Used for determinism tests and debugging.
type Snapshot struct {
	Frames          int
	State           string
	Score           int
	Lives           int
	BlocksDestroyed int
	BallsSpawned    int

	PaddleX float64

	// Each ball is 4 floats: X, Y, VX, VY
	BallCount int
	BallData  []float64

	// Each block is 4 values: X, Y, HP, Kind
	BlockCount int
	BlockData  []float64

	RNGState uint64
}

// Snapshot returns the current round state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*4)
	for _, ball := range g.balls {
		ballData = append(ballData, ball.Rect.X, ball.Rect.Y, ball.Vel.X, ball.Vel.Y)
	}

	blockData := make([]float64, 0, len(g.blocks)*4)
	for _, block := range g.blocks {
		blockData = append(blockData, block.Rect.X, block.Rect.Y, float64(block.HP), float64(block.Kind))
	}

	return Snapshot{
		Frames:          g.stats.Frames,
		State:           g.state,
		Score:           g.score,
		Lives:           g.lives,
		BlocksDestroyed: g.stats.BlocksDestroyed,
		BallsSpawned:    g.stats.BallsSpawned,
		PaddleX:         g.paddle.Rect.X,
		BallCount:       len(g.balls),
		BallData:        ballData,
		BlockCount:      len(g.blocks),
		BlockData:       blockData,
		RNGState:        g.rng.state,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksDestroyed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsSpawned)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlockCount)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
