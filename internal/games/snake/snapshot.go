package snake

// SnapshotState is the round state as seen by a replay.
type SnapshotState string

const (
	SnapshotPlaying     SnapshotState = "playing"
	SnapshotPaused      SnapshotState = "paused"
	SnapshotGameOver    SnapshotState = "game_over"
	SnapshotPausedSmall SnapshotState = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Moves          uint64
	Mode           string // "classic" or "timed"
	Score          int
	SnakeLen       int
	HeadX          int
	HeadY          int
	Dir            Direction
	FoodX          int
	FoodY          int
	MoveEveryTicks int
	Outcome        Outcome
	State          SnapshotState
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := SnapshotPlaying
	switch {
	case g.state == StateGameOver:
		state = SnapshotGameOver
	case g.tooSmall:
		state = SnapshotPausedSmall
	case g.paused:
		state = SnapshotPaused
	}

	head := g.snake.Head()
	return Snapshot{
		Tick:           g.tick,
		Moves:          g.moves,
		Mode:           string(g.mode),
		Score:          g.score,
		SnakeLen:       g.snake.Len(),
		HeadX:          head.X,
		HeadY:          head.Y,
		Dir:            g.snake.Heading(),
		FoodX:          g.food.X,
		FoodY:          g.food.Y,
		MoveEveryTicks: g.moveEveryTicks,
		Outcome:        g.lastOutcome,
		State:          state,
	}
}
