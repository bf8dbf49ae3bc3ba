package snake

// StateType represents the lifecycle state of a game.
type StateType string

const (
	StateWaiting StateType = "waiting" // Alive, not started yet
	StatePlaying StateType = "playing"
	StateDead    StateType = "dead"
)

// Snapshot captures the board state for determinism testing and debugging.
type Snapshot struct {
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	Speed     float64
	FoodCount int
	Pending   int
	State     StateType
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case !b.snake.Alive():
		state = StateDead
	case !b.snake.Moving():
		state = StateWaiting
	}

	head := b.snake.Head()
	return Snapshot{
		Score:     b.snake.Score(),
		SnakeLen:  b.snake.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       b.snake.Direction(),
		Speed:     b.snake.Speed(),
		FoodCount: len(b.food),
		Pending:   b.snake.Pending(),
		State:     state,
	}
}
