package core

// RuntimeConfig contains configuration passed to frontends at start-up.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal only)
	ScreenH  int // Screen height in characters (terminal only)
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game as seen by a frontend.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the snake is dead
	Paused   bool // Whether the game is paused
	Waiting  bool // Whether the snake is waiting for its first move
}
