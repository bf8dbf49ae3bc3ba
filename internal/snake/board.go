package snake

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSize is returned for boards that cannot hold a new snake
	// and at least one food cell.
	ErrInvalidSize = errors.New("snake: invalid board size")

	// ErrInvalidRules is returned when Rules fail validation.
	ErrInvalidRules = errors.New("snake: invalid rules")

	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("snake: nil random source")
)

// RandomSource yields uniformly distributed integers in [min, max].
type RandomSource interface {
	Next(min, max int) int
}

// TickResult describes what happened during one Board tick.
type TickResult struct {
	Moved   bool // The snake advanced one cell
	Ate     bool // A food cell was eaten
	Died    bool // The snake hit a wall or itself
	Spawned int  // Food cells added by replenishment
}

// Board owns the snake and the food and drives the simulation.
type Board struct {
	columns int
	rows    int
	rules   Rules
	rand    RandomSource

	snake *Snake
	food  []Cell
}

// NewBoard creates a board with a centred snake and its first food cell.
func NewBoard(columns, rows int, rules Rules, src RandomSource) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, columns, rows)
	}
	// The tail trails left of the centre column and must stay on the board.
	// Any board wide enough for that has a free cell for food.
	if columns/2 < InitialLength-1 {
		return nil, fmt.Errorf("%w: %dx%d is too small for a snake of length %d",
			ErrInvalidSize, columns, rows, InitialLength)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}

	b := &Board{
		columns: columns,
		rows:    rows,
		rules:   rules,
		rand:    src,
	}
	b.snake = b.newSnake()
	b.SpawnFood()
	return b, nil
}

// Tick advances the snake, resolves collisions and food, and tops up the
// food supply. It does nothing once the snake is dead.
func (b *Board) Tick(elapsed time.Duration) TickResult {
	var res TickResult
	if !b.snake.Alive() {
		return res
	}

	res.Moved = b.snake.Tick(elapsed)
	if res.Moved {
		head := b.snake.Head()

		// Walls or own body end the game; nothing spawns on the death tick.
		if !b.InBounds(head) || b.snake.BodyContains(head) {
			b.snake.Kill()
			res.Died = true
			return res
		}

		// The head covers at most one food cell.
		for i, f := range b.food {
			if f.Same(head) {
				b.snake.Grow()
				b.food = append(b.food[:i], b.food[i+1:]...)
				res.Ate = true
				break
			}
		}
	}

	res.Spawned = b.SpawnFood()
	return res
}

// SpawnFood adds food cells on free squares until RequiredFood is met.
// It returns the number of cells added; it stops early only if the
// board has no free square left.
func (b *Board) SpawnFood() int {
	spawned := 0
	for len(b.food) < b.RequiredFood() {
		if b.freeCells() == 0 {
			break
		}

		// Keep sampling until we land on a square free of snake and food.
		var c Cell
		for {
			c = Cell{
				X: b.rand.Next(0, b.columns-1),
				Y: b.rand.Next(0, b.rows-1),
			}
			if !b.snake.Contains(c) && !b.isFood(c) {
				break
			}
		}

		b.food = append(b.food, c)
		spawned++
	}
	return spawned
}

// Reset replaces the snake with a fresh centred one and respawns food.
func (b *Board) Reset() {
	b.snake = b.newSnake()
	b.food = b.food[:0]
	b.SpawnFood()
}

// RequiredFood is the number of food cells the board keeps on the grid
// for the current score.
func (b *Board) RequiredFood() int {
	return b.snake.Score()/b.rules.FoodPerScore + 1
}

// InBounds reports whether c lies on the grid.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.columns && c.Y >= 0 && c.Y < b.rows
}

// Snake returns the board's snake.
func (b *Board) Snake() *Snake {
	return b.snake
}

// Food returns a copy of the food cells.
func (b *Board) Food() []Cell {
	out := make([]Cell, len(b.food))
	copy(out, b.food)
	return out
}

// Score returns the snake's score.
func (b *Board) Score() int {
	return b.snake.Score()
}

// Columns returns the grid width.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the grid height.
func (b *Board) Rows() int {
	return b.rows
}

// Rules returns the rules the board was built with.
func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) newSnake() *Snake {
	return NewSnake(b.columns/2, b.rows/2, b.rules)
}

func (b *Board) isFood(c Cell) bool {
	for _, f := range b.food {
		if f.Same(c) {
			return true
		}
	}
	return false
}

// freeCells counts grid squares not covered by the snake or food.
func (b *Board) freeCells() int {
	occupied := make(map[Cell]struct{}, b.snake.Len()+len(b.food))
	for _, c := range b.snake.Cells() {
		if b.InBounds(c) {
			occupied[c] = struct{}{}
		}
	}
	for _, f := range b.food {
		occupied[f] = struct{}{}
	}
	return b.columns*b.rows - len(occupied)
}
