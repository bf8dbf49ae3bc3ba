package snake

import "time"

// Snake is the player's snake: a head, a trailing body and a direction
// state machine. A new snake is alive but stationary; the first legal
// queued direction starts it moving.
type Snake struct {
	rules Rules

	head  Cell
	body  []Cell // Most recent first; body[0] is right behind the head
	dir   Direction
	queue []Direction

	speed float64       // Moves per second, 0 until started
	acc   time.Duration // Time accumulated since the last move
	alive bool
}

// NewSnake creates a snake with its head at (x, y) facing right and the
// rest of its initial length trailing to the left.
func NewSnake(x, y int, rules Rules) *Snake {
	s := &Snake{
		rules: rules,
		head:  Cell{X: x, Y: y},
		body:  make([]Cell, 0, InitialLength-1),
		dir:   DirRight,
		alive: true,
	}
	for i := 1; i < InitialLength; i++ {
		s.body = append(s.body, Cell{X: x - i, Y: y})
	}
	return s
}

// QueueDirection records a requested direction change. Illegal requests
// are kept and discarded when the next move drains the queue.
func (s *Snake) QueueDirection(d Direction) {
	// The first legal request starts the snake.
	if s.speed == 0 && s.validDirection(d) {
		s.speed = s.rules.InitialSpeed
	}
	s.queue = append(s.queue, d)
}

// Tick accumulates elapsed time and performs at most one move once a full
// move period has passed. It reports whether the snake moved.
func (s *Snake) Tick(elapsed time.Duration) bool {
	if !s.alive || s.speed == 0 {
		return false
	}

	s.acc += elapsed
	if s.acc < s.period() {
		return false
	}

	// Shift the body forward: the old head becomes the first body cell.
	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = s.head
	s.body = s.body[:len(s.body)-1]

	// Drain queued directions until one differs from the current direction.
	// Reversals and repeats are dropped on the way.
	next := s.dir
	for len(s.queue) > 0 && next == s.dir {
		if s.validDirection(s.queue[0]) {
			next = s.queue[0]
		}
		s.queue = s.queue[1:]
	}

	s.head = s.head.Moved(next)
	s.dir = next
	s.acc = 0
	return true
}

// Grow appends a copy of the tail, lengthening the snake by one cell
// immediately. Past the acceleration threshold each growth speeds the
// snake up, up to the configured cap.
func (s *Snake) Grow() {
	tail := s.head
	if len(s.body) > 0 {
		tail = s.body[len(s.body)-1]
	}
	s.body = append(s.body, tail)

	if s.speed > 0 && s.Score() > s.rules.AccelerateAfter && s.speed < s.rules.MaxSpeed {
		s.speed = min(s.speed+s.rules.SpeedIncrement, s.rules.MaxSpeed)
	}
}

// Kill marks the snake dead. Calling it again has no effect.
func (s *Snake) Kill() {
	s.alive = false
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.head
}

// Body returns a copy of the body cells, most recent first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Cells returns every occupied cell, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, 0, len(s.body)+1)
	out = append(out, s.head)
	return append(out, s.body...)
}

// Len returns the number of occupied cells including the head.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Score is the number of food items eaten, derived from the length.
func (s *Snake) Score() int {
	return s.Len() - InitialLength
}

// Alive reports whether the snake is still alive.
func (s *Snake) Alive() bool {
	return s.alive
}

// Moving reports whether the snake has been started.
func (s *Snake) Moving() bool {
	return s.speed > 0
}

// Speed returns the current speed in moves per second.
func (s *Snake) Speed() float64 {
	return s.speed
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Pending returns how many direction requests are still queued.
func (s *Snake) Pending() int {
	return len(s.queue)
}

// OccupiesHead reports whether c is the head cell.
func (s *Snake) OccupiesHead(c Cell) bool {
	return s.head.Same(c)
}

// BodyContains reports whether c is one of the body cells.
func (s *Snake) BodyContains(c Cell) bool {
	for _, b := range s.body {
		if b.Same(c) {
			return true
		}
	}
	return false
}

// Contains reports whether c is occupied by the head or the body.
func (s *Snake) Contains(c Cell) bool {
	return s.OccupiesHead(c) || s.BodyContains(c)
}

// validDirection reports whether d may follow the current direction.
func (s *Snake) validDirection(d Direction) bool {
	return !d.IsOpposite(s.dir)
}

// period is the time one move takes at the current speed.
func (s *Snake) period() time.Duration {
	return time.Duration(float64(time.Second) / s.speed)
}
