package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/rng"
)

// scriptedSource replays fixed values, then keeps returning min.
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) Next(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func newTestBoard(t *testing.T, columns, rows int, seed uint64) *Board {
	t.Helper()
	b, err := NewBoard(columns, rows, DefaultRules(), rng.NewSeeded(seed))
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) failed: %v", columns, rows, err)
	}
	return b
}

// lineSnake builds a moving snake heading right with bodyLen cells
// trailing to the left of head.
func lineSnake(head Cell, bodyLen int) *Snake {
	s := NewSnake(head.X, head.Y, DefaultRules())
	s.body = s.body[:0]
	for i := 1; i <= bodyLen; i++ {
		s.body = append(s.body, Cell{X: head.X - i, Y: head.Y})
	}
	s.QueueDirection(DirRight)
	return s
}

func assertFoodInvariants(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[Cell]bool)
	for _, f := range b.Food() {
		if !b.InBounds(f) {
			t.Fatalf("food out of bounds at %v", f)
		}
		if b.Snake().Contains(f) {
			t.Fatalf("food at %v overlaps the snake", f)
		}
		if seen[f] {
			t.Fatalf("duplicate food at %v", f)
		}
		seen[f] = true
	}
}

func TestNewBoardRejectsBadInput(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		rules         Rules
		src           RandomSource
		want          error
	}{
		{"zero columns", 0, 10, DefaultRules(), rng.NewSeeded(1), ErrInvalidSize},
		{"zero rows", 10, 0, DefaultRules(), rng.NewSeeded(1), ErrInvalidSize},
		{"negative", -3, 5, DefaultRules(), rng.NewSeeded(1), ErrInvalidSize},
		{"too narrow for tail", 3, 10, DefaultRules(), rng.NewSeeded(1), ErrInvalidSize},
		{"bad rules", 10, 10, Rules{}, rng.NewSeeded(1), ErrInvalidRules},
		{"nil source", 10, 10, DefaultRules(), nil, ErrNilSource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBoard(tc.columns, tc.rows, tc.rules, tc.src)
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewBoard() error = %v, expected %v", err, tc.want)
			}
			if b != nil {
				t.Error("expected nil board on error")
			}
		})
	}
}

func TestNewBoardSmallestSize(t *testing.T) {
	b, err := NewBoard(4, 1, DefaultRules(), rng.NewSeeded(1))
	if err != nil {
		t.Fatalf("NewBoard(4, 1) error = %v, expected nil", err)
	}
	if food := b.Food(); len(food) != 1 || food[0] != (Cell{X: 3, Y: 0}) {
		t.Errorf("food = %v, expected the single free cell (3, 0)", food)
	}

	if _, err := NewBoard(3, 100, DefaultRules(), rng.NewSeeded(1)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewBoard(3, 100) error = %v, expected ErrInvalidSize", err)
	}
}

func TestNewBoardInitialState(t *testing.T) {
	b := newTestBoard(t, 10, 10, 42)

	if b.Snake().Head() != (Cell{X: 5, Y: 5}) {
		t.Errorf("snake head = %v, expected centre (5, 5)", b.Snake().Head())
	}
	if len(b.Food()) != 1 {
		t.Errorf("food count = %d, expected 1", len(b.Food()))
	}
	if b.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", b.Score())
	}
	assertFoodInvariants(t, b)
}

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	// First sample lands on the head, the second is free.
	src := &scriptedSource{values: []int{5, 5, 0, 0}}
	b, err := NewBoard(10, 10, DefaultRules(), src)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	food := b.Food()
	if len(food) != 1 || food[0] != (Cell{X: 0, Y: 0}) {
		t.Fatalf("food = %v, expected [(0, 0)]", food)
	}
}

func TestSpawnFoodAvoidsExistingFood(t *testing.T) {
	src := &scriptedSource{values: []int{0, 0}}
	b, err := NewBoard(10, 10, DefaultRules(), src)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	// Raise the score to 10 so a second food cell is required.
	for i := 0; i < 10; i++ {
		b.Snake().Grow()
	}
	src.values = []int{0, 0, 1, 1}

	if n := b.SpawnFood(); n != 1 {
		t.Fatalf("SpawnFood() = %d, expected 1", n)
	}
	food := b.Food()
	if food[1] != (Cell{X: 1, Y: 1}) {
		t.Errorf("second food = %v, expected (1, 1)", food[1])
	}
}

func TestSpawnFoodStopsWhenBoardFull(t *testing.T) {
	b := newTestBoard(t, 4, 1, 3)
	if food := b.Food(); len(food) != 1 || food[0] != (Cell{X: 3, Y: 0}) {
		t.Fatalf("food = %v, expected the only free cell (3, 0)", food)
	}

	for i := 0; i < 10; i++ {
		b.Snake().Grow()
	}
	if n := b.SpawnFood(); n != 0 {
		t.Errorf("SpawnFood() = %d on a full board, expected 0", n)
	}
}

func TestStationarySnakeStaysPut(t *testing.T) {
	b := newTestBoard(t, 10, 10, 1)
	before := b.Snapshot()

	for i := 0; i < 100; i++ {
		b.Tick(time.Second / 60)
	}

	if after := b.Snapshot(); after != before {
		t.Errorf("snapshot changed without input: %+v -> %+v", before, after)
	}
	if before.State != StateWaiting {
		t.Errorf("State = %s, expected waiting", before.State)
	}
}

func TestOutOfBoundsKills(t *testing.T) {
	b := newTestBoard(t, 10, 10, 5)
	b.snake = lineSnake(Cell{X: 9, Y: 5}, 2)
	b.food = []Cell{{X: 0, Y: 0}}

	res := b.Tick(movePeriod)

	if !res.Moved || !res.Died {
		t.Fatalf("Tick() = %+v, expected a fatal move", res)
	}
	if b.Snake().Head() != (Cell{X: 10, Y: 5}) {
		t.Errorf("head = %v, expected (10, 5)", b.Snake().Head())
	}
	if b.Snake().Alive() {
		t.Error("snake should be dead after leaving the grid")
	}
	if res.Spawned != 0 || len(b.Food()) != 1 {
		t.Error("no food should spawn on the death tick")
	}
}

func TestWallCollisions(t *testing.T) {
	tests := []struct {
		name   string
		head   Cell
		facing Direction
		turn   Direction
	}{
		{"top wall", Cell{X: 2, Y: 0}, DirRight, DirUp},
		{"bottom wall", Cell{X: 5, Y: 9}, DirRight, DirDown},
		{"right wall", Cell{X: 9, Y: 3}, DirRight, DirRight},
		{"left wall", Cell{X: 0, Y: 4}, DirUp, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t, 10, 10, 8)
			b.snake = lineSnake(tc.head, 2)
			b.snake.queue = nil
			b.snake.dir = tc.facing
			b.snake.QueueDirection(tc.turn)
			b.food = []Cell{{X: 0, Y: 9}}

			b.Tick(movePeriod)
			if b.Snake().Alive() {
				t.Errorf("snake at %v should have died", b.Snake().Head())
			}
		})
	}
}

func TestSelfCollisionKills(t *testing.T) {
	b := newTestBoard(t, 10, 10, 9)
	s := NewSnake(5, 5, DefaultRules())
	s.body = []Cell{{X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}}
	s.QueueDirection(DirRight)
	b.snake = s
	b.food = []Cell{{X: 0, Y: 0}}

	res := b.Tick(movePeriod)

	if !res.Died || b.Snake().Alive() {
		t.Error("snake should die running into its own body")
	}
}

func TestDeadBoardTickIsNoop(t *testing.T) {
	b := newTestBoard(t, 10, 10, 4)
	b.snake = lineSnake(Cell{X: 9, Y: 5}, 2)
	b.Tick(movePeriod)
	if b.Snake().Alive() {
		t.Fatal("setup: expected dead snake")
	}

	before := b.Snapshot()
	food := b.Food()
	for i := 0; i < 50; i++ {
		if res := b.Tick(time.Second); res != (TickResult{}) {
			t.Fatalf("Tick() on dead board = %+v, expected zero result", res)
		}
	}
	if after := b.Snapshot(); after != before {
		t.Errorf("dead board changed: %+v -> %+v", before, after)
	}
	if len(b.Food()) != len(food) {
		t.Error("dead board food changed")
	}
}

func TestEatingFood(t *testing.T) {
	b := newTestBoard(t, 10, 10, 10)
	b.snake = lineSnake(Cell{X: 5, Y: 5}, 2)
	b.food = []Cell{{X: 6, Y: 5}}

	res := b.Tick(movePeriod)

	if !res.Ate {
		t.Fatalf("Tick() = %+v, expected food eaten", res)
	}
	if b.Score() != 1 || b.Snake().Len() != InitialLength+1 {
		t.Errorf("score = %d, len = %d; expected 1 and %d", b.Score(), b.Snake().Len(), InitialLength+1)
	}
	if res.Spawned != 1 || len(b.Food()) != 1 {
		t.Errorf("spawned %d, food %d; expected one replacement", res.Spawned, len(b.Food()))
	}
	assertFoodInvariants(t, b)
}

func TestEatsOnlyOneFoodPerTick(t *testing.T) {
	b := newTestBoard(t, 10, 10, 11)
	b.snake = lineSnake(Cell{X: 5, Y: 5}, 2)
	// A duplicate can only appear if injected; only the first match is consumed.
	b.food = []Cell{{X: 6, Y: 5}, {X: 6, Y: 5}}

	b.Tick(movePeriod)

	if b.Score() != 1 {
		t.Errorf("Score() = %d, expected exactly one food eaten", b.Score())
	}
}

func TestFoodRequirementAtScoreTen(t *testing.T) {
	// Score 9: eleven body cells behind the head.
	b := newTestBoard(t, 30, 20, 12)
	b.snake = lineSnake(Cell{X: 20, Y: 10}, 11)
	b.food = []Cell{{X: 0, Y: 0}}
	if b.Score() != 9 || b.RequiredFood() != 1 {
		t.Fatalf("setup: score %d, required %d", b.Score(), b.RequiredFood())
	}

	b.Snake().Grow()
	if b.RequiredFood() != 2 {
		t.Fatalf("RequiredFood() = %d at score 10, expected 2", b.RequiredFood())
	}

	res := b.Tick(movePeriod)
	if res.Died {
		t.Fatal("snake died unexpectedly")
	}
	if res.Spawned != 1 {
		t.Errorf("Spawned = %d, expected exactly one new food cell", res.Spawned)
	}
	if len(b.Food()) != 2 {
		t.Errorf("food count = %d, expected 2", len(b.Food()))
	}
	assertFoodInvariants(t, b)
}

func TestEatingIntoScoreTen(t *testing.T) {
	b := newTestBoard(t, 30, 20, 13)
	b.snake = lineSnake(Cell{X: 20, Y: 10}, 11)
	b.food = []Cell{{X: 21, Y: 10}}

	res := b.Tick(movePeriod)

	if !res.Ate || b.Score() != 10 {
		t.Fatalf("Tick() = %+v, score %d; expected to eat into score 10", res, b.Score())
	}
	if len(b.Food()) != 2 {
		t.Errorf("food count = %d, expected 2", len(b.Food()))
	}
}

func TestResetRoundTrip(t *testing.T) {
	b := newTestBoard(t, 10, 10, 14)
	b.snake = lineSnake(Cell{X: 9, Y: 5}, 6)
	b.Tick(movePeriod)
	if b.Snake().Alive() {
		t.Fatal("setup: expected dead snake")
	}

	b.Reset()

	s := b.Snake()
	if !s.Alive() || s.Moving() {
		t.Error("reset snake should be alive and stationary")
	}
	if s.Len() != InitialLength || b.Score() != 0 {
		t.Errorf("len %d, score %d; expected %d and 0", s.Len(), b.Score(), InitialLength)
	}
	if s.Head() != (Cell{X: 5, Y: 5}) {
		t.Errorf("head = %v, expected centre", s.Head())
	}
	if len(b.Food()) != 1 {
		t.Errorf("food count = %d, expected 1", len(b.Food()))
	}
	assertFoodInvariants(t, b)
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	b := newTestBoard(t, 10, 10, 2024)
	input := rng.NewSeeded(77)
	frame := time.Second / 60

	for i := 0; i < 20000; i++ {
		if i%7 == 0 {
			b.Snake().QueueDirection(Direction(input.Next(0, 3)))
		}

		scoreBefore := b.Score()
		res := b.Tick(frame)

		if b.Score() < 0 {
			t.Fatalf("negative score %d", b.Score())
		}
		if got := b.Snake().Len() - InitialLength; got != b.Score() {
			t.Fatalf("score %d does not match length %d", b.Score(), b.Snake().Len())
		}
		if res.Ate && b.Score() != scoreBefore+1 {
			t.Fatalf("eating changed score by %d", b.Score()-scoreBefore)
		}

		if res.Died {
			b.Reset()
			continue
		}
		if len(b.Food()) != b.RequiredFood() {
			t.Fatalf("tick %d: food count %d, required %d", i, len(b.Food()), b.RequiredFood())
		}
		assertFoodInvariants(t, b)
	}
}

func TestBoardDeterminism(t *testing.T) {
	b1 := newTestBoard(t, 20, 15, 12345)
	b2 := newTestBoard(t, 20, 15, 12345)

	moves := []Direction{DirDown, DirLeft, DirUp, DirRight}
	for i := 0; i < 3000; i++ {
		if i%40 == 0 {
			d := moves[(i/40)%len(moves)]
			b1.Snake().QueueDirection(d)
			b2.Snake().QueueDirection(d)
		}
		b1.Tick(time.Second / 60)
		b2.Tick(time.Second / 60)
	}

	if s1, s2 := b1.Snapshot(), b2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ: %+v vs %+v", s1, s2)
	}
	f1, f2 := b1.Food(), b2.Food()
	if len(f1) != len(f2) {
		t.Fatalf("food counts differ: %d vs %d", len(f1), len(f2))
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Errorf("food[%d] differs: %v vs %v", i, f1[i], f2[i])
		}
	}
}
