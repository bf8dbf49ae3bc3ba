// Package game drives a snake.Board at a fixed rate on behalf of a
// frontend. It turns ordered input actions into board operations,
// converts wall-clock time into fixed simulation ticks and draws the
// board through a Canvas.
package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalidLoop is returned by NewSession for unusable loop settings.
var ErrInvalidLoop = errors.New("game: invalid loop settings")

// Session runs one board: input, fixed-step time and drawing.
// It is not safe for concurrent use.
type Session struct {
	board      *snake.Board
	frame      time.Duration
	maxCatchUp int
	logger     *log.Logger

	acc    time.Duration
	ticks  uint64
	paused bool
}

// NewSession creates a session ticking board frameRate times per second.
// Advance runs at most maxCatchUp ticks per call. A nil logger discards output.
func NewSession(board *snake.Board, frameRate, maxCatchUp int, logger *log.Logger) (*Session, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidLoop)
	}
	if frameRate <= 0 {
		return nil, fmt.Errorf("%w: frame rate %d", ErrInvalidLoop, frameRate)
	}
	if maxCatchUp <= 0 {
		return nil, fmt.Errorf("%w: max catch-up %d", ErrInvalidLoop, maxCatchUp)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		board:      board,
		frame:      time.Second / time.Duration(frameRate),
		maxCatchUp: maxCatchUp,
		logger:     logger,
	}, nil
}

// Apply handles the actions of one input frame in order.
func (s *Session) Apply(frame core.InputFrame) {
	for _, a := range frame.Actions() {
		s.apply(a)
	}
}

func (s *Session) apply(a core.Action) {
	alive := s.board.Snake().Alive()

	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if alive && !s.paused {
			s.board.Snake().QueueDirection(directionFor(a))
		}

	case core.ActionRestart:
		if !alive {
			s.board.Reset()
			s.acc = 0
			s.paused = false
			s.logger.Info("new game")
		}

	case core.ActionPause:
		if alive {
			s.paused = !s.paused
			s.logger.Debug("pause toggled", "paused", s.paused)
		}
	}
}

// Advance adds elapsed wall-clock time and runs every fixed tick that is
// due, up to the catch-up limit. Time beyond the limit is dropped.
// It returns the number of ticks run.
func (s *Session) Advance(elapsed time.Duration) int {
	if s.paused || elapsed <= 0 {
		return 0
	}

	s.acc += elapsed
	n := 0
	for s.acc >= s.frame && n < s.maxCatchUp {
		s.Step()
		s.acc -= s.frame
		n++
	}

	if s.acc >= s.frame {
		s.logger.Debug("dropping time", "behind", s.acc)
		s.acc %= s.frame
	}
	return n
}

// Step runs exactly one fixed tick. It does nothing while paused.
func (s *Session) Step() snake.TickResult {
	if s.paused {
		return snake.TickResult{}
	}

	res := s.board.Tick(s.frame)
	s.ticks++

	if res.Died {
		snap := s.board.Snapshot()
		s.logger.Info("game over",
			"score", snap.Score,
			"length", snap.SnakeLen,
			"head", fmt.Sprintf("%d,%d", snap.HeadX, snap.HeadY),
			"ticks", s.ticks)
	}
	if res.Ate {
		s.logger.Debug("food eaten", "score", s.board.Score(), "speed", s.board.Snake().Speed())
	}
	return res
}

// State returns the session state for frontends.
func (s *Session) State() core.GameState {
	sn := s.board.Snake()
	return core.GameState{
		Score:    s.board.Score(),
		GameOver: !sn.Alive(),
		Paused:   s.paused,
		Waiting:  sn.Alive() && !sn.Moving(),
	}
}

// Board returns the board being driven.
func (s *Session) Board() *snake.Board {
	return s.board
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Ticks returns the number of fixed ticks run so far.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Frame returns the fixed tick duration.
func (s *Session) Frame() time.Duration {
	return s.frame
}

func directionFor(a core.Action) snake.Direction {
	switch a {
	case core.ActionUp:
		return snake.DirUp
	case core.ActionDown:
		return snake.DirDown
	case core.ActionLeft:
		return snake.DirLeft
	default:
		return snake.DirRight
	}
}
