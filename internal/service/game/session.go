package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Session wraps one domain.Game behind a mutex so only one move is ever
// applied at a time, whoever the caller is.
type Session struct {
	gameID     string
	createdAt  time.Time
	finishedAt time.Time
	game       *domain.Game
	mu         sync.Mutex
}

func NewSession(a, b domain.Player) *Session {
	return &Session{
		gameID:    uuid.NewString(),
		createdAt: time.Now(),
		game:      domain.NewGame(a, b),
	}
}

// HandleMove plays column for the player to move.
func (s *Session) HandleMove(column int) (domain.Player, domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.game.Current()
	res, err := s.game.Play(column)
	if err != nil {
		return player, res, err
	}

	if res.IsTerminal() {
		s.finishedAt = time.Now()
	}
	return player, res, nil
}

// Snapshot returns a copy of the board and the player to move. The copy is
// safe to read while further moves are applied.
func (s *Session) Snapshot() (*domain.Board, domain.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := *s.game.Board()
	return &board, s.game.Current()
}

func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gameID
}

func (s *Session) Result() domain.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Result()
}

func (s *Session) Starter() domain.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Starter()
}

func (s *Session) Player(disc domain.Cell) domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Player(disc)
}

// Restart clears the board for a new game opened by starter and gives it a new id.
func (s *Session) Restart(starter domain.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.game.Restart(starter)
	s.gameID = uuid.NewString()
	s.createdAt = time.Now()
	s.finishedAt = time.Time{}
}

func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finishedAt.IsZero() {
		return time.Since(s.createdAt)
	}
	return s.finishedAt.Sub(s.createdAt)
}
