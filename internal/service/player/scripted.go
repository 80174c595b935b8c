package player

import (
	"context"
	"io"
	"sync"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

// Scripted replays a fixed list of columns and then reports io.EOF.
// It is safe to share between both players; each call consumes the next column.
type Scripted struct {
	mu      sync.Mutex
	columns []int
	next    int
}

func NewScripted(columns ...int) *Scripted {
	return &Scripted{columns: append([]int(nil), columns...)}
}

func (s *Scripted) RequestColumn(ctx context.Context, _ domain.Player, _ game.BoardView) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.columns) {
		return -1, io.EOF
	}
	col := s.columns[s.next]
	s.next++
	return col, nil
}

// Remaining is the number of columns not yet handed out.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.columns) - s.next
}

// Restarts answers restart prompts from a fixed list, then declines.
type Restarts struct {
	mu      sync.Mutex
	answers []bool
}

func NewRestarts(answers ...bool) *Restarts {
	return &Restarts{answers: append([]bool(nil), answers...)}
}

func (r *Restarts) ConfirmRestart(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.answers) == 0 {
		return false, nil
	}
	answer := r.answers[0]
	r.answers = r.answers[1:]
	return answer, nil
}
