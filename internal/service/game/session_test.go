package game

import (
	"sync"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ConcurrentMovesAreSerialized(t *testing.T) {
	// Given: a fresh session and many goroutines racing to play
	s := NewSession(domain.Player{Name: "A"}, domain.Player{Name: "B"})

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			if _, _, err := s.HandleMove(col % domain.Columns); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
			_, _ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	// Then: every accepted move landed exactly once
	board, _ := s.Snapshot()
	require.Equal(t, accepted, board.MoveCount())
	for col := 0; col < domain.Columns; col++ {
		filled := 0
		for row := 0; row < domain.Rows; row++ {
			if board.GetCell(row, col) != domain.Empty {
				filled++
			}
		}
		assert.Equal(t, board.Height(col), filled)
	}
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s := NewSession(domain.Player{Name: "A"}, domain.Player{Name: "B"})
	before, current := s.Snapshot()
	require.Equal(t, domain.PlayerA, current.Disc)

	player, res, err := s.HandleMove(2)

	require.NoError(t, err)
	assert.Equal(t, "A", player.Name)
	assert.Equal(t, domain.InProgress(), res)
	assert.Zero(t, before.MoveCount())
	assert.Equal(t, domain.Empty, before.GetCell(domain.Rows-1, 2))
}

func TestSession_Restart(t *testing.T) {
	s := NewSession(domain.Player{Name: "A"}, domain.Player{Name: "B"})
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, _, err := s.HandleMove(col)
		require.NoError(t, err)
	}
	require.Equal(t, domain.Won(domain.PlayerA), s.Result())
	id := s.ID()

	s.Restart(domain.PlayerB)

	_, current := s.Snapshot()
	assert.Equal(t, domain.PlayerB, current.Disc)
	assert.Equal(t, domain.PlayerB, s.Starter())
	assert.Equal(t, "B", s.Player(domain.PlayerB).Name)
	assert.Equal(t, domain.InProgress(), s.Result())
	assert.NotEqual(t, id, s.ID())
}
