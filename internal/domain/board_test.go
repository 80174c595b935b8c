package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillColumn drops alternating discs into column until it is full.
func fillColumn(t *testing.T, b *Board, column int) {
	t.Helper()
	disc := PlayerA
	for i := 0; i < Rows; i++ {
		require.True(t, b.ApplyMove(column, disc))
		disc = disc.Opponent()
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			assert.Equal(t, Empty, b.GetCell(row, col))
		}
	}
	assert.False(t, b.IsFull())
	assert.Zero(t, b.MoveCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidColumns())
}

func TestBoard_Drop(t *testing.T) {
	t.Run("discs settle at the bottom", func(t *testing.T) {
		// Given: an empty board
		b := NewBoard()

		// When: two discs are dropped into the same column
		row, err := b.Drop(3, PlayerA)
		require.NoError(t, err)
		require.Equal(t, Rows-1, row)

		row, err = b.Drop(3, PlayerB)
		require.NoError(t, err)

		// Then: the second disc stacks on top of the first
		require.Equal(t, Rows-2, row)
		assert.Equal(t, PlayerA, b.GetCell(Rows-1, 3))
		assert.Equal(t, PlayerB, b.GetCell(Rows-2, 3))
		assert.Equal(t, 2, b.Height(3))
		assert.Equal(t, 2, b.MoveCount())
	})

	t.Run("out of range", func(t *testing.T) {
		b := NewBoard()
		before := *b

		_, err := b.Drop(-1, PlayerA)
		require.ErrorIs(t, err, ErrOutOfRange)

		_, err = b.Drop(Columns, PlayerA)
		require.ErrorIs(t, err, ErrOutOfRange)

		require.Equal(t, before, *b)
	})

	t.Run("empty disc is rejected", func(t *testing.T) {
		b := NewBoard()

		_, err := b.Drop(0, Empty)

		require.ErrorIs(t, err, ErrInvalidDisc)
		require.Zero(t, b.MoveCount())
	})

	t.Run("full column", func(t *testing.T) {
		// Given: a column filled to the top
		b := NewBoard()
		fillColumn(t, b, 2)
		before := *b

		// When: another disc is dropped there
		_, err := b.Drop(2, PlayerA)

		// Then: the move is rejected and nothing changes
		require.ErrorIs(t, err, ErrColumnFull)
		require.Equal(t, before, *b)
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	for column := 0; column < Columns; column++ {
		b := NewBoard()
		fillColumn(t, b, column)
		before := *b

		assert.False(t, b.CanPlaceDisc(column), "column %d", column)
		assert.False(t, b.ApplyMove(column, PlayerB), "column %d", column)
		assert.Equal(t, before, *b, "column %d", column)
	}

	b := NewBoard()
	assert.False(t, b.ApplyMove(-1, PlayerA))
	assert.False(t, b.ApplyMove(Columns, PlayerA))
	assert.Equal(t, *NewBoard(), *b)
}

func TestBoard_CanPlaceDisc(t *testing.T) {
	b := NewBoard()

	assert.True(t, b.CanPlaceDisc(0))
	assert.True(t, b.CanPlaceDisc(Columns-1))
	assert.False(t, b.CanPlaceDisc(-1))
	assert.False(t, b.CanPlaceDisc(Columns))

	fillColumn(t, b, 0)
	assert.False(t, b.CanPlaceDisc(0))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, b.ValidColumns())
}

func TestBoard_GetCellOutOfRange(t *testing.T) {
	b := NewBoard()
	fillColumn(t, b, 0)

	assert.Equal(t, Empty, b.GetCell(-1, 0))
	assert.Equal(t, Empty, b.GetCell(Rows, 0))
	assert.Equal(t, Empty, b.GetCell(0, -1))
	assert.Equal(t, Empty, b.GetCell(0, Columns))
}

func TestBoard_BottomRowOnly(t *testing.T) {
	// Given: the bottom row filled A,B,A,B,A,B,A
	b := NewBoard()
	disc := PlayerA
	for col := 0; col < Columns; col++ {
		require.True(t, b.ApplyMove(col, disc))
		disc = disc.Opponent()
	}

	// Then: nobody has won and the board is not full
	assert.False(t, b.HasWon(PlayerA))
	assert.False(t, b.HasWon(PlayerB))
	assert.False(t, b.IsFull())
}

func TestBoard_Reset(t *testing.T) {
	// Given: a full board
	b := NewBoard()
	for _, col := range drawSequence {
		require.True(t, b.ApplyMove(col, nextDisc(b)))
	}
	require.True(t, b.IsFull())

	// When: the board is reset
	b.Reset()

	// Then: every query reports an empty board
	assert.False(t, b.IsFull())
	assert.False(t, b.HasWon(PlayerA))
	assert.False(t, b.HasWon(PlayerB))
	assert.Zero(t, b.MoveCount())
	assert.Equal(t, *NewBoard(), *b)
}

func TestBoard_FullWithoutWinner(t *testing.T) {
	b := NewBoard()
	for i, col := range drawSequence {
		disc := nextDisc(b)
		require.True(t, b.ApplyMove(col, disc), "move %d", i)
		require.False(t, b.IsWinningMove(col, disc), "move %d", i)
	}

	assert.True(t, b.IsFull())
	assert.False(t, b.HasWon(PlayerA))
	assert.False(t, b.HasWon(PlayerB))
	assert.Empty(t, b.ValidColumns())
}

// nextDisc returns whose turn it is when A always opens.
func nextDisc(b *Board) Cell {
	if b.MoveCount()%2 == 0 {
		return PlayerA
	}
	return PlayerB
}

// drawSequence fills the whole grid, alternating A and B, without a line of four.
var drawSequence = []int{
	0, 2, 0, 0, 1, 0, 0, 2, 0, 4, 1, 1, 2, 1, 1, 4, 1, 6, 2, 2, 3,
	2, 3, 3, 4, 3, 3, 6, 4, 4, 5, 4, 6, 5, 5, 5, 5, 5, 6, 6, 3, 6,
}

// fullWinSequence wins for B with the 42nd disc, filling the board.
var fullWinSequence = []int{
	0, 3, 0, 0, 1, 0, 0, 3, 0, 5, 1, 1, 2, 1, 1, 5, 1, 6, 2, 2, 3,
	2, 2, 6, 3, 3, 4, 3, 4, 4, 5, 4, 5, 5, 6, 5, 6, 6, 2, 6, 4, 4,
}
