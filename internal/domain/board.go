package domain

// Board is the 6x7 grid. Row 0 is the top row where discs enter,
// row Rows-1 is the bottom where they settle.
type Board struct {
	grid  [Rows][Columns]Cell
	moves int
}

func NewBoard() *Board {
	return &Board{}
}

// Drop places disc at the lowest empty row of column and returns that row.
// The board is left untouched when an error is returned.
func (b *Board) Drop(column int, disc Cell) (int, error) {
	if !disc.Valid() {
		return -1, ErrInvalidDisc
	}
	if column < 0 || column >= Columns {
		return -1, ErrOutOfRange
	}

	// shifting the disc from top to bottom till it
	// reaches the end or another disc
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = disc
			b.moves++
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// ApplyMove is Drop without the diagnostics.
func (b *Board) ApplyMove(column int, disc Cell) bool {
	_, err := b.Drop(column, disc)
	return err == nil
}

func (b *Board) CanPlaceDisc(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here grid[0] represents the top row (0 -> top and 5 -> bottom)
	return b.grid[0][column] == Empty
}

// IsFull only looks at the top row, gravity guarantees the rest is filled.
func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.grid[0][c] == Empty {
			return false
		}
	}

	return true
}

func (b *Board) GetCell(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return Empty
	}
	return b.grid[row][col]
}

// Reset clears every cell in place.
func (b *Board) Reset() {
	b.grid = [Rows][Columns]Cell{}
	b.moves = 0
}

func (b *Board) MoveCount() int {
	return b.moves
}

// Height returns how many discs are stacked in column.
func (b *Board) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	return Rows - b.topRow(column)
}

// ValidColumns lists the columns that still accept a disc, left to right.
func (b *Board) ValidColumns() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b.CanPlaceDisc(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// topRow returns the row of the highest disc in column, or Rows when the column is empty.
func (b *Board) topRow(column int) int {
	for row := 0; row < Rows; row++ {
		if b.grid[row][column] != Empty {
			return row
		}
	}
	return Rows
}
