package domain

// the four axes a line can run along; the opposite direction
// is covered by negating the delta
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// IsWinningMove checks only the lines passing through the disc most recently
// dropped into column, which is the topmost disc of that column.
// It returns false when that disc does not belong to disc.
func (b *Board) IsWinningMove(column int, disc Cell) bool {
	if !disc.Valid() || column < 0 || column >= Columns {
		return false
	}

	row := b.topRow(column)
	if row == Rows || b.grid[row][column] != disc {
		return false
	}

	for _, axis := range axes {
		count := 1 + b.countInDirection(row, column, axis[0], axis[1], disc) +
			b.countInDirection(row, column, -axis[0], -axis[1], disc)
		if count >= ToWin {
			return true
		}
	}

	return false
}

// this counts the number of discs in a specific direction,
// never looking further than ToWin-1 cells away
func (b *Board) countInDirection(row, column, deltaRow, deltaCol int, disc Cell) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for count < ToWin-1 && r >= 0 && r < Rows && c >= 0 && c < Columns && b.grid[r][c] == disc {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// HasWon scans every window of ToWin cells on the grid. It does not depend on
// which move was played last.
func (b *Board) HasWon(disc Cell) bool {
	if !disc.Valid() {
		return false
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, axis := range axes {
				if b.windowMatches(row, col, axis[0], axis[1], disc) {
					return true
				}
			}
		}
	}

	return false
}

func (b *Board) windowMatches(row, col, deltaRow, deltaCol int, disc Cell) bool {
	endRow := row + deltaRow*(ToWin-1)
	endCol := col + deltaCol*(ToWin-1)
	if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
		return false
	}

	for i := 0; i < ToWin; i++ {
		if b.grid[row+deltaRow*i][col+deltaCol*i] != disc {
			return false
		}
	}
	return true
}
