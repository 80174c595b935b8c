package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

// HumanPlayer asks for a column on the console until it gets one that can
// take a disc.
type HumanPlayer struct {
	lines *LineReader
	w     io.Writer
}

func NewHumanPlayer(lines *LineReader, w io.Writer) *HumanPlayer {
	return &HumanPlayer{lines: lines, w: w}
}

// RequestColumn returns a 0-based column. Input is 1-based.
func (h *HumanPlayer) RequestColumn(ctx context.Context, player domain.Player, board game.BoardView) (int, error) {
	for {
		fmt.Fprintf(h.w, "Player %c, enter your column choice (1-%d): \n", player.Symbol, domain.Columns)

		line, err := h.lines.ReadLine(ctx)
		if err != nil {
			return -1, err
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || column < 1 || column > domain.Columns {
			fmt.Fprintln(h.w, "Invalid input. Please enter a number corresponding to a column.")
			continue
		}

		column--
		if !board.CanPlaceDisc(column) {
			fmt.Fprintln(h.w, "That column is full. Please try a different column.")
			continue
		}
		return column, nil
	}
}
