package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

const emptySymbol = '.'

// Presenter prints the session as plain text, one line per event.
type Presenter struct {
	w       io.Writer
	symbols map[domain.Cell]rune
}

func NewPresenter(w io.Writer, a, b domain.Player) *Presenter {
	return &Presenter{
		w: w,
		symbols: map[domain.Cell]rune{
			domain.Empty:   emptySymbol,
			domain.PlayerA: a.Symbol,
			domain.PlayerB: b.Symbol,
		},
	}
}

func (p *Presenter) OnWelcome() {
	fmt.Fprintln(p.w, "Welcome to Connect Four!")
	fmt.Fprintf(p.w, "Drop discs into the %d columns, the first to line up %d wins.\n\n", domain.Columns, domain.ToWin)
}

func (p *Presenter) OnBoardChanged(board game.BoardView) {
	fmt.Fprint(p.w, RenderBoard(board, p.symbols))
}

func (p *Presenter) OnTurn(player domain.Player) {
	fmt.Fprintf(p.w, "It is Player %c's turn.\n", player.Symbol)
}

func (p *Presenter) OnInvalidMove(err error) {
	fmt.Fprintf(p.w, "Invalid move (%v). Please try again.\n", err)
}

func (p *Presenter) OnWin(player domain.Player) {
	fmt.Fprintf(p.w, "Congratulations! Player %c has won the game!\n", player.Symbol)
}

func (p *Presenter) OnDraw() {
	fmt.Fprintln(p.w, "The game is a draw. There are no more moves possible.")
}

func (p *Presenter) OnRestartPrompt() {
	fmt.Fprintln(p.w, "Game over. Would you like to play again? Press (Y/1 or N/0)")
}

func (p *Presenter) OnExit() {
	fmt.Fprintln(p.w, "Thank you for playing! Bye.")
}

// RenderBoard draws the grid top row first, followed by the 1-based column ruler
// and a blank line.
func RenderBoard(board game.BoardView, symbols map[domain.Cell]rune) string {
	var sb strings.Builder
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sym, ok := symbols[board.GetCell(row, col)]
			if !ok {
				sym = emptySymbol
			}
			sb.WriteRune(sym)
		}
		sb.WriteByte('\n')
	}

	for col := 1; col <= domain.Columns; col++ {
		if col > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", col)
	}
	sb.WriteString("\n\n")
	return sb.String()
}
