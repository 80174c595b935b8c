package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

func (s *Screen) OnWelcome() {
	s.setStatus(fmt.Sprintf("Welcome! Line up %d discs to win.", domain.ToWin))
}

func (s *Screen) OnBoardChanged(board game.BoardView) {
	s.mu.Lock()
	s.board = board
	s.mu.Unlock()
	s.draw()
}

func (s *Screen) OnTurn(player domain.Player) {
	s.setStatus(fmt.Sprintf("%s (%c) to move.", player.Name, player.Symbol))
}

func (s *Screen) OnInvalidMove(err error) {
	s.setStatus(fmt.Sprintf("Invalid move: %v. Try again.", err))
}

func (s *Screen) OnWin(player domain.Player) {
	s.setStatus(fmt.Sprintf("%s (%c) has won the game!", player.Name, player.Symbol))
}

func (s *Screen) OnDraw() {
	s.setStatus("The game is a draw.")
}

func (s *Screen) OnRestartPrompt() {
	s.mu.Lock()
	s.help = "Play again? y/⏎ yes  n/q no"
	s.mu.Unlock()
	s.draw()
}

func (s *Screen) OnExit() {
	s.mu.Lock()
	s.help = ""
	s.mu.Unlock()
	s.setStatus("Thank you for playing! Bye.")
}

func (s *Screen) setStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	s.draw()
}

// draw repaints the whole screen from the last known state.
func (s *Screen) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	title := tcell.StyleDefault.Bold(true)
	drawText(s.screen, boardLeft, 0, title, "Connect Four")

	if s.showCursor {
		x := boardLeft + s.cursor*cellWidth
		s.screen.SetContent(x, boardTop-1, '▼', nil, s.styles[s.turn])
	}

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			cell := s.board.GetCell(row, col)
			s.screen.SetContent(boardLeft+col*cellWidth, boardTop+row, s.symbols[cell], nil, s.styles[cell])
		}
	}
	for col := 0; col < domain.Columns; col++ {
		s.screen.SetContent(boardLeft+col*cellWidth, boardTop+domain.Rows, rune('1'+col), nil, tcell.StyleDefault)
	}

	drawText(s.screen, boardLeft, boardTop+domain.Rows+2, tcell.StyleDefault, s.status)
	drawText(s.screen, boardLeft, boardTop+domain.Rows+3, tcell.StyleDefault.Dim(true), s.help)
	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
