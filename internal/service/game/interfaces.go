package game

import (
	"context"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// BoardView is the read-only side of the board handed to collaborators.
type BoardView interface {
	GetCell(row, col int) domain.Cell
	CanPlaceDisc(column int) bool
	MoveCount() int
}

// MoveProvider supplies column choices for one player. Human, scripted and
// any future remote or computer players all plug in here.
type MoveProvider interface {
	RequestColumn(ctx context.Context, player domain.Player, board BoardView) (int, error)
}

// Presenter renders what happens in the session. It never mutates the board.
type Presenter interface {
	OnWelcome()
	OnBoardChanged(board BoardView)
	OnTurn(player domain.Player)
	OnInvalidMove(err error)
	OnWin(player domain.Player)
	OnDraw()
	OnRestartPrompt()
	OnExit()
}

// RestartDecider answers the play-again prompt after a finished game.
type RestartDecider interface {
	ConfirmRestart(ctx context.Context) (bool, error)
}
