package domain

// Cell is the content of a single grid position.
type Cell uint8

const (
	Empty   Cell = 0
	PlayerA Cell = 1
	PlayerB Cell = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Valid reports whether the cell holds a player's disc.
func (c Cell) Valid() bool {
	return c == PlayerA || c == PlayerB
}

// Opponent returns the other player's disc. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "empty"
}

// Player is a participant of a session together with the disc it drops
type Player struct {
	Name   string
	Disc   Cell
	Symbol rune
}

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// Result is the outcome of the game so far. Winner is only set when Status is StatusWon.
type Result struct {
	Status GameStatus
	Winner Cell
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func Won(winner Cell) Result {
	return Result{Status: StatusWon, Winner: winner}
}

func Drawn() Result {
	return Result{Status: StatusDraw}
}

func (r Result) IsTerminal() bool {
	return r.Status == StatusWon || r.Status == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfRange    Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrInvalidDisc   Error = "invalid disc"
	ErrGameOver      Error = "game is already over"
	ErrUnknownPolicy Error = "unknown start policy"
)
