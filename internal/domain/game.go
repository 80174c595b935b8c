package domain

type Game struct {
	board   *Board
	players map[Cell]Player
	current Cell
	starter Cell
	result  Result
}

// NewGame sets up an empty board with player a to move.
func NewGame(a, b Player) *Game {
	a.Disc, b.Disc = PlayerA, PlayerB
	return &Game{
		board:   NewBoard(),
		players: map[Cell]Player{PlayerA: a, PlayerB: b},
		current: PlayerA,
		starter: PlayerA,
		result:  InProgress(),
	}
}

// Play drops the current player's disc into column. A rejected move keeps
// the turn with the same player. A winning move that also fills the board
// counts as a win.
func (g *Game) Play(column int) (Result, error) {
	if g.result.IsTerminal() {
		return g.result, ErrGameOver
	}

	if _, err := g.board.Drop(column, g.current); err != nil {
		return g.result, err
	}

	if g.board.IsWinningMove(column, g.current) {
		g.result = Won(g.current)
		return g.result, nil
	}

	if g.board.IsFull() {
		g.result = Drawn()
		return g.result, nil
	}

	g.current = g.current.Opponent()
	return g.result, nil
}

// Restart clears the board in place and hands the first move to starter.
func (g *Game) Restart(starter Cell) {
	if !starter.Valid() {
		starter = PlayerA
	}
	g.board.Reset()
	g.current = starter
	g.starter = starter
	g.result = InProgress()
}

func (g *Game) Current() Player {
	return g.players[g.current]
}

func (g *Game) Player(disc Cell) Player {
	return g.players[disc]
}

func (g *Game) Starter() Cell {
	return g.starter
}

func (g *Game) Result() Result {
	return g.result
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) IsFinished() bool {
	return g.result.IsTerminal()
}
