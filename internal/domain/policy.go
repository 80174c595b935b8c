package domain

import "strings"

// StartPolicy decides who opens the next game after a restart.
type StartPolicy string

const (
	// player A opens every game
	StartFirst StartPolicy = "first"
	// the opener swaps every game
	StartAlternate StartPolicy = "alternate"
	// the loser opens, a draw falls back to swapping
	StartLoser StartPolicy = "loser"
)

func ParseStartPolicy(s string) (StartPolicy, error) {
	switch p := StartPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case StartFirst, StartAlternate, StartLoser:
		return p, nil
	case "":
		return StartFirst, nil
	}
	return "", ErrUnknownPolicy
}

// NextStarter returns the disc that opens the game following one opened by
// prev and finished with last.
func (p StartPolicy) NextStarter(prev Cell, last Result) Cell {
	if !prev.Valid() {
		prev = PlayerA
	}

	switch p {
	case StartAlternate:
		return prev.Opponent()
	case StartLoser:
		if last.Status == StatusWon && last.Winner.Valid() {
			return last.Winner.Opponent()
		}
		return prev.Opponent()
	}
	return PlayerA
}
