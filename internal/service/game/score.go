package game

import "github.com/iamasit07/4-in-a-row/console/internal/domain"

// Summary tallies the games played in one run of the loop.
type Summary struct {
	Games int
	WinsA int
	WinsB int
	Draws int
}

func (s *Summary) Record(res domain.Result) {
	switch res.Status {
	case domain.StatusWon:
		s.Games++
		if res.Winner == domain.PlayerA {
			s.WinsA++
		} else {
			s.WinsB++
		}
	case domain.StatusDraw:
		s.Games++
		s.Draws++
	}
}

func (s Summary) Wins(disc domain.Cell) int {
	switch disc {
	case domain.PlayerA:
		return s.WinsA
	case domain.PlayerB:
		return s.WinsB
	}
	return 0
}
