package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

const (
	boardLeft = 2
	boardTop  = 3
	cellWidth = 2
)

// Screen is a full-screen front end. It presents the session and reads both
// players' moves and the restart answer from the keyboard.
type Screen struct {
	screen  tcell.Screen
	symbols map[domain.Cell]rune
	styles  map[domain.Cell]tcell.Style
	events  chan tcell.Event

	mu         sync.Mutex
	board      game.BoardView
	status     string
	help       string
	cursor     int
	showCursor bool
	turn       domain.Cell
	pollOnce   sync.Once
}

// New opens the real terminal. Close must be called to restore it.
func New(a, b domain.Player) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal: %w", err)
	}
	return NewWithScreen(screen, a, b), nil
}

// NewWithScreen wraps an already initialised tcell screen.
func NewWithScreen(screen tcell.Screen, a, b domain.Player) *Screen {
	base := tcell.StyleDefault
	return &Screen{
		screen: screen,
		symbols: map[domain.Cell]rune{
			domain.Empty:   '·',
			domain.PlayerA: a.Symbol,
			domain.PlayerB: b.Symbol,
		},
		styles: map[domain.Cell]tcell.Style{
			domain.Empty:   base.Foreground(tcell.ColorGray),
			domain.PlayerA: base.Foreground(tcell.ColorRed).Bold(true),
			domain.PlayerB: base.Foreground(tcell.ColorYellow).Bold(true),
		},
		events: make(chan tcell.Event, 16),
		board:  domain.NewBoard(),
		cursor: domain.Columns / 2,
	}
}

func (s *Screen) Close() {
	s.screen.Fini()
}

// poll forwards terminal events until the screen is finalised.
func (s *Screen) poll() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
}

func (s *Screen) nextEvent(ctx context.Context) (tcell.Event, error) {
	s.pollOnce.Do(s.poll)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-s.events:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	}
}

// RequestColumn lets the player pick a column with the arrows and Enter, or
// with the digit keys. q and Esc give up the session.
func (s *Screen) RequestColumn(ctx context.Context, player domain.Player, board game.BoardView) (int, error) {
	s.mu.Lock()
	s.board = board
	s.showCursor = true
	s.turn = player.Disc
	s.help = fmt.Sprintf("←/→ move  ⏎/space drop  1-%d drop  q quit", domain.Columns)
	s.mu.Unlock()
	s.draw()

	defer func() {
		s.mu.Lock()
		s.showCursor = false
		s.mu.Unlock()
	}()

	for {
		ev, err := s.nextEvent(ctx)
		if err != nil {
			return -1, err
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyLeft:
				s.moveCursor(-1)
			case tcell.KeyRight:
				s.moveCursor(1)
			case tcell.KeyEnter:
				return s.Cursor(), nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return -1, io.EOF
			case tcell.KeyRune:
				r := ev.Rune()
				switch {
				case r == ' ':
					return s.Cursor(), nil
				case r == 'q' || r == 'Q':
					return -1, io.EOF
				case r >= '1' && r < '1'+domain.Columns:
					col := int(r - '1')
					s.mu.Lock()
					s.cursor = col
					s.mu.Unlock()
					return col, nil
				}
			}
		}
	}
}

// ConfirmRestart waits for y/1/Enter or n/0/q/Esc.
func (s *Screen) ConfirmRestart(ctx context.Context) (bool, error) {
	for {
		ev, err := s.nextEvent(ctx)
		if err != nil {
			return false, err
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return true, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false, nil
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'y', 'Y', '1':
					return true, nil
				case 'n', 'N', '0', 'q', 'Q':
					return false, nil
				}
			}
		}
	}
}

func (s *Screen) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor
}

func (s *Screen) moveCursor(delta int) {
	s.mu.Lock()
	s.cursor = (s.cursor + delta + domain.Columns) % domain.Columns
	s.mu.Unlock()
	s.draw()
}
