package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"go.uber.org/zap"
)

type Options struct {
	PlayerA   domain.Player
	PlayerB   domain.Player
	ProviderA MoveProvider
	ProviderB MoveProvider
	Presenter Presenter
	Restart   RestartDecider
	Policy    domain.StartPolicy
	Logger    *zap.Logger
}

// Loop alternates the two players over a Session until they stop playing.
type Loop struct {
	session   *Session
	providers map[domain.Cell]MoveProvider
	presenter Presenter
	restart   RestartDecider
	policy    domain.StartPolicy
	log       *zap.Logger
	summary   Summary
}

func NewLoop(opts Options) (*Loop, error) {
	if opts.ProviderA == nil || opts.ProviderB == nil {
		return nil, errors.New("both players need a move provider")
	}
	if opts.Presenter == nil || opts.Restart == nil {
		return nil, errors.New("presenter and restart decider are required")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	policy := opts.Policy
	if policy == "" {
		policy = domain.StartFirst
	}

	return &Loop{
		session: NewSession(opts.PlayerA, opts.PlayerB),
		providers: map[domain.Cell]MoveProvider{
			domain.PlayerA: opts.ProviderA,
			domain.PlayerB: opts.ProviderB,
		},
		presenter: opts.Presenter,
		restart:   opts.Restart,
		policy:    policy,
		log:       log,
	}, nil
}

// Session exposes the running session, e.g. for redraws from another goroutine.
func (l *Loop) Session() *Session {
	return l.session
}

// Run plays games until the players decline a restart. Running out of input
// or a cancelled ctx ends the run like a declined restart.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	l.presenter.OnWelcome()

	for {
		res, err := l.playGame(ctx)
		if err != nil {
			return l.stop(err)
		}
		l.summary.Record(res)

		l.presenter.OnRestartPrompt()
		again, err := l.restart.ConfirmRestart(ctx)
		if err != nil {
			return l.stop(fmt.Errorf("restart prompt: %w", err))
		}
		if !again {
			l.presenter.OnExit()
			return l.summary, nil
		}

		starter := l.policy.NextStarter(l.session.Starter(), res)
		l.session.Restart(starter)
		l.log.Info("[GAME] Restarted", zap.String("game_id", l.session.ID()), zap.Stringer("starter", starter))
	}
}

// playGame runs one game to its end. Rejected moves are reported and the same
// player is asked again.
func (l *Loop) playGame(ctx context.Context) (domain.Result, error) {
	gameID := l.session.ID()
	l.log.Info("[GAME] Started", zap.String("game_id", gameID))

	for {
		board, player := l.session.Snapshot()
		l.presenter.OnBoardChanged(board)
		l.presenter.OnTurn(player)

		column, err := l.providers[player.Disc].RequestColumn(ctx, player, board)
		if err != nil {
			return domain.InProgress(), fmt.Errorf("column request for %s: %w", player.Name, err)
		}

		mover, res, err := l.session.HandleMove(column)
		if err != nil {
			if isRejectedMove(err) {
				l.log.Debug("[GAME] Rejected move", zap.String("game_id", gameID),
					zap.String("player", mover.Name), zap.Int("column", column), zap.Error(err))
				l.presenter.OnInvalidMove(err)
				continue
			}
			return res, err
		}
		l.log.Debug("[GAME] Move", zap.String("game_id", gameID),
			zap.String("player", mover.Name), zap.Int("column", column))

		switch res.Status {
		case domain.StatusWon:
			board, _ = l.session.Snapshot()
			l.presenter.OnBoardChanged(board)
			l.presenter.OnWin(mover)
			l.log.Info("[GAME] Won", zap.String("game_id", gameID), zap.String("winner", mover.Name),
				zap.Int("moves", board.MoveCount()), zap.Duration("duration", l.session.Duration()))
			return res, nil
		case domain.StatusDraw:
			board, _ = l.session.Snapshot()
			l.presenter.OnBoardChanged(board)
			l.presenter.OnDraw()
			l.log.Info("[GAME] Draw", zap.String("game_id", gameID), zap.Duration("duration", l.session.Duration()))
			return res, nil
		}
	}
}

func (l *Loop) stop(err error) (Summary, error) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		l.log.Info("[GAME] Input closed, leaving", zap.Error(err))
		l.presenter.OnExit()
		return l.summary, nil
	}

	l.log.Error("[GAME] Session aborted", zap.Error(err))
	return l.summary, err
}

func isRejectedMove(err error) bool {
	return errors.Is(err, domain.ErrOutOfRange) || errors.Is(err, domain.ErrColumnFull)
}
