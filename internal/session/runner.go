package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
)

var ErrStopped = errors.New("runner is not running")

// GameOverHandler receives the final score once per finished game.
type GameOverHandler func(ctx context.Context, score int)

type command struct {
	apply func(game *snake.Game) error
	done  chan error
}

// Runner drives a game on a fixed interval. Every access to the game goes through the goroutine
// that runs Run, so callers on other goroutines never race with a tick.
type Runner struct {
	logger *slog.Logger
	game   *snake.Game

	commands chan command
	stopped  chan struct{}

	onGameOver GameOverHandler
}

type Option func(*Runner)

func WithGameOverHandler(handler GameOverHandler) Option {
	return func(that *Runner) {
		that.onGameOver = handler
	}
}

func New(logger *slog.Logger, game *snake.Game, opts ...Option) *Runner {
	runner := &Runner{
		logger:   logger.With("component", "session"),
		game:     game,
		commands: make(chan command),
		stopped:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run - ticks the game until ctx is done. A runner can only be run once.
func (that *Runner) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")
	defer close(that.stopped)

	if !that.game.Started() {
		if err := that.game.Reset(); err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}
	}

	state := that.game.State()
	speed := state.Speed
	reported := state.GameOver

	ticker := time.NewTicker(interval(speed))
	defer ticker.Stop()

	log.Info("game started", "speed", speed, "direction", state.Direction)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-that.commands:
			cmd.done <- cmd.apply(that.game)
		case <-ticker.C:
			if err := that.game.Advance(); err != nil {
				return fmt.Errorf("failed to advance game: %w", err)
			}
		}

		state = that.game.State()

		if state.Speed != speed {
			log.Debug("speed changed", "from", speed, "to", state.Speed, "level", state.Level)

			speed = state.Speed
			ticker.Reset(interval(speed))
		}

		switch {
		case state.GameOver && !reported:
			reported = true
			log.Info("game over", "score", state.Score, "level", state.Level)

			if that.onGameOver != nil {
				that.onGameOver(ctx, state.Score)
			}
		case !state.GameOver:
			reported = false
		}
	}
}

func (that *Runner) SetDirection(ctx context.Context, direction entity.Direction) error {
	return that.do(ctx, func(game *snake.Game) error {
		game.SetDirection(direction)
		return nil
	})
}

func (that *Runner) TogglePause(ctx context.Context) error {
	return that.do(ctx, func(game *snake.Game) error {
		game.TogglePause()
		return nil
	})
}

func (that *Runner) Reset(ctx context.Context) error {
	return that.do(ctx, func(game *snake.Game) error {
		return game.Reset()
	})
}

// Snapshot - returns a copy of the state as of the last applied tick or command.
func (that *Runner) Snapshot(ctx context.Context) (entity.GameState, error) {
	var state entity.GameState

	err := that.do(ctx, func(game *snake.Game) error {
		state = game.State()
		return nil
	})

	return state, err
}

func (that *Runner) do(ctx context.Context, apply func(game *snake.Game) error) error {
	cmd := command{apply: apply, done: make(chan error, 1)}

	select {
	case that.commands <- cmd:
	case <-that.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func interval(speed int) time.Duration {
	return time.Duration(speed) * time.Millisecond
}
