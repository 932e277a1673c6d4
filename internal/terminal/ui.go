package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
)

const frameInterval = time.Second / 30

type gameController interface {
	SetDirection(ctx context.Context, direction entity.Direction) error
	TogglePause(ctx context.Context) error
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) (entity.GameState, error)
}

// UI renders a game on a tcell screen and feeds key presses back to it.
type UI struct {
	logger *slog.Logger
	screen tcell.Screen
	game   gameController
	grid   snake.Grid
}

func New(logger *slog.Logger, screen tcell.Screen, game gameController, grid snake.Grid) *UI {
	return &UI{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,
		grid:   grid,
	}
}

// Run - draws frames until the player quits or ctx is done. The screen must already be
// initialised; the caller finalises it.
func (that *UI) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := that.screen.PollEvent()
			if ev == nil {
				return
			}

			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				that.screen.Sync()
			case *tcell.EventKey:
				quit, err := that.handleKey(ctx, e)
				if err != nil {
					return err
				}

				if quit {
					log.Info("player quit")
					return nil
				}
			}
		case <-ticker.C:
			if err := that.draw(ctx); err != nil {
				return err
			}
		}
	}
}

func (that *UI) handleKey(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	var err error

	action, direction := KeyAction(ev)
	switch action {
	case ActionMove:
		err = that.game.SetDirection(ctx, direction)
	case ActionPause:
		err = that.game.TogglePause(ctx)
	case ActionReset:
		err = that.game.Reset(ctx)
	case ActionQuit:
		return true, nil
	case ActionNone:
	}

	if err != nil && ctx.Err() == nil {
		return false, fmt.Errorf("failed to apply key: %w", err)
	}

	return false, nil
}

func (that *UI) draw(ctx context.Context) error {
	state, err := that.game.Snapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("failed to get game state: %w", err)
	}

	Render(that.screen, that.grid, state)
	that.screen.Show()

	return nil
}
