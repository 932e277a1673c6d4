package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	app "github.com/rocketscienceinc/snake-backend/internal"
	"github.com/rocketscienceinc/snake-backend/internal/config"
	"github.com/rocketscienceinc/snake-backend/internal/session"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
	"github.com/rocketscienceinc/snake-backend/internal/terminal"
	"github.com/rocketscienceinc/snake-backend/internal/usecase"
)

// main - is the entry point of the terminal game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := run(logger, conf); err != nil {
		panic(fmt.Errorf("game run failed: %w", err))
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "snake")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rules, err := conf.GameRules()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	seed := conf.Game.RandomSeed()
	game, err := snake.NewGame(rules, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("new game", "seed", seed, "grid_width", rules.Grid.Width, "grid_height", rules.Grid.Height)

	var opts []session.Option

	// the game is playable without a highscore storage
	highscoreRepo, closeStorage, err := app.OpenHighscores(ctx, conf)
	if err != nil {
		log.Warn("highscores disabled", "error", err)
	} else {
		defer func() {
			if err = closeStorage(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}()

		highscores := usecase.NewHighscoreManager(logger, highscoreRepo, conf.HighscoreLimit)
		opts = append(opts, session.WithGameOverHandler(func(ctx context.Context, score int) {
			if submitErr := highscores.Submit(ctx, conf.PlayerName, score); submitErr != nil {
				log.Error("failed to submit highscore", "error", submitErr)
			}
		}))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	runner := session.New(logger, game, opts...)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- runner.Run(ctx)
	}()

	uiErr := terminal.New(logger, screen, runner, rules.Grid).Run(ctx)
	cancel()

	if runErr := <-runErrCh; runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("game loop failed: %w", runErr)
	}

	if uiErr != nil {
		return fmt.Errorf("terminal failed: %w", uiErr)
	}

	return nil
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The screen belongs to tcell, so logs go to a file or nowhere.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	if conf.LogFile == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: config.LogLevel(conf.LogLevel)}))

	return logger, func() { _ = file.Close() }
}
