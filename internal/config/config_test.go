package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill what the file leaves out", func(t *testing.T) {
		// Given: a config file with a single value
		path := writeConfig(t, "http-port: \"8080\"\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: every other value has its default
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "highscores.db", conf.SQLiteStoragePath)
		assert.Equal(t, 10, conf.HighscoreLimit)
		assert.Equal(t, 800, conf.Game.CanvasWidth)
		assert.Equal(t, 600, conf.Game.CanvasHeight)
		assert.Equal(t, 20, conf.Game.CellSize)
		assert.Equal(t, -25, conf.Game.SpeedIncrement)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "player-name: \"alice\"\nstorage: \"redis\"\n")
		t.Setenv("PLAYER_NAME", "bob")
		t.Setenv("STORAGE", StorageSQLite)

		conf := MustLoad(path)

		assert.Equal(t, "bob", conf.PlayerName)
		assert.Equal(t, StorageSQLite, conf.Storage)
	})

	t.Run("Panics without a file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_GameRules(t *testing.T) {
	t.Run("Default canvas gives a 40x30 grid", func(t *testing.T) {
		// Given: the default configuration
		conf := MustLoad(writeConfig(t, "log-level: \"debug\"\n"))

		// When: converting it to engine rules
		rules, err := conf.GameRules()

		// Then: the rules match the classic game
		require.NoError(t, err)
		assert.Equal(t, snake.Grid{Width: 40, Height: 30, WallThickness: 2}, rules.Grid)
		assert.Equal(t, entity.Cell{X: 10, Y: 10}, rules.StartCell)
		assert.Equal(t, snake.DefaultInitialSpeed, rules.InitialSpeed)
		assert.Equal(t, snake.DefaultFruitTable(), rules.Fruits)
		assert.Equal(t, 5, rules.Food.MultiFoodLevel)
	})

	t.Run("Custom fruit weights", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, `
game:
  fruit-weights:
    - min-level: 1
      weights:
        apple: 50
        special_apple: 50
`))

		rules, err := conf.GameRules()

		require.NoError(t, err)
		require.Len(t, rules.Fruits, 1)
		assert.Equal(t, map[string]int{entity.FruitApple: 50, entity.FruitSpecialApple: 50}, rules.Fruits[0].Weights)
	})

	t.Run("Unknown fruit is rejected", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, `
game:
  fruit-weights:
    - min-level: 1
      weights:
        banana: 1
`))

		_, err := conf.GameRules()

		require.ErrorIs(t, err, snake.ErrInvalidRules)
	})

	t.Run("Canvas smaller than a cell", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, "game:\n  canvas-width: 10\n"))

		_, err := conf.GameRules()

		require.ErrorIs(t, err, apperror.ErrInvalidDimension)
	})
}

func TestGame_RandomSeed(t *testing.T) {
	game := Game{Seed: 42}
	assert.Equal(t, int64(42), game.RandomSeed())

	game.Seed = 0
	assert.NotZero(t, game.RandomSeed())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, LogLevel("info"))
	assert.Equal(t, slog.LevelWarn, LogLevel("warn"))
	assert.Equal(t, slog.LevelError, LogLevel("error"))
	assert.Equal(t, slog.LevelInfo, LogLevel("verbose"))
}
