package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/config"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

func TestOpenHighscores(t *testing.T) {
	ctx := context.Background()

	t.Run("SQLite", func(t *testing.T) {
		// Given: a config pointing at a fresh sqlite file
		conf := &config.Config{
			Storage:           config.StorageSQLite,
			SQLiteStoragePath: filepath.Join(t.TempDir(), "highscores.db"),
		}

		// When: the storage is opened
		repo, closeStorage, err := OpenHighscores(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = closeStorage() })

		// Then: the schema is ready to use
		require.NoError(t, repo.Add(ctx, &entity.Highscore{Name: "alice", Score: 1}))

		highscores, err := repo.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []entity.Highscore{{Name: "alice", Score: 1}}, highscores)
	})

	t.Run("Unknown storage", func(t *testing.T) {
		_, _, err := OpenHighscores(ctx, &config.Config{Storage: "postgres"})

		require.ErrorIs(t, err, apperror.ErrUnknownStorage)
	})

	t.Run("Redis without address", func(t *testing.T) {
		_, _, err := OpenHighscores(ctx, &config.Config{Storage: config.StorageRedis})

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
