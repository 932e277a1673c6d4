package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/snake-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHighscoreManager_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a trimmed name and trims the board", func(t *testing.T) {
		// Given: a repository that accepts everything
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 10)

		repo.EXPECT().
			Add(mock.Anything, &entity.Highscore{Name: "alice", Score: 42}).
			Return(nil).
			Once()
		repo.EXPECT().
			Trim(mock.Anything, 10).
			Return(nil).
			Once()

		// When: a score is submitted with padded name
		err := manager.Submit(ctx, "  alice ", 42)

		// Then: it is stored
		require.NoError(t, err)
	})

	t.Run("Rejects an empty name", func(t *testing.T) {
		// Given: a repository that must not be called
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 10)

		// When: the name is only whitespace
		err := manager.Submit(ctx, "   ", 42)

		// Then: ErrEmptyName is returned
		require.ErrorIs(t, err, apperror.ErrEmptyName)
	})

	t.Run("Returns error if Add fails", func(t *testing.T) {
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 10)

		repo.EXPECT().
			Add(mock.Anything, mock.AnythingOfType("*entity.Highscore")).
			Return(errRedisDown).
			Once()

		err := manager.Submit(ctx, "bob", 1)

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("A failed trim does not fail the submit", func(t *testing.T) {
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 3)

		repo.EXPECT().
			Add(mock.Anything, mock.AnythingOfType("*entity.Highscore")).
			Return(nil).
			Once()
		repo.EXPECT().
			Trim(mock.Anything, 3).
			Return(errRedisDown).
			Once()

		err := manager.Submit(ctx, "bob", 1)

		require.NoError(t, err)
	})
}

func TestHighscoreManager_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the top of the board", func(t *testing.T) {
		// Given: a repository with two scores
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 0)

		expected := []entity.Highscore{{Name: "bob", Score: 12}, {Name: "alice", Score: 5}}
		repo.EXPECT().
			Top(mock.Anything, DefaultHighscoreLimit).
			Return(expected, nil).
			Once()

		// When: the board is listed
		highscores, err := manager.List(ctx)

		// Then: the repository order is kept
		require.NoError(t, err)
		assert.Equal(t, expected, highscores)
	})

	t.Run("Never returns nil", func(t *testing.T) {
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 10)

		repo.EXPECT().
			Top(mock.Anything, 10).
			Return(nil, nil).
			Once()

		highscores, err := manager.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, highscores)
		assert.Empty(t, highscores)
	})

	t.Run("Returns error if Top fails", func(t *testing.T) {
		repo := mockedUseCase.NewMockhighscoreRepo(t)
		manager := NewHighscoreManager(newTestLogger(), repo, 10)

		repo.EXPECT().
			Top(mock.Anything, 10).
			Return(nil, errRedisDown).
			Once()

		_, err := manager.List(ctx)

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestParseScore(t *testing.T) {
	valid := map[any]int{
		float64(42):  42,
		float64(-3):  -3,
		float64(7.9): 7,
		"15":         15,
		" 8 ":        8,
	}

	for value, expected := range valid {
		score, err := ParseScore(value)
		require.NoError(t, err, "value %v", value)
		assert.Equal(t, expected, score)
	}

	for _, value := range []any{"abc", "1.5", true, nil, []any{1}, float64(1 << 40)} {
		_, err := ParseScore(value)
		require.ErrorIs(t, err, apperror.ErrInvalidScore, "value %v", value)
	}
}
