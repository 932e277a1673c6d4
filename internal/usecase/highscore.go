package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

const DefaultHighscoreLimit = 10

type HighscoreUseCase interface {
	Submit(ctx context.Context, name string, score int) error
	List(ctx context.Context) ([]entity.Highscore, error)
}

type highscoreRepo interface {
	Add(ctx context.Context, highscore *entity.Highscore) error
	Top(ctx context.Context, limit int) ([]entity.Highscore, error)
	Trim(ctx context.Context, keep int) error
}

// HighscoreManager keeps the best `limit` scores.
type HighscoreManager struct {
	logger        *slog.Logger
	highscoreRepo highscoreRepo
	limit         int
}

func NewHighscoreManager(logger *slog.Logger, highscoreRepo highscoreRepo, limit int) *HighscoreManager {
	if limit <= 0 {
		limit = DefaultHighscoreLimit
	}

	return &HighscoreManager{
		logger: logger.With("component", "highscore"),

		highscoreRepo: highscoreRepo,
		limit:         limit,
	}
}

// Submit - stores a finished game's score and drops whatever falls off the board.
func (that *HighscoreManager) Submit(ctx context.Context, name string, score int) error {
	log := that.logger.With("method", "Submit")

	name = strings.TrimSpace(name)
	if name == "" {
		return apperror.ErrEmptyName
	}

	if err := that.highscoreRepo.Add(ctx, &entity.Highscore{Name: name, Score: score}); err != nil {
		return fmt.Errorf("failed to add highscore: %w", err)
	}

	// the score is stored; a failed trim is retried by the next submit
	if err := that.highscoreRepo.Trim(ctx, that.limit); err != nil {
		log.Error("failed to trim highscores", "error", err)
	}

	log.Debug("highscore submitted", "name", name, "score", score)

	return nil
}

func (that *HighscoreManager) List(ctx context.Context) ([]entity.Highscore, error) {
	highscores, err := that.highscoreRepo.Top(ctx, that.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get highscores: %w", err)
	}

	if highscores == nil {
		highscores = []entity.Highscore{}
	}

	return highscores, nil
}

// ParseScore - accepts a decoded JSON score the way a lenient integer conversion would:
// numbers are truncated, numeric strings are parsed, anything else is ErrInvalidScore.
func ParseScore(value any) (int, error) {
	switch score := value.(type) {
	case float64:
		if math.IsNaN(score) || math.IsInf(score, 0) || math.Abs(score) > math.MaxInt32 {
			return 0, apperror.ErrInvalidScore
		}

		return int(score), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(score))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidScore, score)
		}

		return parsed, nil
	default:
		return 0, apperror.ErrInvalidScore
	}
}
