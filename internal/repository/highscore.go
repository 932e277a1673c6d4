package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

const highscoresKey = "highscores"

type HighscoreRepository interface {
	Add(ctx context.Context, highscore *entity.Highscore) error
	// Top - returns at most limit highscores, best first. An empty board gives an empty slice.
	Top(ctx context.Context, limit int) ([]entity.Highscore, error)
	// Trim - drops everything below the best keep highscores.
	Trim(ctx context.Context, keep int) error
}

// highscoreMember is stored as the sorted set member; the id keeps equal names with equal scores apart.
type highscoreMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type dbHighscore struct {
	client *redis.Client
}

func NewHighscoreRepository(client *redis.Client) HighscoreRepository {
	return &dbHighscore{
		client: client,
	}
}

func (that *dbHighscore) Add(ctx context.Context, highscore *entity.Highscore) error {
	memberJSON, err := json.Marshal(highscoreMember{ID: uuid.NewString(), Name: highscore.Name})
	if err != nil {
		return fmt.Errorf("failed to marshal highscore: %w", err)
	}

	err = that.client.ZAdd(ctx, highscoresKey, redis.Z{
		Score:  float64(highscore.Score),
		Member: string(memberJSON),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add highscore: %w", err)
	}

	return nil
}

func (that *dbHighscore) Top(ctx context.Context, limit int) ([]entity.Highscore, error) {
	highscores := make([]entity.Highscore, 0, max(limit, 0))
	if limit <= 0 {
		return highscores, nil
	}

	response, err := that.client.ZRevRangeWithScores(ctx, highscoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get highscores: %w", err)
	}

	for _, item := range response {
		raw, ok := item.Member.(string)
		if !ok {
			return nil, fmt.Errorf("failed to read highscore member of type %T", item.Member)
		}

		var member highscoreMember
		if err = json.Unmarshal([]byte(raw), &member); err != nil {
			return nil, fmt.Errorf("failed to unmarshal highscore: %w", err)
		}

		highscores = append(highscores, entity.Highscore{Name: member.Name, Score: int(item.Score)})
	}

	return highscores, nil
}

func (that *dbHighscore) Trim(ctx context.Context, keep int) error {
	if keep <= 0 {
		if err := that.client.Del(ctx, highscoresKey).Err(); err != nil {
			return fmt.Errorf("failed to clear highscores: %w", err)
		}

		return nil
	}

	if err := that.client.ZRemRangeByRank(ctx, highscoresKey, 0, int64(-keep-1)).Err(); err != nil {
		return fmt.Errorf("failed to trim highscores: %w", err)
	}

	return nil
}
