package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

type sqliteHighscore struct {
	conn *sql.DB
}

func NewSQLiteHighscoreRepository(conn *sql.DB) HighscoreRepository {
	return &sqliteHighscore{
		conn: conn,
	}
}

func (that *sqliteHighscore) Add(ctx context.Context, highscore *entity.Highscore) error {
	query := `INSERT INTO highscores (name, score) VALUES (?, ?)`

	_, err := that.conn.ExecContext(ctx, query, highscore.Name, highscore.Score)
	if err != nil {
		return fmt.Errorf("can't save highscore: %w", err)
	}

	return nil
}

func (that *sqliteHighscore) Top(ctx context.Context, limit int) ([]entity.Highscore, error) {
	highscores := make([]entity.Highscore, 0, max(limit, 0))
	if limit <= 0 {
		return highscores, nil
	}

	query := `SELECT name, score FROM highscores ORDER BY score DESC, id ASC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query highscores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var highscore entity.Highscore
		if err = rows.Scan(&highscore.Name, &highscore.Score); err != nil {
			return nil, fmt.Errorf("can't scan highscore: %w", err)
		}

		highscores = append(highscores, highscore)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read highscores: %w", err)
	}

	return highscores, nil
}

func (that *sqliteHighscore) Trim(ctx context.Context, keep int) error {
	query := `DELETE FROM highscores WHERE id NOT IN (
		SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?
	)`

	_, err := that.conn.ExecContext(ctx, query, max(keep, 0))
	if err != nil {
		return fmt.Errorf("can't trim highscores: %w", err)
	}

	return nil
}
