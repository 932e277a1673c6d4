package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
)

const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string `yaml:"log-file" env:"LOG_FILE"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage           string `yaml:"storage" env:"STORAGE" env-default:"redis"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"highscores.db"`
	HighscoreLimit    int    `yaml:"highscore-limit" env:"HIGHSCORE_LIMIT" env-default:"10"`
	PlayerName        string `yaml:"player-name" env:"PLAYER_NAME" env-default:"player"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	CanvasWidth            int            `yaml:"canvas-width" env-default:"800"`
	CanvasHeight           int            `yaml:"canvas-height" env-default:"600"`
	CellSize               int            `yaml:"cell-size" env-default:"20"`
	WallThickness          int            `yaml:"wall-thickness" env-default:"2"`
	StartX                 int            `yaml:"start-x" env-default:"10"`
	StartY                 int            `yaml:"start-y" env-default:"10"`
	InitialSpeed           int            `yaml:"initial-speed" env-default:"200"`
	SpeedIncrement         int            `yaml:"speed-increment" env-default:"-25"`
	MinSpeed               int            `yaml:"min-speed" env-default:"25"`
	FruitsPerLevel         int            `yaml:"fruits-per-level" env-default:"3"`
	LevelsPerSpeedIncrease int            `yaml:"levels-per-speed-increase" env-default:"3"`
	MultiFoodLevel         int            `yaml:"multi-food-level" env-default:"5"`
	Seed                   int64          `yaml:"seed" env:"GAME_SEED"`
	FruitWeights           []FruitWeights `yaml:"fruit-weights"`
}

type FruitWeights struct {
	MinLevel int            `yaml:"min-level"`
	Weights  map[string]int `yaml:"weights"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameRules - converts the game section into engine rules and validates them.
func (that *Config) GameRules() (snake.Rules, error) {
	game := that.Game

	dims, err := snake.GridDimensions(game.CanvasWidth, game.CanvasHeight, game.CellSize)
	if err != nil {
		return snake.Rules{}, fmt.Errorf("failed to size grid: %w", err)
	}

	grid, err := snake.NewGrid(dims, game.WallThickness)
	if err != nil {
		return snake.Rules{}, fmt.Errorf("failed to build grid: %w", err)
	}

	rules := snake.DefaultRules(grid)
	rules.StartCell = entity.Cell{X: game.StartX, Y: game.StartY}
	rules.InitialSpeed = game.InitialSpeed
	rules.SpeedIncrement = game.SpeedIncrement
	rules.MinSpeed = game.MinSpeed
	rules.FruitsPerLevel = game.FruitsPerLevel
	rules.LevelsPerSpeedIncrease = game.LevelsPerSpeedIncrease
	rules.Food.MultiFoodLevel = game.MultiFoodLevel

	if len(game.FruitWeights) > 0 {
		table := make(snake.FruitTable, 0, len(game.FruitWeights))
		for _, band := range game.FruitWeights {
			table = append(table, snake.FruitWeights{MinLevel: band.MinLevel, Weights: band.Weights})
		}

		rules.Fruits = table
	}

	if err = rules.Validate(); err != nil {
		return snake.Rules{}, fmt.Errorf("failed to validate game rules: %w", err)
	}

	return rules, nil
}

// RandomSeed - the configured seed, or the current time when none is set.
func (that *Game) RandomSeed() int64 {
	if that.Seed != 0 {
		return that.Seed
	}

	return time.Now().UnixNano()
}

// LogLevel - maps the log-level setting to a slog level; unknown values mean info.
func LogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
