package snake

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

var ErrInvalidRules = errors.New("invalid game rules")

const (
	DefaultInitialSpeed           = 200
	DefaultSpeedIncrement         = -25
	DefaultMinSpeed               = 25
	DefaultFruitsPerLevel         = 3
	DefaultLevelsPerSpeedIncrease = 3
)

// DefaultStartCell is where every new snake is born.
var DefaultStartCell = entity.Cell{X: 10, Y: 10}

// Rules are the tunables of a game. Speeds are tick intervals in milliseconds.
type Rules struct {
	Grid                   Grid
	StartCell              entity.Cell
	InitialSpeed           int
	SpeedIncrement         int
	MinSpeed               int
	FruitsPerLevel         int
	LevelsPerSpeedIncrease int
	Food                   FoodPolicy
	Fruits                 FruitTable
	MaxSpawnAttempts       int
}

func DefaultRules(grid Grid) Rules {
	return Rules{
		Grid:                   grid,
		StartCell:              DefaultStartCell,
		InitialSpeed:           DefaultInitialSpeed,
		SpeedIncrement:         DefaultSpeedIncrement,
		MinSpeed:               DefaultMinSpeed,
		FruitsPerLevel:         DefaultFruitsPerLevel,
		LevelsPerSpeedIncrease: DefaultLevelsPerSpeedIncrease,
		Food:                   DefaultFoodPolicy(),
		Fruits:                 DefaultFruitTable(),
		MaxSpawnAttempts:       DefaultMaxSpawnAttempts,
	}
}

func (that Rules) Validate() error {
	if err := that.Grid.Validate(); err != nil {
		return err
	}

	if !that.Grid.InBounds(that.StartCell) {
		return fmt.Errorf("%w: start cell %v is outside the playable area", apperror.ErrInvalidDimension, that.StartCell)
	}

	switch {
	case that.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed %d", ErrInvalidRules, that.InitialSpeed)
	case that.MinSpeed <= 0 || that.MinSpeed > that.InitialSpeed:
		return fmt.Errorf("%w: min speed %d", ErrInvalidRules, that.MinSpeed)
	case that.FruitsPerLevel <= 0:
		return fmt.Errorf("%w: fruits per level %d", ErrInvalidRules, that.FruitsPerLevel)
	case that.LevelsPerSpeedIncrease <= 0:
		return fmt.Errorf("%w: levels per speed increase %d", ErrInvalidRules, that.LevelsPerSpeedIncrease)
	case that.Food.SingleCount <= 0 || that.Food.MultiCount <= 0:
		return fmt.Errorf("%w: food counts %d/%d", ErrInvalidRules, that.Food.SingleCount, that.Food.MultiCount)
	}

	if err := that.Fruits.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return nil
}
