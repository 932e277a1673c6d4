package snake

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

const DefaultMaxSpawnAttempts = 1000

// FoodPolicy decides how many foods sit on the board at a given level.
type FoodPolicy struct {
	MultiFoodLevel int
	SingleCount    int
	MultiCount     int
}

func DefaultFoodPolicy() FoodPolicy {
	return FoodPolicy{
		MultiFoodLevel: 5,
		SingleCount:    1,
		MultiCount:     2,
	}
}

// FoodTarget - returns the number of foods wanted on the board at the level.
func FoodTarget(level int, policy FoodPolicy) int {
	if level >= policy.MultiFoodLevel {
		return policy.MultiCount
	}

	return policy.SingleCount
}

func IsFoodOnSnake(cell entity.Cell, snake []entity.Cell) bool {
	return containsCell(snake, cell)
}

func IsFoodOnFood(cell entity.Cell, foods []entity.Food) bool {
	for _, food := range foods {
		if food.Position == cell {
			return true
		}
	}

	return false
}

type Spawner struct {
	grid        Grid
	policy      FoodPolicy
	fruits      FruitTable
	maxAttempts int
}

func NewSpawner(grid Grid, policy FoodPolicy, fruits FruitTable, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxSpawnAttempts
	}

	return &Spawner{
		grid:        grid,
		policy:      policy,
		fruits:      fruits,
		maxAttempts: maxAttempts,
	}
}

// Generate - builds a new set of foods for the state's level. The result replaces state.Foods;
// none of the new foods lands on the snake, on another new food or on a food already on the board.
func (that *Spawner) Generate(state *entity.GameState, rng *rand.Rand) ([]entity.Food, error) {
	target := FoodTarget(state.Level, that.policy)

	blocked := append([]entity.Food(nil), state.Foods...)
	foods := make([]entity.Food, 0, target)

	for len(foods) < target {
		food, err := that.spawn(state, blocked, rng)
		if err != nil {
			return nil, err
		}

		foods = append(foods, food)
		blocked = append(blocked, food)
	}

	return foods, nil
}

// Refill - keeps the foods on the board and adds new ones until the level's target is met.
func (that *Spawner) Refill(state *entity.GameState, rng *rand.Rand) ([]entity.Food, error) {
	target := FoodTarget(state.Level, that.policy)
	foods := append([]entity.Food(nil), state.Foods...)

	for len(foods) < target {
		food, err := that.spawn(state, foods, rng)
		if err != nil {
			return nil, err
		}

		foods = append(foods, food)
	}

	return foods, nil
}

func (that *Spawner) spawn(state *entity.GameState, blocked []entity.Food, rng *rand.Rand) (entity.Food, error) {
	position, err := that.freeCell(state.Snake, blocked, rng)
	if err != nil {
		return entity.Food{}, err
	}

	return entity.Food{
		Position: position,
		Type:     that.fruits.Pick(state.Level, rng),
	}, nil
}

// freeCell - rejection samples a free playable cell. Once the attempts run out the free cells
// are enumerated, so a crowded board still gets food as long as one cell is left.
func (that *Spawner) freeCell(snake []entity.Cell, foods []entity.Food, rng *rand.Rand) (entity.Cell, error) {
	for attempt := 0; attempt < that.maxAttempts; attempt++ {
		candidate := entity.Cell{
			X: that.grid.MinX() + rng.Intn(that.grid.PlayableWidth()),
			Y: that.grid.MinY() + rng.Intn(that.grid.PlayableHeight()),
		}

		if !IsFoodOnSnake(candidate, snake) && !IsFoodOnFood(candidate, foods) {
			return candidate, nil
		}
	}

	var free []entity.Cell
	for _, cell := range that.grid.PlayableCells() {
		if !IsFoodOnSnake(cell, snake) && !IsFoodOnFood(cell, foods) {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return entity.Cell{}, fmt.Errorf("%w: %d snake cells and %d foods on %d playable cells",
			apperror.ErrNoSpaceForFood, len(snake), len(foods), that.grid.PlayableArea())
	}

	return free[rng.Intn(len(free))], nil
}
