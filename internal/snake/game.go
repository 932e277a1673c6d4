package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

var ErrNilRandom = errors.New("random source is required")

// Game is a single-player snake game. It is not safe for concurrent use; callers that tick
// it from several goroutines must serialize access (see the session package).
type Game struct {
	rules   Rules
	rng     *rand.Rand
	spawner *Spawner

	state *entity.GameState
}

// NewGame - creates a game that is not started yet; call Reset before Advance.
func NewGame(rules Rules, rng *rand.Rand) (*Game, error) {
	if rng == nil {
		return nil, ErrNilRandom
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate rules: %w", err)
	}

	return &Game{
		rules:   rules,
		rng:     rng,
		spawner: NewSpawner(rules.Grid, rules.Food, rules.Fruits, rules.MaxSpawnAttempts),
	}, nil
}

func (that *Game) Rules() Rules {
	return that.rules
}

func (that *Game) Started() bool {
	return that.state != nil
}

func (that *Game) Status() string {
	if that.state == nil {
		return entity.StatusIdle
	}

	return that.state.Status()
}

// State - returns a copy of the current state. The zero state is returned before Reset.
func (that *Game) State() entity.GameState {
	if that.state == nil {
		return entity.GameState{}
	}

	return that.state.Clone()
}

// Reset - starts a new game from the start cell in a random direction.
func (that *Game) Reset() error {
	direction := entity.Directions[that.rng.Intn(len(entity.Directions))]

	state := &entity.GameState{
		Score:                  0,
		Level:                  1,
		FruitsEaten:            0,
		Speed:                  that.rules.InitialSpeed,
		LastSpeedIncreaseLevel: 1,
		Paused:                 false,
		GameOver:               false,
		Snake:                  []entity.Cell{that.rules.StartCell},
		Direction:              direction,
		Heading:                direction,
	}

	foods, err := that.spawner.Generate(state, that.rng)
	if err != nil {
		return fmt.Errorf("failed to place food: %w", err)
	}
	state.Foods = foods

	that.state = state

	return nil
}

// SetDirection - turns the snake. Reversals and input outside of a running game are ignored.
func (that *Game) SetDirection(direction entity.Direction) {
	if that.state == nil || !that.state.IsRunning() || !direction.IsValid() {
		return
	}

	if direction == that.state.Direction.Opposite() {
		return
	}

	// two quick turns inside one tick must not fold the head back onto the neck
	if len(that.state.Snake) > 1 && direction == that.state.Heading.Opposite() {
		return
	}

	that.state.Direction = direction
}

func (that *Game) TogglePause() {
	if that.state == nil || that.state.GameOver {
		return
	}

	that.state.Paused = !that.state.Paused
}

// Advance - moves the snake one cell. A collision ends the game without any other change.
func (that *Game) Advance() error {
	if that.state == nil {
		return apperror.ErrIllegalTransition
	}

	state := that.state
	if !state.IsRunning() {
		return nil
	}

	head := state.Head().Move(state.Direction)
	if IsCollision(head, state.Snake, that.rules.Grid) {
		state.GameOver = true
		return nil
	}

	state.Snake = append([]entity.Cell{head}, state.Snake...)
	state.Heading = state.Direction

	index := foodIndex(state.Foods, head)
	if index < 0 {
		if state.PendingGrowth > 0 {
			state.PendingGrowth--
		} else {
			state.Snake = state.Snake[:len(state.Snake)-1]
		}

		return nil
	}

	return that.consume(index)
}

func (that *Game) consume(index int) error {
	state := that.state
	food := state.Foods[index]

	state.Foods = append(state.Foods[:index:index], state.Foods[index+1:]...)
	state.Score += food.Type.ScoreDelta

	// the new head already added one segment
	that.resize(food.Type.LengthDelta - 1)

	state.FruitsEaten++
	state.Level = LevelFor(state.FruitsEaten, that.rules.FruitsPerLevel)
	ApplySpeedIncrease(state, that.rules)

	foods, err := that.spawner.Refill(state, that.rng)
	if err != nil {
		return fmt.Errorf("failed to refill food: %w", err)
	}
	state.Foods = foods

	return nil
}

func (that *Game) resize(delta int) {
	switch {
	case delta > 0:
		that.grow(delta)
	case delta < 0:
		that.shrink(-delta)
	}
}

// grow - lays segments out behind the tail; whatever does not fit is grown on later ticks.
func (that *Game) grow(count int) {
	state := that.state

	for i := 0; i < count; i++ {
		cell, ok := that.tailExtension()
		if !ok {
			state.PendingGrowth += count - i
			return
		}

		state.Snake = append(state.Snake, cell)
	}
}

// shrink - cancels pending growth first, then drops tail segments. The head always stays.
func (that *Game) shrink(count int) {
	state := that.state

	cancelled := min(count, state.PendingGrowth)
	state.PendingGrowth -= cancelled
	count -= cancelled

	keep := max(len(state.Snake)-count, 1)
	state.Snake = state.Snake[:keep]
}

func (that *Game) tailExtension() (entity.Cell, bool) {
	state := that.state
	tail := state.Tail()

	candidates := make([]entity.Cell, 0, len(entity.Directions)+1)
	if len(state.Snake) > 1 {
		prev := state.Snake[len(state.Snake)-2]
		candidates = append(candidates, entity.Cell{X: 2*tail.X - prev.X, Y: 2*tail.Y - prev.Y})
	}
	for _, direction := range entity.Directions {
		candidates = append(candidates, tail.Move(direction))
	}

	for _, cell := range candidates {
		if that.rules.Grid.InBounds(cell) && !containsCell(state.Snake, cell) && !IsFoodOnFood(cell, state.Foods) {
			return cell, true
		}
	}

	return entity.Cell{}, false
}

func foodIndex(foods []entity.Food, cell entity.Cell) int {
	for i, food := range foods {
		if food.Position == cell {
			return i
		}
	}

	return -1
}
