package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	t.Run("Opposite pairs", func(t *testing.T) {
		assert.Equal(t, DirectionDown, DirectionUp.Opposite())
		assert.Equal(t, DirectionUp, DirectionDown.Opposite())
		assert.Equal(t, DirectionRight, DirectionLeft.Opposite())
		assert.Equal(t, DirectionLeft, DirectionRight.Opposite())
		assert.Equal(t, Direction(""), Direction("north").Opposite())
	})

	t.Run("Move steps one cell with y growing downwards", func(t *testing.T) {
		// Given: a cell in the middle of the board
		cell := Cell{X: 5, Y: 5}

		// Then: every direction moves exactly one step
		assert.Equal(t, Cell{X: 5, Y: 4}, cell.Move(DirectionUp))
		assert.Equal(t, Cell{X: 5, Y: 6}, cell.Move(DirectionDown))
		assert.Equal(t, Cell{X: 4, Y: 5}, cell.Move(DirectionLeft))
		assert.Equal(t, Cell{X: 6, Y: 5}, cell.Move(DirectionRight))
		assert.Equal(t, cell, cell.Move("north"))
	})

	t.Run("Parse", func(t *testing.T) {
		for _, direction := range Directions {
			parsed, err := ParseDirection(string(direction))
			require.NoError(t, err)
			assert.Equal(t, direction, parsed)
		}

		_, err := ParseDirection("UP")
		require.ErrorIs(t, err, ErrInvalidDirection)
	})
}

func TestFruitByName(t *testing.T) {
	fruit, ok := FruitByName(FruitSpecialApple)
	require.True(t, ok)
	assert.Equal(t, SpecialApple, fruit)

	_, ok = FruitByName("banana")
	assert.False(t, ok)
}

func TestGameState_Status(t *testing.T) {
	t.Run("Running", func(t *testing.T) {
		state := &GameState{}

		assert.Equal(t, StatusRunning, state.Status())
		assert.True(t, state.IsRunning())
	})

	t.Run("Paused", func(t *testing.T) {
		state := &GameState{Paused: true}

		assert.Equal(t, StatusPaused, state.Status())
		assert.False(t, state.IsRunning())
	})

	t.Run("Game over wins over pause", func(t *testing.T) {
		state := &GameState{Paused: true, GameOver: true}

		assert.Equal(t, StatusOver, state.Status())
		assert.False(t, state.IsRunning())
	})
}

func TestGameState_Clone(t *testing.T) {
	// Given: a state with a snake and a food
	state := &GameState{
		Score: 3,
		Snake: []Cell{{X: 3, Y: 3}, {X: 2, Y: 3}},
		Foods: []Food{{Position: Cell{X: 7, Y: 7}, Type: Apple}},
	}

	// When: the clone is modified
	clone := state.Clone()
	clone.Snake[0] = Cell{X: 0, Y: 0}
	clone.Foods[0].Type = RottenApple
	clone.Score = 10

	// Then: the original keeps its values
	assert.Equal(t, Cell{X: 3, Y: 3}, state.Head())
	assert.Equal(t, Cell{X: 2, Y: 3}, state.Tail())
	assert.Equal(t, Apple, state.Foods[0].Type)
	assert.Equal(t, 3, state.Score)
}
