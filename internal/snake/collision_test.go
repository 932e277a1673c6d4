package snake

import (
	"testing"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGrid(t *testing.T) Grid {
	t.Helper()

	dims, err := GridDimensions(800, 600, 20)
	require.NoError(t, err)

	grid, err := NewGrid(dims, DefaultWallThickness)
	require.NoError(t, err)

	return grid
}

func TestIsCollision(t *testing.T) {
	grid := defaultGrid(t)
	snake := []entity.Cell{{X: 10, Y: 10}}

	t.Run("Walls", func(t *testing.T) {
		assert.True(t, IsCollision(entity.Cell{X: 1, Y: 10}, snake, grid), "left wall")
		assert.True(t, IsCollision(entity.Cell{X: 38, Y: 10}, snake, grid), "right wall")
		assert.True(t, IsCollision(entity.Cell{X: 10, Y: 1}, snake, grid), "top wall")
		assert.True(t, IsCollision(entity.Cell{X: 10, Y: 28}, snake, grid), "bottom wall")
		assert.True(t, IsCollision(entity.Cell{X: -5, Y: 50}, snake, grid), "far outside")
	})

	t.Run("Open cells", func(t *testing.T) {
		assert.False(t, IsCollision(entity.Cell{X: 15, Y: 15}, snake, grid))
		assert.False(t, IsCollision(entity.Cell{X: 2, Y: 2}, snake, grid))
		assert.False(t, IsCollision(entity.Cell{X: 37, Y: 27}, snake, grid))
	})

	t.Run("Self collision", func(t *testing.T) {
		// Given: a straight snake heading right
		body := []entity.Cell{
			{X: 10, Y: 10},
			{X: 9, Y: 10},
			{X: 8, Y: 10},
			{X: 7, Y: 10},
		}

		// Then: any body cell collides, the tail included
		require.True(t, IsCollision(entity.Cell{X: 9, Y: 10}, body, grid))
		require.True(t, IsCollision(entity.Cell{X: 7, Y: 10}, body, grid))
		require.False(t, IsCollision(entity.Cell{X: 11, Y: 10}, body, grid))
	})

	t.Run("Split predicates", func(t *testing.T) {
		assert.True(t, IsWallCollision(entity.Cell{X: 0, Y: 0}, grid))
		assert.False(t, IsSelfCollision(entity.Cell{X: 0, Y: 0}, snake))
		assert.True(t, IsSelfCollision(entity.Cell{X: 10, Y: 10}, snake))
		assert.False(t, IsWallCollision(entity.Cell{X: 10, Y: 10}, grid))
	})
}
