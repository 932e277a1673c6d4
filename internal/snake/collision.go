package snake

import "github.com/rocketscienceinc/snake-backend/internal/entity"

// IsCollision - reports whether moving the head onto the cell ends the game.
// The body is the snake before the move, tail included.
func IsCollision(head entity.Cell, body []entity.Cell, grid Grid) bool {
	return IsWallCollision(head, grid) || IsSelfCollision(head, body)
}

func IsWallCollision(head entity.Cell, grid Grid) bool {
	return !grid.InBounds(head)
}

func IsSelfCollision(head entity.Cell, body []entity.Cell) bool {
	return containsCell(body, head)
}

func containsCell(cells []entity.Cell, cell entity.Cell) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}

	return false
}
