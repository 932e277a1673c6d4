package snake

import (
	"fmt"

	"github.com/rocketscienceinc/snake-backend/internal/apperror"
	"github.com/rocketscienceinc/snake-backend/internal/entity"
)

const DefaultWallThickness = 2

// Dimensions is the size of the grid in cells, walls included.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GridDimensions - converts canvas pixels into grid cells, discarding any remainder.
func GridDimensions(canvasWidth, canvasHeight, cellSize int) (Dimensions, error) {
	if canvasWidth <= 0 || canvasHeight <= 0 || cellSize <= 0 {
		return Dimensions{}, fmt.Errorf("%w: canvas %dx%d, cell size %d",
			apperror.ErrInvalidDimension, canvasWidth, canvasHeight, cellSize)
	}

	return Dimensions{
		Width:  canvasWidth / cellSize,
		Height: canvasHeight / cellSize,
	}, nil
}

// Grid is the board the snake lives on. The outer WallThickness cells on every side are walls.
type Grid struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	WallThickness int `json:"wall_thickness"`
}

func NewGrid(dims Dimensions, wallThickness int) (Grid, error) {
	grid := Grid{
		Width:         dims.Width,
		Height:        dims.Height,
		WallThickness: wallThickness,
	}

	if err := grid.Validate(); err != nil {
		return Grid{}, err
	}

	return grid, nil
}

// Validate - checks that the walls leave at least one playable cell.
func (that Grid) Validate() error {
	if that.Width <= 0 || that.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", apperror.ErrInvalidDimension, that.Width, that.Height)
	}

	if that.WallThickness < 0 {
		return fmt.Errorf("%w: wall thickness %d", apperror.ErrInvalidDimension, that.WallThickness)
	}

	if that.Width-2*that.WallThickness <= 0 || that.Height-2*that.WallThickness <= 0 {
		return fmt.Errorf("%w: walls of %d leave no room on a %dx%d grid",
			apperror.ErrInvalidDimension, that.WallThickness, that.Width, that.Height)
	}

	return nil
}

func (that Grid) MinX() int { return that.WallThickness }
func (that Grid) MaxX() int { return that.Width - that.WallThickness }
func (that Grid) MinY() int { return that.WallThickness }
func (that Grid) MaxY() int { return that.Height - that.WallThickness }

// InBounds - reports whether the cell lies inside the playable area (upper bounds exclusive).
func (that Grid) InBounds(cell entity.Cell) bool {
	return cell.X >= that.MinX() && cell.X < that.MaxX() &&
		cell.Y >= that.MinY() && cell.Y < that.MaxY()
}

func (that Grid) PlayableWidth() int  { return that.MaxX() - that.MinX() }
func (that Grid) PlayableHeight() int { return that.MaxY() - that.MinY() }

func (that Grid) PlayableArea() int {
	return that.PlayableWidth() * that.PlayableHeight()
}

// PlayableCells - lists the playable cells row by row.
func (that Grid) PlayableCells() []entity.Cell {
	cells := make([]entity.Cell, 0, that.PlayableArea())
	for y := that.MinY(); y < that.MaxY(); y++ {
		for x := that.MinX(); x < that.MaxX(); x++ {
			cells = append(cells, entity.Cell{X: x, Y: y})
		}
	}

	return cells
}
