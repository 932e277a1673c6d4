package entity

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Cell is an integer coordinate on the game grid.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move - returns the neighbouring cell one step along the direction.
func (that Cell) Move(direction Direction) Cell {
	switch direction {
	case DirectionUp:
		return Cell{X: that.X, Y: that.Y - 1}
	case DirectionDown:
		return Cell{X: that.X, Y: that.Y + 1}
	case DirectionLeft:
		return Cell{X: that.X - 1, Y: that.Y}
	case DirectionRight:
		return Cell{X: that.X + 1, Y: that.Y}
	default:
		return that
	}
}

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Directions lists every direction in canonical order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func ParseDirection(value string) (Direction, error) {
	direction := Direction(value)
	if !direction.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, value)
	}

	return direction, nil
}

func (that Direction) IsValid() bool {
	switch that {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}

// Opposite - returns the reverse direction, or an empty direction for unknown values.
func (that Direction) Opposite() Direction {
	switch that {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return ""
	}
}
