package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/snake-backend/internal/entity"
	"github.com/rocketscienceinc/snake-backend/internal/snake"
)

// cellWidth is the number of terminal columns one grid cell takes; two keeps cells roughly square.
const cellWidth = 2

var (
	styleBoard   = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleWall    = tcell.StyleDefault.Background(tcell.ColorGray)
	styleBody    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleHead    = tcell.StyleDefault.Background(tcell.ColorLime)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

var fruitRunes = map[string]rune{
	entity.FruitApple:        '●',
	entity.FruitRottenApple:  '✖',
	entity.FruitSpecialApple: '★',
}

// canvas is the part of tcell.Screen the renderer draws on.
type canvas interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// RequiredSize - the terminal size needed to show the whole board and the status line.
func RequiredSize(grid snake.Grid) (int, int) {
	return grid.Width * cellWidth, grid.Height + 1
}

// Render - draws one frame of the state. It does not call Show.
func Render(screen canvas, grid snake.Grid, state entity.GameState) {
	screen.Clear()

	width, height := screen.Size()
	minWidth, minHeight := RequiredSize(grid)
	if width < minWidth || height < minHeight {
		drawCentered(screen, width/2, height/2-1, "terminal too small", styleHUD)
		drawCentered(screen, width/2, height/2, fmt.Sprintf("need %dx%d, have %dx%d", minWidth, minHeight, width, height), styleHUD)
		return
	}

	drawBoard(screen, grid)

	for _, food := range state.Foods {
		style := styleBoard.Foreground(tcell.GetColor(food.Type.Color))
		drawCell(screen, food.Position, fruitRune(food.Type), style)
	}

	for i, segment := range state.Snake {
		style := styleBody
		if i == 0 {
			style = styleHead
		}

		drawCell(screen, segment, ' ', style)
	}

	drawText(screen, 0, grid.Height, hudLine(state), styleHUD)

	switch {
	case state.GameOver:
		drawCentered(screen, minWidth/2, grid.Height/2-1, " GAME OVER ", styleOverlay)
		drawCentered(screen, minWidth/2, grid.Height/2, fmt.Sprintf(" score %d  r restart  q quit ", state.Score), styleOverlay)
	case state.Paused:
		drawCentered(screen, minWidth/2, grid.Height/2, " PAUSED  p resume ", styleOverlay)
	}
}

func hudLine(state entity.GameState) string {
	return fmt.Sprintf("Score: %d  Level: %d  Speed: %dms  %s", state.Score, state.Level, state.Speed, state.Status())
}

func fruitRune(fruit entity.FruitType) rune {
	if r, ok := fruitRunes[fruit.Name]; ok {
		return r
	}

	return '?'
}

func drawBoard(screen canvas, grid snake.Grid) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			cell := entity.Cell{X: x, Y: y}

			style := styleWall
			if grid.InBounds(cell) {
				style = styleBoard
			}

			drawCell(screen, cell, ' ', style)
		}
	}
}

func drawCell(screen canvas, cell entity.Cell, r rune, style tcell.Style) {
	x := cell.X * cellWidth
	screen.SetContent(x, cell.Y, r, nil, style)

	for i := 1; i < cellWidth; i++ {
		screen.SetContent(x+i, cell.Y, ' ', nil, style)
	}
}

func drawText(screen canvas, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func drawCentered(screen canvas, cx, cy int, text string, style tcell.Style) {
	drawText(screen, cx-len([]rune(text))/2, cy, text, style)
}
