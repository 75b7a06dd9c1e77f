// Package palette turns game snapshots into colored cell grids and decides
// when the game over notice is due. It has no window dependency.
package palette

import (
	"image/color"

	"github.com/svngdo/snake-game/internal/domain"
)

type Frame struct {
	Size  int
	Cells [][]color.RGBA
}

func (f Frame) At(c domain.Cell) color.RGBA {
	return f.Cells[c.Row][c.Col]
}

// BuildFrame assigns a color to every cell of the snapshot's grid. A
// finished round still renders its last positions, with the body greyed out.
func BuildFrame(s domain.Snapshot) Frame {
	cells := make([][]color.RGBA, s.Size)
	for row := range cells {
		cells[row] = make([]color.RGBA, s.Size)
		for col := range cells[row] {
			cells[row][col] = ColorEmpty
		}
	}

	frame := Frame{Size: s.Size, Cells: cells}
	inside := func(c domain.Cell) bool {
		return c.Row >= 0 && c.Row < s.Size && c.Col >= 0 && c.Col < s.Size
	}

	if inside(s.Food) {
		cells[s.Food.Row][s.Food.Col] = ColorFood
	}

	body, head := ColorSnake, ColorSnakeHead
	if !s.Running {
		body, head = ColorSnakeDead, Darken(ColorSnakeDead, 0.7)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		c := s.Snake[i]
		if !inside(c) {
			continue
		}
		if i == 0 {
			cells[c.Row][c.Col] = head
		} else {
			cells[c.Row][c.Col] = body
		}
	}

	return frame
}
