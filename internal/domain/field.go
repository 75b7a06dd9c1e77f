package domain

// Field is the square playing area. Unlike a torus it has hard walls:
// stepping off an edge is a collision, not a wrap.
type Field struct {
	Size int
}

func NewField(size int) *Field {
	return &Field{
		Size: size,
	}
}

func (f *Field) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < f.Size && c.Col >= 0 && c.Col < f.Size
}

func (f *Field) Move(c Cell, d Direction) Cell {
	return c.Add(d.Delta())
}

func (f *Field) CellCount() int {
	return f.Size * f.Size
}

// FreeCells lists every cell not present in occupied, in row-major order.
func (f *Field) FreeCells(occupied map[Cell]bool) []Cell {
	n := f.CellCount() - len(occupied)
	if n < 0 {
		n = 0
	}
	free := make([]Cell, 0, n)
	for row := 0; row < f.Size; row++ {
		for col := 0; col < f.Size; col++ {
			c := Cell{Row: row, Col: col}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// StartCell is where a fresh snake is placed: the middle row, third column.
func (f *Field) StartCell() Cell {
	col := 2
	if col >= f.Size {
		col = f.Size - 1
	}
	return Cell{Row: f.Size / 2, Col: col}
}
