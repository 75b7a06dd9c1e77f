package domain

// Cell addresses one square of the grid. Row grows downwards, Col to the right.
type Cell struct {
	Row int
	Col int
}

func (c Cell) Add(other Cell) Cell {
	return Cell{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

func (c Cell) Equals(other Cell) bool {
	return c.Row == other.Row && c.Col == other.Col
}
