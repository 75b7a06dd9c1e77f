package domain

// Snapshot is an immutable view of a GameState taken under its lock.
type Snapshot struct {
	Round     string
	Size      int
	CellSize  int
	Snake     []Cell
	Food      Cell
	Direction Direction
	Running   bool
	Reason    EndReason
	Ticks     uint64
}

func (s Snapshot) Length() int {
	return len(s.Snake)
}

func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}

func (gs *GameState) Snapshot() Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	snake := make([]Cell, len(gs.snake))
	copy(snake, gs.snake)

	return Snapshot{
		Round:     gs.round,
		Size:      gs.Field.Size,
		CellSize:  gs.Config.CellSize,
		Snake:     snake,
		Food:      gs.food,
		Direction: gs.direction,
		Running:   gs.running,
		Reason:    gs.reason,
		Ticks:     gs.ticks,
	}
}
