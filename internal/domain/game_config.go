package domain

import (
	"fmt"
	"time"
)

const (
	DefaultGridSize = 20
	DefaultCellSize = 20
	DefaultTickRate = 10

	MinGridSize = 2
	MaxGridSize = 100
	MaxTickRate = 120
)

type GameConfig struct {
	GridSize int
	CellSize int
	TickRate int
	Seed     int64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		GridSize: DefaultGridSize,
		CellSize: DefaultCellSize,
		TickRate: DefaultTickRate,
	}
}

func (c *GameConfig) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size %d outside [%d, %d]", ErrInvalidConfig, c.GridSize, MinGridSize, MaxGridSize)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick rate %d outside [1, %d]", ErrInvalidConfig, c.TickRate, MaxTickRate)
	}
	return nil
}

// TickInterval assumes a validated config.
func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		GridSize: c.GridSize,
		CellSize: c.CellSize,
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}
