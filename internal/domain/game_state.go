package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type EndReason int

const (
	EndNone EndReason = iota
	EndWall
	EndSelf
	EndBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndWall:
		return "hit the wall"
	case EndSelf:
		return "ran into itself"
	case EndBoardFull:
		return "filled the board"
	}
	return "unknown"
}

type GameState struct {
	Field  *Field
	Config *GameConfig

	round     string
	snake     []Cell
	food      Cell
	direction Direction
	running   bool
	reason    EndReason
	ticks     uint64

	rng *rand.Rand
	mu  sync.RWMutex
}

func NewGameState(config *GameConfig) (*GameState, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := &GameState{
		Field:  NewField(config.GridSize),
		Config: config.Copy(),
		rng:    rand.New(rand.NewSource(uint64(seed))),
	}
	gs.Reset()
	return gs, nil
}

// Reset starts a new round. A validated config has at least four cells, so
// the first food always finds a free cell.
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.round = uuid.New().String()
	gs.snake = []Cell{gs.Field.StartCell()}
	gs.direction = DirectionNone
	gs.running = true
	gs.reason = EndNone
	gs.ticks = 0

	if err := gs.spawnFoodUnlocked(); err != nil {
		panic(fmt.Sprintf("reset on a %dx%d field: %v", gs.Field.Size, gs.Field.Size, err))
	}
}

// SetDirection applies d unless it is the direct reverse of the current
// direction. It reports whether d was applied.
func (gs *GameState) SetDirection(d Direction) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.running || !d.Valid() {
		return false
	}
	if d.IsOpposite(gs.direction) {
		return false
	}
	gs.direction = d
	return true
}

func (gs *GameState) SpawnFood() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.spawnFoodUnlocked()
}

func (gs *GameState) spawnFoodUnlocked() error {
	occupied := make(map[Cell]bool, len(gs.snake))
	for _, cell := range gs.snake {
		occupied[cell] = true
	}

	free := gs.Field.FreeCells(occupied)
	if len(free) == 0 {
		return ErrBoardFull
	}
	gs.food = free[gs.rng.Intn(len(free))]
	return nil
}

func (gs *GameState) Running() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.running
}

func (gs *GameState) Direction() Direction {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.direction
}

func (gs *GameState) Food() Cell {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.food
}

func (gs *GameState) Snake() []Cell {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	result := make([]Cell, len(gs.snake))
	copy(result, gs.snake)
	return result
}

func (gs *GameState) Round() string {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.round
}

func (gs *GameState) occupiesUnlocked(c Cell) bool {
	for _, cell := range gs.snake {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}
