package palette

import (
	"sync"

	"github.com/svngdo/snake-game/internal/domain"
)

// GameOverLatch fires once for each round that ends, however many frames
// observe the finished state. Only the last announced round is kept.
type GameOverLatch struct {
	mu   sync.Mutex
	last string
}

func NewGameOverLatch() *GameOverLatch {
	return &GameOverLatch{}
}

func (l *GameOverLatch) Observe(s domain.Snapshot) bool {
	if s.Running {
		return false
	}
	return l.Fire(s.Round)
}

// Fire reports whether round differs from the last announced one, and
// records it.
func (l *GameOverLatch) Fire(round string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if round == l.last {
		return false
	}
	l.last = round
	return true
}
