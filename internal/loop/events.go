package loop

import "github.com/svngdo/snake-game/internal/domain"

type EventType int

const (
	EventStateUpdated EventType = iota
	EventGameOver
	EventStats
)

type Event struct {
	Type    EventType
	Payload interface{}
}

type GameOverPayload struct {
	Round  string
	Reason domain.EndReason
	Length int
}

type StatsPayload struct {
	TicksPerSecond int
}
