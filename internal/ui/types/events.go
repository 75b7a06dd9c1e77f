package types

import (
	"github.com/svngdo/snake-game/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventNewGame
	UIEventRestart
	UIEventSteer
	UIEventQuit
	UIEventShowGame
	UIEventShowSettings
	UIEventShowMenu
)

type NewGameData struct {
	Config *domain.GameConfig
}

type SteerData struct {
	Direction domain.Direction
}
