package types

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/svngdo/snake-game/internal/domain"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenSettings
	ScreenGame
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	Config() *domain.GameConfig
}
