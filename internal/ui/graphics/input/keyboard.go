package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/svngdo/snake-game/internal/domain"
)

var directionKeys = []struct {
	keys [2]ebiten.Key
	dir  domain.Direction
}{
	{[2]ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, domain.DirectionUp},
	{[2]ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, domain.DirectionDown},
	{[2]ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, domain.DirectionLeft},
	{[2]ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction of the first steering key pressed this frame,
// or DirectionNone.
func (kh *KeyboardHandler) Update() domain.Direction {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				return dk.dir
			}
		}
	}
	return domain.DirectionNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || IsEnterPressed()
}

func IsUpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyUp)
}

func IsDownPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyDown)
}
