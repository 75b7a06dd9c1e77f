package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

// Button is clicked with the mouse, with its hotkey, or with Enter while
// Selected.
type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Hotkey        ebiten.Key
	Enabled       bool
	Selected      bool
	hovered       bool
	pressed       bool
}

func NewButton(width, height int, buttonText string, hotkey ebiten.Key) *Button {
	return &Button{
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Hotkey:  hotkey,
		Enabled: true,
	}
}

func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	if inpututil.IsKeyJustPressed(b.Hotkey) {
		return true
	}
	if b.Selected && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.Enabled:
		bgColor = palette.Darken(palette.ColorButton, 0.5)
	case b.pressed:
		bgColor = palette.Darken(palette.ColorButtonHover, 0.8)
	case b.hovered || b.Selected:
		bgColor = palette.ColorButtonHover
	default:
		bgColor = palette.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	border := palette.ColorInputBorder
	if b.Selected {
		border = palette.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, border, false)

	fonts := types.GetFonts()
	textColor := palette.ColorButtonText
	if !b.Enabled {
		textColor = palette.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
