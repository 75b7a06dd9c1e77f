package components

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

// NumberInput is a text field that accepts digits only.
type NumberInput struct {
	X, Y          int
	Width, Height int
	Label         string
	Text          string
	MaxLength     int
	Focused       bool
	cursorBlink   int
}

func NewNumberInput(width, height int, label string, value int) *NumberInput {
	return &NumberInput{
		Width:     width,
		Height:    height,
		Label:     label,
		Text:      strconv.Itoa(value),
		MaxLength: 4,
	}
}

func (ni *NumberInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ni.Focused = mx >= ni.X && mx < ni.X+ni.Width && my >= ni.Y && my < ni.Y+ni.Height
	}

	if !ni.Focused {
		return
	}

	ni.cursorBlink++

	var runes []rune
	runes = ebiten.AppendInputChars(runes)
	for _, r := range runes {
		if r >= '0' && r <= '9' && len(ni.Text) < ni.MaxLength {
			ni.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ni.Text) > 0 {
		ni.Text = ni.Text[:len(ni.Text)-1]
	}
}

func (ni *NumberInput) Value() (int, error) {
	if ni.Text == "" {
		return 0, fmt.Errorf("%s is empty", ni.Label)
	}
	v, err := strconv.Atoi(ni.Text)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ni.Label, err)
	}
	return v, nil
}

func (ni *NumberInput) Draw(screen *ebiten.Image) {
	fonts := types.GetFonts()
	text.Draw(screen, ni.Label, fonts.Small, ni.X, ni.Y-8, palette.ColorText)

	vector.DrawFilledRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		palette.ColorInputBg, false)

	borderColor := palette.ColorInputBorder
	if ni.Focused {
		borderColor = palette.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		2, borderColor, false)

	textX := ni.X + 8
	textY := ni.Y + ni.Height/2 + 5
	text.Draw(screen, ni.Text, fonts.Normal, textX, textY, palette.ColorText)

	if ni.Focused && (ni.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ni.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		vector.StrokeLine(screen, cursorX, float32(ni.Y+5), cursorX, float32(ni.Y+ni.Height-5), 2, palette.ColorText, false)
	}
}

func (ni *NumberInput) SetPosition(x, y int) {
	ni.X = x
	ni.Y = y
}

func (ni *NumberInput) SetValue(v int) {
	ni.Text = strconv.Itoa(v)
}
