package components

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

type StatsPanel struct {
	X, Y          int
	Width, Height int
}

func NewStatsPanel(x, y, width, height int) *StatsPanel {
	return &StatsPanel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sp *StatsPanel) Draw(screen *ebiten.Image, s domain.Snapshot, tps, tickRate int) {
	vector.DrawFilledRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		palette.ColorPanel, false)

	vector.StrokeRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		1, palette.ColorGrid, false)

	fonts := types.GetFonts()

	text.Draw(screen, "STATS", fonts.Title, sp.X+10, sp.Y+22, palette.ColorTextHighlight)

	status := "running"
	statusColor := palette.ColorSuccess
	switch {
	case !s.Running:
		status = "game over"
		statusColor = palette.ColorError
	case s.Direction == domain.DirectionNone:
		status = "waiting for a key"
		statusColor = palette.ColorTextDim
	}

	lines := []struct {
		label string
		value string
		color color.RGBA
	}{
		{"Status", status, statusColor},
		{"Length", fmt.Sprint(s.Length()), palette.ColorText},
		{"Ticks", fmt.Sprint(s.Ticks), palette.ColorText},
		{"Direction", s.Direction.String(), palette.ColorText},
		{"Tick rate", fmt.Sprintf("%d / %d", tps, tickRate), palette.ColorText},
		{"Grid", fmt.Sprintf("%dx%d", s.Size, s.Size), palette.ColorText},
	}

	y := sp.Y + 50
	for _, line := range lines {
		if y > sp.Y+sp.Height-10 {
			break
		}
		text.Draw(screen, line.label+":", fonts.Small, sp.X+10, y, palette.ColorTextDim)
		text.Draw(screen, line.value, fonts.Small, sp.X+95, y, line.color)
		y += 22
	}

	if len(s.Round) >= 8 && y+22 < sp.Y+sp.Height {
		text.Draw(screen, "Round "+s.Round[:8], fonts.Small, sp.X+10, y+12, palette.ColorTextDim)
	}
}
