package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/svngdo/snake-game/internal/ui/graphics/components"
	"github.com/svngdo/snake-game/internal/ui/graphics/input"
	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

type menuItem struct {
	button *components.Button
	event  types.UIEventType
}

type MenuScreen struct {
	ctx types.ScreenContext

	items    []menuItem
	selected int
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx: ctx,
		items: []menuItem{
			{components.NewButton(250, 46, "Resume (Esc)", ebiten.KeyEscape), types.UIEventShowGame},
			{components.NewButton(250, 46, "New game (N)", ebiten.KeyN), types.UIEventRestart},
			{components.NewButton(250, 46, "Settings (S)", ebiten.KeyS), types.UIEventShowSettings},
			{components.NewButton(250, 46, "Quit (Q)", ebiten.KeyQ), types.UIEventQuit},
		},
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := h/2 - 100

	if input.IsUpPressed() {
		s.selected = (s.selected + len(s.items) - 1) % len(s.items)
	}
	if input.IsDownPressed() {
		s.selected = (s.selected + 1) % len(s.items)
	}

	for i, item := range s.items {
		item.button.SetPosition(centerX-125, startY+i*60)
		item.button.Selected = i == s.selected
	}

	for _, item := range s.items {
		if item.button.Update() {
			return types.UIEvent{Type: item.event}
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(palette.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	bounds := text.BoundString(fonts.Title, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Title, x+dx, 100+dy, palette.ColorSnakeHead)
		}
	}
	text.Draw(screen, title, fonts.Title, x, 100, palette.ColorTextHighlight)

	cfg := s.ctx.Config()
	subtitle := fmt.Sprintf("%dx%d grid, %d ticks per second", cfg.GridSize, cfg.GridSize, cfg.TickRate)
	bounds = text.BoundString(fonts.Normal, subtitle)
	text.Draw(screen, subtitle, fonts.Normal, (w-bounds.Dx())/2, 130, palette.ColorTextDim)

	for _, item := range s.items {
		item.button.Draw(screen)
	}

	hint := "Arrows to choose, ENTER to confirm"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, palette.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {
	s.selected = 0
}

func (s *MenuScreen) OnExit() {}
