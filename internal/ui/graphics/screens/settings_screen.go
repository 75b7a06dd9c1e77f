package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/ui/graphics/components"
	"github.com/svngdo/snake-game/internal/ui/graphics/input"
	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

type SettingsScreen struct {
	ctx types.ScreenContext

	inputGrid     *components.NumberInput
	inputTickRate *components.NumberInput
	inputCell     *components.NumberInput

	btnStart *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewSettingsScreen(ctx types.ScreenContext) *SettingsScreen {
	cfg := ctx.Config()
	return &SettingsScreen{
		ctx:           ctx,
		inputGrid:     components.NewNumberInput(140, 35, "Grid size", cfg.GridSize),
		inputTickRate: components.NewNumberInput(140, 35, "Ticks per second", cfg.TickRate),
		inputCell:     components.NewNumberInput(140, 35, "Cell size (px)", cfg.CellSize),
		btnStart:      components.NewButton(140, 45, "Start", ebiten.KeyF5),
		btnBack:       components.NewButton(140, 45, "Back", ebiten.KeyEscape),
	}
}

func (s *SettingsScreen) inputs() []*components.NumberInput {
	return []*components.NumberInput{s.inputGrid, s.inputTickRate, s.inputCell}
}

func (s *SettingsScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 140

	s.inputGrid.SetPosition(centerX-150, startY)
	s.inputTickRate.SetPosition(centerX+10, startY)
	s.inputCell.SetPosition(centerX-150, startY+80)
	s.btnBack.SetPosition(centerX-150, startY+160)
	s.btnStart.SetPosition(centerX+10, startY+160)

	for _, in := range s.inputs() {
		in.Update()
	}

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Update() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnStart.Update() || input.IsEnterPressed() {
		return s.startGame()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *SettingsScreen) cycleFocus() {
	inputs := s.inputs()

	currentIdx := -1
	for i, in := range inputs {
		if in.Focused {
			currentIdx = i
			in.Focused = false
			break
		}
	}

	inputs[(currentIdx+1)%len(inputs)].Focused = true
}

// startGame builds a config from the inputs. An invalid config stays on this
// screen with the validation error shown.
func (s *SettingsScreen) startGame() types.UIEvent {
	config := s.ctx.Config()

	grid, err := s.inputGrid.Value()
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}
	tickRate, err := s.inputTickRate.Value()
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}
	cell, err := s.inputCell.Value()
	if err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	config.GridSize = grid
	config.TickRate = tickRate
	config.CellSize = cell

	if err := config.Validate(); err != nil {
		s.errorMsg = err.Error()
		return types.UIEvent{Type: types.UIEventNone}
	}

	s.errorMsg = ""
	return types.UIEvent{
		Type:    types.UIEventNewGame,
		Payload: types.NewGameData{Config: config},
	}
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(palette.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SETTINGS"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, 60, palette.ColorTextHighlight)

	limits := fmt.Sprintf("Grid %d-%d, up to %d ticks per second",
		domain.MinGridSize, domain.MaxGridSize, domain.MaxTickRate)
	bounds = text.BoundString(fonts.Small, limits)
	text.Draw(screen, limits, fonts.Small, (w-bounds.Dx())/2, 90, palette.ColorTextDim)

	for _, in := range s.inputs() {
		in.Draw(screen)
	}

	s.btnBack.Draw(screen)
	s.btnStart.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, 360, palette.ColorError)
	}

	hint := "TAB to switch fields, ENTER to start, ESC to go back"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, palette.ColorTextDim)
}

func (s *SettingsScreen) OnEnter() {
	cfg := s.ctx.Config()
	s.inputGrid.SetValue(cfg.GridSize)
	s.inputTickRate.SetValue(cfg.TickRate)
	s.inputCell.SetValue(cfg.CellSize)

	for _, in := range s.inputs() {
		in.Focused = false
	}
	s.inputGrid.Focused = true
	s.errorMsg = ""
}

func (s *SettingsScreen) OnExit() {}

func (s *SettingsScreen) SetError(err string) {
	s.errorMsg = err
}
