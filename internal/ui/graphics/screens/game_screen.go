package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/ui/graphics/components"
	"github.com/svngdo/snake-game/internal/ui/graphics/input"
	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

type gameOverOverlay struct {
	message string
	length  int
}

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	statsPanel    *components.StatsPanel
	keyboard      *input.KeyboardHandler

	state    domain.Snapshot
	hasState bool
	tps      int

	overlay *gameOverOverlay
	debug   bool

	message  string
	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(ctx.Config().CellSize),
		statsPanel:    components.NewStatsPanel(0, 0, types.PanelWidth, 300),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(state domain.Snapshot, tps int) {
	s.state = state
	s.hasState = true
	s.tps = tps

	if state.Running {
		s.overlay = nil
	}
}

func (s *GameScreen) ShowGameOver(message string, length int) {
	s.overlay = &gameOverOverlay{message: message, length: length}
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debug = !s.debug
	}

	if s.hasState && !s.state.Running {
		if input.IsRestartPressed() {
			return types.UIEvent{Type: types.UIEventRestart}
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(palette.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if !s.hasState {
		msg := "Waiting for game state..."
		bounds := text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2, palette.ColorTextDim)
		return
	}

	availW := w - types.PanelWidth - 3*types.Padding
	availH := h - types.HeaderHeight - types.FooterHeight - 2*types.Padding
	s.fieldRenderer.CalculateLayout(availW, availH,
		types.Padding, types.HeaderHeight+types.Padding,
		s.state.Size, s.state.CellSize)

	s.fieldRenderer.DrawFrame(screen, palette.BuildFrame(s.state))
	s.fieldRenderer.DrawHeadMarker(screen, s.state)

	s.statsPanel.X = w - types.PanelWidth - types.Padding
	s.statsPanel.Y = types.HeaderHeight + types.Padding
	s.statsPanel.Height = availH
	s.statsPanel.Draw(screen, s.state, s.tps, s.ctx.Config().TickRate)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	if s.overlay != nil {
		s.drawOverlay(screen)
	}

	if s.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %d  FPS %.0f", s.tps, ebiten.ActualFPS()),
			types.Padding, h-types.FooterHeight-types.Padding)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	text.Draw(screen, "SNAKE", fonts.Title, types.Padding, 30, palette.ColorTextHighlight)

	lengthText := fmt.Sprintf("Length: %d", s.state.Length())
	bounds := text.BoundString(fonts.Normal, lengthText)
	text.Draw(screen, lengthText, fonts.Normal, w-bounds.Dx()-types.Padding, 30, palette.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  ESC for menu"
	if !s.state.Running {
		hint = "R or ENTER to play again  |  ESC for menu"
	}
	text.Draw(screen, hint, fonts.Small, types.Padding, h-12, palette.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-types.Padding, h-12, palette.ColorError)
	} else if s.message != "" {
		bounds := text.BoundString(fonts.Normal, s.message)
		text.Draw(screen, s.message, fonts.Normal, w-bounds.Dx()-types.Padding, h-12, palette.ColorSuccess)
	}
}

// drawOverlay dims the field and centers the notice on it.
func (s *GameScreen) drawOverlay(screen *ebiten.Image) {
	fonts := types.GetFonts()

	fr := s.fieldRenderer
	size := fr.FieldSize(s.state.Size)
	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		float32(size), float32(size),
		palette.ColorOverlay, false)

	centerX := fr.OffsetX + size/2
	y := fr.OffsetY + size/2 - 20

	bounds := text.BoundString(fonts.Title, s.overlay.message)
	text.Draw(screen, s.overlay.message, fonts.Title, centerX-bounds.Dx()/2, y, palette.ColorError)

	for _, line := range []string{
		fmt.Sprintf("Final length: %d", s.overlay.length),
		"Press R or ENTER to play again",
	} {
		y += 24
		bounds = text.BoundString(fonts.Small, line)
		text.Draw(screen, line, fonts.Small, centerX-bounds.Dx()/2, y, palette.ColorText)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
}
