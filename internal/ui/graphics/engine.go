package graphics

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/ui/palette"
	"github.com/svngdo/snake-game/internal/ui/types"
)

const (
	minWidth  = 640
	minHeight = 480
)

// pending holds changes requested from outside the ebiten goroutine. They
// are applied at the start of the next Update.
type pending struct {
	screen   *types.ScreenType
	gameOver *gameOverNotice
	errorMsg string
	message  string
}

type gameOverNotice struct {
	message string
	length  int
}

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	state    domain.Snapshot
	hasState bool
	tps      int
	config   *domain.GameConfig

	latch   *palette.GameOverLatch
	pending pending

	dataMu sync.RWMutex

	eventCh chan types.UIEvent
	quit    atomic.Bool
}

func NewEngine(config *domain.GameConfig) *Engine {
	types.InitFonts()

	w, h := WindowSize(config)
	return &Engine{
		width:         w,
		height:        h,
		currentScreen: types.ScreenGame,
		screenMap:     make(map[types.ScreenType]types.Screen),
		config:        config.Copy(),
		latch:         palette.NewGameOverLatch(),
		eventCh:       make(chan types.UIEvent, 100),
	}
}

// WindowSize fits the grid at its configured cell size next to the stats panel.
func WindowSize(config *domain.GameConfig) (int, int) {
	field := config.GridSize * config.CellSize
	w := field + types.PanelWidth + 3*types.Padding
	h := field + types.HeaderHeight + types.FooterHeight + 2*types.Padding
	return max(w, minWidth), max(h, minHeight)
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	settings types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenSettings] = settings
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if e.quit.Load() {
		return ebiten.Termination
	}

	e.width, e.height = ebiten.WindowSize()
	e.applyPending()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		if e.hasState {
			updater.SetState(e.state, e.tps)
		}
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Config() *domain.GameConfig {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()
	return e.config.Copy()
}

func (e *Engine) SetConfig(config *domain.GameConfig) {
	e.dataMu.Lock()
	e.config = config.Copy()
	e.dataMu.Unlock()

	w, h := WindowSize(config)
	ebiten.SetWindowSize(w, h)
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// Quit makes the next Update end the ebiten run loop.
func (e *Engine) Quit() {
	e.quit.Store(true)
}

func (e *Engine) applyPending() {
	e.dataMu.Lock()
	p := e.pending
	e.pending = pending{}
	e.dataMu.Unlock()

	if p.screen != nil {
		e.SetScreen(*p.screen)
	}
	if p.gameOver != nil {
		if s, ok := e.screenMap[types.ScreenGame].(GameOverNotifier); ok {
			s.ShowGameOver(p.gameOver.message, p.gameOver.length)
		}
	}
	if p.errorMsg != "" {
		if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
			s.SetError(p.errorMsg)
		}
	}
	if p.message != "" {
		if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
			s.SetMessage(p.message)
		}
	}
}

// RequestScreen switches screens from any goroutine.
func (e *Engine) RequestScreen(screen types.ScreenType) {
	e.dataMu.Lock()
	e.pending.screen = &screen
	e.dataMu.Unlock()
}

// SetScreen must only be called from the ebiten goroutine.
func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

// SetState stores the latest snapshot for the next frame. A finished round
// seen here for the first time triggers the game over notice.
func (e *Engine) SetState(state domain.Snapshot) {
	e.dataMu.Lock()
	e.state = state
	e.hasState = true
	e.dataMu.Unlock()

	if e.latch.Observe(state) {
		e.announceGameOver(state.Reason, state.Length())
	}
}

func (e *Engine) SetStats(tps int) {
	e.dataMu.Lock()
	e.tps = tps
	e.dataMu.Unlock()
}

func (e *Engine) NotifyGameOver(round string, reason domain.EndReason, length int) {
	if e.latch.Fire(round) {
		e.announceGameOver(reason, length)
	}
}

func (e *Engine) announceGameOver(reason domain.EndReason, length int) {
	log.Printf("Game Over! Snake %s at length %d", reason, length)

	e.dataMu.Lock()
	e.pending.gameOver = &gameOverNotice{
		message: fmt.Sprintf("Game Over! The snake %s.", reason),
		length:  length,
	}
	e.dataMu.Unlock()
}

func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.pending.errorMsg = err
	e.dataMu.Unlock()
}

func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.pending.message = msg
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventShowSettings:
		e.SetScreen(types.ScreenSettings)

	case types.UIEventShowGame:
		e.SetScreen(types.ScreenGame)

	case types.UIEventQuit:
		select {
		case e.eventCh <- event:
		default:
		}

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

type GameStateUpdater interface {
	SetState(state domain.Snapshot, tps int)
}

type GameOverNotifier interface {
	ShowGameOver(message string, length int)
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
