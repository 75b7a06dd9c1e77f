package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/loop"
)

var (
	ErrNotStarted = errors.New("app not started")
	ErrGameOver   = errors.New("game is over")
)

type App struct {
	config  *domain.GameConfig
	loopCfg loop.Config

	state *domain.GameState
	loop  *loop.Loop

	loopEventCh chan loop.Event
	eventCh     chan AppEvent
	inputCh     chan InputEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
}

type AppEvent struct {
	Type    AppEventType
	Payload interface{}
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventGameOver
	AppEventStats
	AppEventError
)

type InputEvent struct {
	Type    InputEventType
	Payload interface{}
}

type InputEventType int

const (
	InputSteer InputEventType = iota
	InputRestart
	InputNewGame
	InputQuit
)

type ErrorPayload struct {
	Message string
}

func New(config *domain.GameConfig, loopCfg loop.Config) (*App, error) {
	state, err := domain.NewGameState(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	loopCfg.TickRate = config.TickRate

	return &App{
		config:      config.Copy(),
		loopCfg:     loopCfg,
		state:       state,
		loopEventCh: make(chan loop.Event, 100),
		eventCh:     make(chan AppEvent, 100),
		inputCh:     make(chan InputEvent, 100),
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return fmt.Errorf("app already started")
	}
	a.ctx, a.cancel = context.WithCancel(ctx)

	if err := a.startLoopLocked(); err != nil {
		a.cancel()
		return err
	}

	a.wg.Add(1)
	go a.eventLoop()

	a.wg.Add(1)
	go a.inputLoop()

	log.Printf("App started: %dx%d grid, %d ticks/s, round %s",
		a.config.GridSize, a.config.GridSize, a.config.TickRate, a.state.Round())

	return nil
}

func (a *App) Stop() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	if a.loop != nil {
		a.loop.Stop()
	}
	a.mu.Unlock()

	a.wg.Wait()
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) Input() chan<- InputEvent {
	return a.inputCh
}

// Done is closed once the app is stopped or asked to quit.
func (a *App) Done() <-chan struct{} {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.ctx == nil {
		return nil
	}
	return a.ctx.Done()
}

func (a *App) GetState() domain.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state.Snapshot()
}

func (a *App) Config() *domain.GameConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config.Copy()
}

// SendSteer forwards a direction to the running round. A reversal is not an
// error; the state simply keeps its direction.
func (a *App) SendSteer(dir domain.Direction) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.cancel == nil {
		return ErrNotStarted
	}
	if !a.state.Running() {
		return ErrGameOver
	}
	a.state.SetDirection(dir)
	return nil
}

func (a *App) Restart() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel == nil {
		return ErrNotStarted
	}

	a.loop.Stop()
	a.state.Reset()
	if err := a.startLoopLocked(); err != nil {
		return err
	}

	log.Printf("Round %s started", a.state.Round())
	a.emit(AppEvent{Type: AppEventStateUpdated})
	return nil
}

// NewGame replaces the current round with one built from config. The old
// round keeps running if config is invalid.
func (a *App) NewGame(config *domain.GameConfig) error {
	state, err := domain.NewGameState(config)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel == nil {
		return ErrNotStarted
	}

	a.loop.Stop()
	a.state = state
	a.config = config.Copy()
	a.loopCfg.TickRate = config.TickRate
	if err := a.startLoopLocked(); err != nil {
		return err
	}

	log.Printf("New game: %dx%d grid, %d ticks/s, round %s",
		config.GridSize, config.GridSize, config.TickRate, state.Round())
	a.emit(AppEvent{Type: AppEventStateUpdated})
	return nil
}

func (a *App) startLoopLocked() error {
	l, err := loop.New(a.loopCfg, a.state, a.loopEventCh)
	if err != nil {
		return fmt.Errorf("failed to create loop: %w", err)
	}
	if err := l.Start(a.ctx); err != nil {
		return fmt.Errorf("failed to start loop: %w", err)
	}
	a.loop = l
	return nil
}

func (a *App) eventLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case event := <-a.loopEventCh:
			a.handleLoopEvent(event)
		}
	}
}

func (a *App) handleLoopEvent(event loop.Event) {
	switch event.Type {
	case loop.EventStateUpdated:
		a.emit(AppEvent{Type: AppEventStateUpdated})

	case loop.EventGameOver:
		payload := event.Payload.(loop.GameOverPayload)
		// a loop stopped by Restart may still report its old round
		if payload.Round != a.GetState().Round {
			return
		}
		select {
		case a.eventCh <- AppEvent{Type: AppEventGameOver, Payload: payload}:
		case <-a.ctx.Done():
		}

	case loop.EventStats:
		a.emit(AppEvent{Type: AppEventStats, Payload: event.Payload})
	}
}

func (a *App) inputLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return

		case input := <-a.inputCh:
			a.handleInput(input)
		}
	}
}

func (a *App) handleInput(input InputEvent) {
	switch input.Type {
	case InputSteer:
		dir := input.Payload.(domain.Direction)
		if err := a.SendSteer(dir); err != nil && !errors.Is(err, ErrGameOver) {
			a.reportError(err)
		}

	case InputRestart:
		if err := a.Restart(); err != nil {
			log.Printf("Failed to restart: %v", err)
			a.reportError(err)
		}

	case InputNewGame:
		config := input.Payload.(*domain.GameConfig)
		if err := a.NewGame(config); err != nil {
			log.Printf("Failed to start new game: %v", err)
			a.reportError(err)
		}

	case InputQuit:
		a.cancel()
	}
}

func (a *App) reportError(err error) {
	a.emit(AppEvent{
		Type:    AppEventError,
		Payload: ErrorPayload{Message: err.Error()},
	})
}

func (a *App) emit(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
	}
}
