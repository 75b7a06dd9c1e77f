// Package loop drives a game state at a fixed logical tick rate using a
// delta accumulator, independent of how often the goroutine gets scheduled.
package loop

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/svngdo/snake-game/internal/domain"
)

var ErrInvalidTickRate = fmt.Errorf("%w: tick rate must be positive", domain.ErrInvalidConfig)

const minPollInterval = time.Millisecond

// Stepper is the part of the game state the loop drives.
type Stepper interface {
	Tick() domain.TickResult
	Running() bool
	Snapshot() domain.Snapshot
}

type Config struct {
	TickRate int
	// MaxCatchUp optionally bounds ticks run by one Step; owed time beyond it
	// is dropped. Zero, the default, replays every owed tick.
	MaxCatchUp   int
	PollInterval time.Duration
	Now          func() time.Time
}

func DefaultConfig() Config {
	return Config{
		TickRate: domain.DefaultTickRate,
	}
}

type Loop struct {
	state    Stepper
	interval time.Duration
	poll     time.Duration
	maxCatch int
	now      func() time.Time

	lastTime time.Time
	delta    float64

	statsStart time.Time
	statsTicks int
	totalTicks uint64

	eventCh chan<- Event

	stopped  atomic.Bool
	overSent atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
	mu       sync.Mutex
}

func New(cfg Config, state Stepper, eventCh chan<- Event) (*Loop, error) {
	if cfg.TickRate <= 0 {
		return nil, ErrInvalidTickRate
	}
	if cfg.MaxCatchUp < 0 {
		return nil, fmt.Errorf("%w: max catch-up %d is negative", domain.ErrInvalidConfig, cfg.MaxCatchUp)
	}

	interval := time.Second / time.Duration(cfg.TickRate)

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = interval / 4
	}
	if poll < minPollInterval {
		poll = minPollInterval
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Loop{
		state:    state,
		interval: interval,
		poll:     poll,
		maxCatch: cfg.MaxCatchUp,
		now:      now,
		eventCh:  eventCh,
		done:     make(chan struct{}),
	}, nil
}

// Reset restarts timing from now, discarding any owed ticks.
func (l *Loop) Reset(now time.Time) {
	l.lastTime = now
	l.delta = 0
	l.statsStart = now
	l.statsTicks = 0
}

// Step accounts for the time elapsed since the previous call and runs every
// tick that is owed. It returns the number of ticks run.
func (l *Loop) Step(now time.Time) int {
	if l.lastTime.IsZero() {
		l.Reset(now)
		return 0
	}

	elapsed := now.Sub(l.lastTime)
	if elapsed > 0 {
		l.delta += float64(elapsed) / float64(l.interval)
	}
	l.lastTime = now

	ran := 0
	for l.delta >= 1 && l.state.Running() {
		if l.maxCatch > 0 && ran >= l.maxCatch {
			l.delta = 0
			break
		}
		l.state.Tick()
		l.delta--
		ran++
	}

	l.statsTicks += ran
	l.totalTicks += uint64(ran)
	if now.Sub(l.statsStart) >= time.Second {
		log.Printf("TPS: %d", l.statsTicks)
		l.emit(Event{Type: EventStats, Payload: StatsPayload{TicksPerSecond: l.statsTicks}})
		l.statsStart = now
		l.statsTicks = 0
	}

	if ran > 0 {
		l.emit(Event{Type: EventStateUpdated})
	}
	return ran
}

func (l *Loop) TotalTicks() uint64 {
	return l.totalTicks
}

// Run blocks until ctx is cancelled, Stop is called, or the game ends.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	l.Reset(l.now())

	for {
		if l.stopped.Load() {
			return
		}
		if !l.state.Running() {
			l.gameOver(ctx)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Step(l.now())
		}
	}
}

// gameOver reports the end of the round once. Unlike the other events it
// waits for room in the channel, since a dropped game over is never resent.
func (l *Loop) gameOver(ctx context.Context) {
	if !l.overSent.CompareAndSwap(false, true) {
		return
	}

	s := l.state.Snapshot()
	log.Printf("Round %s over: snake %s, length %d", s.Round, s.Reason, s.Length())

	if l.eventCh == nil {
		return
	}
	event := Event{
		Type: EventGameOver,
		Payload: GameOverPayload{
			Round:  s.Round,
			Reason: s.Reason,
			Length: s.Length(),
		},
	}
	select {
	case l.eventCh <- event:
	case <-ctx.Done():
	}
}

// Start runs the loop on its own goroutine. A Loop can be started once.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return fmt.Errorf("loop already started")
	}
	if l.stopped.Load() {
		return fmt.Errorf("loop already stopped")
	}

	ctx, l.cancel = context.WithCancel(ctx)
	go func() {
		defer l.closeDone()
		l.Run(ctx)
	}()
	return nil
}

// Stop halts the loop and waits for it to exit. Done is closed afterwards
// even if the loop was never started.
func (l *Loop) Stop() {
	l.stopped.Store(true)

	l.mu.Lock()
	cancel := l.cancel
	if cancel == nil {
		l.closeDone()
	}
	l.mu.Unlock()

	if cancel != nil {
		cancel()
		<-l.done
	}
}

func (l *Loop) closeDone() {
	l.doneOnce.Do(func() { close(l.done) })
}

func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) emit(event Event) {
	if l.eventCh == nil {
		return
	}
	select {
	case l.eventCh <- event:
	default:
	}
}
