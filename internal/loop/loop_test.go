package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/svngdo/snake-game/internal/domain"
)

type fakeState struct {
	mu      sync.Mutex
	ticks   int
	limit   int
	running bool
}

func newFakeState(limit int) *fakeState {
	return &fakeState{limit: limit, running: true}
}

func (f *fakeState) Tick() domain.TickResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return domain.TickResult{}
	}
	f.ticks++
	if f.limit > 0 && f.ticks >= f.limit {
		f.running = false
		return domain.TickResult{Moved: true, Ended: true, Reason: domain.EndWall}
	}
	return domain.TickResult{Moved: true}
}

func (f *fakeState) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeState) Snapshot() domain.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.Snapshot{Round: "test", Running: f.running, Reason: domain.EndWall, Snake: make([]domain.Cell, 3)}
}

func (f *fakeState) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

func TestNewRejectsNonPositiveTickRate(t *testing.T) {
	for _, rate := range []int{0, -10} {
		cfg := DefaultConfig()
		cfg.TickRate = rate
		l, err := New(cfg, newFakeState(0), nil)
		if !errors.Is(err, ErrInvalidTickRate) || !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("rate %d: error = %v", rate, err)
		}
		if l != nil {
			t.Errorf("rate %d: loop constructed", rate)
		}
	}
}

func TestStepAccumulatesFractionalTicks(t *testing.T) {
	state := newFakeState(0)
	l, err := New(DefaultConfig(), state, nil)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(1000, 0)
	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 0},
		{50 * time.Millisecond, 0},
		{100 * time.Millisecond, 1},
		{450 * time.Millisecond, 3},
		{500 * time.Millisecond, 1},
		{500 * time.Millisecond, 0},
	}
	for _, s := range steps {
		if got := l.Step(t0.Add(s.at)); got != s.want {
			t.Fatalf("Step(+%v) = %d, want %d", s.at, got, s.want)
		}
	}
	if got := state.count(); got != 5 {
		t.Fatalf("state ticked %d times, want 5", got)
	}
	if got := l.TotalTicks(); got != 5 {
		t.Fatalf("TotalTicks = %d, want 5", got)
	}
}

func TestStepCatchUpIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCatchUp = 5
	l, err := New(cfg, newFakeState(0), nil)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(1000, 0)
	l.Step(t0)
	if got := l.Step(t0.Add(2 * time.Second)); got != 5 {
		t.Fatalf("after stall ran %d ticks, want 5", got)
	}
	if got := l.Step(t0.Add(2*time.Second + 50*time.Millisecond)); got != 0 {
		t.Fatalf("owed time survived the cap: ran %d", got)
	}
}

func TestStepCatchesUpEveryOwedTickByDefault(t *testing.T) {
	l, err := New(DefaultConfig(), newFakeState(0), nil)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(1000, 0)
	l.Step(t0)
	total := l.Step(t0.Add(2 * time.Second))
	if total != 20 {
		t.Fatalf("after a 2s stall at 10 ticks/s ran %d ticks, want 20", total)
	}

	now := t0.Add(2 * time.Second)
	for i := 0; i < 8; i++ {
		now = now.Add(25 * time.Millisecond)
		total += l.Step(now)
	}
	if total != 22 {
		t.Fatalf("ran %d ticks over 2.2s, want 22", total)
	}
}

func TestStepStopsWhenStateEnds(t *testing.T) {
	state := newFakeState(2)
	cfg := DefaultConfig()
	cfg.MaxCatchUp = 0
	l, err := New(cfg, state, nil)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(1000, 0)
	l.Step(t0)
	if got := l.Step(t0.Add(time.Second)); got != 2 {
		t.Fatalf("ran %d ticks, want 2", got)
	}
}

func TestStepEmitsEvents(t *testing.T) {
	events := make(chan Event, 16)
	l, err := New(DefaultConfig(), newFakeState(0), events)
	if err != nil {
		t.Fatal(err)
	}

	t0 := time.Unix(1000, 0)
	l.Step(t0)
	l.Step(t0.Add(100 * time.Millisecond))
	l.Step(t0.Add(time.Second))

	var updates, stats int
	for len(events) > 0 {
		switch e := <-events; e.Type {
		case EventStateUpdated:
			updates++
		case EventStats:
			stats++
			if p := e.Payload.(StatsPayload); p.TicksPerSecond != 6 {
				t.Errorf("TPS = %d, want 6", p.TicksPerSecond)
			}
		}
	}
	if updates != 2 || stats != 1 {
		t.Fatalf("updates=%d stats=%d, want 2 and 1", updates, stats)
	}
}

func TestRunEndsOnGameOverAndReportsOnce(t *testing.T) {
	events := make(chan Event, 64)
	cfg := Config{TickRate: 200, MaxCatchUp: 5, PollInterval: time.Millisecond}
	state := newFakeState(3)
	l, err := New(cfg, state, events)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := l.Start(ctx); err != nil {
		t.Fatal(err)
	}
	select {
	case <-l.Done():
	case <-ctx.Done():
		t.Fatal("loop did not stop after game over")
	}
	l.Stop()

	if got := state.count(); got != 3 {
		t.Fatalf("ticked %d times, want 3", got)
	}

	var overs int
	for len(events) > 0 {
		if e := <-events; e.Type == EventGameOver {
			overs++
			p := e.Payload.(GameOverPayload)
			if p.Round != "test" || p.Reason != domain.EndWall || p.Length != 3 {
				t.Errorf("payload = %+v", p)
			}
		}
	}
	if overs != 1 {
		t.Fatalf("game over reported %d times", overs)
	}
}

func TestStopHaltsRunningLoop(t *testing.T) {
	cfg := Config{TickRate: 100, PollInterval: time.Millisecond}
	state := newFakeState(0)
	l, err := New(cfg, state, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := l.Start(context.Background()); err == nil {
		t.Fatal("second Start succeeded")
	}
	time.Sleep(30 * time.Millisecond)
	l.Stop()

	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
	n := state.count()
	time.Sleep(30 * time.Millisecond)
	if state.count() != n {
		t.Fatal("state ticked after Stop")
	}
}

func TestStopBeforeStartClosesDone(t *testing.T) {
	l, err := New(DefaultConfig(), newFakeState(0), nil)
	if err != nil {
		t.Fatal(err)
	}

	l.Stop()
	select {
	case <-l.Done():
	default:
		t.Fatal("Done not closed after Stop on an unstarted loop")
	}

	l.Stop()
	if err := l.Start(context.Background()); err == nil {
		t.Fatal("Start succeeded after Stop")
	}
}
