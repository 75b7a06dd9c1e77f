package palette

import (
	"testing"

	"github.com/svngdo/snake-game/internal/domain"
)

func TestBuildFrameColorsEveryCell(t *testing.T) {
	s := domain.Snapshot{
		Size:    4,
		Snake:   []domain.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
		Food:    domain.Cell{Row: 3, Col: 0},
		Running: true,
	}

	f := BuildFrame(s)

	if f.Size != 4 || len(f.Cells) != 4 {
		t.Fatalf("frame size %d rows %d", f.Size, len(f.Cells))
	}
	counts := map[[4]uint8]int{}
	for _, row := range f.Cells {
		if len(row) != 4 {
			t.Fatalf("row length %d", len(row))
		}
		for _, c := range row {
			counts[[4]uint8{c.R, c.G, c.B, c.A}]++
		}
	}

	if got := f.At(domain.Cell{Row: 1, Col: 1}); got != ColorSnakeHead {
		t.Errorf("head color %v", got)
	}
	for _, c := range s.Snake[1:] {
		if got := f.At(c); got != ColorSnake {
			t.Errorf("body %v color %v", c, got)
		}
	}
	if got := f.At(s.Food); got != ColorFood {
		t.Errorf("food color %v", got)
	}
	empty := ColorEmpty
	if n := counts[[4]uint8{empty.R, empty.G, empty.B, empty.A}]; n != 16-4 {
		t.Errorf("%d empty cells, want 12", n)
	}
}

func TestBuildFrameAfterGameOver(t *testing.T) {
	s := domain.Snapshot{
		Size:    3,
		Snake:   []domain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		Food:    domain.Cell{Row: 2, Col: 2},
		Running: false,
		Reason:  domain.EndWall,
	}

	f := BuildFrame(s)

	if got := f.At(domain.Cell{Row: 0, Col: 1}); got != ColorSnakeDead {
		t.Errorf("dead body color %v", got)
	}
	if got := f.At(s.Food); got != ColorFood {
		t.Errorf("food color %v", got)
	}
}

func TestGameOverLatchFiresOncePerRound(t *testing.T) {
	l := NewGameOverLatch()

	running := domain.Snapshot{Round: "a", Running: true}
	over := domain.Snapshot{Round: "a", Running: false}

	if l.Observe(running) {
		t.Fatal("fired for a running round")
	}
	if !l.Observe(over) {
		t.Fatal("did not fire on game over")
	}
	for i := 0; i < 3; i++ {
		if l.Observe(over) {
			t.Fatal("fired twice for the same round")
		}
	}
	if l.Fire("a") {
		t.Fatal("Fire after Observe fired again")
	}
	if !l.Observe(domain.Snapshot{Round: "b"}) {
		t.Fatal("did not fire for the next round")
	}
}

func TestGameOverLatchTracksLatestRoundOnly(t *testing.T) {
	l := NewGameOverLatch()

	for i, round := range []string{"a", "b", "c"} {
		if !l.Fire(round) {
			t.Fatalf("round %d (%s) did not fire", i, round)
		}
		if l.Fire(round) {
			t.Fatalf("round %d (%s) fired twice", i, round)
		}
	}
	if l.last != "c" {
		t.Fatalf("latch holds %q, want the last round", l.last)
	}
}
