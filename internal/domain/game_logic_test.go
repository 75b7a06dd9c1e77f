package domain

import (
	"errors"
	"testing"
)

func newTestState(t *testing.T, size int) *GameState {
	t.Helper()

	cfg := DefaultGameConfig()
	cfg.GridSize = size
	cfg.Seed = 42

	gs, err := NewGameState(cfg)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return gs
}

func place(gs *GameState, snake []Cell, food Cell, dir Direction) {
	gs.snake = append([]Cell(nil), snake...)
	gs.food = food
	gs.direction = dir
}

func sameCells(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func TestTickWithoutDirectionIsNoop(t *testing.T) {
	gs := newTestState(t, 20)
	before := gs.Snapshot()

	res := gs.Tick()

	after := gs.Snapshot()
	if res.Moved || res.Ended {
		t.Fatalf("unexpected result %+v", res)
	}
	if !sameCells(before.Snake, after.Snake) || before.Food != after.Food {
		t.Fatalf("state changed: %+v -> %+v", before, after)
	}
	if !after.Running {
		t.Fatal("game stopped on idle tick")
	}
	if want := (Cell{Row: 10, Col: 2}); !after.Snake[0].Equals(want) {
		t.Fatalf("start cell = %v, want %v", after.Snake[0], want)
	}
}

func TestTickEatsFoodAndGrows(t *testing.T) {
	gs := newTestState(t, 20)
	place(gs, []Cell{{10, 2}}, Cell{10, 3}, DirectionRight)

	res := gs.Tick()

	if !res.Moved || !res.Ate || res.Ended {
		t.Fatalf("unexpected result %+v", res)
	}
	want := []Cell{{10, 3}, {10, 2}}
	if got := gs.Snake(); !sameCells(got, want) {
		t.Fatalf("snake = %v, want %v", got, want)
	}
	food := gs.Food()
	if food.Equals(Cell{10, 3}) {
		t.Fatal("food was not respawned")
	}
	for _, c := range gs.Snake() {
		if c.Equals(food) {
			t.Fatalf("food %v spawned on the snake", food)
		}
	}
	if !gs.Running() {
		t.Fatal("game stopped after eating")
	}
}

func TestTickIntoWallEndsGame(t *testing.T) {
	gs := newTestState(t, 20)
	place(gs, []Cell{{0, 5}}, Cell{7, 7}, DirectionUp)

	res := gs.Tick()

	if !res.Ended || res.Reason != EndWall {
		t.Fatalf("unexpected result %+v", res)
	}
	if gs.Running() {
		t.Fatal("game still running after hitting the wall")
	}
	if got := gs.Snake(); !sameCells(got, []Cell{{0, 5}}) {
		t.Fatalf("snake changed to %v", got)
	}
	if got := gs.Food(); !got.Equals(Cell{7, 7}) {
		t.Fatalf("food changed to %v", got)
	}
}

func TestTickMovesAndDropsTail(t *testing.T) {
	gs := newTestState(t, 20)
	place(gs, []Cell{{3, 3}, {3, 4}}, Cell{15, 15}, DirectionLeft)

	res := gs.Tick()

	if !res.Moved || res.Ate || res.Ended {
		t.Fatalf("unexpected result %+v", res)
	}
	want := []Cell{{3, 2}, {3, 3}}
	if got := gs.Snake(); !sameCells(got, want) {
		t.Fatalf("snake = %v, want %v", got, want)
	}
	if !gs.Running() {
		t.Fatal("game stopped on a plain move")
	}
}

func TestTickIntoSelfEndsGame(t *testing.T) {
	gs := newTestState(t, 20)
	// head at (5,5) turning down into its own body at (6,5)
	body := []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}}
	place(gs, body, Cell{0, 0}, DirectionDown)

	res := gs.Tick()

	if !res.Ended || res.Reason != EndSelf {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := gs.Snake(); !sameCells(got, body) {
		t.Fatalf("snake changed to %v", got)
	}
}

func TestTickAfterGameOverIsIdempotent(t *testing.T) {
	gs := newTestState(t, 20)
	place(gs, []Cell{{0, 5}}, Cell{7, 7}, DirectionUp)
	gs.Tick()

	frozen := gs.Snapshot()
	for i := 0; i < 10; i++ {
		if res := gs.Tick(); res != (TickResult{}) {
			t.Fatalf("tick %d after game over returned %+v", i, res)
		}
	}
	gs.SetDirection(DirectionLeft)

	after := gs.Snapshot()
	if !sameCells(frozen.Snake, after.Snake) || frozen.Food != after.Food ||
		frozen.Direction != after.Direction || frozen.Ticks != after.Ticks || after.Running {
		t.Fatalf("terminal state changed: %+v -> %+v", frozen, after)
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	gs := newTestState(t, 2)
	place(gs, []Cell{{0, 1}, {1, 1}, {1, 0}}, Cell{0, 0}, DirectionLeft)

	res := gs.Tick()

	if !res.Ended || res.Reason != EndBoardFull || !res.Ate {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := len(gs.Snake()); got != 4 {
		t.Fatalf("snake length = %d, want 4", got)
	}
}

func TestSpawnFoodOnFullBoard(t *testing.T) {
	gs := newTestState(t, 2)
	place(gs, []Cell{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, Cell{0, 0}, DirectionNone)

	if err := gs.SpawnFood(); !errors.Is(err, ErrBoardFull) {
		t.Fatalf("SpawnFood error = %v, want ErrBoardFull", err)
	}
}

func TestSpawnFoodPicksOnlyFreeCell(t *testing.T) {
	gs := newTestState(t, 2)
	place(gs, []Cell{{0, 0}, {0, 1}, {1, 1}}, Cell{0, 0}, DirectionNone)

	for i := 0; i < 20; i++ {
		if err := gs.SpawnFood(); err != nil {
			t.Fatalf("SpawnFood: %v", err)
		}
		if got := gs.Food(); !got.Equals(Cell{1, 0}) {
			t.Fatalf("food = %v, want (1,0)", got)
		}
	}
}

func TestSpawnFoodIsUniformOverFreeCells(t *testing.T) {
	gs := newTestState(t, 3)
	snake := []Cell{{1, 1}, {1, 2}}
	place(gs, snake, Cell{0, 0}, DirectionNone)

	const spawns = 7000
	counts := make(map[Cell]int)
	for i := 0; i < spawns; i++ {
		if err := gs.SpawnFood(); err != nil {
			t.Fatalf("SpawnFood: %v", err)
		}
		counts[gs.Food()]++
	}

	for _, c := range snake {
		if counts[c] != 0 {
			t.Fatalf("food spawned on the snake at %v", c)
		}
	}

	free := gs.Field.CellCount() - len(snake)
	if len(counts) != free {
		t.Fatalf("food hit %d distinct cells, want %d: %v", len(counts), free, counts)
	}

	want := spawns / free
	for c, n := range counts {
		if n < want*8/10 || n > want*12/10 {
			t.Errorf("cell %v hit %d times, want about %d", c, n, want)
		}
	}
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	gs := newTestState(t, 8)
	dirs := []Direction{DirectionRight, DirectionDown, DirectionLeft, DirectionUp}

	for step := 0; step < 500; step++ {
		if !gs.Running() {
			gs.Reset()
		}
		gs.SetDirection(dirs[gs.rng.Intn(len(dirs))])

		before := gs.Snake()
		gs.Tick()
		after := gs.Snake()

		if d := len(after) - len(before); d != 0 && d != 1 {
			t.Fatalf("step %d: length went from %d to %d", step, len(before), len(after))
		}
		if !gs.Running() {
			continue
		}

		seen := make(map[Cell]bool, len(after))
		for _, c := range after {
			if seen[c] {
				t.Fatalf("step %d: duplicate cell %v in %v", step, c, after)
			}
			if !gs.Field.Contains(c) {
				t.Fatalf("step %d: cell %v off the field", step, c)
			}
			seen[c] = true
		}
		if seen[gs.Food()] {
			t.Fatalf("step %d: food %v inside the snake", step, gs.Food())
		}
	}
}
