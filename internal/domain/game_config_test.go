package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GridSize != 20 || cfg.CellSize != 20 || cfg.TickRate != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if got := cfg.TickInterval(); got != 100*time.Millisecond {
		t.Fatalf("tick interval = %v, want 100ms", got)
	}
}

func TestValidateGridBounds(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.GridSize = 1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("1x1 grid: error = %v", err)
	}
	cfg.GridSize = MaxGridSize + 1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("oversized grid: error = %v", err)
	}
}
