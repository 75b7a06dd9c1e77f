package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/ui/palette"
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{
		CellSize: cellSize,
		OffsetX:  16,
		OffsetY:  60,
	}
}

// CalculateLayout keeps the configured cell size when the field fits in the
// area left of the stats panel, and shrinks it otherwise.
func (fr *FieldRenderer) CalculateLayout(availableWidth, availableHeight, offsetX, offsetY, size, preferred int) {
	if size <= 0 {
		return
	}

	fr.CellSize = preferred
	cellW := availableWidth / size
	cellH := availableHeight / size
	if cellW < fr.CellSize {
		fr.CellSize = cellW
	}
	if cellH < fr.CellSize {
		fr.CellSize = cellH
	}
	if fr.CellSize < 4 {
		fr.CellSize = 4
	}

	fieldSize := fr.CellSize * size
	fr.OffsetX = offsetX + (availableWidth-fieldSize)/2
	fr.OffsetY = offsetY + (availableHeight-fieldSize)/2
	if fr.OffsetX < offsetX {
		fr.OffsetX = offsetX
	}
	if fr.OffsetY < offsetY {
		fr.OffsetY = offsetY
	}
}

func (fr *FieldRenderer) FieldSize(size int) int {
	return fr.CellSize * size
}

// DrawFrame paints one square per cell with a one pixel grid line between
// cells.
func (fr *FieldRenderer) DrawFrame(screen *ebiten.Image, frame palette.Frame) {
	total := float32(fr.FieldSize(frame.Size))
	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		total, total,
		palette.ColorGrid, false)

	size := float32(fr.CellSize - 1)
	if size < 1 {
		size = 1
	}
	for row, cells := range frame.Cells {
		for col, c := range cells {
			x := float32(fr.OffsetX + col*fr.CellSize)
			y := float32(fr.OffsetY + row*fr.CellSize)
			vector.DrawFilledRect(screen, x, y, size, size, c, false)
		}
	}
}

// DrawHeadMarker outlines the head so the direction of travel is easy to
// follow on long snakes.
func (fr *FieldRenderer) DrawHeadMarker(screen *ebiten.Image, s domain.Snapshot) {
	head, ok := s.Head()
	if !ok || !s.Running {
		return
	}

	x := float32(fr.OffsetX + head.Col*fr.CellSize)
	y := float32(fr.OffsetY + head.Row*fr.CellSize)
	size := float32(fr.CellSize - 1)
	vector.StrokeRect(screen, x, y, size, size, 2, palette.ColorTextHighlight, false)
}
