package palette

import "image/color"

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorEmpty         = color.RGBA{245, 245, 245, 255}
	ColorGrid          = color.RGBA{160, 160, 160, 255}
	ColorSnake         = color.RGBA{60, 190, 75, 255}
	ColorSnakeHead     = color.RGBA{30, 130, 45, 255}
	ColorSnakeDead     = color.RGBA{120, 120, 120, 255}
	ColorFood          = color.RGBA{230, 40, 40, 255}
	ColorPanel         = color.RGBA{40, 40, 45, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
