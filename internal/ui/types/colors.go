package types

import "image/color"

var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorGrid          = color.RGBA{40, 40, 40, 255}
	ColorSnakeBody     = color.RGBA{0, 200, 0, 255}
	ColorSnakeHead     = color.RGBA{0, 150, 0, 255}
	ColorFood          = color.RGBA{200, 0, 0, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
)
