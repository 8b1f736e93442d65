package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the play field at a fixed cell pitch. The window
// is sized to the field, so there is no offset or scaling.
type FieldRenderer struct {
	CellSize int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{CellSize: cellSize}
}

func (fr *FieldRenderer) DrawGrid(screen *ebiten.Image, field *domain.Field) {
	w := float32(field.Width * fr.CellSize)
	h := float32(field.Height * fr.CellSize)

	for x := 0; x <= field.Width; x++ {
		x1 := float32(x * fr.CellSize)
		vector.StrokeLine(screen, x1, 0, x1, h, 1, types.ColorGrid, false)
	}
	for y := 0; y <= field.Height; y++ {
		y1 := float32(y * fr.CellSize)
		vector.StrokeLine(screen, 0, y1, w, y1, 1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food *domain.Food) {
	fr.fillCell(screen, food.Position, types.ColorFood)
}

// DrawSnake fills every body cell, with the head in a darker shade so
// the travel direction stays readable.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snake *domain.Snake) {
	for i, cell := range snake.Body() {
		cellColor := types.ColorSnakeBody
		if i == 0 {
			cellColor = types.ColorSnakeHead
		}
		fr.fillCell(screen, cell, cellColor)
	}
}

func (fr *FieldRenderer) fillCell(screen *ebiten.Image, cell domain.Coord, clr color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(cell.X*fr.CellSize), float32(cell.Y*fr.CellSize),
		float32(fr.CellSize), float32(fr.CellSize),
		clr, false)
}
