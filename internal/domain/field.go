package domain

// Field is the bounded play area. Cells outside it are walls: moving
// off the edge ends the game, there is no wrap-around.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}

func (f *Field) CellCount() int {
	return f.Width * f.Height
}
