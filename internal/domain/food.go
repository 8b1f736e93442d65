package domain

import "math/rand"

type Food struct {
	Position Coord
}

// Respawn places the food uniformly at random on a cell not present in
// occupied. It returns false only when no free cell exists, which means
// the snake fills the whole field.
func (f *Food) Respawn(field *Field, occupied map[Coord]bool) bool {
	free := make([]Coord, 0, field.CellCount()-len(occupied))
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			cell := Coord{X: x, Y: y}
			if !occupied[cell] {
				free = append(free, cell)
			}
		}
	}

	if len(free) == 0 {
		return false
	}

	f.Position = free[rand.Intn(len(free))]
	return true
}
