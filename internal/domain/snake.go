package domain

// Snake keeps its body as ordered cells, head first. Steering goes
// through a pending direction that is only applied on the next Advance,
// so several key presses within one tick cannot fold the snake onto
// itself.
type Snake struct {
	Points []Coord

	dir     Direction
	pending Direction
	growing bool
}

func NewSnake(head Coord, dir Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}

	points := make([]Coord, 0, length)
	back := dir.Opposite().Delta()
	cell := head
	for i := 0; i < length; i++ {
		points = append(points, cell)
		cell = cell.Add(back)
	}

	return &Snake{
		Points:  points,
		dir:     dir,
		pending: dir,
	}
}

func (s *Snake) Head() Coord {
	return s.Points[0]
}

func (s *Snake) Body() []Coord {
	return s.Points
}

func (s *Snake) Length() int {
	return len(s.Points)
}

func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection records dir as the pending direction for the next tick.
// A direction opposite to the currently applied one is silently dropped
// (reversal guard); the latest accepted press before a tick wins.
func (s *Snake) SetDirection(dir Direction) bool {
	if dir == 0 || dir.IsOpposite(s.dir) {
		return false
	}
	s.pending = dir
	return true
}

// Grow marks the snake to keep its tail on the next Advance.
func (s *Snake) Grow() {
	s.growing = true
}

// Advance applies the pending direction and moves the snake one cell:
// the new head is prepended and, unless growth is pending, the tail
// cell is removed.
func (s *Snake) Advance() {
	s.dir = s.pending

	newPoints := make([]Coord, 0, len(s.Points)+1)
	newPoints = append(newPoints, s.Head().Add(s.dir.Delta()))
	newPoints = append(newPoints, s.Points...)

	if s.growing {
		s.growing = false
	} else {
		newPoints = newPoints[:len(newPoints)-1]
	}

	s.Points = newPoints
}

func (s *Snake) HitsWall(field *Field) bool {
	return !field.Contains(s.Head())
}

func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, cell := range s.Points[1:] {
		if cell.Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Occupied() map[Coord]bool {
	occupied := make(map[Coord]bool, len(s.Points))
	for _, cell := range s.Points {
		occupied[cell] = true
	}
	return occupied
}
