package domain

import (
	"math/rand"
	"testing"
)

func TestNewSnakeInitialBody(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)

	want := []Coord{{15, 10}, {14, 10}, {13, 10}}
	if len(s.Points) != len(want) {
		t.Fatalf("Expected body length %d, got %d", len(want), len(s.Points))
	}
	for i, cell := range want {
		if !s.Points[i].Equals(cell) {
			t.Errorf("Expected segment %d at (%d, %d), got (%d, %d)",
				i, cell.X, cell.Y, s.Points[i].X, s.Points[i].Y)
		}
	}
	if s.Direction() != DirectionRight {
		t.Errorf("Expected initial direction Right, got %v", s.Direction())
	}
}

func TestAdvanceMovesHeadKeepsLength(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)

	s.Advance()

	if head := s.Head(); !head.Equals(Coord{16, 10}) {
		t.Errorf("Expected head (16, 10), got (%d, %d)", head.X, head.Y)
	}
	if s.Length() != 3 {
		t.Errorf("Expected length 3 after advance, got %d", s.Length())
	}
	tail := s.Points[len(s.Points)-1]
	if !tail.Equals(Coord{14, 10}) {
		t.Errorf("Expected old tail removed, last segment (14, 10), got (%d, %d)", tail.X, tail.Y)
	}
}

func TestGrowThenAdvance(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)

	s.Grow()
	s.Advance()
	if s.Length() != 4 {
		t.Errorf("Expected length 4 after grow+advance, got %d", s.Length())
	}

	// Growth flag must be consumed by exactly one advance.
	s.Advance()
	if s.Length() != 4 {
		t.Errorf("Expected length unchanged on plain advance, got %d", s.Length())
	}
}

func TestSetDirectionReversalGuard(t *testing.T) {
	cases := []struct {
		current Direction
		blocked Direction
	}{
		{DirectionRight, DirectionLeft},
		{DirectionLeft, DirectionRight},
		{DirectionUp, DirectionDown},
		{DirectionDown, DirectionUp},
	}

	for _, c := range cases {
		s := NewSnake(Coord{15, 10}, c.current, 3)
		if s.SetDirection(c.blocked) {
			t.Errorf("Expected %v to be rejected while moving %v", c.blocked, c.current)
		}
		s.Advance()
		if s.Direction() != c.current {
			t.Errorf("Expected direction to stay %v, got %v", c.current, s.Direction())
		}
	}
}

func TestSetDirectionLatestPressWins(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)

	// Two presses within one tick: Up then Down. Down is not the
	// opposite of the applied direction (Right), so it replaces Up.
	if !s.SetDirection(DirectionUp) {
		t.Fatalf("Expected Up to be accepted")
	}
	if !s.SetDirection(DirectionDown) {
		t.Fatalf("Expected Down to be accepted")
	}
	s.Advance()

	if s.Direction() != DirectionDown {
		t.Errorf("Expected applied direction Down, got %v", s.Direction())
	}
	if head := s.Head(); !head.Equals(Coord{15, 11}) {
		t.Errorf("Expected head (15, 11), got (%d, %d)", head.X, head.Y)
	}
}

func TestSetDirectionIgnoresZero(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)
	if s.SetDirection(0) {
		t.Errorf("Expected zero direction to be rejected")
	}
	s.Advance()
	if s.Direction() != DirectionRight {
		t.Errorf("Expected direction to stay Right, got %v", s.Direction())
	}
}

// The snake must never move opposite to its previous tick's direction,
// no matter what input sequence arrives between ticks.
func TestNeverReversesUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dirs := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

	s := NewSnake(Coord{0, 0}, DirectionRight, 3)
	for step := 0; step < 1000; step++ {
		prev := s.Direction()

		for presses := rng.Intn(4); presses > 0; presses-- {
			s.SetDirection(dirs[rng.Intn(len(dirs))])
		}
		s.Advance()

		if s.Direction().IsOpposite(prev) {
			t.Fatalf("Step %d: reversed from %v to %v", step, prev, s.Direction())
		}
	}
}

func TestHitsWall(t *testing.T) {
	field := NewField(30, 20)

	cases := []struct {
		head Coord
		want bool
	}{
		{Coord{-1, 5}, true},
		{Coord{30, 5}, true},
		{Coord{5, -1}, true},
		{Coord{5, 20}, true},
		{Coord{0, 0}, false},
		{Coord{29, 19}, false},
	}

	for _, c := range cases {
		s := NewSnake(c.head, DirectionRight, 1)
		if got := s.HitsWall(field); got != c.want {
			t.Errorf("HitsWall with head (%d, %d): expected %v, got %v",
				c.head.X, c.head.Y, c.want, got)
		}
	}
}

func TestHitsSelfOnSquareTurn(t *testing.T) {
	// Length 5, tight square: Down, Left, Up brings the head back onto
	// the body.
	s := NewSnake(Coord{5, 5}, DirectionRight, 5)

	moves := []Direction{DirectionDown, DirectionLeft, DirectionUp}
	for _, dir := range moves {
		if s.HitsSelf() {
			t.Fatalf("Unexpected self collision before turning %v", dir)
		}
		if !s.SetDirection(dir) {
			t.Fatalf("Expected %v to be accepted", dir)
		}
		s.Advance()
	}

	if !s.HitsSelf() {
		t.Errorf("Expected self collision after closing the square")
	}
}

func TestOccupiedMatchesBody(t *testing.T) {
	s := NewSnake(Coord{15, 10}, DirectionRight, 3)
	occupied := s.Occupied()

	if len(occupied) != 3 {
		t.Errorf("Expected 3 occupied cells, got %d", len(occupied))
	}
	for _, cell := range s.Body() {
		if !occupied[cell] {
			t.Errorf("Expected cell (%d, %d) to be occupied", cell.X, cell.Y)
		}
	}
}
