package domain

type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// GameState is the whole mutable state of one game. The loop owns a
// single instance and drives it from one goroutine (ebiten calls Update
// and Draw on the same one), so no locking is involved.
type GameState struct {
	Field  *Field
	Config *GameConfig
	Snake  *Snake
	Food   *Food
	Score  int
	Phase  Phase
	Won    bool
}

func NewGameState(config *GameConfig) *GameState {
	gs := &GameState{
		Field:  NewField(config.Width, config.Height),
		Config: config.Copy(),
		Food:   &Food{},
	}
	gs.Reset()
	return gs
}

// Reset restores the initial conditions: a fresh snake in the center
// moving right, food on a free cell, zero score, running phase.
func (gs *GameState) Reset() {
	gs.Snake = NewSnake(gs.Field.Center(), DirectionRight, gs.Config.InitialLength)
	gs.Food.Respawn(gs.Field, gs.Snake.Occupied())
	gs.Score = 0
	gs.Phase = PhaseRunning
	gs.Won = false
}

// Steer forwards a direction request to the snake. Requests are ignored
// once the game is over.
func (gs *GameState) Steer(dir Direction) bool {
	if gs.Phase != PhaseRunning {
		return false
	}
	return gs.Snake.SetDirection(dir)
}
