package domain

type TickResult struct {
	Ate      bool
	GameOver bool
	Won      bool
}

// Tick advances the game by one step: move the snake, end the game on a
// wall or self collision, otherwise eat and respawn food under the
// head. A failed respawn means the snake fills the field; that counts
// as a win and also ends the game.
func (gs *GameState) Tick() TickResult {
	var result TickResult
	if gs.Phase != PhaseRunning {
		return result
	}

	gs.Snake.Advance()

	if gs.Snake.HitsWall(gs.Field) || gs.Snake.HitsSelf() {
		gs.Phase = PhaseGameOver
		result.GameOver = true
		return result
	}

	if gs.Snake.Head().Equals(gs.Food.Position) {
		gs.Score++
		gs.Snake.Grow()
		result.Ate = true

		if !gs.Food.Respawn(gs.Field, gs.Snake.Occupied()) {
			gs.Phase = PhaseGameOver
			gs.Won = true
			result.GameOver = true
			result.Won = true
		}
	}

	return result
}
