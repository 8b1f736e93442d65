package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameScreen runs the actual game: one Update call is one tick, paced
// by the engine's fixed TPS.
type GameScreen struct {
	ctx  types.ScreenContext
	game *domain.GameState

	fieldRenderer *components.FieldRenderer
	hud           *components.HUD
	keyboard      *input.KeyboardHandler
}

func NewGameScreen(ctx types.ScreenContext, game *domain.GameState) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		game:          game,
		fieldRenderer: components.NewFieldRenderer(game.Config.CellSize),
		hud:           components.NewHUD(),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEventQuit
	}

	switch s.game.Phase {
	case domain.PhaseRunning:
		if dir := s.keyboard.Update(); dir != 0 {
			s.game.Steer(dir)
		}
		s.game.Tick()

	case domain.PhaseGameOver:
		if input.IsEnterPressed() {
			s.game.Reset()
		}
	}

	return types.UIEventNone
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	s.fieldRenderer.DrawGrid(screen, s.game.Field)
	s.fieldRenderer.DrawFood(screen, s.game.Food)
	s.fieldRenderer.DrawSnake(screen, s.game.Snake)

	s.hud.DrawScore(screen, s.game.Score)

	if s.game.Phase == domain.PhaseGameOver {
		w, h := s.ctx.Size()
		s.hud.DrawGameOver(screen, w, h, s.game.Won)
	}
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
