package graphics

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine implements ebiten.Game and dispatches to the current screen.
// ebiten's fixed TPS is the game clock: one Engine.Update is one tick.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	game *domain.GameState
	quit bool
}

func NewEngine(config *domain.GameConfig) *Engine {
	types.InitFonts()

	return &Engine{
		width:         config.WindowWidth(),
		height:        config.WindowHeight(),
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		game:          domain.NewGameState(config),
	}
}

func (e *Engine) RegisterScreens(menu, game types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(e.game.Config.TPS)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	e.handleEvent(screen.Update())

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	current := e.screenMap[e.currentScreen]
	if current == nil {
		return
	}
	current.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Game() *domain.GameState {
	return e.game
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event {
	case types.UIEventNone:

	case types.UIEventStartGame:
		e.game.Reset()
		e.SetScreen(types.ScreenGame)

	case types.UIEventQuit:
		e.quit = true
	}
}
