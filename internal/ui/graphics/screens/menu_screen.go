package screens

import (
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{ctx: ctx}
}

func (s *MenuScreen) Update() types.UIEvent {
	if input.IsEnterPressed() {
		return types.UIEventStartGame
	}
	if input.IsEscapePressed() {
		return types.UIEventQuit
	}
	return types.UIEventNone
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2

	// Poor man's bold: layer the title with one-pixel offsets.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, h/2-30+dy, types.ColorTextHighlight)
		}
	}

	hint := "Press Enter to Start"
	bounds = text.BoundString(fonts.Normal, hint)
	text.Draw(screen, hint, fonts.Normal, (w-bounds.Dx())/2, h/2+10, types.ColorText)

	quitHint := "Arrows or WASD to move  |  ESC to quit"
	bounds = text.BoundString(fonts.Small, quitHint)
	text.Draw(screen, quitHint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
