package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type HUD struct{}

func NewHUD() *HUD {
	return &HUD{}
}

func (hud *HUD) DrawScore(screen *ebiten.Image, score int) {
	fonts := types.GetFonts()
	text.Draw(screen, fmt.Sprintf("Score: %d", score), fonts.Normal, 8, 18, types.ColorText)
}

// DrawGameOver paints the end-of-game overlay on top of the frozen
// board.
func (hud *HUD) DrawGameOver(screen *ebiten.Image, w, h int, won bool) {
	fonts := types.GetFonts()

	title := "Game Over"
	if won {
		title = "You Win!"
	}
	hint := "Press Enter to Restart or Esc to Quit"

	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, h/2-10, types.ColorText)

	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h/2+18, types.ColorTextDim)
}
