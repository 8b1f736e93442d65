package main

import (
	"log"

	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := domain.DefaultGameConfig()
	if !config.Validate() {
		log.Fatalf("Invalid game config: %+v", config)
	}

	engine := graphics.NewEngine(config)

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewGameScreen(engine, engine.Game()),
	)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
