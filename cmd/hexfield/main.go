package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/hexfield/config"
	"chosenoffset.com/hexfield/internal/game"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	// Set up the window
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Println("Starting demo...")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
