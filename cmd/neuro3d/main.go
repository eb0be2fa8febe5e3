package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/smasonuk/neuro3d"
)

func main() {
	configPath := flag.String("config", "neuro3d.yaml", "path to the yaml config file (optional)")
	flag.Parse()

	cfg, err := neuro3d.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	app, err := neuro3d.NewApp(cfg)
	if err != nil {
		log.Fatalf("Error initializing: %v", err)
	}

	ebiten.SetWindowSize(neuro3d.DefaultWidth, neuro3d.DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("neuro3d")

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
