package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to load (YAML); empty uses the built-in scene")
	watch := flag.Bool("watch", false, "reload the scene file when it changes on disk")
	debug := flag.Bool("debug", false, "show frame timing overlay")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("hookshift")

	game, err := NewGame(*scenePath, *watch, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
