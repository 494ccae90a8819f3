package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brickfall/common"
	"github.com/milk9111/brickfall/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider outlines and frame stats")
	levelName := flag.String("level", "forest", "level name in levels/ (basename, .json optional)")
	character := flag.String("character", "", "character preset from characters.yaml (default from file)")
	mute := flag.Bool("mute", false, "disable sound")
	watch := flag.Bool("watch", false, "reload combat.yaml from disk when it changes")
	prefabDir := flag.String("prefabs", prefabs.Dir, "on-disk prefab directory that shadows the embedded copies")
	flag.Parse()

	prefabs.Dir = *prefabDir

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("brickfall")

	game, err := NewGame(Options{
		Level:     *levelName,
		Character: *character,
		Debug:     *debug,
		Mute:      *mute,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
