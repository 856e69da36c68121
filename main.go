package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Jack-The-Ripper-1820/Three-Js-Learning/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw the controller state overlay")
	monitor := flag.Int("m", 0, "monitor index to open the window on")
	flag.Parse()

	game, err := NewGame(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if game.watcher != nil {
			_ = game.watcher.Close()
		}
	}()

	monitors := ebiten.AppendMonitors(nil)
	if *monitor >= 0 && *monitor < len(monitors) {
		ebiten.SetMonitor(monitors[*monitor])
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("capsule runner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
