package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/lixenwraith/worldmap/config"
	"github.com/lixenwraith/worldmap/gui"
	"github.com/lixenwraith/worldmap/layout"
	"github.com/lixenwraith/worldmap/selection"
	"github.com/lixenwraith/worldmap/sound"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap-gui: %v\n", err)
		os.Exit(2)
	}

	logger, logFile, err := config.OpenLog(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap-gui: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cat, err := config.LoadCatalog(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap-gui: %v\n", err)
		os.Exit(1)
	}

	ctrl := selection.NewController(cat)
	ctrl.Observe(func(a selection.Action, prev, next selection.State) {
		logger.Printf("%s: %s", a, next.CountLabel())
	})

	if cfg.Sound {
		player := sound.NewPlayer(sound.DefaultVolume)
		if err := player.Init(); err != nil {
			logger.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer player.Close()
			ctrl.Observe(player.Observer(func(err error) {
				logger.Printf("audio: %v", err)
			}))
		}
	}

	opts := []gui.Option{gui.WithLogger(logger)}
	if err := clipboard.Init(); err != nil {
		logger.Printf("clipboard unavailable: %v", err)
	} else {
		opts = append(opts, gui.WithClipboard(func(s string) error {
			clipboard.Write(clipboard.FmtText, []byte(s))
			return nil
		}))
	}

	ebiten.SetWindowTitle(layout.TitleText)
	ebiten.SetWindowSize(gui.DefaultWidth, gui.DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gui.New(cat, ctrl, opts...)); err != nil {
		fmt.Fprintf(os.Stderr, "worldmap-gui: %v\n", err)
		os.Exit(1)
	}
}
