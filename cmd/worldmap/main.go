package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldmap/config"
	"github.com/lixenwraith/worldmap/selection"
	"github.com/lixenwraith/worldmap/sound"
	"github.com/lixenwraith/worldmap/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code. All cleanup is deferred here so it
// completes before main exits, crashes included.
func run(args []string) (code int) {
	cfg, err := config.Load(flag.CommandLine, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap: %v\n", err)
		return 2
	}

	logger, logFile, err := config.OpenLog(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap: %v\n", err)
		return 1
	}
	defer logFile.Close()

	cat, err := config.LoadCatalog(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldmap: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}

	defer recoverCrash(screen.Fini, logger, &code)
	defer screen.Fini()

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

	var copyText func(string) error
	if !clipboard.Unsupported {
		copyText = clipboard.WriteAll
	}

	app := term.New(screen, cat, ctrl,
		term.WithLogger(logger),
		term.WithClipboard(copyText),
	)
	if err := app.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "worldmap: %v\n", err)
		return 1
	}
	return 0
}

// recoverCrash must be deferred directly. On panic it restores the terminal,
// records the crash and sets the exit code; other deferred cleanup still runs.
func recoverCrash(fini func(), logger *log.Logger, code *int) {
	r := recover()
	if r == nil {
		return
	}
	fini()
	stack := debug.Stack()
	logger.Printf("crashed: %v\n%s", r, stack)
	fmt.Fprintf(os.Stderr, "\nworldmap crashed: %v\nStack Trace:\n%s\n", r, stack)
	*code = 1
}
