// Package term is the terminal frontend: a tcell screen driven by mouse clicks.
package term

import (
	"io"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/layout"
	"github.com/lixenwraith/worldmap/selection"
)

// App renders the map to a tcell screen and feeds clicks to the controller
type App struct {
	screen   tcell.Screen
	cat      *catalog.Catalog
	ctrl     *selection.Controller
	theme    Theme
	logger   *log.Logger
	copyText func(string) error

	frame   layout.Frame // last drawn, used for hit testing
	hover   catalog.RegionID
	buttons tcell.ButtonMask
	status  string
	colors  map[string]tcell.Color
}

// Option configures an App
type Option func(*App)

func WithTheme(t Theme) Option {
	return func(a *App) { a.theme = t }
}

func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClipboard sets the text copy function used by the copy key
func WithClipboard(fn func(string) error) Option {
	return func(a *App) { a.copyText = fn }
}

// New creates an App on an initialized screen
func New(screen tcell.Screen, cat *catalog.Catalog, ctrl *selection.Controller, opts ...Option) *App {
	a := &App{
		screen: screen,
		cat:    cat,
		ctrl:   ctrl,
		theme:  DefaultTheme,
		logger: log.New(io.Discard, "", 0),
		colors: make(map[string]tcell.Color),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run processes events until quit. Events are handled one at a time, each
// redraw completing before the next event is read.
func (a *App) Run() error {
	a.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	defer a.screen.DisableMouse()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		a.Draw()

		ev, ok := <-eventChan
		if !ok {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one event, returning false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return a.handleRune(ev.Rune())
		}
		return a.handleKey(ev.Key())

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(k tcell.Key) bool {
	switch k {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.dispatch(selection.Dismiss())
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'c', 'C':
		a.dispatch(selection.Clear())
	case 'y', 'Y':
		a.copyActive()
	}
	return true
}

// handleMouse tracks hover and fires on the left button's press edge.
// Motion with the button held reports the same mask and is not a new click.
func (a *App) handleMouse(x, y int, btns tcell.ButtonMask) {
	pressed := btns&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = btns

	a.hover, _ = a.frame.RegionAt(x, y)

	if pressed {
		a.dispatch(a.frame.Hit(x, y))
	}
}

func (a *App) dispatch(act selection.Action) {
	if act.Kind == selection.KindNone {
		return
	}
	a.status = ""
	if err := a.ctrl.Dispatch(act); err != nil {
		a.logger.Printf("%s rejected: %v", act, err)
	}
}

// copyActive puts the active region's name and info on the clipboard
func (a *App) copyActive() {
	entry, ok := a.ctrl.State().Panel()
	if !ok {
		a.status = "No active country to copy"
		return
	}
	if a.copyText == nil {
		a.status = "Clipboard unavailable"
		return
	}
	if err := a.copyText(entry.Name + ": " + entry.Info); err != nil {
		a.logger.Printf("clipboard write failed: %v", err)
		a.status = "Copy failed"
		return
	}
	a.status = "Copied " + entry.Name
}

// Frame returns the layout of the last draw
func (a *App) Frame() layout.Frame {
	return a.frame
}

func (a *App) color(hex string) tcell.Color {
	if c, ok := a.colors[hex]; ok {
		return c
	}
	c := hexColor(hex)
	a.colors[hex] = c
	return c
}
