// Package gui is the desktop frontend, an ebiten game drawing the same layout as the terminal.
package gui

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/layout"
	"github.com/lixenwraith/worldmap/selection"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 900
)

// Game implements ebiten.Game for one map
type Game struct {
	cat      *catalog.Catalog
	ctrl     *selection.Controller
	theme    Theme
	logger   *log.Logger
	copyText func(string) error

	width, height int
	frame         layout.Frame
	hover         catalog.RegionID
	status        string
	colors        map[string]color.RGBA

	// Drawing resources, created on first Draw
	white *ebiten.Image
}

// Option configures a Game
type Option func(*Game)

func WithTheme(t Theme) Option {
	return func(g *Game) { g.theme = t }
}

func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClipboard sets the text copy function used by the copy key
func WithClipboard(fn func(string) error) Option {
	return func(g *Game) { g.copyText = fn }
}

// New creates a game at the default window size
func New(cat *catalog.Catalog, ctrl *selection.Controller, opts ...Option) *Game {
	g := &Game{
		cat:    cat,
		ctrl:   ctrl,
		theme:  DefaultTheme,
		logger: log.New(io.Discard, "", 0),
		width:  DefaultWidth,
		height: DefaultHeight,
		colors: make(map[string]color.RGBA),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.relayout()
	return g
}

// Update reads input once per tick
func (g *Game) Update() error {
	mx, my := ebiten.CursorPosition()
	g.pointer(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(mx, my)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if !g.handleKey(k) {
			return ebiten.Termination
		}
	}
	return nil
}

// Layout follows the window size one to one
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.relayout()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) relayout() {
	g.frame = layout.Build(g.cat, g.ctrl.State(), layout.Viewport{
		W:       g.width,
		H:       g.height,
		Metrics: layout.Pixels,
		Hover:   g.hover,
	})
}

// pointer updates hover, relaying out only when it changes
func (g *Game) pointer(x, y int) {
	id, _ := g.frame.RegionAt(x, y)
	if id != g.hover {
		g.hover = id
		g.relayout()
	}
}

func (g *Game) click(x, y int) {
	g.dispatch(g.frame.Hit(x, y))
}

// handleKey applies a key press, returning false to quit
func (g *Game) handleKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyQ:
		return false
	case ebiten.KeyC:
		g.dispatch(selection.Clear())
	case ebiten.KeyEscape:
		g.dispatch(selection.Dismiss())
	case ebiten.KeyY:
		g.copyActive()
		g.relayout()
	}
	return true
}

func (g *Game) dispatch(act selection.Action) {
	if act.Kind == selection.KindNone {
		return
	}
	g.status = ""
	if err := g.ctrl.Dispatch(act); err != nil {
		g.logger.Printf("%s rejected: %v", act, err)
	}
	g.relayout()
}

func (g *Game) copyActive() {
	entry, ok := g.ctrl.State().Panel()
	switch {
	case !ok:
		g.status = "No active country to copy"
	case g.copyText == nil:
		g.status = "Clipboard unavailable"
	default:
		if err := g.copyText(entry.Name + ": " + entry.Info); err != nil {
			g.logger.Printf("clipboard write failed: %v", err)
			g.status = "Copy failed"
			return
		}
		g.status = "Copied " + entry.Name
	}
}

// Frame returns the current layout
func (g *Game) Frame() layout.Frame {
	return g.frame
}

func (g *Game) color(hex string) color.RGBA {
	if c, ok := g.colors[hex]; ok {
		return c
	}
	c := hexColor(hex)
	g.colors[hex] = c
	return c
}
