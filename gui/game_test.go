package gui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/layout"
	"github.com/lixenwraith/worldmap/selection"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() failed: %v", err)
	}
	return New(cat, selection.NewController(cat), opts...)
}

func regionCenter(t *testing.T, g *Game, id catalog.RegionID) (int, int) {
	t.Helper()
	shape, _ := g.cat.Shape(id)
	b := shape.Bounds()
	fx, fy := g.Frame().Map.FromCanvas(catalog.Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2})
	return int(fx), int(fy)
}

func TestLayoutTracksWindow(t *testing.T) {
	g := newTestGame(t)
	if g.Frame().Metrics != layout.Pixels {
		t.Errorf("Metrics = %+v", g.Frame().Metrics)
	}

	w, h := g.Layout(1200, 800)
	if w != 1200 || h != 800 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if g.Frame().W != 1200 || g.Frame().H != 800 {
		t.Errorf("Frame not rebuilt for new size: %dx%d", g.Frame().W, g.Frame().H)
	}
}

func TestClickSelectsAndShowsPanel(t *testing.T) {
	g := newTestGame(t)
	x, y := regionCenter(t, g, "FRA")

	g.click(x, y)
	if !g.ctrl.State().IsSelected("FRA") {
		t.Fatal("FRA not selected")
	}
	if g.Frame().Panel == nil || g.Frame().Panel.ID != "FRA" {
		t.Fatal("Panel does not show FRA")
	}

	p := g.Frame().Panel
	g.click(p.Dismiss.X+1, p.Dismiss.Y+1)
	if _, ok := g.ctrl.State().Active(); ok {
		t.Error("Dismiss left an active region")
	}

	g.click(g.Frame().Clear.X+1, g.Frame().Clear.Y+1)
	if g.ctrl.State().Count() != 0 {
		t.Error("Clear All left regions selected")
	}
}

func TestHoverFadesShape(t *testing.T) {
	g := newTestGame(t)
	x, y := regionCenter(t, g, "CHN")

	before := g.Frame().Fill("CHN")
	g.pointer(x, y)
	if g.hover != "CHN" {
		t.Fatalf("Hover = %q", g.hover)
	}
	if g.Frame().Fill("CHN") == before {
		t.Error("Hovered fill unchanged")
	}

	g.pointer(0, 0)
	if g.Frame().Fill("CHN") != before {
		t.Error("Fill not restored after leaving")
	}
}

func TestKeys(t *testing.T) {
	var copied string
	var buf bytes.Buffer
	g := newTestGame(t,
		WithLogger(log.New(&buf, "", 0)),
		WithClipboard(func(s string) error { copied = s; return nil }),
	)
	_ = g.ctrl.ToggleRegion("DEU")

	g.handleKey(ebiten.KeyY)
	if !strings.HasPrefix(copied, "Germany: ") {
		t.Errorf("Copied %q", copied)
	}
	if g.status != "Copied Germany" {
		t.Errorf("Status = %q", g.status)
	}

	g.handleKey(ebiten.KeyEscape)
	if g.Frame().Panel != nil {
		t.Error("Escape did not dismiss the panel")
	}
	g.handleKey(ebiten.KeyC)
	if g.ctrl.State().Count() != 0 || g.Frame().Clear != nil {
		t.Error("C did not clear")
	}
	if g.handleKey(ebiten.KeyQ) {
		t.Error("Q did not quit")
	}

	g.dispatch(selection.Activate("DEU"))
	if !strings.Contains(buf.String(), "rejected") {
		t.Errorf("Rejection not logged: %q", buf.String())
	}
}
