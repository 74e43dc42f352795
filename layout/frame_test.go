package layout

import (
	"testing"

	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/selection"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() failed: %v", err)
	}
	return c
}

func selectIDs(t *testing.T, cat *catalog.Catalog, ids ...catalog.RegionID) selection.State {
	t.Helper()
	var s selection.State
	for _, id := range ids {
		var err error
		s, err = selection.Toggle(s, cat, id)
		if err != nil {
			t.Fatalf("Toggle(%q) failed: %v", id, err)
		}
	}
	return s
}

// shapeCenterUnit returns the unit cell at the center of a region's bounding box
func shapeCenterUnit(t *testing.T, f Frame, cat *catalog.Catalog, id catalog.RegionID) (int, int) {
	t.Helper()
	shape, ok := cat.Shape(id)
	if !ok {
		t.Fatalf("no shape for %q", id)
	}
	b := shape.Bounds()
	fx, fy := f.Map.FromCanvas(catalog.Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2})
	return int(fx), int(fy)
}

func TestBuildEmptyTerminal(t *testing.T) {
	cat := testCatalog(t)
	f := Build(cat, selection.State{}, Viewport{W: 80, H: 24, Metrics: Cells})

	if f.Clear != nil {
		t.Error("Clear button shown with empty selection")
	}
	if f.Panel != nil {
		t.Error("Panel shown with empty selection")
	}
	if len(f.Cards) != 0 || f.CardsTitle != nil {
		t.Error("Cards shown with empty selection")
	}
	if f.Count.Text != "0 countries selected" {
		t.Errorf("Count = %q", f.Count.Text)
	}
	if f.Title.Text != TitleText {
		t.Errorf("Title = %q", f.Title.Text)
	}

	// 2:1 canvas on 2:1 cells is 4 columns per row
	if f.Map.H <= 0 || f.Map.W != 4*f.Map.H {
		t.Errorf("Map %dx%d does not keep canvas aspect", f.Map.W, f.Map.H)
	}
	if f.Map.Y != f.Header.Bottom() {
		t.Errorf("Map starts at %d, header ends at %d", f.Map.Y, f.Header.Bottom())
	}
	if f.Footer.Y >= 24 {
		t.Errorf("Footer at row %d outside 24-row screen", f.Footer.Y)
	}
}

func TestBuildSectionsStack(t *testing.T) {
	cat := testCatalog(t)
	st := selectIDs(t, cat, "USA", "CAN", "BRA")

	for _, tc := range []struct {
		name string
		vp   Viewport
	}{
		{"terminal", Viewport{W: 100, H: 50, Metrics: Cells}},
		{"pixels", Viewport{W: 1000, H: 900, Metrics: Pixels}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := Build(cat, st, tc.vp)

			if f.Clear == nil || f.Panel == nil || f.CardsTitle == nil {
				t.Fatal("Expected clear button, panel and cards")
			}
			if f.Controls.Y < f.Map.Bottom() {
				t.Errorf("Controls overlap map")
			}
			if f.Panel.Y < f.Controls.Bottom() {
				t.Errorf("Panel overlaps controls")
			}
			if f.CardsTitle.Y < f.Panel.Bottom() {
				t.Errorf("Cards overlap panel")
			}
			for _, c := range f.Cards {
				if c.Y <= f.CardsTitle.Y {
					t.Errorf("Card %v above cards title", c.Action)
				}
				if c.Right() > tc.vp.W {
					t.Errorf("Card %v exceeds width", c.Action)
				}
			}
			if f.Footer.Y < f.Cards[len(f.Cards)-1].Bottom() {
				t.Errorf("Footer overlaps cards")
			}
			if f.Footer.Y+tc.vp.Metrics.LineH > tc.vp.H {
				t.Errorf("Footer at %d exceeds height %d", f.Footer.Y, tc.vp.H)
			}
			if f.Clear.Right() != f.Controls.Right() {
				t.Errorf("Clear button not right-aligned")
			}
		})
	}
}

func TestHitMapTogglesEveryRegion(t *testing.T) {
	cat := testCatalog(t)
	f := Build(cat, selection.State{}, Viewport{W: 200, H: 60, Metrics: Cells})

	for _, r := range cat.Regions() {
		x, y := shapeCenterUnit(t, f, cat, r.ID)
		got := f.Hit(x, y)
		if got != selection.ToggleRegion(r.ID) {
			t.Errorf("Hit at %s center (%d,%d) = %v", r.ID, x, y, got)
		}
	}

	// Canvas corner is ocean
	if got := f.Hit(f.Map.X, f.Map.Y); got.Kind != selection.KindNone {
		t.Errorf("Hit on ocean = %v", got)
	}
	// Header is inert
	if got := f.Hit(1, 1); got.Kind != selection.KindNone {
		t.Errorf("Hit on header = %v", got)
	}
}

func TestHitControls(t *testing.T) {
	cat := testCatalog(t)
	st := selectIDs(t, cat, "USA", "CAN")
	f := Build(cat, st, Viewport{W: 100, H: 50, Metrics: Cells})

	if got := f.Hit(f.Clear.X+1, f.Clear.Y+1); got.Kind != selection.KindClearAll {
		t.Errorf("Hit on clear = %v", got)
	}
	if got := f.Hit(f.Panel.Dismiss.X, f.Panel.Dismiss.Y); got.Kind != selection.KindDismiss {
		t.Errorf("Hit on dismiss = %v", got)
	}
	if got := f.Hit(f.Panel.X+1, f.Panel.Y+1); got.Kind != selection.KindNone {
		t.Errorf("Hit on panel body = %v", got)
	}
	if got := f.Hit(f.Count.X, f.Count.Y); got.Kind != selection.KindNone {
		t.Errorf("Hit on count label = %v", got)
	}

	if len(f.Cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(f.Cards))
	}
	if got := f.Hit(f.Cards[0].X+1, f.Cards[0].Y+1); got != selection.Activate("USA") {
		t.Errorf("Hit on first card = %v", got)
	}
	if !f.Cards[1].Active || f.Cards[0].Active {
		t.Error("CAN card should be the active one")
	}
}

func TestPanelContent(t *testing.T) {
	cat := testCatalog(t)
	st := selectIDs(t, cat, "USA")

	// Narrow enough to force the info text onto several lines
	f := Build(cat, st, Viewport{W: 40, H: 40, Metrics: Cells})
	if f.Panel == nil {
		t.Fatal("Panel missing")
	}
	if f.Panel.ID != "USA" || f.Panel.Name.Text != "United States" || f.Panel.Color != "#3b82f6" {
		t.Errorf("Panel = %+v", f.Panel)
	}
	if len(f.Panel.Info) < 2 {
		t.Errorf("Expected wrapped info, got %d lines", len(f.Panel.Info))
	}
	for _, l := range f.Panel.Info {
		if l.X+TextWidth(l.Text) > f.Panel.Dismiss.X {
			t.Errorf("Info line %q runs into dismiss control", l.Text)
		}
		if l.Y >= f.Panel.Bottom() {
			t.Errorf("Info line %q below panel", l.Text)
		}
	}
}

func TestCardColumns(t *testing.T) {
	cat := testCatalog(t)
	st := selectIDs(t, cat, "USA", "CAN", "MEX", "BRA")

	narrow := Build(cat, st, Viewport{W: 50, H: 60, Metrics: Cells})
	if narrow.Cards[2].Y == narrow.Cards[0].Y {
		t.Error("Narrow grid should wrap after 2 cards")
	}

	wide := Build(cat, st, Viewport{W: 120, H: 60, Metrics: Cells})
	if wide.Cards[2].Y != wide.Cards[0].Y || wide.Cards[3].Y == wide.Cards[0].Y {
		t.Error("Wide grid should hold 3 cards per row")
	}

	// Display order follows selection order
	for i, id := range []catalog.RegionID{"USA", "CAN", "MEX", "BRA"} {
		if wide.Cards[i].Action.ID != id {
			t.Errorf("Card %d = %s, want %s", i, wide.Cards[i].Action.ID, id)
		}
	}
}

func TestFillAndHover(t *testing.T) {
	cat := testCatalog(t)
	canvas := cat.Canvas()
	st := selectIDs(t, cat, "USA")

	f := Build(cat, st, Viewport{W: 80, H: 24, Metrics: Cells})
	if got := f.Fill("USA"); got != "#3b82f6" {
		t.Errorf("Fill(USA) = %s", got)
	}
	if got := f.Fill("CAN"); got != canvas.Unselected {
		t.Errorf("Fill(CAN) = %s", got)
	}

	hovered := Build(cat, st, Viewport{W: 80, H: 24, Metrics: Cells, Hover: "USA"})
	got := hovered.Fill("USA")
	if got == "#3b82f6" || got == canvas.Background {
		t.Errorf("Hovered fill = %s, expected a blend", got)
	}
	if hovered.Fill("CAN") != canvas.Unselected {
		t.Error("Hover leaked onto another region")
	}
}

func TestTinyViewportDoesNotPanic(t *testing.T) {
	cat := testCatalog(t)
	st := selectIDs(t, cat, "USA", "CAN")
	for _, sz := range [][2]int{{0, 0}, {1, 1}, {5, 3}, {20, 5}} {
		f := Build(cat, st, Viewport{W: sz[0], H: sz[1], Metrics: Cells})
		_ = f.Hit(0, 0)
		_, _ = f.RegionAt(2, 5)
	}
}
