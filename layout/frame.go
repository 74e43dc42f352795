// Package layout places the map screen's sections and resolves clicks to actions.
//
// Coordinates are abstract units: terminal cells for the tcell frontend, pixels for
// the ebiten one. Metrics bridge the two, so both frontends share one layout and
// one hit test.
package layout

import (
	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/selection"
)

const (
	TitleText      = "Interactive World Map"
	SubtitleText   = "Click on countries to select them and view information"
	ClearText      = "x Clear All"
	DismissText    = "x"
	CardsTitleText = "Selected Countries"
	FooterText     = "This is a demo with simplified country shapes. Replace with actual map data for production use."

	// Content width in columns at which the card grid switches from 2 to 3 columns
	wideColumns = 72

	// Fraction a hovered shape fades toward the canvas background
	hoverFade = 0.2
)

// Metrics describe the unit grid of a frontend
type Metrics struct {
	CharW  int     // Width of one text column
	LineH  int     // Height of one text line
	Pad    int     // Inset inside boxes
	Gap    int     // Vertical gap between sections
	Aspect float64 // Displayed height/width ratio of one unit
}

// Cells are terminal metrics: one unit per character, cells about twice as tall as wide
var Cells = Metrics{CharW: 1, LineH: 1, Pad: 1, Gap: 0, Aspect: 2}

// Pixels are desktop metrics sized for a 7x13 bitmap font
var Pixels = Metrics{CharW: 7, LineH: 16, Pad: 8, Gap: 12, Aspect: 1}

// Rect is an axis-aligned box in units
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Label is a single line of text anchored at its top-left
type Label struct {
	X, Y int
	Text string
}

// Button is a clickable box
type Button struct {
	Rect
	Label  Label
	Action selection.Action
}

// Panel is the active region's detail box
type Panel struct {
	Rect
	ID      catalog.RegionID
	Color   string
	Swatch  Rect
	Name    Label
	Info    []Label
	Dismiss Button
}

// Card is one entry of the selected regions grid
type Card struct {
	Button
	Color  string
	Swatch Rect
	Active bool
}

// Viewport is the drawable area and pointer context for one frame
type Viewport struct {
	W, H    int
	Metrics Metrics
	Hover   catalog.RegionID
}

// Frame is the complete placement of one render pass
type Frame struct {
	Viewport

	Header   Rect
	Title    Label
	Subtitle Label

	Map MapView

	Controls Rect
	Count    Label
	Clear    *Button // nil when nothing is selected

	Panel *Panel // nil when no region is active

	CardsTitle *Label
	Cards      []Card

	Footer Label

	state  selection.State
	canvas catalog.Canvas
}

// Build lays out the screen for state st
func Build(cat *catalog.Catalog, st selection.State, vp Viewport) Frame {
	m := vp.Metrics
	canvas := cat.Canvas()

	f := Frame{Viewport: vp, state: st, canvas: canvas}

	padX := m.Pad + m.CharW
	cx := padX
	cw := vp.W - 2*padX
	if cw < m.CharW {
		cw = m.CharW
	}

	f.Header = Rect{X: 0, Y: 0, W: vp.W, H: 2*m.LineH + 2*m.Pad}
	f.Title = Label{X: padX, Y: m.Pad, Text: Truncate(TitleText, cw/m.CharW)}
	f.Subtitle = Label{X: padX, Y: m.Pad + m.LineH, Text: Truncate(SubtitleText, cw/m.CharW)}
	y := f.Header.Bottom() + m.Gap

	// Measure fixed sections so the map receives what is left
	controlsH := m.LineH + 2*m.Pad
	below := m.Gap + controlsH

	entry, hasPanel := st.Panel()
	if hasPanel {
		below += m.Gap + buildPanel(entry, cx, 0, cw, m).H
	}
	selected := st.Selected()
	if len(selected) > 0 {
		_, h := buildCards(selected, catalog.None, cx, 0, cw, m)
		below += m.Gap + m.LineH + h
	}
	below += m.Gap + m.LineH

	f.Map = placeMap(cat, cx, y, cw, vp.H-y-below, m)
	y = f.Map.Bottom() + m.Gap

	f.Controls = Rect{X: cx, Y: y, W: cw, H: controlsH}
	f.Count = Label{X: cx, Y: y + m.Pad, Text: st.CountLabel()}
	if st.Count() > 0 {
		bw := (TextWidth(ClearText)+2)*m.CharW + 2*m.Pad
		bx := cx + cw - bw
		f.Clear = &Button{
			Rect:   Rect{X: bx, Y: y, W: bw, H: controlsH},
			Label:  Label{X: bx + m.Pad + m.CharW, Y: y + m.Pad, Text: ClearText},
			Action: selection.Clear(),
		}
	}
	y = f.Controls.Bottom()

	if hasPanel {
		y += m.Gap
		p := buildPanel(entry, cx, y, cw, m)
		f.Panel = &p
		y = p.Bottom()
	}

	if len(selected) > 0 {
		y += m.Gap
		f.CardsTitle = &Label{X: cx, Y: y, Text: CardsTitleText}
		y += m.LineH
		active, _ := st.Active()
		var h int
		f.Cards, h = buildCards(selected, active, cx, y, cw, m)
		y += h
	}

	y += m.Gap
	f.Footer = Label{X: cx, Y: y, Text: Truncate(FooterText, cw/m.CharW)}

	return f
}

func placeMap(cat *catalog.Catalog, x, y, w, avail int, m Metrics) MapView {
	canvas := cat.Canvas()
	ratio := canvas.Height / canvas.Width

	mw := w
	mh := int(float64(mw)*ratio/m.Aspect + 0.5)

	minH := 3 * m.LineH
	if avail < minH {
		avail = minH
	}
	if mh > avail {
		mh = avail
		mw = int(float64(mh)*m.Aspect/ratio + 0.5)
		if mw > w {
			mw = w
		}
	}

	return MapView{
		Rect:   Rect{X: x + (w-mw)/2, Y: y, W: mw, H: mh},
		cat:    cat,
		canvas: canvas,
	}
}

func buildPanel(e selection.Entry, x, y, w int, m Metrics) Panel {
	swatch := Rect{X: x + m.Pad + m.CharW, Y: y + m.Pad, W: 4 * m.CharW, H: 2 * m.LineH}
	textX := swatch.Right() + 2*m.CharW

	dw := (TextWidth(DismissText) + 2) * m.CharW
	dismiss := Rect{X: x + w - m.Pad - m.CharW - dw, Y: y + m.Pad, W: dw, H: m.LineH}

	cols := (dismiss.X - m.CharW - textX) / m.CharW
	if cols < 1 {
		cols = 1
	}

	p := Panel{
		ID:     e.ID,
		Color:  e.Color,
		Swatch: swatch,
		Name:   Label{X: textX, Y: y + m.Pad, Text: Truncate(e.Name, cols)},
		Dismiss: Button{
			Rect:   dismiss,
			Label:  Label{X: dismiss.X + m.CharW, Y: dismiss.Y, Text: DismissText},
			Action: selection.Dismiss(),
		},
	}
	for i, line := range Wrap(e.Info, cols) {
		p.Info = append(p.Info, Label{X: textX, Y: y + m.Pad + (i+1)*m.LineH, Text: line})
	}

	inner := m.LineH * (1 + len(p.Info))
	if swatch.H > inner {
		inner = swatch.H
	}
	p.Rect = Rect{X: x, Y: y, W: w, H: inner + 2*m.Pad}
	return p
}

// buildCards lays out the selection grid and returns its height
func buildCards(entries []selection.Entry, active catalog.RegionID, x, y, w int, m Metrics) ([]Card, int) {
	if len(entries) == 0 {
		return nil, 0
	}

	cols := 2
	if w >= wideColumns*m.CharW {
		cols = 3
	}
	colGap := 2 * m.CharW
	cardW := (w - (cols-1)*colGap) / cols
	cardH := m.LineH + 2*m.Pad

	cards := make([]Card, 0, len(entries))
	for i, e := range entries {
		row, col := i/cols, i%cols
		r := Rect{X: x + col*(cardW+colGap), Y: y + row*(cardH+m.Gap), W: cardW, H: cardH}
		swatch := Rect{X: r.X + m.Pad + m.CharW, Y: r.Y + m.Pad, W: 2 * m.CharW, H: m.LineH}
		lx := swatch.Right() + m.CharW
		textCols := (r.Right() - m.Pad - m.CharW - lx) / m.CharW

		cards = append(cards, Card{
			Button: Button{
				Rect:   r,
				Label:  Label{X: lx, Y: r.Y + m.Pad, Text: Truncate(e.Name, textCols)},
				Action: selection.Activate(e.ID),
			},
			Color:  e.Color,
			Swatch: swatch,
			Active: e.ID == active,
		})
	}

	rows := (len(entries) + cols - 1) / cols
	return cards, rows*cardH + (rows-1)*m.Gap
}

// State returns the selection state the frame was built from
func (f Frame) State() selection.State {
	return f.state
}

// Canvas returns the catalog canvas the map is drawn in
func (f Frame) Canvas() catalog.Canvas {
	return f.canvas
}

// Fill returns the fill color of a region shape, faded when hovered
func (f Frame) Fill(id catalog.RegionID) string {
	c := f.state.FillColor(id, f.canvas.Unselected)
	if !f.Hover.IsNone() && id == f.Hover {
		return catalog.Blend(c, f.canvas.Background, hoverFade)
	}
	return c
}

// RegionAt returns the region drawn at unit (x, y)
func (f Frame) RegionAt(x, y int) (catalog.RegionID, bool) {
	return f.Map.RegionAt(x, y)
}

// Hit resolves a click at (x, y) to an action; the zero Action when nothing is hit
func (f Frame) Hit(x, y int) selection.Action {
	if f.Panel != nil && f.Panel.Dismiss.Contains(x, y) {
		return f.Panel.Dismiss.Action
	}
	if f.Clear != nil && f.Clear.Contains(x, y) {
		return f.Clear.Action
	}
	for _, c := range f.Cards {
		if c.Contains(x, y) {
			return c.Action
		}
	}
	if id, ok := f.Map.RegionAt(x, y); ok {
		return selection.ToggleRegion(id)
	}
	return selection.Action{}
}
