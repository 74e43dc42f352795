package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/worldmap/layout"
)

// Rounded box characters: top-left, horizontal, top-right, vertical, bottom-left, bottom-right
var boxChars = [6]rune{'╭', '─', '╮', '│', '╰', '╯'}

// Draw lays out the current state and paints the whole screen
func (a *App) Draw() {
	w, h := a.screen.Size()
	a.frame = layout.Build(a.cat, a.ctrl.State(), layout.Viewport{
		W:       w,
		H:       h,
		Metrics: layout.Cells,
		Hover:   a.hover,
	})
	f := a.frame
	th := a.theme

	a.fill(layout.Rect{W: w, H: h}, th.PageBg)

	// Header
	a.fill(f.Header, th.HeaderBg)
	a.text(f.Title, th.HeaderFg, th.HeaderBg, tcell.AttrBold)
	a.text(f.Subtitle, th.SubtitleFg, th.HeaderBg, tcell.AttrNone)

	a.drawMap(f)

	// Count and clear row
	a.text(f.Count, th.Dim, th.PageBg, tcell.AttrNone)
	if f.Clear != nil {
		a.box(f.Clear.Rect, th.ButtonBg, th.ButtonBg)
		a.text(f.Clear.Label, th.ButtonFg, th.ButtonBg, tcell.AttrBold)
	}

	if p := f.Panel; p != nil {
		a.box(p.Rect, th.Border, th.SurfaceBg)
		for y := p.Y; y < p.Bottom(); y++ {
			a.cell(p.X, y, '┃', th.Accent, th.SurfaceBg)
		}
		a.fill(p.Swatch, a.color(p.Color))
		a.text(p.Name, th.Fg, th.SurfaceBg, tcell.AttrBold)
		for _, l := range p.Info {
			a.text(l, th.Dim, th.SurfaceBg, tcell.AttrNone)
		}
		a.cell(p.Dismiss.X, p.Dismiss.Y, '[', th.Dim, th.SurfaceBg)
		a.text(p.Dismiss.Label, th.Fg, th.SurfaceBg, tcell.AttrBold)
		a.cell(p.Dismiss.Right()-1, p.Dismiss.Y, ']', th.Dim, th.SurfaceBg)
	}

	if f.CardsTitle != nil {
		a.text(*f.CardsTitle, th.Fg, th.PageBg, tcell.AttrBold)
	}
	for _, c := range f.Cards {
		border := th.Border
		if c.Active {
			border = th.Accent
		}
		a.box(c.Rect, border, th.SurfaceBg)
		a.fill(c.Swatch, a.color(c.Color))
		a.text(c.Label, th.Fg, th.SurfaceBg, tcell.AttrNone)
	}

	if a.status != "" {
		a.text(layout.Label{X: f.Footer.X, Y: f.Footer.Y, Text: layout.Truncate(a.status, w-f.Footer.X)},
			th.Accent, th.PageBg, tcell.AttrBold)
	} else {
		a.text(f.Footer, th.Dim, th.PageBg, tcell.AttrDim)
	}

	a.screen.Show()
}

// drawMap paints each map cell as two stacked half blocks, top half in the
// foreground and bottom half in the background, doubling vertical resolution.
func (a *App) drawMap(f layout.Frame) {
	m := f.Map
	bg := a.color(f.Canvas().Background)

	sample := func(fx, fy float64) tcell.Color {
		id, ok := m.RegionAtPoint(fx, fy)
		if !ok {
			return bg
		}
		return a.color(f.Fill(id))
	}

	for y := m.Y; y < m.Bottom(); y++ {
		for x := m.X; x < m.Right(); x++ {
			fx := float64(x) + 0.5
			top := sample(fx, float64(y)+0.25)
			bottom := sample(fx, float64(y)+0.75)
			a.screen.SetContent(x, y, '▀', nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func (a *App) cell(x, y int, r rune, fg, bg tcell.Color) {
	a.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (a *App) fill(r layout.Rect, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// box draws a rounded border and fills the interior
func (a *App) box(r layout.Rect, fg, bg tcell.Color) {
	if r.W < 2 || r.H < 2 {
		a.fill(r, bg)
		return
	}
	a.fill(layout.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, bg)

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		a.cell(x, r.Y, boxChars[1], fg, bg)
		a.cell(x, bottom, boxChars[1], fg, bg)
	}
	for y := r.Y + 1; y < bottom; y++ {
		a.cell(r.X, y, boxChars[3], fg, bg)
		a.cell(right, y, boxChars[3], fg, bg)
	}
	a.cell(r.X, r.Y, boxChars[0], fg, bg)
	a.cell(right, r.Y, boxChars[2], fg, bg)
	a.cell(r.X, bottom, boxChars[4], fg, bg)
	a.cell(right, bottom, boxChars[5], fg, bg)
}

// text writes a label, advancing by each rune's display width
func (a *App) text(l layout.Label, fg, bg tcell.Color, attr tcell.AttrMask) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attr)
	x := l.X
	for _, r := range l.Text {
		a.screen.SetContent(x, l.Y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
