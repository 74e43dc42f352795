package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/worldmap/catalog"
	"github.com/lixenwraith/worldmap/layout"
)

var face = basicfont.Face7x13

// Draw paints the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	f := g.frame
	th := g.theme

	screen.Fill(th.PageBg)

	fillRect(screen, f.Header, th.HeaderBg)
	g.label(screen, f.Title, th.HeaderFg)
	g.label(screen, f.Subtitle, th.SubtitleFg)

	g.drawMap(screen, f)

	g.label(screen, f.Count, th.Dim)
	if f.Clear != nil {
		fillRect(screen, f.Clear.Rect, th.ButtonBg)
		g.label(screen, f.Clear.Label, th.ButtonFg)
	}

	if p := f.Panel; p != nil {
		fillRect(screen, p.Rect, th.SurfaceBg)
		strokeRect(screen, p.Rect, th.Border)
		fillRect(screen, layout.Rect{X: p.X, Y: p.Y, W: 4, H: p.H}, th.Accent)
		fillRect(screen, p.Swatch, g.color(p.Color))
		g.label(screen, p.Name, th.Fg)
		for _, l := range p.Info {
			g.label(screen, l, th.Dim)
		}
		strokeRect(screen, p.Dismiss.Rect, th.Border)
		g.label(screen, p.Dismiss.Label, th.Fg)
	}

	if f.CardsTitle != nil {
		g.label(screen, *f.CardsTitle, th.Fg)
	}
	for _, c := range f.Cards {
		border := th.Border
		if c.Active {
			border = th.Accent
		}
		fillRect(screen, c.Rect, th.SurfaceBg)
		strokeRect(screen, c.Rect, border)
		fillRect(screen, c.Swatch, g.color(c.Color))
		g.label(screen, c.Label, th.Fg)
	}

	if g.status != "" {
		cols := (f.W - f.Footer.X) / f.Metrics.CharW
		g.label(screen, layout.Label{X: f.Footer.X, Y: f.Footer.Y, Text: layout.Truncate(g.status, cols)}, th.Accent)
	} else {
		g.label(screen, f.Footer, th.Dim)
	}
}

// drawMap fills every shape in catalog order, later shapes on top, then strokes its outline
func (g *Game) drawMap(screen *ebiten.Image, f layout.Frame) {
	m := f.Map
	canvas := f.Canvas()
	fillRect(screen, m.Rect, g.color(canvas.Background))
	stroke := g.color(canvas.Stroke)

	for _, s := range g.cat.Shapes() {
		path := g.shapePath(m, s)

		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		paintVertices(vs, g.color(f.Fill(s.ID)))
		screen.DrawTriangles(vs, is, g.white, &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true})

		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1, LineJoin: vector.LineJoinRound})
		paintVertices(vs, stroke)
		screen.DrawTriangles(vs, is, g.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

func (g *Game) shapePath(m layout.MapView, s catalog.Shape) *vector.Path {
	var path vector.Path
	for i, p := range s.Points {
		x, y := m.FromCanvas(p)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return &path
}

func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
}

// label draws one line of text; the layout's Y is the top of the line box
func (g *Game) label(screen *ebiten.Image, l layout.Label, c color.Color) {
	if l.Text == "" {
		return
	}
	lineH := g.frame.Metrics.LineH
	baseline := l.Y + (lineH-face.Height)/2 + face.Ascent
	text.Draw(screen, l.Text, face, l.X, baseline, c)
}

func fillRect(dst *ebiten.Image, r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.StrokeRect(dst, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, c, false)
}
