package layout

import "github.com/lixenwraith/worldmap/catalog"

// MapView maps the catalog canvas onto a rectangle of units
type MapView struct {
	Rect
	cat    *catalog.Catalog
	canvas catalog.Canvas
}

// ToCanvas converts a unit position (fractional, absolute) to canvas coordinates
func (m MapView) ToCanvas(fx, fy float64) catalog.Point {
	if m.W <= 0 || m.H <= 0 {
		return catalog.Point{}
	}
	return catalog.Point{
		X: (fx - float64(m.X)) * m.canvas.Width / float64(m.W),
		Y: (fy - float64(m.Y)) * m.canvas.Height / float64(m.H),
	}
}

// FromCanvas converts canvas coordinates to an absolute unit position
func (m MapView) FromCanvas(p catalog.Point) (fx, fy float64) {
	if m.canvas.Width <= 0 || m.canvas.Height <= 0 {
		return float64(m.X), float64(m.Y)
	}
	fx = float64(m.X) + p.X*float64(m.W)/m.canvas.Width
	fy = float64(m.Y) + p.Y*float64(m.H)/m.canvas.Height
	return fx, fy
}

// RegionAtPoint returns the topmost shape at a fractional unit position
func (m MapView) RegionAtPoint(fx, fy float64) (catalog.RegionID, bool) {
	if m.cat == nil {
		return catalog.None, false
	}
	if fx < float64(m.X) || fy < float64(m.Y) || fx >= float64(m.Right()) || fy >= float64(m.Bottom()) {
		return catalog.None, false
	}
	return m.cat.ShapeAt(m.ToCanvas(fx, fy))
}

// RegionAt returns the shape covering unit (x, y).
// The unit center is sampled first, then its upper and lower halves, so thin
// shapes that only cover part of a tall terminal cell remain clickable.
func (m MapView) RegionAt(x, y int) (catalog.RegionID, bool) {
	if !m.Contains(x, y) {
		return catalog.None, false
	}
	fx := float64(x) + 0.5
	for _, dy := range [...]float64{0.5, 0.25, 0.75} {
		if id, ok := m.RegionAtPoint(fx, float64(y)+dy); ok {
			return id, true
		}
	}
	return catalog.None, false
}
