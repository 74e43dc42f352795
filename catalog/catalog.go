// Package catalog holds the static region and geometry tables the map is drawn from.
//
// Both tables are keyed by RegionID and are immutable once built. A region is
// interactive only when it appears in both.
package catalog

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrInconsistent  = errors.New("catalog inconsistency")
	ErrDuplicate     = errors.New("duplicate region id")
	ErrBadPath       = errors.New("bad shape path")
	ErrBadColor      = errors.New("bad color")
	ErrBadCanvas     = errors.New("canvas size must be finite and positive")
)

// RegionID identifies a region in both tables. The empty ID means "none".
type RegionID string

// None is the absent region
const None RegionID = ""

// IsNone reports whether id is the empty ID
func (id RegionID) IsNone() bool {
	return id == None
}

// Attributes are the display attributes of a region
type Attributes struct {
	Name  string
	Color string // #rrggbb
	Info  string
}

// Region pairs an ID with its attributes, used where file order matters
type Region struct {
	ID RegionID
	Attributes
}

// Canvas describes the coordinate space shapes are drawn in
type Canvas struct {
	Width      float64
	Height     float64
	Background string
	Stroke     string
	Unselected string
}

// DefaultCanvas matches the demo data's 700x350 view box
var DefaultCanvas = Canvas{
	Width:      700,
	Height:     350,
	Background: "#e0f2fe",
	Stroke:     "#64748b",
	Unselected: "#cbd5e1",
}

// Catalog is the immutable pair of region and geometry tables
type Catalog struct {
	canvas    Canvas
	regions   []Region
	regionIdx map[RegionID]int
	shapes    []Shape
	shapeIdx  map[RegionID]int
}

// New builds a catalog, rejecting duplicate IDs and malformed colors.
// Shapes must already be parsed (see NewShape).
// Cross-table consistency is not checked here, see Validate.
func New(canvas Canvas, regions []Region, shapes []Shape) (*Catalog, error) {
	if !validSize(canvas.Width) || !validSize(canvas.Height) {
		return nil, fmt.Errorf("canvas %gx%g: %w", canvas.Width, canvas.Height, ErrBadCanvas)
	}
	for _, c := range []string{canvas.Background, canvas.Stroke, canvas.Unselected} {
		if _, err := ParseColor(c); err != nil {
			return nil, fmt.Errorf("canvas: %w", err)
		}
	}

	c := &Catalog{
		canvas:    canvas,
		regions:   make([]Region, 0, len(regions)),
		regionIdx: make(map[RegionID]int, len(regions)),
		shapes:    make([]Shape, 0, len(shapes)),
		shapeIdx:  make(map[RegionID]int, len(shapes)),
	}

	for _, r := range regions {
		if r.ID.IsNone() {
			return nil, fmt.Errorf("region %q: empty id", r.Name)
		}
		if _, dup := c.regionIdx[r.ID]; dup {
			return nil, fmt.Errorf("region %q: %w", r.ID, ErrDuplicate)
		}
		if _, err := ParseColor(r.Color); err != nil {
			return nil, fmt.Errorf("region %q: %w", r.ID, err)
		}
		c.regionIdx[r.ID] = len(c.regions)
		c.regions = append(c.regions, r)
	}

	for _, s := range shapes {
		if s.ID.IsNone() {
			return nil, fmt.Errorf("shape %q: empty id", s.Path)
		}
		if _, dup := c.shapeIdx[s.ID]; dup {
			return nil, fmt.Errorf("shape %q: %w", s.ID, ErrDuplicate)
		}
		if len(s.Points) < 3 {
			return nil, fmt.Errorf("shape %q: %w: fewer than 3 points", s.ID, ErrBadPath)
		}
		c.shapeIdx[s.ID] = len(c.shapes)
		c.shapes = append(c.shapes, s)
	}

	return c, nil
}

// validSize rejects zero, negative, NaN and infinite sizes
func validSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Lookup returns the attributes for id
func (c *Catalog) Lookup(id RegionID) (Attributes, bool) {
	i, ok := c.regionIdx[id]
	if !ok {
		return Attributes{}, false
	}
	return c.regions[i].Attributes, true
}

// Shape returns the outline for id
func (c *Catalog) Shape(id RegionID) (Shape, bool) {
	i, ok := c.shapeIdx[id]
	if !ok {
		return Shape{}, false
	}
	return c.shapes[i], true
}

// Interactive reports whether id has both attributes and a shape
func (c *Catalog) Interactive(id RegionID) bool {
	_, a := c.regionIdx[id]
	_, s := c.shapeIdx[id]
	return a && s
}

// Regions returns regions in file order
func (c *Catalog) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// Shapes returns shapes in draw order, later shapes paint over earlier ones
func (c *Catalog) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

func (c *Catalog) Canvas() Canvas {
	return c.canvas
}

// ShapeAt returns the topmost interactive shape containing p.
// Shapes without a region entry are skipped so they never hide one below.
func (c *Catalog) ShapeAt(p Point) (RegionID, bool) {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if _, ok := c.regionIdx[c.shapes[i].ID]; !ok {
			continue
		}
		if c.shapes[i].Contains(p) {
			return c.shapes[i].ID, true
		}
	}
	return None, false
}

// Validate checks that both tables are keyed consistently.
// Every problem is reported, joined, each wrapping ErrInconsistent.
func (c *Catalog) Validate() error {
	var errs []error
	for _, s := range c.shapes {
		if _, ok := c.regionIdx[s.ID]; !ok {
			errs = append(errs, fmt.Errorf("%w: shape %q has no region entry", ErrInconsistent, s.ID))
		}
	}
	for _, r := range c.regions {
		if _, ok := c.shapeIdx[r.ID]; !ok {
			errs = append(errs, fmt.Errorf("%w: region %q has no shape", ErrInconsistent, r.ID))
		}
	}
	return errors.Join(errs...)
}
