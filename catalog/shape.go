package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Point is a position in canvas coordinates
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned box in canvas coordinates
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Shape is a region outline: one closed polygon
type Shape struct {
	ID     RegionID
	Path   string
	Points []Point
}

// NewShape parses path into a closed polygon
func NewShape(id RegionID, path string) (Shape, error) {
	pts, err := ParsePath(path)
	if err != nil {
		return Shape{}, fmt.Errorf("shape %q: %w", id, err)
	}
	return Shape{ID: id, Path: path, Points: pts}, nil
}

// Bounds returns the shape's bounding box
func (s Shape) Bounds() Bounds {
	if len(s.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range s.Points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Contains reports whether p lies inside the polygon or on its edge.
// Uses even-odd ray casting.
func (s Shape) Contains(p Point) bool {
	n := len(s.Points)
	if n < 3 {
		return false
	}
	b := s.Bounds()
	if p.X < b.MinX || p.X > b.MaxX || p.Y < b.MinY || p.Y > b.MaxY {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, c := s.Points[i], s.Points[j]
		if onSegment(p, a, c) {
			return true
		}
		if (a.Y > p.Y) != (c.Y > p.Y) {
			xCross := (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(p, a, b Point) bool {
	const eps = 1e-9
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > eps {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// ParsePath reads an SVG-style path of a single closed subpath.
// Supported commands: M L H V Z, upper case absolute, lower case relative.
// Coordinates may be separated by commas or whitespace.
// The trailing Z is optional: a polygon is always closed back to its first
// point, whether or not the path says so.
func ParsePath(d string) ([]Point, error) {
	toks, err := tokenizePath(d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadPath)
	}
	if !toks[0].isCmd || (toks[0].cmd != 'M' && toks[0].cmd != 'm') {
		return nil, fmt.Errorf("%w: must start with M", ErrBadPath)
	}

	var (
		pts    []Point
		cur    Point
		cmd    rune
		closed bool
	)

	i := 0
	num := func() (float64, error) {
		if i >= len(toks) || toks[i].isCmd {
			return 0, fmt.Errorf("%w: command %c missing coordinate", ErrBadPath, cmd)
		}
		v := toks[i].num
		i++
		return v, nil
	}

	for i < len(toks) {
		if toks[i].isCmd {
			cmd = toks[i].cmd
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: number before command", ErrBadPath)
		}
		if closed {
			return nil, fmt.Errorf("%w: only one closed subpath is supported", ErrBadPath)
		}

		rel := unicode.IsLower(cmd)
		switch unicode.ToUpper(cmd) {
		case 'M':
			if len(pts) > 0 {
				return nil, fmt.Errorf("%w: only one subpath is supported", ErrBadPath)
			}
			x, err := num()
			if err != nil {
				return nil, err
			}
			y, err := num()
			if err != nil {
				return nil, err
			}
			cur = Point{X: x, Y: y}
			pts = append(pts, cur)
			// Implicit lineto for coordinate pairs following a moveto
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			x, err := num()
			if err != nil {
				return nil, err
			}
			y, err := num()
			if err != nil {
				return nil, err
			}
			if rel {
				cur = Point{X: cur.X + x, Y: cur.Y + y}
			} else {
				cur = Point{X: x, Y: y}
			}
			pts = append(pts, cur)
		case 'H':
			x, err := num()
			if err != nil {
				return nil, err
			}
			if rel {
				cur.X += x
			} else {
				cur.X = x
			}
			pts = append(pts, cur)
		case 'V':
			y, err := num()
			if err != nil {
				return nil, err
			}
			if rel {
				cur.Y += y
			} else {
				cur.Y = y
			}
			pts = append(pts, cur)
		case 'Z':
			closed = true
		default:
			return nil, fmt.Errorf("%w: unsupported command %c", ErrBadPath, cmd)
		}
	}

	// Closing point duplicates the first
	if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: fewer than 3 points", ErrBadPath)
	}
	return pts, nil
}

type pathToken struct {
	isCmd bool
	cmd   rune
	num   float64
}

func tokenizePath(d string) ([]pathToken, error) {
	var toks []pathToken
	rs := []rune(d)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r) || r == ',':
			i++
		case strings.ContainsRune("MmLlHhVvZz", r):
			toks = append(toks, pathToken{isCmd: true, cmd: r})
			i++
		case r == '-' || r == '+' || r == '.' || unicode.IsDigit(r):
			j := scanNumber(rs, i)
			v, err := strconv.ParseFloat(string(rs[i:j]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: number %q", ErrBadPath, string(rs[i:j]))
			}
			toks = append(toks, pathToken{num: v})
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrBadPath, r, i)
		}
	}
	return toks, nil
}

// scanNumber returns the end index of the number starting at i.
// A sign only begins a number at its first rune or after an exponent marker.
// The exponent is an integer, so a dot after it starts the next number
// ("1e5.5" is 1e5 then .5).
func scanNumber(rs []rune, i int) int {
	j := i
	if rs[j] == '-' || rs[j] == '+' {
		j++
	}
	seenDot, seenExp := false, false
	for j < len(rs) {
		r := rs[j]
		switch {
		case unicode.IsDigit(r):
			j++
		case r == '.' && !seenDot:
			seenDot = true
			j++
		case (r == 'e' || r == 'E') && !seenExp && j+1 < len(rs):
			k := j + 1
			if rs[k] == '-' || rs[k] == '+' {
				k++
			}
			if k < len(rs) && unicode.IsDigit(rs[k]) {
				j = k
				seenDot, seenExp = true, true
				continue
			}
			return j
		default:
			return j
		}
	}
	return j
}
