package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultData []byte

// File layout:
//
//	[canvas]            optional, defaults to DefaultCanvas
//	[[region]]          id, name, color, info
//	[[shape]]           id, path
type catalogFile struct {
	Canvas *canvasFile   `toml:"canvas"`
	Region []regionEntry `toml:"region"`
	Shape  []shapeEntry  `toml:"shape"`
}

type canvasFile struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
	Stroke     string  `toml:"stroke"`
	Unselected string  `toml:"unselected"`
}

type regionEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
	Info  string `toml:"info"`
}

type shapeEntry struct {
	ID   string `toml:"id"`
	Path string `toml:"path"`
}

// Default returns the built-in demo catalog
func Default() (*Catalog, error) {
	c, err := Parse(defaultData)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Open loads the catalog at path, or the built-in one when path is empty
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML catalog data. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("catalog parse: unknown keys: %s", strings.Join(keys, ", "))
	}

	canvas := DefaultCanvas
	if f.Canvas != nil {
		mergeCanvas(&canvas, *f.Canvas)
	}

	regions := make([]Region, 0, len(f.Region))
	for _, r := range f.Region {
		regions = append(regions, Region{
			ID: RegionID(strings.TrimSpace(r.ID)),
			Attributes: Attributes{
				Name:  r.Name,
				Color: strings.TrimSpace(r.Color),
				Info:  r.Info,
			},
		})
	}

	shapes := make([]Shape, 0, len(f.Shape))
	for _, s := range f.Shape {
		shape, err := NewShape(RegionID(strings.TrimSpace(s.ID)), s.Path)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}

	return New(canvas, regions, shapes)
}

// mergeCanvas overrides defaults with the fields present in the file
func mergeCanvas(dst *Canvas, src canvasFile) {
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.Height != 0 {
		dst.Height = src.Height
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.Stroke != "" {
		dst.Stroke = src.Stroke
	}
	if src.Unselected != "" {
		dst.Unselected = src.Unselected
	}
}
