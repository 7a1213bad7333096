package mesh

import "github.com/lucasb-eyer/go-colorful"

// defaultHexPalette is the built-in material color cycle. Entry 0 is the
// fallback for untyped or unknown materials.
var defaultHexPalette = []string{
	"#9AA0A6", // fallback gray
	"#7F8C8D", // stone
	"#2ECC71", // grass
	"#8E5A2D", // dirt
	"#3498DB", // water
	"#F1C40F", // sand
	"#ECF0F1", // snow
	"#E74C3C", // lava
}

// Palette maps material identifiers onto a fixed color cycle. Identifiers
// that name no entry resolve to the fallback first entry, so meshing
// never fails on an unknown material.
type Palette struct {
	colors []RGB
}

// NewPalette parses hex color strings into a palette, skipping
// unparseable entries. An empty result falls back to a single gray.
func NewPalette(hex []string) *Palette {
	colors := make([]RGB, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		colors = append(colors, RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)})
	}
	if len(colors) == 0 {
		colors = []RGB{{R: .5, G: .5, B: .5}}
	}
	return &Palette{colors: colors}
}

// DefaultPalette returns the built-in color cycle.
func DefaultPalette() *Palette {
	return NewPalette(defaultHexPalette)
}

// Color resolves a material identifier. Material 0 and negative
// identifiers take the fallback entry; others cycle through the rest.
func (p *Palette) Color(material int) RGB {
	if material <= 0 || len(p.colors) == 1 {
		return p.colors[0]
	}
	return p.colors[1+(material-1)%(len(p.colors)-1)]
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.colors)
}
