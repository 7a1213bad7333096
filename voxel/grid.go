package voxel

// GridView is a read-only, grid-shaped view over a voxel source. Extents
// are in cells; sampling outside them returns zero. Implementations are
// expected to be cheap to sample repeatedly.
type GridView interface {
	SizeX() int
	SizeY() int
	SizeZ() int
	Density(x, y, z int) float64
	Material(x, y, z int) int
}

// DenseGrid is a GridView backed by a flat slice, for sources that are
// naturally grid shaped. The zero value is an empty grid; use
// NewDenseGrid for anything useful.
type DenseGrid struct {
	sx, sy, sz int
	cells      []Sample
}

var _ GridView = (*DenseGrid)(nil)

// NewDenseGrid returns a zeroed grid with the given extents. Negative
// extents collapse to zero.
func NewDenseGrid(sx, sy, sz int) *DenseGrid {
	if sx < 0 {
		sx = 0
	}
	if sy < 0 {
		sy = 0
	}
	if sz < 0 {
		sz = 0
	}
	return &DenseGrid{sx: sx, sy: sy, sz: sz, cells: make([]Sample, sx*sy*sz)}
}

// SizeX returns the extent in cells along x.
func (g *DenseGrid) SizeX() int { return g.sx }

// SizeY returns the extent in cells along y.
func (g *DenseGrid) SizeY() int { return g.sy }

// SizeZ returns the extent in cells along z.
func (g *DenseGrid) SizeZ() int { return g.sz }

// At returns the stored sample, or the zero Sample out of range.
func (g *DenseGrid) At(x, y, z int) Sample {
	if !g.inRange(x, y, z) {
		return Sample{}
	}
	return g.cells[g.index(x, y, z)]
}

// Set stores a sample; out-of-range writes are dropped.
func (g *DenseGrid) Set(x, y, z int, s Sample) {
	if !g.inRange(x, y, z) {
		return
	}
	g.cells[g.index(x, y, z)] = s
}

// Fill initializes every cell from fn.
func (g *DenseGrid) Fill(fn func(x, y, z int) Sample) {
	for z := 0; z < g.sz; z++ {
		for y := 0; y < g.sy; y++ {
			for x := 0; x < g.sx; x++ {
				g.cells[g.index(x, y, z)] = fn(x, y, z)
			}
		}
	}
}

// Density returns the density at a cell, zero out of range.
func (g *DenseGrid) Density(x, y, z int) float64 {
	return g.At(x, y, z).Density
}

// Material returns the material at a cell, zero out of range.
func (g *DenseGrid) Material(x, y, z int) int {
	return g.At(x, y, z).Material
}

func (g *DenseGrid) inRange(x, y, z int) bool {
	return x >= 0 && x < g.sx && y >= 0 && y < g.sy && z >= 0 && z < g.sz
}

func (g *DenseGrid) index(x, y, z int) int {
	return x + g.sx*(y+g.sy*z)
}
