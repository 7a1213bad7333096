package mesher

import (
	"github.com/golang/geo/r3"

	"github.com/voxelforge/carve/mesh"
	"github.com/voxelforge/carve/octree"
	"github.com/voxelforge/carve/voxel"
)

// blockFace describes one of the six faces of a unit voxel cell: the
// neighbor offset that covers it, the outward normal, and the four
// cell-relative corners in counter-clockwise order seen from outside.
type blockFace struct {
	dir     voxel.Coord
	normal  r3.Vector
	corners [4][3]int
}

var blockFaces = [6]blockFace{
	{voxel.Coord{X: 1}, r3.Vector{X: 1}, [4][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{voxel.Coord{X: -1}, r3.Vector{X: -1}, [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{voxel.Coord{Y: 1}, r3.Vector{Y: 1}, [4][3]int{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{voxel.Coord{Y: -1}, r3.Vector{Y: -1}, [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{voxel.Coord{Z: 1}, r3.Vector{Z: 1}, [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{voxel.Coord{Z: -1}, r3.Vector{Z: -1}, [4][3]int{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// Blocky turns each solid voxel into an axis-aligned unit cube, emitting
// quads only for faces exposed to non-solid space. It walks the octree's
// stored cells directly, so cost scales with occupancy rather than world
// volume.
type Blocky struct {
	isoLevel float64
	palette  *mesh.Palette
}

// NewBlocky returns an extractor with the default iso level and material
// palette.
func NewBlocky() *Blocky {
	return &Blocky{
		isoLevel: defaultIsoLevel,
		palette:  mesh.DefaultPalette(),
	}
}

// IsoLevel returns the current solidity threshold.
func (bl *Blocky) IsoLevel() float64 {
	return bl.isoLevel
}

// SetIsoLevel changes the solidity threshold for subsequent extractions.
func (bl *Blocky) SetIsoLevel(iso float64) {
	bl.isoLevel = iso
}

// Extract meshes every solid cell of the octree into exposed cube faces.
func (bl *Blocky) Extract(oct *octree.Octree) *mesh.Mesh {
	b := mesh.NewBuilder(0)
	oct.Iterate(func(c voxel.Coord, s voxel.Sample) bool {
		if !s.Solid(bl.isoLevel) {
			return true
		}
		color := bl.palette.Color(s.Material)
		for _, f := range blockFaces {
			neighbor := c.Add(f.dir)
			if oct.GetDensity(neighbor.Vector()) > bl.isoLevel {
				continue
			}
			b.AddQuad(
				faceCorner(c, f.corners[0]),
				faceCorner(c, f.corners[1]),
				faceCorner(c, f.corners[2]),
				faceCorner(c, f.corners[3]),
				f.normal,
				color,
			)
		}
		return true
	})
	return b.Build()
}

func faceCorner(c voxel.Coord, off [3]int) r3.Vector {
	return r3.Vector{
		X: float64(c.X + off[0]),
		Y: float64(c.Y + off[1]),
		Z: float64(c.Z + off[2]),
	}
}
