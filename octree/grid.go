package octree

import (
	"github.com/golang/geo/r3"

	"github.com/voxelforge/carve/voxel"
)

// gridView adapts an octree to the voxel.GridView read contract with
// extents of one world size per axis, so grid-shaped consumers never
// depend on the tree structure.
type gridView struct {
	oct *Octree
}

var _ voxel.GridView = gridView{}

// Grid returns a read-only grid view over the octree's full bounds.
func (o *Octree) Grid() voxel.GridView {
	return gridView{oct: o}
}

func (g gridView) SizeX() int { return g.oct.worldSize }
func (g gridView) SizeY() int { return g.oct.worldSize }
func (g gridView) SizeZ() int { return g.oct.worldSize }

func (g gridView) Density(x, y, z int) float64 {
	return g.oct.GetDensity(r3.Vector{X: float64(x), Y: float64(y), Z: float64(z)})
}

func (g gridView) Material(x, y, z int) int {
	return g.oct.GetMaterial(r3.Vector{X: float64(x), Y: float64(y), Z: float64(z)})
}
