// Package octree implements sparse voxel storage over a cubic integer
// lattice. Space is partitioned recursively into octants, and nodes defer
// allocating children until they are crowded, so memory tracks occupied
// cells rather than world volume.
package octree

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/voxelforge/carve/voxel"
)

// Octree stores voxel samples for the cubic region [0,worldSize)^3,
// subdividing into octants down to at most maxDepth levels. Cells are one
// world unit across; fractional positions are floored onto the lattice.
// An octree expects a single goroutine owner and does no locking.
type Octree struct {
	logger    golog.Logger
	root      *node
	worldSize int
	maxDepth  int
	size      int
}

// New creates an empty octree spanning [0,worldSize)^3 with subdivision
// bounded by maxDepth.
func New(worldSize, maxDepth int, logger golog.Logger) (*Octree, error) {
	if worldSize <= 0 {
		return nil, errors.Errorf("invalid world size (%d) for octree", worldSize)
	}
	if maxDepth < 0 {
		return nil, errors.Errorf("invalid max depth (%d) for octree", maxDepth)
	}

	return &Octree{
		logger:    logger,
		root:      newNode(rootBounds(worldSize), 0),
		worldSize: worldSize,
		maxDepth:  maxDepth,
	}, nil
}

// SetVoxel stores a sample at the cell containing p, overwriting any
// previous sample there. A zero-density sample deletes the cell instead.
// Positions outside the octree's bounds are dropped.
func (o *Octree) SetVoxel(p r3.Vector, s voxel.Sample) {
	c := voxel.CoordOf(p)
	if !o.inBounds(c) {
		o.logger.Debugw("position outside octree bounds, skipping write", "x", p.X, "y", p.Y, "z", p.Z)
		return
	}

	if s.IsZero() {
		if o.root.delete(c) {
			o.size--
		}
		return
	}
	if o.root.set(c, s, o.maxDepth) {
		o.size++
	}
}

// GetVoxel returns the sample stored at the cell containing p, or the
// zero Sample when the cell is empty or out of bounds.
func (o *Octree) GetVoxel(p r3.Vector) voxel.Sample {
	c := voxel.CoordOf(p)
	if !o.inBounds(c) {
		return voxel.Sample{}
	}
	s, _ := o.root.at(c)
	return s
}

// GetDensity returns the density stored at the cell containing p, zero
// when empty or out of bounds.
func (o *Octree) GetDensity(p r3.Vector) float64 {
	return o.GetVoxel(p).Density
}

// GetMaterial returns the material stored at the cell containing p, zero
// when empty or out of bounds.
func (o *Octree) GetMaterial(p r3.Vector) int {
	return o.GetVoxel(p).Material
}

// Iterate visits every stored cell in no particular order until fn
// returns false.
func (o *Octree) Iterate(fn func(c voxel.Coord, s voxel.Sample) bool) {
	o.root.iterate(fn)
}

// AllVoxels returns every stored cell in no particular order.
func (o *Octree) AllVoxels() []voxel.Cell {
	cells := make([]voxel.Cell, 0, o.size)
	o.Iterate(func(c voxel.Coord, s voxel.Sample) bool {
		cells = append(cells, voxel.Cell{Coord: c, Sample: s})
		return true
	})
	return cells
}

// Clear discards every stored sample, resetting the tree to a single
// undivided root.
func (o *Octree) Clear() {
	o.root = newNode(rootBounds(o.worldSize), 0)
	o.size = 0
}

// Size returns the number of stored cells.
func (o *Octree) Size() int {
	return o.size
}

// WorldSize returns the octree's extent in cells along each axis.
func (o *Octree) WorldSize() int {
	return o.worldSize
}

// MaxDepth returns the subdivision depth limit.
func (o *Octree) MaxDepth() int {
	return o.maxDepth
}

func (o *Octree) inBounds(c voxel.Coord) bool {
	return c.X >= 0 && c.X < o.worldSize &&
		c.Y >= 0 && c.Y < o.worldSize &&
		c.Z >= 0 && c.Z < o.worldSize
}

func rootBounds(worldSize int) AABB {
	s := float64(worldSize)
	return AABB{Max: r3.Vector{X: s, Y: s, Z: s}}
}
