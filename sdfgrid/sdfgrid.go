// Package sdfgrid samples signed distance fields from
// github.com/deadsy/sdfx into voxel densities, either lazily through the
// voxel.GridView interface or by rasterizing into a sparse octree.
package sdfgrid

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/pkg/errors"

	"github.com/voxelforge/carve/octree"
	"github.com/voxelforge/carve/voxel"
)

// transitionBand is the world-space width over which a signed distance
// fades from full density to empty. One cell keeps the gradient visible
// to the surface extractors without smearing the shape.
const transitionBand = 1.0

// Grid adapts a signed distance field to voxel.GridView. Distances are
// sampled at integer lattice points of a cubic volume and mapped onto
// densities across the transition band, with a constant material.
type Grid struct {
	field    sdf.SDF3
	size     int
	material int
}

// NewGrid wraps a distance field as a size sided cubic grid view.
func NewGrid(field sdf.SDF3, size, material int) (*Grid, error) {
	if field == nil {
		return nil, errors.New("cannot build a grid without a distance field")
	}
	if size <= 0 {
		return nil, errors.Errorf("invalid size (%d) for sdf grid", size)
	}
	return &Grid{field: field, size: size, material: material}, nil
}

// Sphere returns a Grid over a sphere of the given radius centered in a
// size sided cubic volume.
func Sphere(size int, radius float64, material int) (*Grid, error) {
	if radius <= 0 {
		return nil, errors.Errorf("invalid radius (%.2f) for sdf sphere", radius)
	}
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, err
	}
	half := float64(size-1) / 2
	centered := sdf.Transform3D(s, sdf.Translate3d(v3.Vec{X: half, Y: half, Z: half}))
	return NewGrid(centered, size, material)
}

// SizeX returns the grid extent along x.
func (g *Grid) SizeX() int { return g.size }

// SizeY returns the grid extent along y.
func (g *Grid) SizeY() int { return g.size }

// SizeZ returns the grid extent along z.
func (g *Grid) SizeZ() int { return g.size }

// Density samples the field at a lattice point. Out-of-range points and
// points deeper than half a band outside the surface read zero.
func (g *Grid) Density(x, y, z int) float64 {
	if !g.inRange(x, y, z) {
		return 0
	}
	d := g.field.Evaluate(v3.Vec{X: float64(x), Y: float64(y), Z: float64(z)})
	return voxel.NewSample(0.5-d/transitionBand, 0).Density
}

// Material returns the constant material for in-range points.
func (g *Grid) Material(x, y, z int) int {
	if !g.inRange(x, y, z) {
		return 0
	}
	return g.material
}

func (g *Grid) inRange(x, y, z int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size && z >= 0 && z < g.size
}

var _ voxel.GridView = (*Grid)(nil)

// Rasterize writes every cell of the view with a non-zero density into
// the octree and returns the number of cells written. Cells beyond the
// octree bounds are clipped.
func Rasterize(oct *octree.Octree, view voxel.GridView) int {
	sx := min(view.SizeX(), oct.WorldSize())
	sy := min(view.SizeY(), oct.WorldSize())
	sz := min(view.SizeZ(), oct.WorldSize())

	written := 0
	for z := 0; z < sz; z++ {
		for y := 0; y < sy; y++ {
			for x := 0; x < sx; x++ {
				s := voxel.NewSample(view.Density(x, y, z), view.Material(x, y, z))
				if s.IsZero() {
					continue
				}
				oct.SetVoxel(voxel.Coord{X: x, Y: y, Z: z}.Vector(), s)
				written++
			}
		}
	}
	return written
}
