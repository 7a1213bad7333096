package voxel

import (
	"math"

	"github.com/golang/geo/r3"
)

// Coord is an integer cell coordinate, the key under which samples are
// stored. The struct is comparable and maps keyed by it allocate nothing.
type Coord struct {
	X, Y, Z int
}

// CoordOf floors a world position onto the integer lattice. One cell
// spans one world unit.
func CoordOf(p r3.Vector) Coord {
	return Coord{
		X: int(math.Floor(p.X)),
		Y: int(math.Floor(p.Y)),
		Z: int(math.Floor(p.Z)),
	}
}

// Vector returns the cell's minimum corner as a world position.
func (c Coord) Vector() r3.Vector {
	return r3.Vector{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}

// Center returns the cell's center as a world position.
func (c Coord) Center() r3.Vector {
	return r3.Vector{X: float64(c.X) + .5, Y: float64(c.Y) + .5, Z: float64(c.Z) + .5}
}

// Add offsets the coordinate by another, componentwise.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Cell pairs a coordinate with the sample stored there. It is the unit
// returned by full enumerations of sparse storage.
type Cell struct {
	Coord  Coord
	Sample Sample
}
