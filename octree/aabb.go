package octree

import "github.com/golang/geo/r3"

// AABB is an axis-aligned box, half-open on Max: a point is inside when
// Min <= p < Max on every axis.
type AABB struct {
	Min, Max r3.Vector
}

// Contains reports whether p lies inside the box.
func (b AABB) Contains(p r3.Vector) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// Center returns the box's midpoint.
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(.5)
}

// Size returns the box's extent along each axis.
func (b AABB) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Octant returns the i-th half-sized sub-box. Bit 0 selects the +x half,
// bit 1 the +y half, bit 2 the +z half.
func (b AABB) Octant(i int) AABB {
	c := b.Center()
	sub := AABB{Min: b.Min, Max: c}
	if i&1 != 0 {
		sub.Min.X, sub.Max.X = c.X, b.Max.X
	}
	if i&2 != 0 {
		sub.Min.Y, sub.Max.Y = c.Y, b.Max.Y
	}
	if i&4 != 0 {
		sub.Min.Z, sub.Max.Z = c.Z, b.Max.Z
	}
	return sub
}

// OctantIndex returns the index of the octant containing p, with points
// on a center plane assigned to the positive half.
func (b AABB) OctantIndex(p r3.Vector) int {
	c := b.Center()
	i := 0
	if p.X >= c.X {
		i |= 1
	}
	if p.Y >= c.Y {
		i |= 2
	}
	if p.Z >= c.Z {
		i |= 4
	}
	return i
}
