// Package voxel defines the value types shared between voxel storage and
// meshing: density/material samples, integer cell coordinates, and the
// read-only grid view that surface extraction consumes.
package voxel

// Sample is the stored value of a single voxel cell: an occupancy density
// in [0,1] and a material identifier used for coloring. The zero Sample
// represents an absent cell and is never stored.
type Sample struct {
	Density  float64
	Material int
}

// NewSample returns a Sample with the density clamped into [0,1].
func NewSample(density float64, material int) Sample {
	return Sample{Density: clamp01(density), Material: material}
}

// IsZero reports whether the sample represents an absent cell.
func (s Sample) IsZero() bool {
	return s.Density == 0
}

// Solid reports whether the sample's density exceeds the given iso level.
func (s Sample) Solid(isoLevel float64) bool {
	return s.Density > isoLevel
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
