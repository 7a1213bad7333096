package remesh

import (
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/voxelforge/carve/mesher"
	"github.com/voxelforge/carve/octree"
	"github.com/voxelforge/carve/voxel"
)

// VoxelData pairs an octree with the bookkeeping the remesh pipeline
// needs: a stable identity, the selected extraction algorithm, and a
// dirty flag raised by edits and cleared by successful remeshes.
type VoxelData struct {
	id        uuid.UUID
	oct       *octree.Octree
	algorithm mesher.Algorithm
	dirty     bool
}

// NewVoxelData wraps an octree for remesh tracking. Fresh volumes start
// dirty so the first remesh always runs.
func NewVoxelData(oct *octree.Octree, algorithm mesher.Algorithm) (*VoxelData, error) {
	if oct == nil {
		return nil, errors.New("cannot track voxel data without an octree")
	}
	return &VoxelData{
		id:        uuid.New(),
		oct:       oct,
		algorithm: algorithm,
		dirty:     true,
	}, nil
}

// ID returns the stable identity of this volume.
func (vd *VoxelData) ID() uuid.UUID {
	return vd.id
}

// Octree returns the underlying sparse volume.
func (vd *VoxelData) Octree() *octree.Octree {
	return vd.oct
}

// SetVoxel writes one cell and marks the volume for remeshing.
func (vd *VoxelData) SetVoxel(p r3.Vector, s voxel.Sample) {
	vd.oct.SetVoxel(p, s)
	vd.dirty = true
}

// NeedsRemesh reports whether edits have invalidated the last mesh.
func (vd *VoxelData) NeedsRemesh() bool {
	return vd.dirty
}

// MarkDirty forces the next remesh attempt to run.
func (vd *VoxelData) MarkDirty() {
	vd.dirty = true
}

// Algorithm returns the extraction algorithm selected for this volume.
func (vd *VoxelData) Algorithm() mesher.Algorithm {
	return vd.algorithm
}

// SetAlgorithm switches the extraction algorithm. Setting the value
// already selected leaves the dirty state untouched.
func (vd *VoxelData) SetAlgorithm(a mesher.Algorithm) {
	if a == vd.algorithm {
		return
	}
	vd.algorithm = a
	vd.dirty = true
}

func (vd *VoxelData) clearDirty() {
	vd.dirty = false
}
