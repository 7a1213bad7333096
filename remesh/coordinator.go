// Package remesh schedules surface extraction for edited voxel volumes.
// A VoxelData tracks the dirty state of one octree; a Coordinator
// rebuilds meshes for dirty volumes on demand, optionally throttled so
// rapid edit bursts do not trigger a rebuild per edit.
package remesh

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/voxelforge/carve/mesh"
	"github.com/voxelforge/carve/mesher"
)

// CoordinatorParams contain the parameters needed to construct a
// Coordinator.
type CoordinatorParams struct {
	// IsoLevel is the density threshold separating solid from empty
	// space. Zero selects the extractors' default of 0.5.
	IsoLevel float64
	// MinInterval throttles remeshing. A volume remeshed more recently
	// than this stays dirty and is skipped until the interval has
	// elapsed. Zero disables the throttle.
	MinInterval time.Duration
	// Clock drives the throttle. Nil selects the wall clock.
	Clock clock.Clock
	// Logger is required.
	Logger golog.Logger
}

// Validate validates that p contains all required parameters.
func (p CoordinatorParams) Validate() error {
	if p.Logger == nil {
		return errors.New("missing required parameter logger")
	}
	if p.MinInterval < 0 {
		return errors.Errorf("invalid min interval (%v) for remesh coordinator", p.MinInterval)
	}
	if p.IsoLevel < 0 || p.IsoLevel > 1 {
		return errors.Errorf("invalid iso level (%.2f) for remesh coordinator", p.IsoLevel)
	}
	return nil
}

// Coordinator owns one extractor per algorithm and rebuilds meshes for
// dirty volumes. It is not safe for concurrent use.
type Coordinator struct {
	marching    *mesher.MarchingCubes
	blocky      *mesher.Blocky
	clock       clock.Clock
	minInterval time.Duration
	logger      golog.Logger
	generation  uint64
	lastRemesh  map[uuid.UUID]time.Time
}

// Result is the outcome of one successful remesh.
type Result struct {
	Mesh       *mesh.Mesh
	Algorithm  mesher.Algorithm
	Generation uint64
}

// NewCoordinator validates params and returns a ready Coordinator.
func NewCoordinator(params CoordinatorParams) (*Coordinator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &Coordinator{
		marching:    mesher.NewMarchingCubes(),
		blocky:      mesher.NewBlocky(),
		clock:       params.Clock,
		minInterval: params.MinInterval,
		logger:      params.Logger,
		lastRemesh:  map[uuid.UUID]time.Time{},
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if params.IsoLevel != 0 {
		c.SetIsoLevel(params.IsoLevel)
	}
	return c, nil
}

// IsoLevel returns the surface threshold shared by both extractors.
func (c *Coordinator) IsoLevel() float64 {
	return c.marching.IsoLevel()
}

// SetIsoLevel changes the surface threshold for both extractors.
// Volumes meshed under the old level stay clean until marked dirty.
func (c *Coordinator) SetIsoLevel(iso float64) {
	c.marching.SetIsoLevel(iso)
	c.blocky.SetIsoLevel(iso)
}

// Generation returns the number of remeshes completed so far.
func (c *Coordinator) Generation() uint64 {
	return c.generation
}

// Remesh rebuilds the mesh for vd with its selected algorithm. It
// returns false without work when the volume is clean or was remeshed
// within the throttle interval; a throttled volume stays dirty so the
// pending edits are picked up by a later call.
func (c *Coordinator) Remesh(vd *VoxelData) (*Result, bool) {
	if !vd.NeedsRemesh() {
		return nil, false
	}
	now := c.clock.Now()
	if c.minInterval > 0 {
		if last, ok := c.lastRemesh[vd.ID()]; ok && now.Sub(last) < c.minInterval {
			c.logger.Debugw("remesh throttled, volume stays dirty",
				"volume", vd.ID(),
				"since_last", now.Sub(last),
			)
			return nil, false
		}
	}

	var m *mesh.Mesh
	switch vd.Algorithm() {
	case mesher.AlgorithmMarchingCubes:
		m = c.marching.Extract(vd.Octree().Grid())
	default:
		m = c.blocky.Extract(vd.Octree())
	}

	vd.clearDirty()
	c.lastRemesh[vd.ID()] = now
	c.generation++
	c.logger.Debugw("remeshed voxel volume",
		"volume", vd.ID(),
		"algorithm", vd.Algorithm().String(),
		"generation", c.generation,
		"triangles", m.TriangleCount(),
	)
	return &Result{Mesh: m, Algorithm: vd.Algorithm(), Generation: c.generation}, true
}
