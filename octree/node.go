package octree

import (
	"github.com/voxelforge/carve/voxel"
)

// nodeSampleCap is the number of samples a node stores directly before
// subdividing. Nodes at maximum depth store without limit.
const nodeSampleCap = 8

// node is a single octant of the tree. An undivided node holds samples
// directly in its map; a divided node has redistributed them into its
// eight children and holds nothing itself.
type node struct {
	bounds   AABB
	depth    int
	children []*node
	samples  map[voxel.Coord]voxel.Sample
}

func newNode(bounds AABB, depth int) *node {
	return &node{
		bounds:  bounds,
		depth:   depth,
		samples: map[voxel.Coord]voxel.Sample{},
	}
}

func (n *node) divided() bool {
	return n.children != nil
}

// set stores s under c, subdividing once when a fresh cell would overflow
// an interior node's direct storage. Reports whether the cell is new.
func (n *node) set(c voxel.Coord, s voxel.Sample, maxDepth int) bool {
	if n.divided() {
		return n.child(c).set(c, s, maxDepth)
	}
	if _, ok := n.samples[c]; ok {
		n.samples[c] = s
		return false
	}
	if n.depth < maxDepth && len(n.samples) >= nodeSampleCap {
		n.subdivide(maxDepth)
		return n.child(c).set(c, s, maxDepth)
	}
	n.samples[c] = s
	return true
}

// at returns the sample stored under c, descending through divided nodes.
func (n *node) at(c voxel.Coord) (voxel.Sample, bool) {
	if n.divided() {
		return n.child(c).at(c)
	}
	s, ok := n.samples[c]
	return s, ok
}

// delete removes the cell if present, reporting whether it was. Children
// of divided nodes are kept even when they empty out.
func (n *node) delete(c voxel.Coord) bool {
	if n.divided() {
		return n.child(c).delete(c)
	}
	if _, ok := n.samples[c]; !ok {
		return false
	}
	delete(n.samples, c)
	return true
}

// subdivide allocates the eight octant children and redistributes every
// held sample into them. It runs at most once per node.
func (n *node) subdivide(maxDepth int) {
	if n.divided() {
		panic("octree node already subdivided")
	}
	children := make([]*node, 8)
	for i := range children {
		children[i] = newNode(n.bounds.Octant(i), n.depth+1)
	}
	n.children = children
	for c, s := range n.samples {
		n.child(c).set(c, s, maxDepth)
	}
	n.samples = nil
}

// child returns the octant child whose bounds contain cell c.
func (n *node) child(c voxel.Coord) *node {
	return n.children[n.bounds.OctantIndex(c.Vector())]
}

// iterate visits every stored cell beneath n until fn returns false,
// reporting whether the walk ran to completion.
func (n *node) iterate(fn func(c voxel.Coord, s voxel.Sample) bool) bool {
	if n.divided() {
		for _, child := range n.children {
			if !child.iterate(fn) {
				return false
			}
		}
		return true
	}
	for c, s := range n.samples {
		if !fn(c, s) {
			return false
		}
	}
	return true
}
