// Package mesh defines the triangle meshes produced by voxel surface
// extraction and their renderer-facing layouts: interleaved vertex
// streams, triangle-list indices, material color palettes and PLY export.
package mesh

import "github.com/golang/geo/r3"

// RGB is a color triple in [0,1] at the precision of the vertex stream.
type RGB struct {
	R, G, B float32
}

// Vertex carries the three per-vertex attributes renderers consume:
// position, outward normal and flat color.
type Vertex struct {
	Position r3.Vector
	Normal   r3.Vector
	Color    RGB
}

// Mesh is an immutable triangle mesh: vertices plus a triangle list wound
// counter-clockwise when viewed from outside. Build one with a Builder;
// extractors return a fresh Mesh on every run.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
}

// Vertices returns the vertex slice. Callers must not modify it.
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// Indices returns the triangle list. Callers must not modify it.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.indices) == 0
}

// Interleaved flattens the vertices into the renderer layout: nine
// float32 per vertex, position then normal then color.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.vertices)*9)
	for _, v := range m.vertices {
		out = append(out,
			float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z),
			float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z),
			v.Color.R, v.Color.G, v.Color.B,
		)
	}
	return out
}

// TriangleNormal returns the unit normal of the triangle (p0,p1,p2) under
// counter-clockwise winding, or fallback when the triangle is degenerate.
func TriangleNormal(p0, p1, p2, fallback r3.Vector) r3.Vector {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Norm2() == 0 {
		return fallback
	}
	return n.Normalize()
}
