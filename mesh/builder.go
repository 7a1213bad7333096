package mesh

import "github.com/golang/geo/r3"

// Builder accumulates vertices and triangles and is emptied into an
// immutable Mesh by Build.
type Builder struct {
	vertices []Vertex
	indices  []uint32
}

// NewBuilder returns a Builder preallocated for roughly the given number
// of triangles.
func NewBuilder(triangleHint int) *Builder {
	if triangleHint < 0 {
		triangleHint = 0
	}
	return &Builder{
		vertices: make([]Vertex, 0, triangleHint*3),
		indices:  make([]uint32, 0, triangleHint*3),
	}
}

// AddVertex appends a vertex and returns its index.
func (b *Builder) AddVertex(v Vertex) uint32 {
	b.vertices = append(b.vertices, v)
	return uint32(len(b.vertices) - 1)
}

// AddTriangle appends one triangle by vertex index, wound
// counter-clockwise from outside.
func (b *Builder) AddTriangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// AddTriangleVertices appends three fresh vertices and a triangle over
// them.
func (b *Builder) AddTriangleVertices(v0, v1, v2 Vertex) {
	i := b.AddVertex(v0)
	b.AddVertex(v1)
	b.AddVertex(v2)
	b.AddTriangle(i, i+1, i+2)
}

// AddQuad appends four fresh vertices sharing a normal and color plus the
// two triangles covering them. Corners must arrive in counter-clockwise
// perimeter order viewed from outside.
func (b *Builder) AddQuad(p0, p1, p2, p3, normal r3.Vector, color RGB) {
	i := b.AddVertex(Vertex{Position: p0, Normal: normal, Color: color})
	b.AddVertex(Vertex{Position: p1, Normal: normal, Color: color})
	b.AddVertex(Vertex{Position: p2, Normal: normal, Color: color})
	b.AddVertex(Vertex{Position: p3, Normal: normal, Color: color})
	b.AddTriangle(i, i+1, i+2)
	b.AddTriangle(i, i+2, i+3)
}

// VertexCount returns the number of vertices accumulated so far.
func (b *Builder) VertexCount() int {
	return len(b.vertices)
}

// Build hands the accumulated geometry to a new Mesh and resets the
// Builder.
func (b *Builder) Build() *Mesh {
	m := &Mesh{vertices: b.vertices, indices: b.indices}
	b.vertices = nil
	b.indices = nil
	return m
}
