// Package mesh accumulates vertex and index lists describing triangles to be
// rendered. A Builder is the unit of scene handoff: the simulation loop
// rebuilds one from scratch every tick and publishes it wholesale, and the
// render side clones it under lock before rasterizing.
package mesh

// Vertex is one mesh vertex: a 2D world position and an RGB color with
// components in [0, 1].
type Vertex struct {
	Position [2]float32
	Color    [3]float32
}

// Builder accumulates vertices and triangle indices. Push rebases the
// supplied indices by the current vertex count, so repeated pushes from
// independent entities compose correctly into one buffer.
type Builder struct {
	vertices []Vertex
	indices  []uint16
}

// Push appends vertices and indices. The indices are interpreted relative to
// the pushed vertices and rebased onto the accumulated buffer.
func (b *Builder) Push(vertices []Vertex, indices []uint16) {
	base := uint16(len(b.vertices))
	for _, i := range indices {
		b.indices = append(b.indices, base+i)
	}
	b.vertices = append(b.vertices, vertices...)
}

// Vertices returns the accumulated vertex buffer. The slice is owned by the
// builder; callers must not mutate it.
func (b *Builder) Vertices() []Vertex {
	return b.vertices
}

// Indices returns the accumulated index buffer.
func (b *Builder) Indices() []uint16 {
	return b.indices
}

// TriangleCount returns the number of complete triangles described by the
// index buffer.
func (b *Builder) TriangleCount() int {
	return len(b.indices) / 3
}

// Triangle returns the i-th triangle's vertices. The caller is responsible
// for keeping i within [0, TriangleCount).
func (b *Builder) Triangle(i int) (Vertex, Vertex, Vertex) {
	return b.vertices[b.indices[i*3]],
		b.vertices[b.indices[i*3+1]],
		b.vertices[b.indices[i*3+2]]
}

// Clone returns a deep copy of the builder, for lock-scoped snapshotting.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		vertices: make([]Vertex, len(b.vertices)),
		indices:  make([]uint16, len(b.indices)),
	}
	copy(c.vertices, b.vertices)
	copy(c.indices, b.indices)
	return c
}
