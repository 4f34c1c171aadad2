package triangulate

import "github.com/golang/geo/r3"

// Mesh is an indexed triangle mesh: Positions holds x, y, z triples and
// Indices holds vertex index triples. A nil *Mesh means no mesh was produced.
type Mesh struct {
	Positions []float64
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Positions) / 3
}

func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

func (m *Mesh) Vertex(i int) r3.Vector {
	return r3.Vector{X: m.Positions[3*i], Y: m.Positions[3*i+1], Z: m.Positions[3*i+2]}
}

func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Normals returns per-vertex normals. The mesh is centred on the origin so a
// normal is the normalised position.
func (m *Mesh) Normals() []float64 {
	out := make([]float64, len(m.Positions))
	for i := 0; i < m.VertexCount(); i++ {
		n := m.Vertex(i).Normalize()
		out[3*i], out[3*i+1], out[3*i+2] = n.X, n.Y, n.Z
	}
	return out
}

// appendMesh copies other into m, offsetting its indices past m's vertices.
func (m *Mesh) appendMesh(other *Mesh) {
	offset := uint32(m.VertexCount())
	m.Positions = append(m.Positions, other.Positions...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, idx+offset)
	}
}
