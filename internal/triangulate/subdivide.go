package triangulate

import (
	"math"

	"github.com/golang/geo/r3"

	"visitglobe/internal/sphere"
)

// maxDepth bounds recursion for inputs whose midpoints fail to shrink, such
// as antipodal edges.
const maxDepth = 20

type corner struct {
	p   r3.Vector
	key VertexKey
}

// subdivider accumulates the output of one ring. Its vertex map and midpoint
// cache live only as long as the ring being triangulated.
type subdivider struct {
	radius    float64
	maxEdge   float64
	precision int

	positions []float64
	indices   []uint32
	vertexMap map[VertexKey]uint32
	midpoints map[EdgeKey]r3.Vector
}

func newSubdivider(radius float64, opts Options) *subdivider {
	return &subdivider{
		radius:    radius,
		maxEdge:   opts.MaxEdgeLength,
		precision: opts.KeyPrecision,
		vertexMap: make(map[VertexKey]uint32),
		midpoints: make(map[EdgeKey]r3.Vector),
	}
}

func (s *subdivider) corner(p r3.Vector) corner {
	return corner{p: p, key: NewVertexKey(p, s.precision)}
}

// triangle emits a, b, c if its longest chord is within the threshold,
// otherwise splits it at slerp midpoints into four and recurses.
func (s *subdivider) triangle(a, b, c corner, depth int) {
	longest := math.Max(a.p.Distance(b.p), math.Max(b.p.Distance(c.p), c.p.Distance(a.p)))
	// NaN never compares greater, so malformed input terminates here.
	if !(longest > s.maxEdge) || depth >= maxDepth {
		s.indices = append(s.indices, s.vertex(a), s.vertex(b), s.vertex(c))
		return
	}
	ab := s.midpoint(a, b)
	bc := s.midpoint(b, c)
	ca := s.midpoint(c, a)

	s.triangle(a, ab, ca, depth+1)
	s.triangle(ab, b, bc, depth+1)
	s.triangle(ca, bc, c, depth+1)
	s.triangle(ab, bc, ca, depth+1)
}

// midpoint returns the cached midpoint of the edge a-b, computing it on first
// use. Both triangles on either side of an edge get the same point.
func (s *subdivider) midpoint(a, b corner) corner {
	k := NewEdgeKey(a.key, b.key)
	if m, ok := s.midpoints[k]; ok {
		return s.corner(m)
	}
	m := sphere.Slerp(a.p, b.p, 0.5, s.radius)
	s.midpoints[k] = m
	return s.corner(m)
}

func (s *subdivider) vertex(c corner) uint32 {
	if idx, ok := s.vertexMap[c.key]; ok {
		return idx
	}
	idx := uint32(len(s.positions) / 3)
	s.positions = append(s.positions, c.p.X, c.p.Y, c.p.Z)
	s.vertexMap[c.key] = idx
	return idx
}

func (s *subdivider) mesh() *Mesh {
	if len(s.positions) == 0 || len(s.indices) == 0 {
		return nil
	}
	return &Mesh{Positions: s.positions, Indices: s.indices}
}
