package triangulate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitglobe/internal/sphere"
)

func square(lon0, lat0, size float64) Ring {
	return Ring{
		{lon0, lat0},
		{lon0 + size, lat0},
		{lon0 + size, lat0 + size},
		{lon0, lat0 + size},
		{lon0, lat0},
	}
}

func assertOnSphere(t *testing.T, m *Mesh, radius float64) {
	t.Helper()
	for i := 0; i < m.VertexCount(); i++ {
		require.InDelta(t, radius, m.Vertex(i).Norm(), 1e-6, "vertex %d", i)
	}
}

func assertIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	require.Zero(t, len(m.Indices)%3)
	for _, idx := range m.Indices {
		require.Less(t, int(idx), m.VertexCount())
	}
}

func TestSquareScenario(t *testing.T) {
	ring := square(0, 0, 10)

	assert.Len(t, BaseTriangles(ring), 2*3)

	m := TriangulateRing(ring, 1.0)
	require.NotNil(t, m)
	assert.Greater(t, m.TriangleCount(), 2)
	assertOnSphere(t, m, 1.0)
	assertIndicesInRange(t, m)
}

func TestEquatorRingStaysOnSphere(t *testing.T) {
	ring := Ring{{-20, -5}, {15, -5}, {25, 0}, {15, 5}, {-20, 5}, {-20, -5}}
	for _, radius := range []float64{1, 1.001, 1.003} {
		m := TriangulateRing(ring, radius)
		require.NotNil(t, m)
		assert.GreaterOrEqual(t, m.VertexCount(), len(ring)-1)
		assertOnSphere(t, m, radius)
		assertIndicesInRange(t, m)
	}
}

func TestLongestEdgeTermination(t *testing.T) {
	m := TriangulateRing(square(-30, 20, 40), 1)
	require.NotNil(t, m)
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		a, b, c := m.Vertex(int(tri[0])), m.Vertex(int(tri[1])), m.Vertex(int(tri[2]))
		longest := math.Max(a.Distance(b), math.Max(b.Distance(c), c.Distance(a)))
		// Deduplicated vertices may be displaced by the key rounding.
		assert.LessOrEqual(t, longest, DefaultMaxEdgeLength+1e-3, "triangle %d", i)
	}
}

func TestSmallTriangleIsNotSubdivided(t *testing.T) {
	ring := Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}}
	m := TriangulateRing(ring, 1)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, 3, m.VertexCount())
	assert.ElementsMatch(t, []uint32{0, 1, 2}, m.Indices)
}

func TestClosingPointRemoval(t *testing.T) {
	closed := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	open := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	nearly := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0.00005, -0.00005}}

	want := TriangulateRing(open, 1)
	require.NotNil(t, want)
	assert.Equal(t, want, TriangulateRing(closed, 1))
	assert.Equal(t, want, TriangulateRing(nearly, 1))
	assert.Equal(t, BaseTriangles(open), BaseTriangles(closed))
}

func TestDegenerateRings(t *testing.T) {
	cases := map[string]Ring{
		"empty":              nil,
		"three raw points":   {{0, 0}, {1, 0}, {0, 1}},
		"two distinct":       {{0, 0}, {1, 1}, {0, 0}, {0, 0}},
		"collinear":          {{0, 0}, {1, 1}, {2, 2}, {0, 0}},
		"single point":       {{5, 5}, {5, 5}, {5, 5}, {5, 5}},
		"closing leaves two": {{0, 0}, {3, 3}, {0, 0}},
	}
	for name, ring := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, TriangulateRing(ring, 1))
		})
	}
}

func TestNormalizeAntimeridian(t *testing.T) {
	t.Run("crossing ring is made contiguous", func(t *testing.T) {
		ring := Ring{{179, -5}, {-179, -5}, {-179, 5}, {179, 5}, {179, -5}}
		norm := NormalizeAntimeridian(ring)
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range norm {
			lo = math.Min(lo, p.Lon())
			hi = math.Max(hi, p.Lon())
		}
		assert.Less(t, hi-lo, 10.0)
		assert.Equal(t, -179.0, ring[1].Lon(), "input is not mutated")
	})
	t.Run("ordinary ring passes through", func(t *testing.T) {
		ring := square(-10, -10, 20)
		assert.Equal(t, ring, NormalizeAntimeridian(ring))
	})
	t.Run("wide ring is misread", func(t *testing.T) {
		// Spans 200° without wrapping; the jump rule still fires.
		ring := Ring{{-100, 0}, {100, 0}, {100, 10}, {-100, 10}}
		norm := NormalizeAntimeridian(ring)
		assert.Equal(t, 260.0, norm[0].Lon())
	})
}

func TestAntimeridianMesh(t *testing.T) {
	ring := Ring{{179, -5}, {-179, -5}, {-179, 5}, {179, 5}, {179, -5}}
	m := TriangulateRing(ring, 1)
	require.NotNil(t, m)
	assertOnSphere(t, m, 1)
	// A mesh spanning the long way round would reach the prime meridian.
	for i := 0; i < m.VertexCount(); i++ {
		_, lng := sphere.PointToLatLng(m.Vertex(i))
		assert.Greater(t, math.Abs(lng), 170.0, "vertex %d at lng %f", i, lng)
	}
	assert.Len(t, BaseTriangles(ring), 2*3)
}

func TestBuildPolygonMesh(t *testing.T) {
	a := TriangulateRing(square(0, 0, 10), 1)
	b := TriangulateRing(square(30, 30, 5), 1)
	require.NotNil(t, a)
	require.NotNil(t, b)

	merged := BuildPolygonMesh([]Polygon{
		{square(0, 0, 10), square(2, 2, 2)},
		{},
		{Ring{{0, 0}, {1, 1}}},
		{square(30, 30, 5)},
	}, 1)
	require.NotNil(t, merged)
	assert.Equal(t, a.VertexCount()+b.VertexCount(), merged.VertexCount())
	assert.Equal(t, a.TriangleCount()+b.TriangleCount(), merged.TriangleCount())
	assertIndicesInRange(t, merged)

	offset := uint32(a.VertexCount())
	for i, idx := range b.Indices {
		assert.Equal(t, idx+offset, merged.Indices[len(a.Indices)+i])
	}
}

func TestBuildPolygonMeshEmpty(t *testing.T) {
	assert.Nil(t, BuildPolygonMesh(nil, 1))
	assert.Nil(t, BuildPolygonMesh([]Polygon{{}, {Ring{}}, {nil}}, 1))
	assert.Nil(t, BuildGeometryMesh(MultiPolygonGeometry(MultiPolygon{{{}}, {{}}}), 1))
}

func TestBuildGeometryMeshShapes(t *testing.T) {
	poly := Polygon{square(0, 0, 10)}
	single := BuildGeometryMesh(PolygonGeometry(poly), 1.001)
	multi := BuildGeometryMesh(MultiPolygonGeometry(MultiPolygon{poly}), 1.001)
	require.NotNil(t, single)
	assert.Equal(t, single, multi)
}

func TestRecomputationIsIdempotent(t *testing.T) {
	ring := square(100, -40, 25)
	assert.Equal(t, TriangulateRing(ring, 1.003), TriangulateRing(ring, 1.003))
}

func TestTriangulatorOptions(t *testing.T) {
	ring := square(0, 0, 10)
	fine := New(Options{MaxEdgeLength: 0.02}).TriangulateRing(ring, 1)
	coarse := New(Options{MaxEdgeLength: 1}).TriangulateRing(ring, 1)
	require.NotNil(t, fine)
	require.NotNil(t, coarse)
	assert.Equal(t, 2, coarse.TriangleCount())
	assert.Greater(t, fine.TriangleCount(), TriangulateRing(ring, 1).TriangleCount())

	var zero Triangulator
	assert.Equal(t, TriangulateRing(ring, 1), zero.TriangulateRing(ring, 1))
}

func TestOutlines(t *testing.T) {
	g := PolygonGeometry(Polygon{square(0, 0, 10), square(2, 2, 2), Ring{{0, 0}, {1, 1}}})
	lines := Outlines(g, 1.002, 1)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 8)
	for _, p := range lines[1] {
		assert.InDelta(t, 1.002, p.Norm(), 1e-9)
	}
}

func TestNormals(t *testing.T) {
	m := TriangulateRing(square(0, 0, 10), 1.5)
	require.NotNil(t, m)
	n := m.Normals()
	require.Len(t, n, len(m.Positions))
	for i := 0; i < len(n); i += 3 {
		assert.InDelta(t, 1, math.Sqrt(n[i]*n[i]+n[i+1]*n[i+1]+n[i+2]*n[i+2]), 1e-12)
		assert.InDelta(t, m.Positions[i]/1.5, n[i], 1e-12)
	}
}
