package globe

import (
	"strconv"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"

	"visitglobe/internal/triangulate"
)

// MeshCache memoises fill meshes by country and radius. Meshes are rebuilt
// freely on a miss; the triangulator itself keeps nothing between calls.
type MeshCache struct {
	tri   *triangulate.Triangulator
	cache *ristretto.Cache[string, *triangulate.Mesh]
}

// NewMeshCache bounds the cache to roughly maxBytes of mesh buffers.
func NewMeshCache(tri *triangulate.Triangulator, maxBytes int64) (*MeshCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, *triangulate.Mesh]{
		NumCounters: 10_000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "mesh cache")
	}
	return &MeshCache{tri: tri, cache: c}, nil
}

func cacheKey(id string, radius float64) string {
	return id + "@" + strconv.FormatFloat(radius, 'f', -1, 64)
}

func meshCost(m *triangulate.Mesh) int64 {
	return int64(len(m.Positions)*8 + len(m.Indices)*4)
}

// Fill returns the fill mesh for a country at radius, or nil if its geometry
// yields none. A nil cache triangulates every time.
func (mc *MeshCache) Fill(id string, g triangulate.Geometry, radius float64) *triangulate.Mesh {
	if mc == nil {
		return triangulate.BuildGeometryMesh(g, radius)
	}
	key := cacheKey(id, radius)
	if m, ok := mc.cache.Get(key); ok {
		return m
	}
	m := mc.tri.BuildGeometryMesh(g, radius)
	if m != nil {
		mc.cache.Set(key, m, meshCost(m))
	}
	return m
}

// Wait blocks until pending writes are visible to Get.
func (mc *MeshCache) Wait() {
	if mc != nil {
		mc.cache.Wait()
	}
}

func (mc *MeshCache) Close() {
	if mc != nil {
		mc.cache.Close()
	}
}
