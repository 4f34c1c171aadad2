package triangulate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryPolygons(t *testing.T) {
	poly := Polygon{square(0, 0, 1)}
	assert.Equal(t, []Polygon{poly}, PolygonGeometry(poly).Polygons())
	assert.Equal(t, []Polygon{poly, poly}, MultiPolygonGeometry(MultiPolygon{poly, poly}).Polygons())
	assert.Nil(t, Geometry{}.Polygons())
	assert.Nil(t, PolygonGeometry(nil).Polygons())

	assert.True(t, Geometry{}.Empty())
	assert.True(t, MultiPolygonGeometry(MultiPolygon{{}, {}}).Empty())
	assert.False(t, PolygonGeometry(poly).Empty())

	assert.Equal(t, "Polygon", KindPolygon.String())
	assert.Equal(t, "MultiPolygon", KindMultiPolygon.String())
}

func TestGeometryFromCoordinatesJSON(t *testing.T) {
	decode := func(s string) any {
		var v any
		require.NoError(t, json.Unmarshal([]byte(s), &v))
		return v
	}

	g, ok := GeometryFromCoordinates(decode(`[[[0,0],[10,0],[10,10],[0,10],[0,0]]]`))
	require.True(t, ok)
	assert.Equal(t, KindPolygon, g.Kind)
	assert.Equal(t, square(0, 0, 10), g.Polygon.Outer())

	g, ok = GeometryFromCoordinates(decode(`[[[[0,0],[10,0],[10,10],[0,10],[0,0]]],[[[20,20],[21,20],[21,21],[20,20]]]]`))
	require.True(t, ok)
	assert.Equal(t, KindMultiPolygon, g.Kind)
	require.Len(t, g.Polygons(), 2)
	assert.Len(t, g.Polygons()[1].Outer(), 4)

	for _, bad := range []string{`[]`, `[[0,0]]`, `[[["a","b"]]]`, `[[[[[0,0]]]]]`, `"x"`} {
		_, ok := GeometryFromCoordinates(decode(bad))
		assert.False(t, ok, bad)
	}
}

func TestGeometryFromCoordinatesTyped(t *testing.T) {
	g, ok := GeometryFromCoordinates([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	require.True(t, ok)
	assert.Equal(t, KindPolygon, g.Kind)

	g, ok = GeometryFromCoordinates([][][][]float64{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}})
	require.True(t, ok)
	assert.Equal(t, KindMultiPolygon, g.Kind)
	assert.Equal(t, g.MultiPolygon[0].Outer()[2].Lat(), 1.0)
}
