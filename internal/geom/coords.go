package geom

import (
	"encoding/json"

	"github.com/pkg/errors"

	"visitglobe/internal/triangulate"
)

// ParseCoordinates decodes a bare GeoJSON coordinates array, either a
// polygon's ring list or a multipolygon's polygon list.
func ParseCoordinates(data []byte) (triangulate.Geometry, BBox, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return triangulate.Geometry{}, BBox{}, errors.Wrap(err, "coordinates")
	}
	g, ok := triangulate.GeometryFromCoordinates(raw)
	if !ok || g.Empty() {
		return triangulate.Geometry{}, BBox{}, errors.New("coordinates: want [[[lon, lat], ...]] or [[[[lon, lat], ...]]]")
	}
	return g, boundsOf(g), nil
}
