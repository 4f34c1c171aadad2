package geom

import (
	"strings"

	"github.com/pkg/errors"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"visitglobe/internal/sphere"
	"visitglobe/internal/triangulate"
)

// ParseWKT parses POLYGON or MULTIPOLYGON text into a Geometry and its bbox.
func ParseWKT(s string) (triangulate.Geometry, BBox, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return triangulate.Geometry{}, BBox{}, errors.New("empty wkt")
	}
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return triangulate.Geometry{}, BBox{}, errors.Wrap(err, "wkt")
	}
	var g triangulate.Geometry
	switch v := t.(type) {
	case *gogeom.Polygon:
		g = triangulate.PolygonGeometry(polygonFromCoords(v.Coords()))
	case *gogeom.MultiPolygon:
		mp := make(triangulate.MultiPolygon, 0, v.NumPolygons())
		for _, rings := range v.Coords() {
			mp = append(mp, polygonFromCoords(rings))
		}
		g = triangulate.MultiPolygonGeometry(mp)
	default:
		return triangulate.Geometry{}, BBox{}, errors.Errorf("wkt: unsupported type %T, want POLYGON or MULTIPOLYGON", t)
	}
	if g.Empty() {
		return triangulate.Geometry{}, BBox{}, errors.New("wkt: no coordinates parsed")
	}
	return g, boundsOf(g), nil
}

func polygonFromCoords(rings [][]gogeom.Coord) triangulate.Polygon {
	p := make(triangulate.Polygon, 0, len(rings))
	for _, r := range rings {
		ring := make(triangulate.Ring, 0, len(r))
		for _, c := range r {
			ring = append(ring, sphere.GeoPoint{c.X(), c.Y()})
		}
		p = append(p, ring)
	}
	return p
}
