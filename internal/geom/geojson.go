package geom

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"visitglobe/internal/triangulate"
)

// LoadCountries reads a GeoJSON file and returns its Polygon and
// MultiPolygon features.
func LoadCountries(path string) ([]Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read world data")
	}
	cs, err := ParseCountries(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return cs, nil
}

// ParseCountries accepts a FeatureCollection, a single Feature or a bare
// geometry. Features without polygonal geometry are skipped.
func ParseCountries(data []byte) ([]Country, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "geojson")
	}
	var features []*geojson.Feature
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "geojson feature collection")
		}
		features = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "geojson feature")
		}
		features = []*geojson.Feature{f}
	case "":
		return nil, errors.New("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "geojson geometry")
		}
		features = []*geojson.Feature{geojson.NewFeature(g)}
	}

	var out []Country
	for i, f := range features {
		if f == nil || f.Geometry == nil {
			continue
		}
		g, ok := geometryOf(f.Geometry)
		if !ok {
			continue
		}
		out = append(out, Country{
			ID:       featureID(f, i),
			Name:     f.PropertyMustString("name", "Unknown"),
			Geometry: g,
			BBox:     boundsOf(g),
		})
	}
	if len(out) == 0 {
		return nil, errors.New("no polygon features found")
	}
	return out, nil
}

func geometryOf(g *geojson.Geometry) (triangulate.Geometry, bool) {
	switch {
	case g.IsPolygon():
		return triangulate.GeometryFromCoordinates(g.Polygon)
	case g.IsMultiPolygon():
		return triangulate.GeometryFromCoordinates(g.MultiPolygon)
	}
	return triangulate.Geometry{}, false
}

// featureID prefers the feature id, then an "id" property, then the index.
func featureID(f *geojson.Feature, i int) string {
	if id := idString(f.ID); id != "" {
		return id
	}
	if id := idString(f.Properties["id"]); id != "" {
		return id
	}
	return strconv.Itoa(i)
}

func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
