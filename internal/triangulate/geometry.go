package triangulate

import "visitglobe/internal/sphere"

// Ring is a closed loop of coordinates. The last point may repeat the first.
type Ring []sphere.GeoPoint

// Polygon is a list of rings; the first is the outer boundary and any others
// are holes, which are carried but never subtracted from the fill.
type Polygon []Ring

// Outer returns the outer ring or nil.
func (p Polygon) Outer() Ring {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

type MultiPolygon []Polygon

// Kind tags which shape a Geometry holds.
type Kind int

const (
	KindPolygon Kind = iota + 1
	KindMultiPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	}
	return "Unknown"
}

// Geometry is either a single Polygon or a MultiPolygon.
type Geometry struct {
	Kind         Kind
	Polygon      Polygon
	MultiPolygon MultiPolygon
}

func PolygonGeometry(p Polygon) Geometry {
	return Geometry{Kind: KindPolygon, Polygon: p}
}

func MultiPolygonGeometry(mp MultiPolygon) Geometry {
	return Geometry{Kind: KindMultiPolygon, MultiPolygon: mp}
}

// Polygons normalises both shapes to a list of polygons.
func (g Geometry) Polygons() []Polygon {
	switch g.Kind {
	case KindPolygon:
		if len(g.Polygon) == 0 {
			return nil
		}
		return []Polygon{g.Polygon}
	case KindMultiPolygon:
		return g.MultiPolygon
	}
	return nil
}

// Empty reports whether the geometry holds no rings at all.
func (g Geometry) Empty() bool {
	for _, p := range g.Polygons() {
		if len(p) > 0 {
			return false
		}
	}
	return true
}

// GeometryFromCoordinates resolves a GeoJSON coordinates value into a
// Geometry. It accepts typed float slices or the []any trees produced by
// encoding/json, deciding once from the nesting depth whether the value is a
// polygon's ring list or a multipolygon's polygon list.
func GeometryFromCoordinates(v any) (Geometry, bool) {
	switch c := v.(type) {
	case [][][]float64:
		return PolygonGeometry(polygonFromFloats(c)), true
	case [][][][]float64:
		mp := make(MultiPolygon, 0, len(c))
		for _, p := range c {
			mp = append(mp, polygonFromFloats(p))
		}
		return MultiPolygonGeometry(mp), true
	case []any:
		switch depth(c) {
		case 3:
			p, ok := polygonFromAny(c)
			return PolygonGeometry(p), ok
		case 4:
			mp := make(MultiPolygon, 0, len(c))
			for _, el := range c {
				arr, ok := el.([]any)
				if !ok {
					return Geometry{}, false
				}
				p, ok := polygonFromAny(arr)
				if !ok {
					return Geometry{}, false
				}
				mp = append(mp, p)
			}
			return MultiPolygonGeometry(mp), true
		}
	}
	return Geometry{}, false
}

// depth follows the first element down to a number.
func depth(v any) int {
	d := 0
	for {
		arr, ok := v.([]any)
		if !ok {
			if _, num := v.(float64); num {
				return d
			}
			return -1
		}
		if len(arr) == 0 {
			return -1
		}
		d++
		v = arr[0]
	}
}

func polygonFromFloats(rings [][][]float64) Polygon {
	p := make(Polygon, 0, len(rings))
	for _, r := range rings {
		ring := make(Ring, 0, len(r))
		for _, pt := range r {
			if len(pt) >= 2 {
				ring = append(ring, sphere.GeoPoint{pt[0], pt[1]})
			}
		}
		p = append(p, ring)
	}
	return p
}

func polygonFromAny(rings []any) (Polygon, bool) {
	p := make(Polygon, 0, len(rings))
	for _, r := range rings {
		pts, ok := r.([]any)
		if !ok {
			return nil, false
		}
		ring := make(Ring, 0, len(pts))
		for _, el := range pts {
			a, ok := el.([]any)
			if !ok || len(a) < 2 {
				return nil, false
			}
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if !lok || !aok {
				return nil, false
			}
			ring = append(ring, sphere.GeoPoint{lon, lat})
		}
		p = append(p, ring)
	}
	return p, true
}
