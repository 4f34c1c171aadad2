// Package triangulate turns lon/lat polygon rings into triangle meshes lying
// on a sphere. Rings are ear-clipped in the lon/lat plane, lifted onto the
// sphere and then subdivided with spherical midpoints until every chord is
// short, so the fill follows the curvature instead of cutting under it.
//
// All calls are pure: nothing is cached between calls and a nil *Mesh is the
// only signal for degenerate input.
package triangulate

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/rclancey/earcut"

	"visitglobe/internal/sphere"
)

const (
	// DefaultMaxEdgeLength is the longest chord, in sphere units, a mesh
	// triangle may keep before it is split.
	DefaultMaxEdgeLength = 0.08

	// closeEpsilon is the per-axis tolerance in degrees for treating the last
	// point of a ring as a repeat of the first.
	closeEpsilon = 1e-4

	minRawPoints = 4
)

// Options tune subdivision: MaxEdgeLength is the longest chord kept, and
// KeyPrecision the decimals used to merge vertices.
type Options struct {
	MaxEdgeLength float64
	KeyPrecision  int
}

// DefaultOptions returns a 0.08 chord limit and 4-decimal vertex keys.
func DefaultOptions() Options {
	return Options{MaxEdgeLength: DefaultMaxEdgeLength, KeyPrecision: DefaultKeyPrecision}
}

// Triangulator builds meshes with fixed options. The zero value uses the
// defaults.
type Triangulator struct {
	opts Options
}

// New returns a Triangulator; non-positive option fields fall back to the
// defaults.
func New(opts Options) *Triangulator {
	def := DefaultOptions()
	if opts.MaxEdgeLength <= 0 {
		opts.MaxEdgeLength = def.MaxEdgeLength
	}
	if opts.KeyPrecision <= 0 {
		opts.KeyPrecision = def.KeyPrecision
	}
	return &Triangulator{opts: opts}
}

func (t *Triangulator) options() Options {
	if t == nil || t.opts.MaxEdgeLength <= 0 {
		return New(Options{}).opts
	}
	return t.opts
}

var defaultTriangulator = New(DefaultOptions())

// TriangulateRing meshes ring with DefaultOptions.
func TriangulateRing(ring Ring, radius float64) *Mesh {
	return defaultTriangulator.TriangulateRing(ring, radius)
}

// BuildPolygonMesh merges the outer-ring meshes of polygons with
// DefaultOptions.
func BuildPolygonMesh(polygons []Polygon, radius float64) *Mesh {
	return defaultTriangulator.BuildPolygonMesh(polygons, radius)
}

// BuildGeometryMesh is BuildPolygonMesh over g.Polygons().
func BuildGeometryMesh(g Geometry, radius float64) *Mesh {
	return defaultTriangulator.BuildGeometryMesh(g, radius)
}

// NormalizeAntimeridian shifts negative longitudes by +360 when any two
// consecutive points are more than 180° apart in longitude, which is taken to
// mean the ring crosses ±180°. Rings without such a jump are returned as is.
//
// A ring that really is wider than 180° without wrapping is misread by this
// rule.
func NormalizeAntimeridian(ring Ring) Ring {
	crosses := false
	for i := 1; i < len(ring); i++ {
		if math.Abs(ring[i].Lon()-ring[i-1].Lon()) > 180 {
			crosses = true
			break
		}
	}
	if !crosses {
		return ring
	}
	out := make(Ring, len(ring))
	for i, p := range ring {
		lon := p.Lon()
		if lon < 0 {
			lon += 360
		}
		out[i] = sphere.GeoPoint{lon, p.Lat()}
	}
	return out
}

// prepareRing applies the raw point count check, drops a repeated closing
// point and checks there are still three points left.
func prepareRing(ring Ring) (Ring, bool) {
	if len(ring) < minRawPoints {
		return nil, false
	}
	first, last := ring[0], ring[len(ring)-1]
	if math.Abs(first.Lon()-last.Lon()) < closeEpsilon && math.Abs(first.Lat()-last.Lat()) < closeEpsilon {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, false
	}
	return ring, true
}

// BaseTriangles returns the planar triangulation of a ring as index triples
// into the ring with its closing point removed, or nil if the ring is
// rejected.
func BaseTriangles(ring Ring) []int {
	coords, ok := prepareRing(ring)
	if !ok {
		return nil
	}
	return planar(coords)
}

// planar ear-clips the antimeridian-normalised ring in the lon/lat plane.
// A ring earcut cannot handle yields nil.
func planar(coords Ring) []int {
	norm := NormalizeAntimeridian(coords)
	flat := make([]float64, 0, 2*len(norm))
	for _, p := range norm {
		flat = append(flat, p.Lon(), p.Lat())
	}
	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil || len(tris)%3 != 0 {
		return nil
	}
	return tris
}

// TriangulateRing meshes the area enclosed by ring at the given radius.
func (t *Triangulator) TriangulateRing(ring Ring, radius float64) *Mesh {
	coords, ok := prepareRing(ring)
	if !ok {
		return nil
	}
	tris := planar(coords)
	if len(tris) == 0 {
		return nil
	}

	opts := t.options()
	s := newSubdivider(radius, opts)
	corners := make([]corner, len(coords))
	for i, p := range coords {
		corners[i] = s.corner(sphere.LatLngToPoint(p.Lat(), p.Lon(), radius))
	}
	for i := 0; i+2 < len(tris); i += 3 {
		s.triangle(corners[tris[i]], corners[tris[i+1]], corners[tris[i+2]], 0)
	}
	return s.mesh()
}

// BuildPolygonMesh triangulates the outer ring of every polygon and merges
// the results into one mesh. Polygons without a usable outer ring are
// skipped; nil is returned if nothing remains.
func (t *Triangulator) BuildPolygonMesh(polygons []Polygon, radius float64) *Mesh {
	out := &Mesh{}
	for _, poly := range polygons {
		outer := poly.Outer()
		if len(outer) < minRawPoints {
			continue
		}
		m := t.TriangulateRing(outer, radius)
		if m == nil {
			continue
		}
		out.appendMesh(m)
	}
	if len(out.Positions) == 0 || len(out.Indices) == 0 {
		return nil
	}
	return out
}

func (t *Triangulator) BuildGeometryMesh(g Geometry, radius float64) *Mesh {
	return t.BuildPolygonMesh(g.Polygons(), radius)
}

// Outlines returns one polyline per ring of g, holes included. Polylines with
// two points or fewer are dropped.
func Outlines(g Geometry, radius float64, segments int) [][]r3.Vector {
	var out [][]r3.Vector
	for _, poly := range g.Polygons() {
		for _, ring := range poly {
			pts := sphere.RingOutline(ring, radius, segments)
			if len(pts) > 2 {
				out = append(out, pts)
			}
		}
	}
	return out
}
