// Package globe assembles country meshes and outlines into a scene for a
// renderer.
package globe

import (
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"visitglobe/internal/geom"
	"visitglobe/internal/triangulate"
	"visitglobe/internal/visited"
)

// Radii, in globe units, used to layer the scene. Visited countries sit
// slightly above unvisited ones and outlines above fills.
const (
	FillVisited      = 1.003
	FillUnvisited    = 1.001
	OutlineVisited   = 1.004
	OutlineUnvisited = 1.002
	OceanRadius      = 0.998

	OutlineSegments = 1

	// DefaultCenterLongitude is the meridian turned towards the viewer.
	DefaultCenterLongitude = 4.5
)

// Shape is one country ready to draw.
type Shape struct {
	Country  geom.Country
	Visited  bool
	Entry    visited.Entry
	Fill     *triangulate.Mesh
	Outlines [][]r3.Vector
}

// Stats totals the meshes of a scene. Skipped counts countries without a
// fill mesh.
type Stats struct {
	Countries int
	Meshed    int
	Skipped   int
	Vertices  int
	Triangles int
}

// Scene is every country shape plus visited progress, built for one visited
// set.
type Scene struct {
	Shapes          []Shape
	Summary         visited.Summary
	Stats           Stats
	CenterLongitude float64
}

// Rotation is the yaw about +y that turns CenterLongitude towards +z.
func (s *Scene) Rotation() float64 {
	return -math.Pi/2 - s.CenterLongitude*math.Pi/180
}

// Find returns the shape for a country id.
func (s *Scene) Find(id string) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Country.ID == id {
			return sh, true
		}
	}
	return Shape{}, false
}

// Builder turns countries into scenes. A nil Cache meshes every country on
// each Build with Triangulator.
type Builder struct {
	Cache           *MeshCache
	// Triangulator is used for uncached geometry; nil means defaults.
	Triangulator    *triangulate.Triangulator
	Logger          *zap.Logger
	CenterLongitude float64
}

func fillRadius(v bool) float64 {
	if v {
		return FillVisited
	}
	return FillUnvisited
}

func outlineRadius(v bool) float64 {
	if v {
		return OutlineVisited
	}
	return OutlineUnvisited
}

// Build meshes every country. It is safe to call again whenever the visited
// set changes; unchanged meshes come from the cache.
func (b *Builder) Build(countries []geom.Country, set visited.Set) *Scene {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scene{
		Shapes:          make([]Shape, 0, len(countries)),
		Summary:         visited.Summarize(set),
		CenterLongitude: b.CenterLongitude,
	}
	for _, c := range countries {
		v := set.Has(c.ID)
		sh := Shape{
			Country:  c,
			Visited:  v,
			Entry:    set[c.ID],
			Fill:     b.fill(c.ID, c.Geometry, fillRadius(v)),
			Outlines: triangulate.Outlines(c.Geometry, outlineRadius(v), OutlineSegments),
		}
		s.Stats.Countries++
		if sh.Fill == nil {
			s.Stats.Skipped++
			logger.Debug("no fill mesh", zap.String("id", c.ID), zap.String("name", c.Name))
		} else {
			s.Stats.Meshed++
			s.Stats.Vertices += sh.Fill.VertexCount()
			s.Stats.Triangles += sh.Fill.TriangleCount()
		}
		s.Shapes = append(s.Shapes, sh)
	}
	logger.Info("scene built",
		zap.Int("countries", s.Stats.Countries),
		zap.Int("skipped", s.Stats.Skipped),
		zap.Int("vertices", s.Stats.Vertices),
		zap.Int("triangles", s.Stats.Triangles),
		zap.Int("visited", s.Summary.Visited),
	)
	return s
}

func (b *Builder) triangulator() *triangulate.Triangulator {
	if b.Triangulator == nil {
		return triangulate.New(triangulate.DefaultOptions())
	}
	return b.Triangulator
}

func (b *Builder) fill(id string, g triangulate.Geometry, radius float64) *triangulate.Mesh {
	if b.Cache == nil {
		return b.triangulator().BuildGeometryMesh(g, radius)
	}
	return b.Cache.Fill(id, g, radius)
}

// Overlay meshes a one-off geometry above every country layer. It bypasses
// the cache.
func (b *Builder) Overlay(c geom.Country) Shape {
	return Shape{
		Country:  c,
		Visited:  true,
		Fill:     b.triangulator().BuildGeometryMesh(c.Geometry, OutlineVisited),
		Outlines: triangulate.Outlines(c.Geometry, OutlineVisited+0.001, OutlineSegments),
	}
}

// RotateY turns p about the +y axis by a radians.
func RotateY(p r3.Vector, a float64) r3.Vector {
	sin, cos := math.Sincos(a)
	return r3.Vector{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}
}

// RotateX turns p about the +x axis by a radians.
func RotateX(p r3.Vector, a float64) r3.Vector {
	sin, cos := math.Sincos(a)
	return r3.Vector{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}
}
