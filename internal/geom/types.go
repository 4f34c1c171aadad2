package geom

import (
	"visitglobe/internal/sphere"
	"visitglobe/internal/triangulate"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Country is one polygonal feature of the world dataset.
type Country struct {
	ID       string
	Name     string
	Geometry triangulate.Geometry
	BBox     BBox
}

// boundsOf returns the lon/lat bbox of every ring in g.
func boundsOf(g triangulate.Geometry) BBox {
	var bb BBox
	first := true
	add := func(pt sphere.GeoPoint) {
		if first {
			bb = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
			first = false
			return
		}
		bb.MinX = min(bb.MinX, pt[0])
		bb.MinY = min(bb.MinY, pt[1])
		bb.MaxX = max(bb.MaxX, pt[0])
		bb.MaxY = max(bb.MaxY, pt[1])
	}
	for _, poly := range g.Polygons() {
		for _, ring := range poly {
			for _, p := range ring {
				add(p)
			}
		}
	}
	return bb
}

// Center is the midpoint of the box.
func (b BBox) Center() sphere.GeoPoint {
	return sphere.GeoPoint{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

func (b BBox) contains(lon, lat float64) bool {
	return lon >= b.MinX && lon <= b.MaxX && lat >= b.MinY && lat <= b.MaxY
}

// Contains reports whether lon/lat falls inside the country, holes excluded.
// Rings that straddle the antimeridian are tested in their shifted form.
func (c Country) Contains(lon, lat float64) bool {
	// A crossing ring's raw bounds span the wrong side of the globe, so the
	// box only rejects for countries narrower than a hemisphere.
	if c.BBox.MaxX-c.BBox.MinX <= 180 && !c.BBox.contains(lon, lat) {
		return false
	}
	for _, poly := range c.Geometry.Polygons() {
		if len(poly) == 0 {
			continue
		}
		if !ringContains(poly[0], lon, lat) {
			continue
		}
		inHole := false
		for _, hole := range poly[1:] {
			if ringContains(hole, lon, lat) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

func ringContains(ring triangulate.Ring, lon, lat float64) bool {
	r := triangulate.NormalizeAntimeridian(ring)
	if crossing(r, lon, lat) {
		return true
	}
	return lon < 0 && crossing(r, lon+360, lat)
}

// crossing is the even-odd ray test in the lon/lat plane.
func crossing(r triangulate.Ring, x, y float64) bool {
	in := false
	for i, j := 0, len(r)-1; i < len(r); j, i = i, i+1 {
		xi, yi := r[i][0], r[i][1]
		xj, yj := r[j][0], r[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}
