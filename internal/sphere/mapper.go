// Package sphere maps geographic coordinates onto a sphere centred at the
// origin, with +y pointing at the north pole.
package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// GeoPoint is a [longitude, latitude] pair in degrees, GeoJSON order.
type GeoPoint [2]float64

func (p GeoPoint) Lon() float64 { return p[0] }
func (p GeoPoint) Lat() float64 { return p[1] }

const degToRad = math.Pi / 180

// slerpEpsilon is the angle (radians) below which Slerp falls back to a
// normalised linear blend.
const slerpEpsilon = 1e-4

// LatLngToPoint converts lat/lng degrees to a point at the given radius.
// The north pole is +y, lat 0 lng 0 is +x and lat 0 lng 90 is -z.
func LatLngToPoint(lat, lng, radius float64) r3.Vector {
	phi := (90 - lat) * degToRad
	theta := (lng + 180) * degToRad
	return r3.Vector{
		X: -radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * math.Sin(phi) * math.Sin(theta),
	}
}

// PointToLatLng inverts LatLngToPoint. The zero vector maps to (0, 0).
func PointToLatLng(p r3.Vector) (lat, lng float64) {
	n := p.Norm()
	if n == 0 {
		return 0, 0
	}
	phi := math.Acos(clamp(p.Y/n, -1, 1))
	theta := math.Atan2(p.Z, -p.X)
	lat = 90 - phi/degToRad
	lng = theta/degToRad - 180
	if lng < -180 {
		lng += 360
	}
	return lat, lng
}

// Slerp interpolates between a and b along the great circle through them and
// returns a point at the given radius.
func Slerp(a, b r3.Vector, t, radius float64) r3.Vector {
	n1 := a.Normalize()
	n2 := b.Normalize()
	theta := math.Acos(clamp(n1.Dot(n2), -1, 1))
	if theta < slerpEpsilon {
		l := a.Add(b.Sub(a).Mul(t))
		return l.Normalize().Mul(radius)
	}
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return n1.Mul(wa).Add(n2.Mul(wb)).Normalize().Mul(radius)
}

// InterpolateGreatCircleSegment samples segments+1 points along the great
// circle from start to end, endpoints included.
func InterpolateGreatCircleSegment(start, end GeoPoint, radius float64, segments int) []r3.Vector {
	if segments < 1 {
		segments = 1
	}
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(start.Lat(), start.Lon()))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(end.Lat(), end.Lon()))
	out := make([]r3.Vector, 0, segments+1)
	for j := 0; j <= segments; j++ {
		t := float64(j) / float64(segments)
		var lat, lng float64
		switch j {
		case 0:
			lat, lng = start.Lat(), start.Lon()
		case segments:
			lat, lng = end.Lat(), end.Lon()
		default:
			ll := s2.LatLngFromPoint(s2.Interpolate(t, a, b))
			lat, lng = ll.Lat.Degrees(), ll.Lng.Degrees()
		}
		out = append(out, LatLngToPoint(lat, lng, radius))
	}
	return out
}

// RingOutline returns the polyline for a ring: segments+1 samples for every
// consecutive pair of coordinates. A ring with fewer than two points yields
// nil.
func RingOutline(ring []GeoPoint, radius float64, segments int) []r3.Vector {
	if len(ring) < 2 {
		return nil
	}
	var out []r3.Vector
	for i := 0; i < len(ring)-1; i++ {
		out = append(out, InterpolateGreatCircleSegment(ring[i], ring[i+1], radius, segments)...)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
