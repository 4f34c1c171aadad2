package tui

import (
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"visitglobe/internal/globe"
	"visitglobe/internal/sphere"
	"visitglobe/internal/triangulate"
)

// Camera distances in globe radii.
const (
	defaultDistance = 2.5
	minDistance     = 1.5
	maxDistance     = 5.0
)

var (
	initialPitch = radians(35)
	maxPitch     = radians(89)
	rotateStep   = radians(10)
)

const limbSteps = 180

// view is the orthographic camera for one frame, in micro-pixel units.
type view struct {
	yaw, pitch float64
	scale      float64
	cx, cy     float64
}

func (m Model) view(w, h int) view {
	wMic, hMic := float64(w*2), float64(h*4)
	yaw := m.yaw
	if m.scene != nil {
		yaw += m.scene.Rotation()
	}
	return view{
		yaw:   yaw,
		pitch: m.pitch,
		scale: 0.45 * math.Min(wMic, hMic) * defaultDistance / m.distance,
		cx:    wMic / 2,
		cy:    hMic / 2,
	}
}

func (v view) eye(p r3.Vector) r3.Vector {
	return globe.RotateX(globe.RotateY(p, v.yaw), v.pitch)
}

// project maps a world point to micro coords; front is false on the far
// hemisphere.
func (v view) project(p r3.Vector) (x, y float64, front bool) {
	q := v.eye(p)
	return v.cx + q.X*v.scale, v.cy - q.Y*v.scale, q.Z > 0
}

// unproject returns the lat/lng under a micro coordinate, or false off the
// globe.
func (v view) unproject(mx, my float64) (lat, lng float64, ok bool) {
	x := (mx - v.cx) / v.scale
	y := (v.cy - my) / v.scale
	r2 := x*x + y*y
	if r2 > 1 {
		return 0, 0, false
	}
	q := r3.Vector{X: x, Y: y, Z: math.Sqrt(1 - r2)}
	p := globe.RotateY(globe.RotateX(q, -v.pitch), -v.yaw)
	lat, lng = sphere.PointToLatLng(p)
	return lat, lng, true
}

// zoomFactor is 1 at the closest distance and 0 at the farthest.
func zoomFactor(distance float64) float64 {
	return clampf(1-(distance-minDistance)/(maxDistance-minDistance), 0, 1)
}

func (m Model) renderGlobe(w, h int) string {
	br := newBrailleBuf(w, h)
	v := m.view(w, h)

	drawLimb(br, v)
	if m.scene != nil {
		outlines := zoomFactor(m.distance) > 0.05
		for _, sh := range m.scene.Shapes {
			hover := sh.Visited && sh.Country.ID == m.hoverID
			if sh.Visited && sh.Fill != nil {
				k := inkFill
				if hover {
					k = inkHoverFill
				}
				drawMesh(br, v, sh.Fill, k)
			}
			if !outlines {
				continue
			}
			k := inkOutline
			switch {
			case hover:
				k = inkHoverOutline
			case sh.Visited:
				k = inkVisitedOutline
			}
			drawPolylines(br, v, sh.Outlines, k)
		}
	}
	if m.overlay != nil {
		if m.overlay.Fill != nil {
			drawMesh(br, v, m.overlay.Fill, inkOverlay)
		}
		drawPolylines(br, v, m.overlay.Outlines, inkOverlay)
	}
	return strings.Join(br.toLines(), "\n")
}

func drawLimb(br *brailleBuf, v view) {
	r := globe.OceanRadius * v.scale
	px, py := int(v.cx+r), int(v.cy)
	for i := 1; i <= limbSteps; i++ {
		a := 2 * math.Pi * float64(i) / limbSteps
		x, y := int(v.cx+r*math.Cos(a)), int(v.cy-r*math.Sin(a))
		br.drawLineMicro(px, py, x, y, inkLimb)
		px, py = x, y
	}
}

// drawMesh fills front-facing triangles. A triangle faces the viewer when
// its centroid, which is its normal on the sphere, points towards +z.
func drawMesh(br *brailleBuf, v view, mesh *triangulate.Mesh, k ink) {
	for i := 0; i < mesh.TriangleCount(); i++ {
		t := mesh.Triangle(i)
		a, b, c := mesh.Vertex(int(t[0])), mesh.Vertex(int(t[1])), mesh.Vertex(int(t[2]))
		if v.eye(a.Add(b).Add(c)).Z <= 0 {
			continue
		}
		ax, ay, _ := v.project(a)
		bx, by, _ := v.project(b)
		cx, cy, _ := v.project(c)
		br.fillTriangle([2]float64{ax, ay}, [2]float64{bx, by}, [2]float64{cx, cy}, k)
	}
}

func drawPolylines(br *brailleBuf, v view, lines [][]r3.Vector, k ink) {
	for _, line := range lines {
		var px, py int
		prevFront := false
		for i, p := range line {
			x, y, front := v.project(p)
			ix, iy := int(math.Round(x)), int(math.Round(y))
			if i > 0 && front && prevFront {
				br.drawLineMicro(px, py, ix, iy, k)
			}
			px, py, prevFront = ix, iy, front
		}
	}
}
