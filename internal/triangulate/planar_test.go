package triangulate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringOf(coords ...float64) Ring {
	r := make(Ring, 0, len(coords)/2+1)
	for i := 0; i+1 < len(coords); i += 2 {
		r = append(r, [2]float64{coords[i], coords[i+1]})
	}
	return append(r, r[0])
}

func ringArea(r Ring) float64 {
	pts := make([][2]float64, len(r))
	for i, p := range r {
		pts[i] = p
	}
	return signedArea(pts...)
}

func signedArea(pts ...[2]float64) float64 {
	sum := 0.0
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

func reverseRing(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

func TestBaseTrianglesShapes(t *testing.T) {
	cases := []struct {
		name  string
		ring  Ring
		exact bool
	}{
		{"triangle", ringOf(0, 0, 1, 0, 0, 1), true},
		{"square", ringOf(0, 0, 10, 0, 10, 10, 0, 10), true},
		{"L shape", ringOf(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2), false},
		{"star", ringOf(0, 3, 1, 1, 3, 1, 1.5, -0.5, 2, -3, 0, -1.5, -2, -3, -1.5, -0.5, -3, 1, -1, 1), false},
		{"comb", ringOf(0, 0, 5, 0, 5, 3, 4, 3, 4, 1, 3, 1, 3, 3, 2, 3, 2, 1, 1, 1, 1, 3, 0, 3), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, ring := range []Ring{c.ring, reverseRing(c.ring)} {
				open := ring[:len(ring)-1]
				tris := BaseTriangles(ring)
				maxTris := len(open) - 2
				if c.exact {
					require.Len(t, tris, maxTris*3)
				} else {
					require.NotEmpty(t, tris)
					require.LessOrEqual(t, len(tris)/3, maxTris)
				}
				require.Zero(t, len(tris)%3)

				// Triangles tile the ring and share one winding.
				sum, sign := 0.0, 0.0
				for i := 0; i < len(tris); i += 3 {
					for _, idx := range tris[i : i+3] {
						require.True(t, idx >= 0 && idx < len(open))
					}
					a := signedArea(open[tris[i]], open[tris[i+1]], open[tris[i+2]])
					if sign == 0 {
						sign = math.Copysign(1, a)
					}
					assert.Equal(t, sign, math.Copysign(1, a))
					sum += math.Abs(a)
				}
				assert.InDelta(t, math.Abs(ringArea(open)), sum, 1e-9)
			}
		})
	}
}

func TestBaseTrianglesDegenerate(t *testing.T) {
	assert.Empty(t, BaseTriangles(nil))
	assert.Empty(t, BaseTriangles(Ring{{0, 0}, {1, 1}, {0, 0}}))
	assert.Empty(t, BaseTriangles(ringOf(0, 0, 1, 1, 2, 2)), "collinear")
}

func TestBaseTrianglesRepeatedVertex(t *testing.T) {
	ring := ringOf(0, 0, 10, 0, 10, 0, 10, 10, 0, 10)
	open := ring[:len(ring)-1]
	tris := BaseTriangles(ring)
	require.NotEmpty(t, tris)
	sum := 0.0
	for i := 0; i < len(tris); i += 3 {
		sum += math.Abs(signedArea(open[tris[i]], open[tris[i+1]], open[tris[i+2]]))
	}
	assert.InDelta(t, 100, sum, 1e-9)
}
