package tui

import (
	"math"
	"strings"
)

// ink ranks what a cell shows. The highest ink drawn into a cell picks its
// colour.
type ink uint8

const (
	inkNone ink = iota
	inkLimb
	inkOutline
	inkFill
	inkVisitedOutline
	inkHoverFill
	inkHoverOutline
	inkOverlay
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]ink
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	k := make([][]ink, h)
	for i := range m {
		m[i] = make([]uint8, w)
		k[i] = make([]ink, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: k}
}

// dot bits per micro-pixel column (0, 1) and row (0..3)
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, k ink) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	if k > b.ink[cy][cx] {
		b.ink[cy][cx] = k
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, k ink) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, k)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle sets every micro-pixel whose centre lies inside abc, in
// either winding. A triangle too small to cover a centre still marks the
// pixel under its centroid.
func (b *brailleBuf) fillTriangle(a, c1, c2 [2]float64, k ink) {
	minX := int(math.Floor(min(a[0], c1[0], c2[0])))
	maxX := int(math.Ceil(max(a[0], c1[0], c2[0])))
	minY := int(math.Floor(min(a[1], c1[1], c2[1])))
	maxY := int(math.Ceil(max(a[1], c1[1], c2[1])))
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, b.w*2-1), min(maxY, b.h*4-1)

	area := edge(a, c1, c2)
	if area == 0 {
		return
	}
	hit := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			w0 := edge(c1, c2, p)
			w1 := edge(c2, a, p)
			w2 := edge(a, c1, p)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				b.setPixel(x, y, k)
				hit = true
			}
		}
	}
	if !hit {
		cx := (a[0] + c1[0] + c2[0]) / 3
		cy := (a[1] + c1[1] + c2[1]) / 3
		b.setPixel(int(cx), int(cy), k)
	}
}

func edge(a, b, p [2]float64) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func (b *brailleBuf) glyph(x, y int) rune {
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

// plainLines renders the buffer without colour.
func (b *brailleBuf) plainLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// toLines renders the buffer, styling each run of same-ink cells once.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, b.w)
		cur := inkNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur == inkNone {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(inkStyles[cur].Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			k := b.ink[y][x]
			if b.m[y][x] == 0 {
				k = inkNone
			}
			if k != cur {
				flush()
				cur = k
			}
			run = append(run, b.glyph(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
