package triangulate

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// DefaultKeyPrecision is the number of decimals kept when quantising vertex
// positions into keys. Any consumer deduplicating vertices must use the same
// value or seams reappear.
const DefaultKeyPrecision = 4

// VertexKey identifies a position by its rounded coordinates.
type VertexKey string

// EdgeKey identifies an undirected edge by its two vertex keys.
type EdgeKey string

// NewVertexKey formats each coordinate with precision decimals. Positions
// that round alike share a key and so a mesh vertex.
func NewVertexKey(v r3.Vector, precision int) VertexKey {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(v.X, 'f', precision, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(v.Y, 'f', precision, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(v.Z, 'f', precision, 64))
	return VertexKey(b.String())
}

// NewEdgeKey is order independent: NewEdgeKey(a, b) == NewEdgeKey(b, a).
func NewEdgeKey(a, b VertexKey) EdgeKey {
	if a < b {
		return EdgeKey(a + "|" + b)
	}
	return EdgeKey(b + "|" + a)
}
