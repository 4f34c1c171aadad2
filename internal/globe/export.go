package globe

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

type exportCountry struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Visited   bool        `json:"visited"`
	Image     string      `json:"image,omitempty"`
	Positions []float64   `json:"positions"`
	Indices   []uint32    `json:"indices"`
	Outlines  [][]float64 `json:"outlines"`
}

type exportDoc struct {
	Countries []exportCountry `json:"countries"`
	Visited   int             `json:"visited"`
	Total     int             `json:"total"`
	RotationY float64         `json:"rotationY"`
}

// WriteJSON writes the scene as flat position/index buffers per country,
// ready for an indexed triangle pipeline. Outlines are flat x, y, z lists
// drawn as line strips.
func WriteJSON(w io.Writer, s *Scene) error {
	doc := exportDoc{
		Countries: make([]exportCountry, 0, len(s.Shapes)),
		Visited:   s.Summary.Visited,
		Total:     s.Summary.Total,
		RotationY: s.Rotation(),
	}
	for _, sh := range s.Shapes {
		c := exportCountry{
			ID:        sh.Country.ID,
			Name:      sh.Country.Name,
			Visited:   sh.Visited,
			Image:     sh.Entry.Image,
			Positions: []float64{},
			Indices:   []uint32{},
			Outlines:  make([][]float64, 0, len(sh.Outlines)),
		}
		if sh.Fill != nil {
			c.Positions = sh.Fill.Positions
			c.Indices = sh.Fill.Indices
		}
		for _, line := range sh.Outlines {
			flat := make([]float64, 0, 3*len(line))
			for _, p := range line {
				flat = append(flat, p.X, p.Y, p.Z)
			}
			c.Outlines = append(c.Outlines, flat)
		}
		doc.Countries = append(doc.Countries, c)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "export scene")
	}
	return nil
}
