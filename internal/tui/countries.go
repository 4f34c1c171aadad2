package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"visitglobe/internal/geom"
	"visitglobe/internal/visited"
)

type countryItem struct {
	id, name string
	visited  bool
}

func (c countryItem) Title() string {
	if c.visited {
		return "✓ " + c.name
	}
	return c.name
}

func (c countryItem) Description() string { return c.id }
func (c countryItem) FilterValue() string { return c.name }

func (m *Model) refreshCountries() {
	items := make([]list.Item, 0, len(m.countries))
	for _, c := range m.countries {
		items = append(items, countryItem{id: c.ID, name: c.Name, visited: m.set.Has(c.ID)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].(countryItem).name < items[j].(countryItem).name
	})
	m.l.SetItems(items)
}

func (m Model) country(id string) (geom.Country, bool) {
	for _, c := range m.countries {
		if c.ID == id {
			return c, true
		}
	}
	return geom.Country{}, false
}

// countryAt returns the id of the country covering lon/lat, if any.
func (m Model) countryAt(lon, lat float64) string {
	for _, c := range m.countries {
		if c.Contains(lon, lat) {
			return c.ID
		}
	}
	return ""
}

// focus turns the camera so lon/lat faces the viewer.
func (m *Model) focus(lon, lat float64) {
	center := m.builder.CenterLongitude
	if m.scene != nil {
		center = m.scene.CenterLongitude
	}
	m.yaw = wrapAngle(radians(center - lon))
	m.pitch = clampf(radians(lat), -maxPitch, maxPitch)
}

func (m *Model) openDetail(id string) {
	c, ok := m.country(id)
	if !ok {
		return
	}
	sh, _ := m.scene.Find(id)
	lines := []string{titleStyle.Render(c.Name), fmt.Sprintf("id: %s", c.ID)}
	if sh.Visited {
		lines = append(lines, "visited: "+goodStyle.Render("yes"))
	} else {
		lines = append(lines, "visited: no")
	}
	image := "none"
	if sh.Entry.Image != "" {
		image = filepath.Join(m.imagesDir, sh.Entry.Image)
	}
	lines = append(lines, "image: "+image)
	if sh.Fill != nil {
		lines = append(lines, fmt.Sprintf("mesh: %s vertices, %s triangles",
			humanize.Comma(int64(sh.Fill.VertexCount())), humanize.Comma(int64(sh.Fill.TriangleCount()))))
	} else {
		lines = append(lines, "mesh: none")
	}
	lines = append(lines,
		fmt.Sprintf("outlines: %d rings", len(sh.Outlines)),
		fmt.Sprintf("bbox: [%.2f, %.2f, %.2f, %.2f]", c.BBox.MinX, c.BBox.MinY, c.BBox.MaxX, c.BBox.MaxY),
	)
	m.popup = strings.Join(lines, "\n")
	m.status = c.Name
}

// toggleVisited flips a country in the session's visited set.
func (m *Model) toggleVisited(id string) {
	c, ok := m.country(id)
	if !ok {
		m.status = "no country selected"
		return
	}
	if m.set.Has(id) {
		delete(m.set, id)
		m.status = c.Name + " unmarked"
	} else {
		n := visited.NormalizeName(c.Name)
		m.set[id] = visited.Entry{ID: id, Name: visited.DisplayName(n), NormalizedName: n}
		m.status = c.Name + " marked visited"
	}
	m.logger.Info("visited toggled", zap.String("id", id), zap.Bool("visited", m.set.Has(id)))
	m.rebuild()
	if m.popup != "" {
		m.openDetail(id)
	}
}
