package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"visitglobe/internal/geom"
	"visitglobe/internal/triangulate"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				m.applyPaste(strings.TrimSpace(m.ta.Value()))
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showVisited {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "a", "esc":
				m.showVisited = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.distance = max(minDistance, m.distance/1.2)
			m.status = fmt.Sprintf("zoom: %.2fx", defaultDistance/m.distance)
		case "-", "_":
			m.distance = min(maxDistance, m.distance*1.2)
			m.status = fmt.Sprintf("zoom: %.2fx", defaultDistance/m.distance)
		case "left":
			m.yaw = wrapAngle(m.yaw + rotateStep)
		case "right":
			m.yaw = wrapAngle(m.yaw - rotateStep)
		case "up", "down":
			if m.showSidebar {
				break
			}
			step := rotateStep
			if msg.String() == "down" {
				step = -step
			}
			m.pitch = clampf(m.pitch+step, -maxPitch, maxPitch)
		case "r":
			m.yaw, m.pitch, m.distance = 0, initialPitch, defaultDistance
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showVisited = true
			m.refreshVisitedTable()
			if len(m.set) == 0 {
				m.status = "no visited countries yet"
			}
			return m, nil
		case "v":
			m.toggleVisited(m.target())
		case "esc":
			switch {
			case m.popup != "":
				m.popup = ""
			case m.overlay != nil:
				m.overlay = nil
				m.status = "overlay cleared"
			}
		case "enter":
			id := m.target()
			if c, ok := m.country(id); ok && m.showSidebar {
				center := c.BBox.Center()
				m.focus(center.Lon(), center.Lat())
			}
			m.openDetail(id)
		}
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.distance = max(minDistance, m.distance/1.1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.distance = min(maxDistance, m.distance*1.1)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if m.hoverID != "" {
				m.openDetail(m.hoverID)
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// target is the country a key acts on: the list selection while the list is
// open, otherwise the country under the cursor.
func (m Model) target() string {
	if m.showSidebar {
		if it, ok := m.l.SelectedItem().(countryItem); ok {
			return it.id
		}
		return ""
	}
	return m.hoverID
}

func (m *Model) updateHover(x, y int) {
	lo := m.layout()
	m.hoverHasGeo, m.hoverID = false, ""
	if x < lo.mapX || x >= lo.mapX+lo.mapW || y < lo.mapY || y >= lo.mapY+lo.mapH {
		return
	}
	v := m.view(lo.mapW, lo.mapH)
	mx := float64((x-lo.mapX)*2 + 1)
	my := float64((y-lo.mapY)*4 + 2)
	lat, lng, ok := v.unproject(mx, my)
	if !ok {
		return
	}
	m.hoverHasGeo, m.hoverLat, m.hoverLon = true, lat, lng
	m.hoverID = m.countryAt(lng, lat)
}

func (m *Model) applyPaste(text string) {
	if text == "" {
		m.status = "paste: empty"
		return
	}
	g, bb, err := parsePasted(text)
	if err != nil {
		m.status = "paste error: " + err.Error()
		return
	}
	sh := m.builder.Overlay(geom.Country{ID: "pasted", Name: "pasted geometry", Geometry: g, BBox: bb})
	m.overlay = &sh
	center := bb.Center()
	m.focus(center.Lon(), center.Lat())
	n := 0
	if sh.Fill != nil {
		n = sh.Fill.TriangleCount()
	}
	m.status = fmt.Sprintf("pasted %s: %s triangles", g.Kind, humanize.Comma(int64(n)))
	m.pasteMode = false
	m.ta.Blur()
}

// parsePasted accepts WKT or a bare GeoJSON coordinates array.
func parsePasted(s string) (triangulate.Geometry, geom.BBox, error) {
	if strings.HasPrefix(s, "[") {
		return geom.ParseCoordinates([]byte(s))
	}
	return geom.ParseWKT(s)
}
