package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	popupWidth   = 44
)

// layout is the screen split shared by View and mouse hit testing.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
	popupW             int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	if m.popup != "" && !m.showVisited {
		lo.popupW = min(popupWidth, lo.contentW/2)
	}
	lo.mapW = max(10, lo.contentW-lo.mapX-lo.popupW)
	lo.mapH = lo.contentH
	return lo
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	// Header
	header := titleStyle.Render(" visitglobe ") + dimStyle.Render(" "+m.progress())
	header = lipgloss.NewStyle().Width(lo.contentW).MaxHeight(headerHeight).Render(header)

	var mapView string
	switch {
	case m.showVisited:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.renderGlobe(lo.mapW, lo.mapH))
	}

	cols := []string{}
	if m.showSidebar {
		cols = append(cols, lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View()), " ")
	}
	cols = append(cols, mapView)
	if lo.popupW > 0 {
		box := boxStyle.Width(lo.popupW - 2).Render(m.popup)
		cols = append(cols, lipgloss.Place(lo.popupW, lo.mapH, lipgloss.Center, lipgloss.Center, box))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+" "), m.renderHelp())
	coords := ""
	if m.hoverHasGeo {
		coords = fmt.Sprintf("  lat=%.3f lon=%.3f", m.hoverLat, m.hoverLon)
		if c, ok := m.country(m.hoverID); ok {
			coords += "  " + c.Name
		}
		coords = dimStyle.Render(coords + "  ")
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// progress is the header line: visited count and mesh size.
func (m Model) progress() string {
	if m.scene == nil {
		return ""
	}
	s := m.scene.Summary.String()
	if r := m.scene.Summary.Remaining(); r > 0 {
		s += fmt.Sprintf(", %d to go", r)
	}
	return s + "  " + humanize.Comma(int64(m.scene.Stats.Triangles)) + " triangles"
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→↑↓ rotate",
		"+/- zoom",
		"Tab countries",
		"Enter details",
		"v visited",
		"p paste",
		"a visited list",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
