// Package tui is the terminal globe viewer.
package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"visitglobe/internal/geom"
	"visitglobe/internal/globe"
	"visitglobe/internal/visited"
)

// Options are the loaded inputs the viewer starts from.
type Options struct {
	Countries []geom.Country
	Visited   visited.Set
	Builder   *globe.Builder
	ImagesDir string
	Logger    *zap.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	// camera
	yaw      float64
	pitch    float64
	distance float64

	status string

	// Data
	countries []geom.Country
	set       visited.Set
	builder   *globe.Builder
	scene     *globe.Scene
	imagesDir string
	logger    *zap.Logger

	// country list
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model
	overlay   *globe.Shape

	// detail popup
	popup string

	// hover state
	hoverHasGeo bool
	hoverLat    float64
	hoverLon    float64
	hoverID     string

	// visited table
	showVisited bool
	tbl         table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		pitch:       initialPitch,
		distance:    defaultDistance,
		countries:   opts.Countries,
		set:         make(visited.Set, len(opts.Visited)),
		builder:     opts.Builder,
		imagesDir:   opts.ImagesDir,
		logger:      opts.Logger,
	}
	if m.builder == nil {
		m.builder = &globe.Builder{CenterLongitude: globe.DefaultCenterLongitude}
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	for id, e := range opts.Visited {
		m.set[id] = e
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Countries"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// esc and q belong to the viewer
	m.l.KeyMap.Quit.SetEnabled(false)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT (POLYGON, MULTIPOLYGON) or GeoJSON coordinates. Enter to draw; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.rebuild()
	m.status = m.scene.Summary.String()
	return m
}

// rebuild reassembles the scene after the visited set changes.
func (m *Model) rebuild() {
	m.scene = m.builder.Build(m.countries, m.set)
	m.refreshCountries()
	if m.showVisited {
		m.refreshVisitedTable()
	}
}

func (m Model) Init() tea.Cmd { return nil }
