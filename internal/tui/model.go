package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/riffdag/internal/config"
	"github.com/npratt/riffdag/internal/graph"
)

// inputMode represents which mode interprets keystrokes.
type inputMode int

const (
	// modeNormal is the default navigation mode.
	modeNormal inputMode = iota
	// modeFilter routes printable keys into the filter buffer.
	modeFilter
)

// overlayKind is the display-only overlay currently shown, if any.
// Overlays never touch selection or filter state.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlayWarnings
)

// dagViewKind selects how the neighborhood pane renders: aligned text
// columns or the character-grid drawing with shaped nodes and edge lines.
type dagViewKind int

const (
	dagViewText dagViewKind = iota
	dagViewGrid
)

// Layout size constants.
const (
	// minCols is the minimum terminal width for the three-pane layout.
	minCols = 60
	// minRows is the minimum terminal height for the three-pane layout.
	minRows = 15
	// maxFilterChars bounds the filter buffer.
	maxFilterChars = 128
)

// model is the bubbletea model for the TUI. The store is shared and
// immutable; the model owns only view state (filtered ids, selection,
// mode, overlay, window size).
type model struct {
	store  *graph.Store
	report *graph.Report
	depth  int
	ui     config.UIConfig

	view []string // current filtered view, ingestion order among matches
	sel  selection

	mode        inputMode
	overlay     overlayKind
	dagView     dagViewKind
	filterInput textinput.Model

	width  int
	height int
}

// newModel creates a model with an empty filter (full view) and the first
// node selected.
func newModel(store *graph.Store, report *graph.Report, depth int, ui config.UIConfig) model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.CharLimit = maxFilterChars
	ti.Prompt = "/"

	m := model{
		store:       store,
		report:      report,
		depth:       depth,
		ui:          ui,
		filterInput: ti,
	}
	m.view = graph.Filter(store, "")
	m.sel.setIndex(0, len(m.view))
	return m
}

// applyFilter recomputes the view for the query and re-clamps the
// selection, keeping the previously selected node whenever it still
// matches.
func (m *model) applyFilter(query string) {
	prev, _ := m.sel.current(m.view)
	m.view = graph.Filter(m.store, query)
	m.sel.reclamp(m.view, prev)
}

// selectedID returns the id of the currently selected node, or "" when
// the view is empty.
func (m *model) selectedID() string {
	id, ok := m.sel.current(m.view)
	if !ok {
		return ""
	}
	return id
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update and handleKey are implemented in update.go.
// View is implemented in view.go.
