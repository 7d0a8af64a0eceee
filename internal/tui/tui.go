// Package tui provides the three-pane terminal UI for browsing an ingested
// event graph using bubbletea.
package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/npratt/riffdag/internal/config"
	"github.com/npratt/riffdag/internal/graph"
)

// TUI is the interactive graph inspector.
type TUI struct {
	store  *graph.Store
	report *graph.Report
	depth  int
	ui     config.UIConfig
	plain  bool
	out    io.Writer
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a new TUI over an ingested store with the given options.
func New(store *graph.Store, opts ...Option) *TUI {
	t := &TUI{
		store:  store,
		report: &graph.Report{},
		depth:  graph.DefaultDepth,
		ui:     config.Default().UI,
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithReport attaches the ingestion report shown in the warnings overlay.
func WithReport(r *graph.Report) Option {
	return func(t *TUI) {
		if r != nil {
			t.report = r
		}
	}
}

// WithDepth sets the neighborhood traversal depth.
func WithDepth(depth int) Option {
	return func(t *TUI) {
		if depth > 0 {
			t.depth = depth
		}
	}
}

// WithUI sets the pane layout configuration.
func WithUI(ui config.UIConfig) Option {
	return func(t *TUI) {
		t.ui = ui
	}
}

// WithPlain forces the non-interactive line renderer even on a TTY.
func WithPlain(plain bool) Option {
	return func(t *TUI) {
		t.plain = plain
	}
}

// WithOutput sets the writer for the plain renderer.
func WithOutput(w io.Writer) Option {
	return func(t *TUI) {
		t.out = w
	}
}

// Run starts the UI and blocks until it exits. Without a TTY (or with the
// plain option) it prints a one-shot summary instead of taking over the
// terminal.
func (t *TUI) Run() error {
	if t.plain || !isTerminal() {
		return t.runPlain(t.out)
	}

	m := newModel(t.store, t.report, t.depth, t.ui)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
