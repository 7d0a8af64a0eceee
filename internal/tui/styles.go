package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/npratt/riffdag/internal/graph"
)

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Border     lipgloss.Style
	PaneTitle  lipgloss.Style
	Divider    lipgloss.Style
	Footer     lipgloss.Style
	FilterLine lipgloss.Style

	// List styles
	Selected lipgloss.Style
	Degree   lipgloss.Style

	// Detail styles
	FieldName  lipgloss.Style
	FieldEmpty lipgloss.Style

	// Neighborhood styles
	DagHeader lipgloss.Style
	DagCenter lipgloss.Style
	DagHint   lipgloss.Style

	// Overlay styles
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	Warning    lipgloss.Style
}{
	Border: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	PaneTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	FilterLine: lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")),

	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220")),

	Degree: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	FieldName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	FieldEmpty: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	DagHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")),

	DagCenter: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220")),

	DagHint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2),

	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")),

	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),
}

// kindStyles maps each node kind to its display style. The mapping is
// total: anything not recognized is generic.
var kindStyles = map[graph.Kind]lipgloss.Style{
	graph.KindPrompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	graph.KindResponse: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	graph.KindTool:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	graph.KindError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	graph.KindGeneric:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
}

// styleForKind returns the style for a node kind.
func styleForKind(k graph.Kind) lipgloss.Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyles[graph.KindGeneric]
}
