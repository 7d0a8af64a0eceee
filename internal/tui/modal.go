package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpLines is the content of the help overlay.
var helpLines = []string{
	"↑/k, ↓/j    move selection",
	"g/G         jump to top / bottom",
	"/           enter filter mode",
	"enter, esc  leave filter mode (filter stays active)",
	"c           clear the filter",
	"tab         toggle the drawn neighborhood view",
	"w           show ingestion warnings",
	"?           toggle this help",
	"q, ctrl+c   quit",
}

// renderOverlay renders the active display-only overlay centered over the
// frame. Overlays read state but never change it.
func (m model) renderOverlay() string {
	var title string
	var lines []string

	switch m.overlay {
	case overlayHelp:
		title = "Help"
		lines = helpLines

	case overlayWarnings:
		title = "Ingestion Warnings"
		if m.report.Empty() {
			lines = []string{"no warnings; the input ingested cleanly"}
		} else {
			all := m.report.All()
			// Bound the modal; the report itself is kept in full.
			maxShown := m.height - 10
			if maxShown < 5 {
				maxShown = 5
			}
			for i, w := range all {
				if i == maxShown {
					lines = append(lines, fmt.Sprintf("… and %d more", len(all)-maxShown))
					break
				}
				lines = append(lines, styles.Warning.Render(truncate(w, m.width-10)))
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(styles.ModalTitle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Footer.Render("esc/enter/q close"))

	box := styles.Modal.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
