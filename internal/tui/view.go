package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npratt/riffdag/internal/graph"
)

// View implements tea.Model. It is a pure function of (filtered view,
// selection, store) to one frame; all business logic lives upstream.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minCols || m.height < minRows {
		return fmt.Sprintf("Terminal too small (%dx%d). Need %dx%d minimum.",
			m.width, m.height, minCols, minRows)
	}

	if m.overlay != overlayNone {
		return m.renderOverlay()
	}

	// One footer row; panes share the rest.
	mainHeight := m.height - 1
	listWidth := m.width * m.ui.ListWidthPercent / 100
	rightWidth := m.width - listWidth
	detailHeight := mainHeight * m.ui.DetailHeightPercent / 100
	dagHeight := mainHeight - detailHeight

	list := m.renderListPane(listWidth, mainHeight)
	detail := m.renderDetailPane(rightWidth, detailHeight)
	dag := m.renderDagPane(rightWidth, dagHeight)

	right := lipgloss.JoinVertical(lipgloss.Left, detail, dag)
	main := lipgloss.JoinHorizontal(lipgloss.Top, list, right)

	return main + "\n" + m.renderFooter()
}

// pane renders a bordered box with a title line and the given inner
// content, padded or clipped to fill the box exactly.
func pane(title, content string, width, height int) string {
	innerWidth := safeDim(width - 2)
	innerHeight := safeDim(height - 2)

	lines := []string{styles.PaneTitle.Render(truncate(title, innerWidth))}
	for _, line := range strings.Split(content, "\n") {
		lines = append(lines, line)
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return styles.Border.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// renderListPane renders the filtered node list with the selection marker.
func (m model) renderListPane(width, height int) string {
	innerWidth := safeDim(width - 2)
	visible := safeDim(height - 3) // border + title line

	title := fmt.Sprintf("Nodes %d/%d", len(m.view), m.store.NodeCount())

	if len(m.view) == 0 {
		return pane(title, styles.FieldEmpty.Render("no nodes match the filter"), width, height)
	}

	// Keep the selection inside the visible window.
	start := 0
	if m.sel.index >= visible {
		start = m.sel.index - visible + 1
	}
	end := min(start+visible, len(m.view))

	var lines []string
	for i := start; i < end; i++ {
		node := m.store.Node(m.view[i])
		in, out := m.store.Degree(node.ID)

		marker := "  "
		if i == m.sel.index {
			marker = "▶ "
		}
		degree := fmt.Sprintf(" (↑%d ↓%d)", in, out)
		label := truncate(node.DisplayLabel(), innerWidth-lipgloss.Width(marker)-lipgloss.Width(degree))

		line := styleForKind(node.Kind).Render(label) + styles.Degree.Render(degree)
		if i == m.sel.index {
			line = styles.Selected.Render(marker) + line
		} else {
			line = marker + line
		}
		lines = append(lines, line)
	}

	return pane(title, strings.Join(lines, "\n"), width, height)
}

// renderDetailPane renders all fields of the selected node plus its
// direct parent and child lists.
func (m model) renderDetailPane(width, height int) string {
	id := m.selectedID()
	if id == "" {
		return pane("Node Details", styles.FieldEmpty.Render("no selection"), width, height)
	}

	node := m.store.Node(id)
	in, out := m.store.Degree(id)
	innerWidth := safeDim(width - 2)

	var sb strings.Builder
	field := func(name, value string) {
		sb.WriteString(styles.FieldName.Render(name + ": "))
		if value == "" {
			sb.WriteString(styles.FieldEmpty.Render("(none)"))
		} else {
			sb.WriteString(truncate(value, innerWidth-len(name)-2))
		}
		sb.WriteString("\n")
	}

	field("id", node.ID)
	field("label", node.Label)
	field("span", node.Span)
	field("ts", node.TS)
	field("tags", strings.Join(node.Tags, ", "))
	field("kind", node.Kind.String())
	sb.WriteString("\n")

	sb.WriteString(styles.FieldName.Render(fmt.Sprintf("parents (%d):", in)) + "\n")
	sb.WriteString(m.renderEdgeList(m.store.ParentEdges(id), "← ", func(e *graph.Edge) string { return e.From }, innerWidth))
	sb.WriteString(styles.FieldName.Render(fmt.Sprintf("children (%d):", out)) + "\n")
	sb.WriteString(m.renderEdgeList(m.store.ChildEdges(id), "→ ", func(e *graph.Edge) string { return e.To }, innerWidth))

	return pane("Node Details", strings.TrimRight(sb.String(), "\n"), width, height)
}

// renderEdgeList renders one side of a node's edges, with the edge label
// when one is present.
func (m model) renderEdgeList(edges []*graph.Edge, arrow string, pick func(*graph.Edge) string, width int) string {
	if len(edges) == 0 {
		return styles.FieldEmpty.Render("  (none)") + "\n"
	}

	var sb strings.Builder
	for _, e := range edges {
		neighbor := m.store.Node(pick(e))
		if neighbor == nil {
			continue
		}
		line := "  " + arrow + neighbor.DisplayLabel()
		if e.Label != "" {
			line += " (" + e.Label + ")"
		}
		sb.WriteString(truncate(line, width) + "\n")
	}
	return sb.String()
}

// renderFooter renders the one-line status bar: the filter input while in
// Filter mode, key hints and the active filter otherwise.
func (m model) renderFooter() string {
	if m.mode == modeFilter {
		hint := styles.Footer.Render("  enter/esc done · backspace delete")
		return styles.FilterLine.Render(m.filterInput.View()) + hint
	}

	help := "↑/↓ move · / filter · c clear · tab draw · w warnings · ? help · q quit"
	if q := m.filterInput.Value(); q != "" {
		help += fmt.Sprintf("  filter: %q", q)
	}
	return styles.Footer.Render(truncate(help, m.width))
}

// safeDim returns a dimension that is at least 1.
func safeDim(d int) int {
	if d < 1 {
		return 1
	}
	return d
}

// truncate shortens s to at most width cells, appending an ellipsis when
// something was cut.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}
