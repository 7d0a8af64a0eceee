package tui

import (
	"fmt"
	"strings"

	"github.com/npratt/riffdag/internal/graph"
)

// dagCellWidth is the fixed width of one neighborhood column cell.
const dagCellWidth = 24

// renderDagPane renders the layered neighborhood of the selected node:
// ancestors on the left (farthest first), the selected node centered,
// descendants on the right (nearest first).
func (m model) renderDagPane(width, height int) string {
	title := fmt.Sprintf("Neighborhood (depth %d)", m.depth)

	id := m.selectedID()
	if id == "" {
		return pane(title, styles.FieldEmpty.Render("no selection"), width, height)
	}

	n := graph.Neighbors(m.store, id, m.depth)
	var content string
	if m.dagView == dagViewGrid {
		content = m.renderGrid(n, safeDim(width-2), safeDim(height-3))
	} else {
		content = m.renderLayers(n)
	}
	return pane(title, content, width, height)
}

// renderLayers lays the neighborhood out as centered fixed-width columns:
// grandparents | parents | [selected] | children | grandchildren. Column
// heights are normalized so rows line up.
func (m model) renderLayers(n graph.Neighborhood) string {
	var columns [][]string

	// Ancestor layers, farthest first.
	for i := len(n.Ancestors) - 1; i >= 0; i-- {
		columns = append(columns, m.layerCells(n.Ancestors[i]))
	}

	center := truncate(m.store.Node(n.Center).DisplayLabel(), dagCellWidth-2)
	columns = append(columns, []string{"[" + center + "]"})
	centerCol := len(columns) - 1

	// Descendant layers, nearest first.
	for _, layer := range n.Descendants {
		columns = append(columns, m.layerCells(layer))
	}

	maxRows := 1
	for _, col := range columns {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}

	var sb strings.Builder
	sb.WriteString(styles.DagHeader.Render("parents ← [selected] → children"))
	sb.WriteString("\n")

	for row := 0; row < maxRows; row++ {
		cells := make([]string, 0, len(columns))
		for ci, col := range columns {
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			cell = centerCell(cell, dagCellWidth)
			if ci == centerCol && row == 0 {
				cell = styles.DagCenter.Render(cell)
			}
			cells = append(cells, cell)
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styles.DagHint.Render("depth-limited view; tab switches to the drawn view"))
	return sb.String()
}

// layerCells formats one layer's nodes as cell text.
func (m *model) layerCells(layer []string) []string {
	cells := make([]string, 0, len(layer))
	for _, id := range layer {
		cells = append(cells, truncate(m.store.Node(id).DisplayLabel(), dagCellWidth))
	}
	return cells
}

// centerCell pads s to width, centered.
func centerCell(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
