package tui

import (
	"strings"

	"github.com/npratt/riffdag/internal/graph"
)

// Grid geometry for the drawn neighborhood view. Layers become columns
// left to right; the horizontal gap carries the edge lines.
const (
	gridNodeW    = 18
	gridSpacingX = 6
	gridRowH     = 2
)

// kindGlyphs marks each node kind with a distinct shape in the grid view.
var kindGlyphs = map[graph.Kind]rune{
	graph.KindPrompt:   '■',
	graph.KindResponse: '●',
	graph.KindTool:     '◆',
	graph.KindError:    '✕',
	graph.KindGeneric:  '·',
}

func kindGlyph(k graph.Kind) rune {
	if g, ok := kindGlyphs[k]; ok {
		return g
	}
	return kindGlyphs[graph.KindGeneric]
}

type gridPos struct {
	x, y int
}

// renderGrid draws the neighborhood onto a character grid: one column per
// layer, each column vertically centered, edges drawn first so node cells
// overwrite them.
func (m model) renderGrid(n graph.Neighborhood, width, height int) string {
	var columns [][]string
	for i := len(n.Ancestors) - 1; i >= 0; i-- {
		columns = append(columns, n.Ancestors[i])
	}
	columns = append(columns, []string{n.Center})
	for _, layer := range n.Descendants {
		columns = append(columns, layer)
	}

	grid := newGrid(width, height)
	midY := height / 2

	positions := make(map[string]gridPos)
	for ci, col := range columns {
		x := ci * (gridNodeW + gridSpacingX)
		top := midY - (len(col)*gridRowH)/2
		for ri, id := range col {
			positions[id] = gridPos{x: x, y: top + ri*gridRowH}
		}
	}

	for id, from := range positions {
		for _, child := range m.store.Children(id) {
			if to, ok := positions[child]; ok {
				grid.drawEdge(from.x+gridNodeW, from.y, to.x, to.y)
			}
		}
	}

	for id, pos := range positions {
		grid.writeString(pos.x, pos.y, m.nodeCell(id, id == n.Center))
	}

	return grid.String()
}

// nodeCell formats one node as its kind glyph plus the display label, the
// selected node bracketed.
func (m model) nodeCell(id string, selected bool) string {
	node := m.store.Node(id)
	text := string(kindGlyph(node.Kind)) + " " + truncate(node.DisplayLabel(), gridNodeW-4)
	if selected {
		return "[" + text + "]"
	}
	return text
}

// charGrid is a 2D character grid for rendering.
type charGrid struct {
	width  int
	height int
	cells  [][]rune
}

// newGrid creates a new character grid filled with spaces.
func newGrid(width, height int) *charGrid {
	cells := make([][]rune, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
		}
	}
	return &charGrid{width: width, height: height, cells: cells}
}

// writeRune writes a single rune at the given position.
func (g *charGrid) writeRune(x, y int, r rune) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = r
	}
}

// writeString writes a string starting at the given position.
func (g *charGrid) writeString(x, y int, s string) {
	for i, r := range s {
		g.writeRune(x+i, y, r)
	}
}

// drawEdge draws an L-shaped edge from a node's right side to the target's
// left side, with an arrowhead at the target. Same-column and backward
// edges are skipped.
func (g *charGrid) drawEdge(fromX, fromY, toX, toY int) {
	if toX <= fromX {
		return
	}

	elbow := toX - 2
	for x := fromX; x < elbow; x++ {
		g.writeRune(x, fromY, '─')
	}

	if fromY == toY {
		g.writeRune(elbow, fromY, '─')
	} else {
		minY, maxY := fromY, toY
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		for y := minY + 1; y < maxY; y++ {
			g.writeRune(elbow, y, '│')
		}
		if toY > fromY {
			g.writeRune(elbow, fromY, '┐')
			g.writeRune(elbow, toY, '└')
		} else {
			g.writeRune(elbow, fromY, '┘')
			g.writeRune(elbow, toY, '┌')
		}
	}

	g.writeRune(toX-1, toY, '▶')
}

// String converts the grid to a string.
func (g *charGrid) String() string {
	lines := make([]string, 0, g.height)
	for _, row := range g.cells {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	return strings.Join(lines, "\n")
}
