package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal returns true if both stdout and stdin are TTYs.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// plainMaxNodes bounds the node listing in plain mode.
const plainMaxNodes = 50

// runPlain provides one-shot line output for non-interactive environments:
// a summary, the ingestion warnings, and the first nodes in ingestion
// order with their degrees.
func (t *TUI) runPlain(w io.Writer) error {
	fmt.Fprintf(w, "%d nodes, %d edges\n", t.store.NodeCount(), t.store.EdgeCount())

	if !t.report.Empty() {
		fmt.Fprintf(w, "\nwarnings (%d):\n", len(t.report.All()))
		for _, warning := range t.report.All() {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}

	order := t.store.Order()
	if len(order) == 0 {
		fmt.Fprintln(w, "\nno nodes ingested")
		return nil
	}

	fmt.Fprintln(w, "\nnodes:")
	for i, id := range order {
		if i == plainMaxNodes {
			fmt.Fprintf(w, "  … and %d more\n", len(order)-plainMaxNodes)
			break
		}
		node := t.store.Node(id)
		in, out := t.store.Degree(id)
		fmt.Fprintf(w, "  %s (↑%d ↓%d)\n", node.DisplayLabel(), in, out)
	}

	return nil
}
